package models

import "time"

// Rating holds one user's rate for one movie. A later submission for the
// same (movie, user) pair replaces the stored rate.
type Rating struct {
	MovieID   uint      `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	Rate      int       `gorm:"not null" json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "movie_ratings"
}
