package models

import "time"

type Actor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:50;index" json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Picture     string    `json:"picture"`
}

func (Actor) TableName() string {
	return "actors"
}
