package models

// Point is a geographic coordinate pair stored inline with its owner.
type Point struct {
	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`
}

type MovieTheater struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;size:80;index" json:"name"`
	Location Point  `gorm:"embedded" json:"location"`
}

func (MovieTheater) TableName() string {
	return "movie_theaters"
}
