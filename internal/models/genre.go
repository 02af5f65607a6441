package models

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:50;index" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}
