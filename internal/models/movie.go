package models

import "time"

type Movie struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Title       string            `gorm:"not null;size:300;index" json:"title"`
	Trailer     string            `json:"trailer"`
	ReleaseDate time.Time         `gorm:"index" json:"release_date"`
	Poster      string            `json:"poster"`
	Genres      []MovieGenre      `gorm:"foreignKey:MovieID" json:"genres,omitempty"`
	Screenings  []CinemaScreening `gorm:"foreignKey:MovieID" json:"screenings,omitempty"`
	Cast        []MovieActor      `gorm:"foreignKey:MovieID" json:"cast,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}

type MovieGenre struct {
	MovieID uint  `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	GenreID uint  `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
	Genre   Genre `gorm:"foreignKey:GenreID" json:"genre"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

type CinemaScreening struct {
	MovieID        uint         `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	MovieTheaterID uint         `gorm:"primaryKey;autoIncrement:false" json:"movie_theater_id"`
	MovieTheater   MovieTheater `gorm:"foreignKey:MovieTheaterID" json:"movie_theater"`
}

func (CinemaScreening) TableName() string {
	return "cinema_screenings"
}

// MovieActor links a movie to an actor with the played character and the
// zero-based position the actor occupies in the movie's cast listing. Order
// is reassigned from list position on every write of the cast.
type MovieActor struct {
	MovieID       uint   `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	ActorID       uint   `gorm:"primaryKey;autoIncrement:false" json:"actor_id"`
	CharacterName string `gorm:"size:300" json:"character_name"`
	Order         int    `gorm:"column:credits_order" json:"order"`
	Actor         Actor  `gorm:"foreignKey:ActorID" json:"actor"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}
