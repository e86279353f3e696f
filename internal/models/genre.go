package models

import "time"

// Genre is a normalized tag. Movies reference genres through the
// movie_genres join table, so filtering is set-membership over tags rather
// than substring matching.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}

type MovieGenre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"index;not null" json:"movie_id"`
	GenreID   uint      `gorm:"index;not null" json:"genre_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
