package models

import "time"

// Review is one user's rating and comment for one movie. At most one review
// exists per (movie, user) pair; the composite unique index backs that up
// against concurrent writers. Review ratings use a 1-5 scale, distinct from
// the movie-level 0-10 scale.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_reviews_movie_user" json:"movieId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_reviews_movie_user" json:"userId"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Rating    int       `gorm:"not null" json:"rating" example:"4"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)
