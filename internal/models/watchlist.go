package models

import "time"

// WatchlistEntry pairs a user with a movie. At most one entry exists per
// (user, movie) pair, enforced by the composite unique index.
type WatchlistEntry struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  string    `gorm:"not null;uniqueIndex:idx_watchlist_user_movie" json:"userId"`
	MovieID uint      `gorm:"not null;uniqueIndex:idx_watchlist_user_movie" json:"movieId"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
