package repository

import (
	"context"
	"errors"
	"time"

	"movieverse-backend/internal/database"
	"movieverse-backend/internal/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Create(ctx context.Context, entry *models.WatchlistEntry) error
	Find(ctx context.Context, userID string, movieID uint) (*models.WatchlistEntry, error)
	FindByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Delete(ctx context.Context, userID string, movieID uint) (int64, error)
	DeleteByMovie(ctx context.Context, movieID uint) error
}

type watchlistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewWatchlistRepository(db *database.Database) WatchlistRepository {
	return &watchlistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *watchlistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *watchlistRepository) Create(ctx context.Context, entry *models.WatchlistEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *watchlistRepository) Find(ctx context.Context, userID string, movieID uint) (*models.WatchlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *watchlistRepository) FindByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *watchlistRepository) Delete(ctx context.Context, userID string, movieID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.WatchlistEntry{})
	return result.RowsAffected, result.Error
}

func (r *watchlistRepository) DeleteByMovie(ctx context.Context, movieID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("movie_id = ?", movieID).Delete(&models.WatchlistEntry{}).Error
}
