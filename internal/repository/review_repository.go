package repository

import (
	"context"
	"errors"
	"time"

	"movieverse-backend/internal/database"
	"movieverse-backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error)
	FindByMovieAndUser(ctx context.Context, movieID uint, userID string) (*models.Review, error)
	RatingsByMovie(ctx context.Context, movieID uint) ([]int, error)
	DeleteByMovie(ctx context.Context, movieID uint) error
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByMovieAndUser(ctx context.Context, movieID uint, userID string) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) RatingsByMovie(ctx context.Context, movieID uint) ([]int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []int
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("movie_id = ?", movieID).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *reviewRepository) DeleteByMovie(ctx context.Context, movieID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("movie_id = ?", movieID).Delete(&models.Review{}).Error
}
