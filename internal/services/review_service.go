package services

import (
	"context"
	"errors"
	"fmt"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/models"
	"movieverse-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RatingRecalculator refreshes a movie's derived average after its review set
// changes; implemented by StatsService.
type RatingRecalculator interface {
	UpdateMovieRating(ctx context.Context, movieID uint) error
}

type ReviewService interface {
	AddReview(ctx context.Context, movieID uint, caller auth.Identity, rating int, comment string) (*models.Review, error)
	ListReviews(ctx context.Context, movieID uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	ratings    RatingRecalculator
	logger     *logrus.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	movieRepo repository.MovieRepository,
	ratings RatingRecalculator,
	logger *logrus.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		ratings:    ratings,
		logger:     logger,
	}
}

// AddReview validates and inserts a review, then refreshes the movie's
// average rating. Reviews use a 1-5 scale and each user may review a movie
// once; concurrent duplicates are caught by the store's unique index.
func (s *reviewService) AddReview(ctx context.Context, movieID uint, caller auth.Identity, rating int, comment string) (*models.Review, error) {
	if rating < models.MinReviewRating || rating > models.MaxReviewRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrValidation, models.MinReviewRating, models.MaxReviewRating)
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	existing, err := s.reviewRepo.FindByMovieAndUser(ctx, movieID, caller.UID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you have already reviewed this movie", ErrDuplicate)
	}

	userName := caller.Name
	if userName == "" {
		userName = "Anonymous"
	}

	review := &models.Review{
		MovieID:   movieID,
		UserID:    caller.UID,
		UserEmail: caller.Email,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: you have already reviewed this movie", ErrDuplicate)
		}
		return nil, err
	}

	if err := s.ratings.UpdateMovieRating(ctx, movieID); err != nil {
		s.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to refresh average rating")
	}

	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, movieID uint) ([]models.Review, error) {
	return s.reviewRepo.FindByMovie(ctx, movieID)
}
