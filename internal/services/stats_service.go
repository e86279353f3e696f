package services

import (
	"context"
	"math"

	"movieverse-backend/internal/models"
	"movieverse-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type StatsService interface {
	ComputeStats(ctx context.Context) (*models.CatalogStats, error)
	UpdateMovieRating(ctx context.Context, movieID uint) error
}

type statsService struct {
	movieRepo  repository.MovieRepository
	genreRepo  repository.GenreRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *logrus.Logger
}

func NewStatsService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	logger *logrus.Logger,
) StatsService {
	return &statsService{
		movieRepo:  movieRepo,
		genreRepo:  genreRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ComputeStats produces a point-in-time snapshot of catalog metrics. Stored
// ratings are dirty (strings, junk, nulls), so each value is coerced and
// malformed or non-positive ones are silently skipped; a single bad record
// never fails the whole computation.
func (s *statsService) ComputeStats(ctx context.Context) (*models.CatalogStats, error) {
	totalMovies, err := s.movieRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := s.movieRepo.AllRatings(ctx)
	if err != nil {
		return nil, err
	}
	average := CleanAverage(ratings)

	totalGenres, err := s.genreRepo.CountInUse(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.CatalogStats{
		TotalMovies:   totalMovies,
		AverageRating: average,
		TotalGenres:   totalGenres,
		TotalUsers:    totalUsers,
	}, nil
}

// CleanAverage computes the mean of the parseable, strictly positive rating
// values, rounded to one decimal place. It reports 0 when no valid values
// remain.
func CleanAverage(raw []string) float64 {
	var sum float64
	var count int
	for _, r := range raw {
		v, ok := models.Rating(r).Float()
		if !ok || v <= 0 {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0
	}
	return roundToOneDecimal(sum / float64(count))
}

// UpdateMovieRating recomputes a movie's averageRating from its current
// review set. With zero reviews nothing is written and the previous average
// stays in place.
func (s *statsService) UpdateMovieRating(ctx context.Context, movieID uint) error {
	ratings, err := s.reviewRepo.RatingsByMovie(ctx, movieID)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return nil
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}
	average := roundToOneDecimal(float64(sum) / float64(len(ratings)))

	return s.movieRepo.UpdateAverageRating(ctx, movieID, average)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
