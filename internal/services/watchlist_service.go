package services

import (
	"context"
	"errors"
	"fmt"

	"movieverse-backend/internal/models"
	"movieverse-backend/internal/repository"

	"gorm.io/gorm"
)

type WatchlistService interface {
	AddToWatchlist(ctx context.Context, userID string, movieID uint) error
	GetWatchlist(ctx context.Context, userID string) ([]models.Movie, error)
	RemoveFromWatchlist(ctx context.Context, userID string, movieID uint) error
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	movieRepo     repository.MovieRepository
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, movieRepo repository.MovieRepository) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		movieRepo:     movieRepo,
	}
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, userID string, movieID uint) error {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	existing, err := s.watchlistRepo.Find(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: movie already in watchlist", ErrDuplicate)
	}

	entry := &models.WatchlistEntry{
		UserID:  userID,
		MovieID: movieID,
	}
	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: movie already in watchlist", ErrDuplicate)
		}
		return err
	}
	return nil
}

// GetWatchlist resolves the caller's watchlist entries to movie documents.
func (s *watchlistService) GetWatchlist(ctx context.Context, userID string) ([]models.Movie, error) {
	entries, err := s.watchlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MovieID)
	}
	return s.movieRepo.FindByIDs(ctx, ids)
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID string, movieID uint) error {
	deleted, err := s.watchlistRepo.Delete(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: movie not found in watchlist", ErrNotFound)
	}
	return nil
}
