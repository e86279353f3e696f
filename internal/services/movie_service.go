package services

import (
	"context"
	"fmt"
	"time"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/models"
	"movieverse-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieInput carries a full movie submission.
type MovieInput struct {
	Title       string        `json:"title"`
	Genres      []string      `json:"genre"`
	ReleaseYear int           `json:"releaseYear"`
	Director    string        `json:"director"`
	Cast        string        `json:"cast"`
	PlotSummary string        `json:"plotSummary"`
	PosterURL   string        `json:"posterUrl"`
	Rating      models.Rating `json:"rating"`
	Featured    bool          `json:"featured"`
}

// MoviePatch carries a partial update; nil fields are left untouched.
// Ownership and creation time are not part of the patch: addedBy and
// addedDate are immutable by construction.
type MoviePatch struct {
	Title       *string        `json:"title"`
	Genres      *[]string      `json:"genre"`
	ReleaseYear *int           `json:"releaseYear"`
	Director    *string        `json:"director"`
	Cast        *string        `json:"cast"`
	PlotSummary *string        `json:"plotSummary"`
	PosterURL   *string        `json:"posterUrl"`
	Rating      *models.Rating `json:"rating"`
	Featured    *bool          `json:"featured"`
}

// PosterRemover deletes stored poster objects; implemented by PosterStorage.
type PosterRemover interface {
	Owns(url string) bool
	Remove(objectOrURL string) error
}

type MovieService interface {
	// Listing operations
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error)
	FeaturedMovies(ctx context.Context) ([]models.Movie, error)
	TopRatedMovies(ctx context.Context) ([]models.Movie, error)
	RecentMovies(ctx context.Context) ([]models.Movie, error)
	MyCollection(ctx context.Context, ownerEmail string) ([]models.Movie, error)
	Genres(ctx context.Context) ([]string, error)

	// CRUD operations
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, caller auth.Identity, input *MovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, callerEmail string, patch *MoviePatch) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint, callerEmail string) error
}

type movieService struct {
	repo          repository.MovieRepository
	genreRepo     repository.GenreRepository
	reviewRepo    repository.ReviewRepository
	watchlistRepo repository.WatchlistRepository
	posters       PosterRemover
	logger        *logrus.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	reviewRepo repository.ReviewRepository,
	watchlistRepo repository.WatchlistRepository,
	posters PosterRemover,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		repo:          repo,
		genreRepo:     genreRepo,
		reviewRepo:    reviewRepo,
		watchlistRepo: watchlistRepo,
		posters:       posters,
		logger:        logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error) {
	filter.Normalize()
	return s.repo.FindAll(ctx, filter)
}

func (s *movieService) FeaturedMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindFeatured(ctx)
}

func (s *movieService) TopRatedMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindTopRated(ctx)
}

func (s *movieService) RecentMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindRecent(ctx)
}

func (s *movieService) MyCollection(ctx context.Context, ownerEmail string) ([]models.Movie, error) {
	return s.repo.FindByOwner(ctx, ownerEmail)
}

func (s *movieService) Genres(ctx context.Context) ([]string, error) {
	return s.genreRepo.DistinctInUse(ctx)
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, caller auth.Identity, input *MovieInput) (*models.Movie, error) {
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.FindOrCreateAll(ctx, input.Genres)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}

	movie := &models.Movie{
		Title:         input.Title,
		Genres:        genres,
		ReleaseYear:   input.ReleaseYear,
		Director:      input.Director,
		Cast:          input.Cast,
		PlotSummary:   input.PlotSummary,
		PosterURL:     input.PosterURL,
		Rating:        input.Rating,
		AverageRating: 0,
		AddedBy:       caller.Email,
		AddedDate:     time.Now().UTC(),
		Featured:      input.Featured,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func validateMovieInput(input *MovieInput) error {
	missing := ""
	switch {
	case input.Title == "":
		missing = "title"
	case len(input.Genres) == 0:
		missing = "genre"
	case input.ReleaseYear == 0:
		missing = "releaseYear"
	case input.Director == "":
		missing = "director"
	case input.Rating == "":
		missing = "rating"
	case input.PlotSummary == "":
		missing = "plotSummary"
	case input.PosterURL == "":
		missing = "posterUrl"
	}
	if missing != "" {
		return fmt.Errorf("%w: missing required field: %s", ErrValidation, missing)
	}
	return nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, callerEmail string, patch *MoviePatch) (*models.Movie, error) {
	existing, err := s.authorizeOwner(ctx, id, callerEmail)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		fields["title"] = *patch.Title
	}
	if patch.ReleaseYear != nil {
		fields["release_year"] = *patch.ReleaseYear
	}
	if patch.Director != nil {
		fields["director"] = *patch.Director
	}
	if patch.Cast != nil {
		fields["cast_members"] = *patch.Cast
	}
	if patch.PlotSummary != nil {
		fields["plot_summary"] = *patch.PlotSummary
	}
	if patch.Rating != nil {
		fields["rating"] = string(*patch.Rating)
	}
	if patch.Featured != nil {
		fields["featured"] = *patch.Featured
	}
	if patch.PosterURL != nil {
		fields["poster_url"] = *patch.PosterURL
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	if patch.Genres != nil {
		genres, err := s.genreRepo.FindOrCreateAll(ctx, *patch.Genres)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve genres: %w", err)
		}
		if err := s.repo.ReplaceGenres(ctx, existing, genres); err != nil {
			return nil, err
		}
	}

	// The replaced poster is removed only after the store writes stick, so a
	// failed update never leaves the record pointing at a deleted object.
	if patch.PosterURL != nil {
		s.removePosterIfOwned(existing.PosterURL, *patch.PosterURL)
	}

	return s.GetMovieByID(ctx, id)
}

// DeleteMovie removes the movie, then cascades to its reviews, watchlist
// entries and stored poster. The cascade is best-effort: the three follow-up
// deletes are independent store operations with no atomicity, so a failure is
// logged and the initial deletion is still reported as successful.
func (s *movieService) DeleteMovie(ctx context.Context, id uint, callerEmail string) error {
	existing, err := s.authorizeOwner(ctx, id, callerEmail)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.reviewRepo.DeleteByMovie(ctx, id); err != nil {
		s.logger.WithError(err).WithField("movie_id", id).Error("Failed to cascade review deletion")
	}
	if err := s.watchlistRepo.DeleteByMovie(ctx, id); err != nil {
		s.logger.WithError(err).WithField("movie_id", id).Error("Failed to cascade watchlist deletion")
	}
	s.removePosterIfOwned(existing.PosterURL, "")

	return nil
}

// authorizeOwner confirms existence before permission: a missing movie is
// NotFound for every caller, an existing movie owned by someone else is
// Forbidden.
func (s *movieService) authorizeOwner(ctx context.Context, id uint, callerEmail string) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}
	if movie.AddedBy != callerEmail {
		return nil, fmt.Errorf("%w: not the owner of movie %d", ErrForbidden, id)
	}
	return movie, nil
}

func (s *movieService) removePosterIfOwned(oldURL, newURL string) {
	if s.posters == nil || oldURL == "" || oldURL == newURL {
		return
	}
	if !s.posters.Owns(oldURL) {
		return
	}
	if err := s.posters.Remove(oldURL); err != nil {
		s.logger.WithError(err).WithField("poster_url", oldURL).Warn("Failed to delete poster from storage")
	}
}
