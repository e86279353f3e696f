package services

import (
	"context"
	"io"
	"time"

	"movieverse-backend/internal/models"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeMovieRepo struct {
	movies map[uint]*models.Movie

	created   []*models.Movie
	createErr error

	updatedID     uint
	updatedFields map[string]interface{}
	updateErr     error

	replacedGenres []models.Genre

	avgID     uint
	avgValue  float64
	avgCalled bool
	avgErr    error

	deletedIDs []uint
	deleteErr  error

	findAllFilter models.MovieFilter
	findAllMovies []models.Movie
	findAllTotal  int64
	findAllErr    error

	byIDsArg    []uint
	byIDsMovies []models.Movie

	listMovies []models.Movie
	ownerArg   string

	count      int64
	allRatings []string
	ratingsErr error
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, movie)
	return nil
}

func (f *fakeMovieRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedFields = fields
	return nil
}

func (f *fakeMovieRepo) ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	f.replacedGenres = genres
	return nil
}

func (f *fakeMovieRepo) UpdateAverageRating(ctx context.Context, id uint, avg float64) error {
	if f.avgErr != nil {
		return f.avgErr
	}
	f.avgCalled = true
	f.avgID = id
	f.avgValue = avg
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Movie, error) {
	f.byIDsArg = ids
	return f.byIDsMovies, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error) {
	f.findAllFilter = filter
	return f.findAllMovies, f.findAllTotal, f.findAllErr
}

func (f *fakeMovieRepo) FindFeatured(ctx context.Context) ([]models.Movie, error) {
	return f.listMovies, nil
}

func (f *fakeMovieRepo) FindTopRated(ctx context.Context) ([]models.Movie, error) {
	return f.listMovies, nil
}

func (f *fakeMovieRepo) FindRecent(ctx context.Context) ([]models.Movie, error) {
	return f.listMovies, nil
}

func (f *fakeMovieRepo) FindByOwner(ctx context.Context, email string) ([]models.Movie, error) {
	f.ownerArg = email
	return f.listMovies, nil
}

func (f *fakeMovieRepo) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeMovieRepo) AllRatings(ctx context.Context) ([]string, error) {
	return f.allRatings, f.ratingsErr
}

type fakeGenreRepo struct {
	resolveErr error
	distinct   []string
	countInUse int64
}

func (f *fakeGenreRepo) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return &models.Genre{Name: name}, nil
}

func (f *fakeGenreRepo) FindOrCreateAll(ctx context.Context, names []string) ([]models.Genre, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	genres := make([]models.Genre, 0, len(names))
	for i, n := range names {
		genres = append(genres, models.Genre{ID: uint(i + 1), Name: n})
	}
	return genres, nil
}

func (f *fakeGenreRepo) DistinctInUse(ctx context.Context) ([]string, error) {
	return f.distinct, nil
}

func (f *fakeGenreRepo) CountInUse(ctx context.Context) (int64, error) {
	return f.countInUse, nil
}

type fakeReviewRepo struct {
	created   *models.Review
	createErr error

	byMovie       []models.Review
	byMovieUser   *models.Review
	ratings       []int
	ratingsErr    error
	deleteErr     error
	deleteCalled  bool
	deleteMovieID uint
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = review
	return nil
}

func (f *fakeReviewRepo) FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error) {
	return f.byMovie, nil
}

func (f *fakeReviewRepo) FindByMovieAndUser(ctx context.Context, movieID uint, userID string) (*models.Review, error) {
	return f.byMovieUser, nil
}

func (f *fakeReviewRepo) RatingsByMovie(ctx context.Context, movieID uint) ([]int, error) {
	return f.ratings, f.ratingsErr
}

func (f *fakeReviewRepo) DeleteByMovie(ctx context.Context, movieID uint) error {
	f.deleteCalled = true
	f.deleteMovieID = movieID
	return f.deleteErr
}

type fakeWatchlistRepo struct {
	created   *models.WatchlistEntry
	createErr error

	found   *models.WatchlistEntry
	byUser  []models.WatchlistEntry
	deleted int64

	deleteByMovieCalled bool
	deleteByMovieErr    error
}

func (f *fakeWatchlistRepo) Create(ctx context.Context, entry *models.WatchlistEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = entry
	return nil
}

func (f *fakeWatchlistRepo) Find(ctx context.Context, userID string, movieID uint) (*models.WatchlistEntry, error) {
	return f.found, nil
}

func (f *fakeWatchlistRepo) FindByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	return f.byUser, nil
}

func (f *fakeWatchlistRepo) Delete(ctx context.Context, userID string, movieID uint) (int64, error) {
	return f.deleted, nil
}

func (f *fakeWatchlistRepo) DeleteByMovie(ctx context.Context, movieID uint) error {
	f.deleteByMovieCalled = true
	return f.deleteByMovieErr
}

type fakeUserRepo struct {
	byUID     *models.User
	created   *models.User
	createErr error

	lastLoginUID string
	lastLoginAt  time.Time
	count        int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	return f.byUID, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, uid string, at time.Time) error {
	f.lastLoginUID = uid
	f.lastLoginAt = at
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeRecalculator struct {
	calls []uint
	err   error
}

func (f *fakeRecalculator) UpdateMovieRating(ctx context.Context, movieID uint) error {
	f.calls = append(f.calls, movieID)
	return f.err
}

type fakePosterRemover struct {
	owns      bool
	removed   []string
	removeErr error
}

func (f *fakePosterRemover) Owns(url string) bool {
	return f.owns
}

func (f *fakePosterRemover) Remove(objectOrURL string) error {
	f.removed = append(f.removed, objectOrURL)
	return f.removeErr
}
