package repository

import (
	"context"
	"errors"
	"time"

	"movieverse-backend/internal/database"
	"movieverse-backend/internal/models"

	"gorm.io/gorm"
)

// ratingNumericExpr coerces the text rating column to a number inside SQL.
// Non-numeric values yield NULL, so range predicates and rating sorts simply
// skip dirty records instead of erroring.
const ratingNumericExpr = `(CASE WHEN movies.rating ~ '^-?[0-9]+(\.[0-9]+)?$' THEN movies.rating::numeric END)`

const (
	featuredLimit = 5
	topRatedLimit = 5
	recentLimit   = 6

	topRatedThreshold = 8
)

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error
	UpdateAverageRating(ctx context.Context, id uint, avg float64) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Movie, error)

	// Listing operations
	FindAll(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error)
	FindFeatured(ctx context.Context) ([]models.Movie, error)
	FindTopRated(ctx context.Context) ([]models.Movie, error)
	FindRecent(ctx context.Context) ([]models.Movie, error)
	FindByOwner(ctx context.Context, email string) ([]models.Movie, error)

	// Statistics operations
	Count(ctx context.Context) (int64, error)
	AllRatings(ctx context.Context) ([]string, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Updates(fields).Error
}

func (r *movieRepository) ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(movie).Association("Genres").Replace(genres)
}

func (r *movieRepository) UpdateAverageRating(ctx context.Context, id uint, avg float64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).
		Update("average_rating", avg).Error
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if len(ids) == 0 {
		return []models.Movie{}, nil
	}

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

// FindAll applies the AND of all supplied filters, counts the full match set,
// then returns one sorted page. Sort stability for ties is whatever the
// database gives us.
func (r *movieRepository) FindAll(ctx context.Context, f models.MovieFilter) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	// Genre filter: set membership over normalized tags
	if len(f.Genres) > 0 {
		sub := r.db.DB.Model(&models.MovieGenre{}).
			Select("movie_genres.movie_id").
			Joins("JOIN genres ON genres.id = movie_genres.genre_id").
			Where("genres.name IN ?", f.Genres)
		query = query.Where("movies.id IN (?)", sub)
	}

	// Rating range filter; either bound may be supplied alone
	if f.MinRating != nil {
		query = query.Where(ratingNumericExpr+" >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		query = query.Where(ratingNumericExpr+" <= ?", *f.MaxRating)
	}

	// Free-text search: case-insensitive substring across title, director, cast
	if f.Search != "" {
		searchPattern := "%" + f.Search + "%"
		query = query.Where("title ILIKE ? OR director ILIKE ? OR cast_members ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting with field allowlist; unknown fields fall back to the default
	validSortColumns := map[string]string{
		"addedDate":     "added_date",
		"title":         "title",
		"releaseYear":   "release_year",
		"director":      "director",
		"rating":        ratingNumericExpr,
		"averageRating": "average_rating",
	}
	sortColumn, ok := validSortColumns[f.SortBy]
	if !ok {
		sortColumn = "added_date"
	}
	order := "DESC"
	if f.SortOrder == "asc" {
		order = "ASC"
	}
	query = query.Order(sortColumn + " " + order)

	if err := query.Preload("Genres").Offset(f.Offset()).Limit(f.Limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) FindFeatured(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").
		Where("featured = ?", true).
		Limit(featuredLimit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindTopRated(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").
		Where(ratingNumericExpr+" >= ?", topRatedThreshold).
		Order(ratingNumericExpr + " DESC").
		Limit(topRatedLimit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindRecent(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").
		Order("added_date DESC").
		Limit(recentLimit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByOwner(ctx context.Context, email string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").
		Where("added_by = ?", email).
		Order("added_date DESC").
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error
	return total, err
}

// AllRatings returns every stored rating value verbatim, dirty ones included.
// Cleaning happens in the statistics aggregator.
func (r *movieRepository) AllRatings(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []string
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Pluck("rating", &ratings).Error
	return ratings, err
}
