package repository

import (
	"context"
	"time"

	"movieverse-backend/internal/database"
	"movieverse-backend/internal/models"
)

type GenreRepository interface {
	FindOrCreate(ctx context.Context, name string) (*models.Genre, error)
	FindOrCreateAll(ctx context.Context, names []string) ([]models.Genre, error)
	DistinctInUse(ctx context.Context) ([]string, error)
	CountInUse(ctx context.Context) (int64, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&genre, models.Genre{
		Name: name,
	}).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindOrCreateAll(ctx context.Context, names []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		genre, err := r.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}

// DistinctInUse returns the distinct genre tags referenced by at least one
// movie, each multi-genre movie contributing every one of its tags.
func (r *genreRepository) DistinctInUse(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var names []string
	err := r.db.WithContext(ctx).Model(&models.Genre{}).
		Joins("JOIN movie_genres ON movie_genres.genre_id = genres.id").
		Distinct("genres.name").
		Order("genres.name").
		Pluck("genres.name", &names).Error
	return names, err
}

func (r *genreRepository) CountInUse(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.MovieGenre{}).
		Distinct("genre_id").
		Count(&total).Error
	return total, err
}
