package services

import (
	"context"
	"errors"
	"testing"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieService(movieRepo *fakeMovieRepo, genreRepo *fakeGenreRepo, reviewRepo *fakeReviewRepo, watchlistRepo *fakeWatchlistRepo, posters *fakePosterRemover) MovieService {
	return NewMovieService(movieRepo, genreRepo, reviewRepo, watchlistRepo, posters, testLogger())
}

func validMovieInput() *MovieInput {
	return &MovieInput{
		Title:       "Fight Club",
		Genres:      []string{"Drama", "Thriller"},
		ReleaseYear: 1999,
		Director:    "David Fincher",
		Cast:        "Brad Pitt, Edward Norton",
		PlotSummary: "An insomniac office worker crosses paths with a soap maker.",
		PosterURL:   "http://posters.example.com/movie-posters/fight-club.jpg",
		Rating:      "8.8",
	}
}

func TestListMoviesAppliesDefaults(t *testing.T) {
	movieRepo := &fakeMovieRepo{}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	_, _, err := svc.ListMovies(context.Background(), models.MovieFilter{})

	require.NoError(t, err)
	assert.Equal(t, models.DefaultPage, movieRepo.findAllFilter.Page)
	assert.Equal(t, models.DefaultLimit, movieRepo.findAllFilter.Limit)
	assert.Equal(t, models.DefaultSortBy, movieRepo.findAllFilter.SortBy)
	assert.Equal(t, models.DefaultSortOrder, movieRepo.findAllFilter.SortOrder)
}

func TestListMoviesClampsLimit(t *testing.T) {
	movieRepo := &fakeMovieRepo{}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	_, _, err := svc.ListMovies(context.Background(), models.MovieFilter{Page: 2, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 2, movieRepo.findAllFilter.Page)
	assert.Equal(t, models.MaxLimit, movieRepo.findAllFilter.Limit)
}

func TestCreateMovieValidation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(in *MovieInput)
		missing string
	}{
		{"missing title", func(in *MovieInput) { in.Title = "" }, "title"},
		{"missing genre", func(in *MovieInput) { in.Genres = nil }, "genre"},
		{"missing releaseYear", func(in *MovieInput) { in.ReleaseYear = 0 }, "releaseYear"},
		{"missing director", func(in *MovieInput) { in.Director = "" }, "director"},
		{"missing rating", func(in *MovieInput) { in.Rating = "" }, "rating"},
		{"missing plotSummary", func(in *MovieInput) { in.PlotSummary = "" }, "plotSummary"},
		{"missing posterUrl", func(in *MovieInput) { in.PosterURL = "" }, "posterUrl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			movieRepo := &fakeMovieRepo{}
			svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

			input := validMovieInput()
			tc.mutate(input)

			_, err := svc.CreateMovie(context.Background(), auth.Identity{Email: "a@b.c"}, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.missing)
			assert.Empty(t, movieRepo.created)
		})
	}
}

func TestCreateMovieSetsOwnership(t *testing.T) {
	movieRepo := &fakeMovieRepo{}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	caller := auth.Identity{UID: "uid-1", Email: "owner@example.com"}
	movie, err := svc.CreateMovie(context.Background(), caller, validMovieInput())

	require.NoError(t, err)
	require.Len(t, movieRepo.created, 1)
	assert.Equal(t, "owner@example.com", movie.AddedBy)
	assert.False(t, movie.AddedDate.IsZero())
	assert.Zero(t, movie.AverageRating)
	assert.Equal(t, []string{"Drama", "Thriller"}, movie.GenreTags())
}

func TestGetMovieByIDNotFound(t *testing.T) {
	svc := newMovieService(&fakeMovieRepo{}, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	_, err := svc.GetMovieByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMovieOwnership(t *testing.T) {
	title := "New Title"

	t.Run("missing movie reads as not found for every caller", func(t *testing.T) {
		svc := newMovieService(&fakeMovieRepo{}, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

		_, err := svc.UpdateMovie(context.Background(), 42, "stranger@example.com", &MoviePatch{Title: &title})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("someone else's movie is forbidden", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
			42: {ID: 42, AddedBy: "owner@example.com"},
		}}
		svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

		_, err := svc.UpdateMovie(context.Background(), 42, "stranger@example.com", &MoviePatch{Title: &title})

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Nil(t, movieRepo.updatedFields)
	})
}

func TestUpdateMoviePatchesOnlyProvidedFields(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com", Title: "Old", Director: "Old Director"},
	}}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	title := "New Title"
	cast := "Someone Else"
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{
		Title: &title,
		Cast:  &cast,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"title":        "New Title",
		"cast_members": "Someone Else",
	}, movieRepo.updatedFields)
	assert.Nil(t, movieRepo.replacedGenres)
}

func TestUpdateMovieRejectsEmptyTitle(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com"},
	}}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	empty := ""
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{Title: &empty})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateMovieReplacesGenres(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com"},
	}}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	genres := []string{"Horror"}
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{Genres: &genres})

	require.NoError(t, err)
	require.Len(t, movieRepo.replacedGenres, 1)
	assert.Equal(t, "Horror", movieRepo.replacedGenres[0].Name)
}

func TestUpdateMovieRemovesReplacedPoster(t *testing.T) {
	oldPoster := "http://posters.example.com/movie-posters/old.jpg"
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com", PosterURL: oldPoster},
	}}
	posters := &fakePosterRemover{owns: true}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, posters)

	newPoster := "http://posters.example.com/movie-posters/new.jpg"
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{PosterURL: &newPoster})

	require.NoError(t, err)
	assert.Equal(t, []string{oldPoster}, posters.removed)
}

func TestUpdateMovieKeepsPosterWhenStoreWriteFails(t *testing.T) {
	oldPoster := "http://posters.example.com/movie-posters/old.jpg"
	movieRepo := &fakeMovieRepo{
		movies: map[uint]*models.Movie{
			42: {ID: 42, AddedBy: "owner@example.com", PosterURL: oldPoster},
		},
		updateErr: errors.New("connection reset"),
	}
	posters := &fakePosterRemover{owns: true}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, posters)

	newPoster := "http://posters.example.com/movie-posters/new.jpg"
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{PosterURL: &newPoster})

	require.Error(t, err)
	assert.Empty(t, posters.removed)
}

func TestUpdateMovieKeepsPosterWhenGenreResolutionFails(t *testing.T) {
	oldPoster := "http://posters.example.com/movie-posters/old.jpg"
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com", PosterURL: oldPoster},
	}}
	posters := &fakePosterRemover{owns: true}
	genreRepo := &fakeGenreRepo{resolveErr: errors.New("genres table locked")}
	svc := newMovieService(movieRepo, genreRepo, &fakeReviewRepo{}, &fakeWatchlistRepo{}, posters)

	newPoster := "http://posters.example.com/movie-posters/new.jpg"
	genres := []string{"Horror"}
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{
		PosterURL: &newPoster,
		Genres:    &genres,
	})

	require.Error(t, err)
	assert.Empty(t, posters.removed)
}

func TestUpdateMovieKeepsExternalPoster(t *testing.T) {
	oldPoster := "https://image.tmdb.org/t/p/w500/old.jpg"
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com", PosterURL: oldPoster},
	}}
	posters := &fakePosterRemover{owns: false}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, posters)

	newPoster := "http://posters.example.com/movie-posters/new.jpg"
	_, err := svc.UpdateMovie(context.Background(), 42, "owner@example.com", &MoviePatch{PosterURL: &newPoster})

	require.NoError(t, err)
	assert.Empty(t, posters.removed)
}

func TestDeleteMovieCascades(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com", PosterURL: "http://posters.example.com/movie-posters/p.jpg"},
	}}
	reviewRepo := &fakeReviewRepo{}
	watchlistRepo := &fakeWatchlistRepo{}
	posters := &fakePosterRemover{owns: true}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, reviewRepo, watchlistRepo, posters)

	err := svc.DeleteMovie(context.Background(), 42, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, []uint{42}, movieRepo.deletedIDs)
	assert.True(t, reviewRepo.deleteCalled)
	assert.True(t, watchlistRepo.deleteByMovieCalled)
	assert.Len(t, posters.removed, 1)
}

func TestDeleteMovieCascadeIsBestEffort(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com"},
	}}
	reviewRepo := &fakeReviewRepo{deleteErr: errors.New("reviews table locked")}
	watchlistRepo := &fakeWatchlistRepo{deleteByMovieErr: errors.New("watchlist unavailable")}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, reviewRepo, watchlistRepo, nil)

	err := svc.DeleteMovie(context.Background(), 42, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, []uint{42}, movieRepo.deletedIDs)
	assert.True(t, reviewRepo.deleteCalled)
	assert.True(t, watchlistRepo.deleteByMovieCalled)
}

func TestDeleteMovieOwnership(t *testing.T) {
	movieRepo := &fakeMovieRepo{movies: map[uint]*models.Movie{
		42: {ID: 42, AddedBy: "owner@example.com"},
	}}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	err := svc.DeleteMovie(context.Background(), 42, "stranger@example.com")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, movieRepo.deletedIDs)
}

func TestMyCollectionFiltersByOwner(t *testing.T) {
	movieRepo := &fakeMovieRepo{listMovies: []models.Movie{{ID: 1}, {ID: 2}}}
	svc := newMovieService(movieRepo, &fakeGenreRepo{}, &fakeReviewRepo{}, &fakeWatchlistRepo{}, nil)

	movies, err := svc.MyCollection(context.Background(), "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", movieRepo.ownerArg)
	assert.Len(t, movies, 2)
}
