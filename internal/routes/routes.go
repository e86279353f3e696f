package routes

import (
	"movieverse-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup wires the API surface. requireAuth guards every mutation plus the
// per-user reads; listings, statistics, genres and review reads stay
// anonymous. Named movie routes are registered before /:id so they are not
// swallowed by the parameter match.
func Setup(
	app *fiber.App,
	movieHandler *handlers.MovieHandler,
	reviewHandler *handlers.ReviewHandler,
	watchlistHandler *handlers.WatchlistHandler,
	userHandler *handlers.UserHandler,
	statsHandler *handlers.StatsHandler,
	uploadHandler *handlers.UploadHandler,
	requireAuth fiber.Handler,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - listings and CRUD
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/featured", movieHandler.GetFeaturedMovies)
		movies.Get("/top-rated", movieHandler.GetTopRatedMovies)
		movies.Get("/recent", movieHandler.GetRecentMovies)
		movies.Get("/my-collection", requireAuth, movieHandler.GetMyCollection)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", requireAuth, movieHandler.CreateMovie)
		movies.Patch("/:id", requireAuth, movieHandler.UpdateMovie)
		movies.Delete("/:id", requireAuth, movieHandler.DeleteMovie)

		// Review routes
		movies.Get("/:id/reviews", reviewHandler.GetReviews)
		movies.Post("/:id/reviews", requireAuth, reviewHandler.AddReview)
	}

	// Watchlist routes - per-user
	watchlist := v1.Group("/watchlist", requireAuth)
	{
		watchlist.Get("/", watchlistHandler.GetWatchlist)
		watchlist.Post("/:movieId", watchlistHandler.AddToWatchlist)
		watchlist.Delete("/:movieId", watchlistHandler.RemoveFromWatchlist)
	}

	// User registration
	users := v1.Group("/users")
	{
		users.Post("/", requireAuth, userHandler.RegisterUser)
	}

	// Statistics and genre directory
	v1.Get("/stats", statsHandler.GetStats)
	v1.Get("/genres", movieHandler.GetGenres)

	upload := v1.Group("/upload", requireAuth)
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
