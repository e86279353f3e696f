package models

// CatalogStats is a point-in-time snapshot of catalog-wide metrics. There is
// no isolation guarantee against concurrent writes.
type CatalogStats struct {
	TotalMovies   int64   `json:"totalMovies" example:"120"`
	AverageRating float64 `json:"averageRating" example:"7.3"`
	TotalGenres   int64   `json:"totalGenres" example:"14"`
	TotalUsers    int64   `json:"totalUsers" example:"37"`
}
