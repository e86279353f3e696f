package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Rating is the catalog-level 0-10 rating as supplied by the client.
// Upstream data is dirty: numbers, numeric strings, junk text and null all
// occur, so the raw value is kept verbatim and coerced only at read time.
type Rating string

func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*r = Rating(strings.TrimSpace(v))
		return nil
	}
	*r = Rating(s)
	return nil
}

// Float coerces the raw rating to a number. The second return value is false
// when the value is absent or not numeric.
func (r Rating) Float() (float64, bool) {
	s := strings.TrimSpace(string(r))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type Movie struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title         string    `gorm:"not null;index" json:"title" example:"Fight Club"`
	Genres        []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	ReleaseYear   int       `gorm:"index" json:"releaseYear" example:"1999"`
	Director      string    `gorm:"index" json:"director" example:"David Fincher"`
	Cast          string    `gorm:"column:cast_members" json:"cast" example:"Brad Pitt, Edward Norton"`
	PlotSummary   string    `gorm:"type:text" json:"plotSummary"`
	PosterURL     string    `json:"posterUrl"`
	Rating        Rating    `gorm:"type:text;index" json:"rating" example:"8.4"`
	AverageRating float64   `gorm:"index" json:"averageRating" example:"4.2"`
	AddedBy       string    `gorm:"index" json:"addedBy" example:"user@example.com"`
	AddedDate     time.Time `gorm:"index" json:"addedDate"`
	Featured      bool      `gorm:"index" json:"featured" example:"false"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Movie) TableName() string {
	return "movies"
}

// GenreTags returns the movie's genre names as a flat tag list.
func (m *Movie) GenreTags() []string {
	tags := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		tags = append(tags, g.Name)
	}
	return tags
}

// MovieFilter is the normalized listing query: every field is optional and
// absent fields impose no constraint. Filters compose with logical AND.
type MovieFilter struct {
	Page      int
	Limit     int
	Genres    []string
	MinRating *float64
	MaxRating *float64
	Search    string
	SortBy    string
	SortOrder string
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100

	DefaultSortBy    = "addedDate"
	DefaultSortOrder = "desc"
)

// Normalize applies listing defaults. Out-of-range pagination values degrade
// to defaults rather than failing.
func (f *MovieFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.SortOrder != "asc" {
		f.SortOrder = DefaultSortOrder
	}
}

// Offset returns the pagination window start.
func (f *MovieFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
