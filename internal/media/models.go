package media

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind discriminates the two catalog record shapes.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// Movie is a single feature-length catalog record.
type Movie struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Genres       []string           `bson:"genres" json:"genres"`
	Cast         []string           `bson:"cast" json:"cast"`
	ReleaseYear  int                `bson:"release_year" json:"release_year"`
	Duration     int                `bson:"duration" json:"duration"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	StreamURL    string             `bson:"stream_url,omitempty" json:"stream_url,omitempty"`
	ForKids      bool               `bson:"is_for_kids" json:"is_for_kids"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Series is a catalog record holding an ordered run of seasons.
type Series struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Genres       []string           `bson:"genres" json:"genres"`
	Cast         []string           `bson:"cast" json:"cast"`
	ReleaseYear  int                `bson:"release_year" json:"release_year"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	ForKids      bool               `bson:"is_for_kids" json:"is_for_kids"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	Seasons      []Season           `bson:"seasons" json:"seasons"`
}

// Season groups the episodes that share a season number.
type Season struct {
	Number   int       `bson:"season_number" json:"season_number"`
	Episodes []Episode `bson:"episodes" json:"episodes"`
}

// Episode is the leaf playable unit of a series.
type Episode struct {
	Number       int    `bson:"episode_number" json:"episode_number"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	Duration     int    `bson:"duration" json:"duration"`
	ThumbnailURL string `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	StreamURL    string `bson:"stream_url,omitempty" json:"stream_url,omitempty"`
}

// Validate checks the operator-supplied fields of a movie before it is
// handed to the catalog. Derived URL fields are exempt; they are populated
// at persistence time.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("movie title is required")
	}
	if m.Duration <= 0 {
		return fmt.Errorf("movie %q: duration must be positive, got %d", m.Title, m.Duration)
	}
	return nil
}

// Validate checks structural integrity of a series: positive, unique season
// numbers, and within each season positive, unique episode numbers.
func (s *Series) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("series title is required")
	}
	if len(s.Seasons) == 0 {
		return fmt.Errorf("series %q: at least one season is required", s.Title)
	}
	seenSeasons := make(map[int]struct{}, len(s.Seasons))
	for _, season := range s.Seasons {
		if season.Number <= 0 {
			return fmt.Errorf("series %q: season number must be positive, got %d", s.Title, season.Number)
		}
		if _, dup := seenSeasons[season.Number]; dup {
			return fmt.Errorf("series %q: duplicate season number %d", s.Title, season.Number)
		}
		seenSeasons[season.Number] = struct{}{}

		if len(season.Episodes) == 0 {
			return fmt.Errorf("series %q season %d: at least one episode is required", s.Title, season.Number)
		}
		seenEpisodes := make(map[int]struct{}, len(season.Episodes))
		for _, episode := range season.Episodes {
			if episode.Number <= 0 {
				return fmt.Errorf("series %q season %d: episode number must be positive, got %d", s.Title, season.Number, episode.Number)
			}
			if _, dup := seenEpisodes[episode.Number]; dup {
				return fmt.Errorf("series %q season %d: duplicate episode number %d", s.Title, season.Number, episode.Number)
			}
			seenEpisodes[episode.Number] = struct{}{}
		}
	}
	return nil
}

// ApplyDerivedURLs fills the movie's stream and thumbnail URLs from its
// assigned identifier. It must only be called once the ID is set.
func (m *Movie) ApplyDerivedURLs() error {
	target := MovieTarget(m.ID.Hex())
	if m.ID.IsZero() {
		target.ID = ""
	}
	stream, err := target.StreamURL()
	if err != nil {
		return err
	}
	thumb, err := target.ThumbnailURL()
	if err != nil {
		return err
	}
	m.StreamURL = stream
	m.ThumbnailURL = thumb
	return nil
}

// ApplyDerivedURLs fills the series-level thumbnail URL and every episode's
// stream and thumbnail URLs from the assigned series identifier.
func (s *Series) ApplyDerivedURLs() error {
	seriesTarget := SeriesTarget(s.ID.Hex())
	if s.ID.IsZero() {
		seriesTarget.ID = ""
	}
	thumb, err := seriesTarget.ThumbnailURL()
	if err != nil {
		return err
	}
	s.ThumbnailURL = thumb

	for i := range s.Seasons {
		season := &s.Seasons[i]
		for j := range season.Episodes {
			episode := &season.Episodes[j]
			target := EpisodeTarget(seriesTarget.ID, season.Number, episode.Number)
			stream, err := target.StreamURL()
			if err != nil {
				return err
			}
			thumbnail, err := target.ThumbnailURL()
			if err != nil {
				return err
			}
			episode.StreamURL = stream
			episode.ThumbnailURL = thumbnail
		}
	}
	return nil
}
