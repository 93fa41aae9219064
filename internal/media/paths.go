package media

import (
	"errors"
	"fmt"
	"path"
	"strconv"
)

const (
	manifestName  = "master.m3u8"
	thumbnailName = "thumbnail.jpeg"
)

var (
	// ErrInvalidIdentifier indicates path derivation was attempted before
	// an identifier was assigned.
	ErrInvalidIdentifier = errors.New("media identifier is empty")
	// ErrInvalidStructuralPosition indicates a season or episode number
	// required by the content kind is absent or non-positive.
	ErrInvalidStructuralPosition = errors.New("invalid season/episode position")
)

// Target identifies the container playback assets are derived for: a movie,
// a series as a whole, or one episode of a series. A series-level target
// (Season and Episode both zero) carries a thumbnail but no stream.
type Target struct {
	Kind    Kind
	ID      string
	Season  int
	Episode int
}

// MovieTarget builds a target for a persisted movie identifier.
func MovieTarget(id string) Target {
	return Target{Kind: KindMovie, ID: id}
}

// SeriesTarget builds a series-level target, used for the series thumbnail.
func SeriesTarget(id string) Target {
	return Target{Kind: KindSeries, ID: id}
}

// EpisodeTarget builds a target for one episode of a persisted series.
func EpisodeTarget(id string, season, episode int) Target {
	return Target{Kind: KindSeries, ID: id, Season: season, Episode: episode}
}

// Validate reports whether the target is structurally sound: a non-empty
// identifier, and for episode targets positive season and episode numbers.
func (t Target) Validate() error {
	if t.ID == "" {
		return ErrInvalidIdentifier
	}
	switch t.Kind {
	case KindMovie:
		if t.Season != 0 || t.Episode != 0 {
			return fmt.Errorf("%w: movie targets carry no season/episode", ErrInvalidStructuralPosition)
		}
	case KindSeries:
		if t.Season == 0 && t.Episode == 0 {
			return nil
		}
		if t.Season <= 0 || t.Episode <= 0 {
			return fmt.Errorf("%w: season %d episode %d", ErrInvalidStructuralPosition, t.Season, t.Episode)
		}
	default:
		return fmt.Errorf("unknown media kind %q", t.Kind)
	}
	return nil
}

// IsEpisode reports whether the target addresses a single series episode.
func (t Target) IsEpisode() bool {
	return t.Kind == KindSeries && (t.Season != 0 || t.Episode != 0)
}

// StreamURL derives the canonical playback manifest URL for the target.
// Series-level targets have no stream and fail with
// ErrInvalidStructuralPosition.
func (t Target) StreamURL() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	switch {
	case t.Kind == KindMovie:
		return path.Join("/movies", t.ID, manifestName), nil
	case t.IsEpisode():
		return path.Join("/series", t.ID, strconv.Itoa(t.Season), strconv.Itoa(t.Episode), manifestName), nil
	default:
		return "", fmt.Errorf("%w: series-level targets have no stream", ErrInvalidStructuralPosition)
	}
}

// ThumbnailURL derives the canonical thumbnail URL for the target.
func (t Target) ThumbnailURL() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	switch {
	case t.Kind == KindMovie:
		return path.Join("/movies", t.ID, thumbnailName), nil
	case t.IsEpisode():
		return path.Join("/series", t.ID, strconv.Itoa(t.Season), strconv.Itoa(t.Episode), thumbnailName), nil
	default:
		return path.Join("/series", t.ID, thumbnailName), nil
	}
}

// OutputDir derives the remote filesystem directory the transcode pipeline
// writes the target's assets into, rooted at root (typically /var/www/hls).
func (t Target) OutputDir(root string) (string, error) {
	if root == "" {
		return "", errors.New("output root is required")
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	switch {
	case t.Kind == KindMovie:
		return path.Join(root, "movies", t.ID), nil
	case t.IsEpisode():
		return path.Join(root, "series", t.ID, strconv.Itoa(t.Season), strconv.Itoa(t.Episode)), nil
	default:
		return path.Join(root, "series", t.ID), nil
	}
}

// ContainerID renders the target as a stable identifier string used for
// logging and the job ledger, e.g. "m1" or "s1/1/2".
func (t Target) ContainerID() string {
	if t.IsEpisode() {
		return path.Join(t.ID, strconv.Itoa(t.Season), strconv.Itoa(t.Episode))
	}
	return t.ID
}
