package media_test

import (
	"errors"
	"testing"

	"hlsmill/internal/media"
)

func TestMovieTargetURLs(t *testing.T) {
	target := media.MovieTarget("m1")

	stream, err := target.StreamURL()
	if err != nil {
		t.Fatalf("StreamURL failed: %v", err)
	}
	if stream != "/movies/m1/master.m3u8" {
		t.Fatalf("unexpected stream URL: %s", stream)
	}

	thumb, err := target.ThumbnailURL()
	if err != nil {
		t.Fatalf("ThumbnailURL failed: %v", err)
	}
	if thumb != "/movies/m1/thumbnail.jpeg" {
		t.Fatalf("unexpected thumbnail URL: %s", thumb)
	}
}

func TestEpisodeTargetURLs(t *testing.T) {
	target := media.EpisodeTarget("s1", 1, 2)

	stream, err := target.StreamURL()
	if err != nil {
		t.Fatalf("StreamURL failed: %v", err)
	}
	if stream != "/series/s1/1/2/master.m3u8" {
		t.Fatalf("unexpected stream URL: %s", stream)
	}

	thumb, err := target.ThumbnailURL()
	if err != nil {
		t.Fatalf("ThumbnailURL failed: %v", err)
	}
	if thumb != "/series/s1/1/2/thumbnail.jpeg" {
		t.Fatalf("unexpected thumbnail URL: %s", thumb)
	}
}

func TestSeriesLevelTarget(t *testing.T) {
	target := media.SeriesTarget("s1")

	thumb, err := target.ThumbnailURL()
	if err != nil {
		t.Fatalf("ThumbnailURL failed: %v", err)
	}
	if thumb != "/series/s1/thumbnail.jpeg" {
		t.Fatalf("unexpected thumbnail URL: %s", thumb)
	}

	if _, err := target.StreamURL(); !errors.Is(err, media.ErrInvalidStructuralPosition) {
		t.Fatalf("expected ErrInvalidStructuralPosition for series-level stream, got %v", err)
	}
}

func TestEpisodeURLsAreDistinctAcrossTriples(t *testing.T) {
	triples := []struct {
		id              string
		season, episode int
	}{
		{"s1", 1, 1},
		{"s1", 1, 2},
		{"s1", 2, 1},
		{"s2", 1, 1},
	}
	seen := make(map[string]struct{}, len(triples))
	for _, triple := range triples {
		stream, err := media.EpisodeTarget(triple.id, triple.season, triple.episode).StreamURL()
		if err != nil {
			t.Fatalf("StreamURL(%v) failed: %v", triple, err)
		}
		if _, dup := seen[stream]; dup {
			t.Fatalf("stream URL collision for %v: %s", triple, stream)
		}
		seen[stream] = struct{}{}
	}
}

func TestTargetValidation(t *testing.T) {
	cases := []struct {
		name   string
		target media.Target
		want   error
	}{
		{"empty movie id", media.MovieTarget(""), media.ErrInvalidIdentifier},
		{"empty series id", media.EpisodeTarget("", 1, 1), media.ErrInvalidIdentifier},
		{"zero episode", media.EpisodeTarget("s1", 1, 0), media.ErrInvalidStructuralPosition},
		{"negative season", media.EpisodeTarget("s1", -1, 2), media.ErrInvalidStructuralPosition},
		{"movie with season", media.Target{Kind: media.KindMovie, ID: "m1", Season: 1, Episode: 1}, media.ErrInvalidStructuralPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.target.StreamURL(); !errors.Is(err, tc.want) {
				t.Fatalf("StreamURL: expected %v, got %v", tc.want, err)
			}
			if _, err := tc.target.ThumbnailURL(); !errors.Is(err, tc.want) {
				t.Fatalf("ThumbnailURL: expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOutputDir(t *testing.T) {
	dir, err := media.MovieTarget("m1").OutputDir("/var/www/hls")
	if err != nil {
		t.Fatalf("OutputDir failed: %v", err)
	}
	if dir != "/var/www/hls/movies/m1" {
		t.Fatalf("unexpected movie output dir: %s", dir)
	}

	dir, err = media.EpisodeTarget("s1", 3, 4).OutputDir("/var/www/hls")
	if err != nil {
		t.Fatalf("OutputDir failed: %v", err)
	}
	if dir != "/var/www/hls/series/s1/3/4" {
		t.Fatalf("unexpected episode output dir: %s", dir)
	}

	if _, err := media.MovieTarget("m1").OutputDir(""); err == nil {
		t.Fatal("expected error for empty output root")
	}
}

func TestContainerID(t *testing.T) {
	if got := media.MovieTarget("m1").ContainerID(); got != "m1" {
		t.Fatalf("unexpected movie container id: %s", got)
	}
	if got := media.EpisodeTarget("s1", 1, 2).ContainerID(); got != "s1/1/2" {
		t.Fatalf("unexpected episode container id: %s", got)
	}
}
