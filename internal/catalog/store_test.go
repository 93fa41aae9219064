package catalog

import (
	"strings"
	"testing"

	"hlsmill/internal/media"
)

func TestPrepareMovieAssignsIdentifierAndURLs(t *testing.T) {
	movie := &media.Movie{Title: "Inception", Duration: 8880}
	if err := prepareMovie(movie); err != nil {
		t.Fatalf("prepareMovie failed: %v", err)
	}
	if movie.ID.IsZero() {
		t.Fatal("expected identifier to be assigned")
	}
	if movie.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp to be stamped")
	}
	id := movie.ID.Hex()
	if movie.StreamURL != "/movies/"+id+"/master.m3u8" {
		t.Fatalf("unexpected stream URL: %s", movie.StreamURL)
	}
	if movie.ThumbnailURL != "/movies/"+id+"/thumbnail.jpeg" {
		t.Fatalf("unexpected thumbnail URL: %s", movie.ThumbnailURL)
	}
}

func TestPrepareMovieRejectsInvalid(t *testing.T) {
	if err := prepareMovie(&media.Movie{Title: "No Duration"}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := prepareMovie(nil); err == nil {
		t.Fatal("expected error for nil movie")
	}
}

func TestPrepareSeriesDerivesEpisodeURLs(t *testing.T) {
	series := &media.Series{
		Title: "Show",
		Seasons: []media.Season{
			{Number: 1, Episodes: []media.Episode{{Number: 1, Title: "Pilot"}}},
		},
	}
	if err := prepareSeries(series); err != nil {
		t.Fatalf("prepareSeries failed: %v", err)
	}
	id := series.ID.Hex()
	episode := series.Seasons[0].Episodes[0]
	if !strings.HasPrefix(episode.StreamURL, "/series/"+id+"/1/1/") {
		t.Fatalf("unexpected episode stream URL: %s", episode.StreamURL)
	}
	if series.ThumbnailURL != "/series/"+id+"/thumbnail.jpeg" {
		t.Fatalf("unexpected series thumbnail URL: %s", series.ThumbnailURL)
	}
}

func TestPrepareSeriesRejectsStructuralErrors(t *testing.T) {
	series := &media.Series{
		Title: "Show",
		Seasons: []media.Season{
			{Number: 0, Episodes: []media.Episode{{Number: 1}}},
		},
	}
	if err := prepareSeries(series); err == nil {
		t.Fatal("expected validation error for non-positive season")
	}
}
