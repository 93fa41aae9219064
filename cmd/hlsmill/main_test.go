package main

import (
	"strings"
	"testing"

	"hlsmill/internal/ledger"
	"hlsmill/internal/media"
	"hlsmill/internal/pipeline"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	want := []string{"movie", "series", "jobs", "config"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestShouldSkipConfigWalksParents(t *testing.T) {
	root := newRootCommand()
	var init, validate, movie bool
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "config":
			for _, sub := range cmd.Commands() {
				switch sub.Name() {
				case "init":
					init = shouldSkipConfig(sub)
				case "validate":
					validate = shouldSkipConfig(sub)
				}
			}
		case "movie":
			movie = shouldSkipConfig(cmd)
		}
	}
	if !init || !validate {
		t.Fatal("config subcommands should skip eager config loading")
	}
	if movie {
		t.Fatal("movie command must load config")
	}
}

func TestIngestOptionsValidate(t *testing.T) {
	opts := ingestOptions{input: "film.mp4"}
	if err := opts.validate(); err == nil {
		t.Fatal("expected error when --input given without --remote")
	}
	opts = ingestOptions{remote: true, input: "film.mp4"}
	if err := opts.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	opts = ingestOptions{}
	if err := opts.validate(); err != nil {
		t.Fatalf("validate metadata-only: %v", err)
	}
}

func TestSeriesJobsBuildsCoverAndEpisodes(t *testing.T) {
	series := &media.Series{
		Seasons: []media.Season{
			{Number: 1, Episodes: []media.Episode{
				{Number: 1}, {Number: 2},
			}},
			{Number: 2, Episodes: []media.Episode{
				{Number: 1},
			}},
		},
	}
	opts := ingestOptions{remote: true, input: "severance", thumbnail: "severance/poster.jpg"}

	jobs, err := seriesJobs(series, "s1", opts, "/var/www/hls")
	if err != nil {
		t.Fatalf("seriesJobs: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("expected 4 jobs (cover + 3 episodes), got %d", len(jobs))
	}

	cover := jobs[0]
	if cover.Target.IsEpisode() || cover.Input != "" || cover.Thumbnail != "severance/poster.jpg" {
		t.Fatalf("unexpected cover job: %+v", cover)
	}
	second := jobs[2]
	if second.Input != "severance/1/2.mp4" {
		t.Fatalf("episode source = %q", second.Input)
	}
	if second.OutputDir != "/var/www/hls/series/s1/1/2" {
		t.Fatalf("episode output dir = %q", second.OutputDir)
	}
}

func TestLedgerJobFromFallsBackToThumbnailSource(t *testing.T) {
	job, err := pipeline.NewJob(media.SeriesTarget("s1"), "", "poster.jpg", "/var/www/hls")
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	entry := ledgerJobFrom(job)
	if entry.Source != "poster.jpg" {
		t.Fatalf("source = %q", entry.Source)
	}
	if entry.Kind != "series" || entry.ContainerID != "s1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestStatusCellPlainWithoutTerminal(t *testing.T) {
	if got := statusCell(ledger.StatusFailed, false); got != "failed" {
		t.Fatalf("plain cell = %q", got)
	}
	if got := statusCell(ledger.StatusSucceeded, true); !strings.Contains(got, "succeeded") {
		t.Fatalf("colored cell lost status text: %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("shortID = %q", got)
	}
}
