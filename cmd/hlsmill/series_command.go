package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hlsmill/internal/catalog"
	"hlsmill/internal/form"
	"hlsmill/internal/media"
	"hlsmill/internal/pipeline"
)

func newSeriesCommand(ctx *commandContext) *cobra.Command {
	var opts ingestOptions

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Ingest a series and optionally transcode its episodes remotely",
		Long: "Collects series metadata interactively, including the season and episode\n" +
			"tree, saves the record to the catalog, and, with --remote, transcodes every\n" +
			"episode on the configured host. --input names the remote upload directory\n" +
			"holding sources laid out as <season>/<episode>.mp4; --thumbnail names the\n" +
			"series poster image inside the upload directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.remote {
				if opts.input == "" {
					return fmt.Errorf("--input is required with --remote")
				}
				if opts.thumbnail == "" {
					return fmt.Errorf("--thumbnail is required with --remote")
				}
			}

			port := form.NewConsolePort(cmd.InOrStdin(), cmd.OutOrStdout())
			series, err := form.New(port).Series()
			if err != nil {
				return err
			}

			store, err := catalog.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			id, err := store.SaveSeries(cmd.Context(), series)
			if err != nil {
				return fmt.Errorf("save series: %w", err)
			}

			episodes := 0
			for _, season := range series.Seasons {
				episodes += len(season.Episodes)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Title", series.Title},
					{"Catalog ID", id},
					{"Thumbnail URL", series.ThumbnailURL},
					{"Seasons", strconv.Itoa(len(series.Seasons))},
					{"Episodes", strconv.Itoa(episodes)},
				},
			))

			if !opts.remote && !opts.local {
				fmt.Fprintln(out, "Metadata saved; no transcode requested (use --remote).")
				return nil
			}
			if opts.local {
				return errLocalUnsupported
			}

			jobs, err := seriesJobs(series, id, opts, cfg.Transcode.OutputDir)
			if err != nil {
				return err
			}
			return runRemote(cmd, ctx, jobs)
		},
	}

	opts.bind(cmd)
	return cmd
}

// seriesJobs builds one thumbnail-only job for the series container followed
// by a transcode job per episode. Episode sources follow the upload layout
// <input>/<season>/<episode>.mp4.
func seriesJobs(series *media.Series, id string, opts ingestOptions, outputRoot string) ([]*pipeline.Job, error) {
	cover, err := pipeline.NewJob(media.SeriesTarget(id), "", opts.thumbnail, outputRoot)
	if err != nil {
		return nil, err
	}
	jobs := []*pipeline.Job{cover}

	for _, season := range series.Seasons {
		for _, episode := range season.Episodes {
			source := fmt.Sprintf("%s/%d/%d.mp4", opts.input, season.Number, episode.Number)
			target := media.EpisodeTarget(id, season.Number, episode.Number)
			job, err := pipeline.NewJob(target, source, "", outputRoot)
			if err != nil {
				return nil, fmt.Errorf("season %d episode %d: %w", season.Number, episode.Number, err)
			}
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}
