package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hlsmill/internal/catalog"
	"hlsmill/internal/form"
	"hlsmill/internal/media"
	"hlsmill/internal/pipeline"
)

func newMovieCommand(ctx *commandContext) *cobra.Command {
	var opts ingestOptions

	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Ingest a movie and optionally transcode it remotely",
		Long: "Collects movie metadata interactively, saves the record to the catalog,\n" +
			"and, with --remote, runs the HLS transcode pipeline on the configured host.\n" +
			"Source paths are relative to the remote upload directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.remote && opts.input == "" {
				return fmt.Errorf("--input is required with --remote")
			}

			port := form.NewConsolePort(cmd.InOrStdin(), cmd.OutOrStdout())
			movie, err := form.New(port).Movie()
			if err != nil {
				return err
			}

			store, err := catalog.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			id, err := store.SaveMovie(cmd.Context(), movie)
			if err != nil {
				return fmt.Errorf("save movie: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Title", movie.Title},
					{"Catalog ID", id},
					{"Stream URL", movie.StreamURL},
					{"Thumbnail URL", movie.ThumbnailURL},
				},
			))

			if !opts.remote && !opts.local {
				fmt.Fprintln(out, "Metadata saved; no transcode requested (use --remote).")
				return nil
			}
			if opts.local {
				return errLocalUnsupported
			}

			job, err := pipeline.NewJob(media.MovieTarget(id), opts.input, opts.thumbnail, cfg.Transcode.OutputDir)
			if err != nil {
				return err
			}
			return runRemote(cmd, ctx, []*pipeline.Job{job})
		},
	}

	opts.bind(cmd)
	return cmd
}
