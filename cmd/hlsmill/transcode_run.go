package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"hlsmill/internal/config"
	"hlsmill/internal/ledger"
	"hlsmill/internal/pipeline"
	"hlsmill/internal/remote"
	"hlsmill/internal/transcode"
)

// runRemote drives the given jobs through the remote pipeline sequentially.
// A file lock keeps concurrent invocations from opening competing sessions
// against the same host. Jobs after a failed one are not attempted; the
// ledger keeps the record of how far the run got.
func runRemote(cmd *cobra.Command, ctx *commandContext, jobs []*pipeline.Job) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateRemote(); err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "hlsmill.lock"))
	held, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !held {
		return errors.New("another hlsmill transcode run is already in progress")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	store, err := ledger.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	keyPath, err := config.ExpandPath(cfg.SSH.KeyPath)
	if err != nil {
		return fmt.Errorf("resolve ssh key path: %w", err)
	}
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("read ssh key %s: %w", keyPath, err)
	}

	dial := func() (transcode.Session, error) {
		session, err := remote.Open(
			cfg.SSH.Host,
			cfg.SSH.Port,
			cfg.SSH.Username,
			key,
			time.Duration(cfg.SSH.DialTimeout)*time.Second,
		)
		if err != nil {
			return nil, err
		}
		return session, nil
	}

	builder, err := pipeline.NewBuilder(cfg.Transcode.UploadDir, cfg.Transcode.SegmentSeconds, cfg.Transcode.ThumbnailQuality)
	if err != nil {
		return err
	}

	orch, err := transcode.New(dial, builder, logger,
		transcode.WithRecorder(store),
		transcode.WithCommandTimeout(time.Duration(cfg.SSH.CommandTimeout)*time.Second),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, job := range jobs {
		if err := store.Record(cmd.Context(), ledgerJobFrom(job)); err != nil {
			return fmt.Errorf("record job %s: %w", job.ID, err)
		}
		if err := orch.Run(cmd.Context(), job); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s transcode failed for %s\n",
				time.Now().Format(time.RFC3339), job.Target.ContainerID())
			return fmt.Errorf("transcode %s: %w", job.Target.ContainerID(), err)
		}
		fmt.Fprintf(out, "Transcoded %s into %s\n", job.Target.ContainerID(), job.OutputDir)
	}
	return nil
}

func ledgerJobFrom(job *pipeline.Job) *ledger.Job {
	source := job.Input
	if source == "" {
		source = job.Thumbnail
	}
	return &ledger.Job{
		ID:          job.ID,
		Kind:        string(job.Target.Kind),
		ContainerID: job.Target.ContainerID(),
		Source:      source,
		OutputDir:   job.OutputDir,
	}
}
