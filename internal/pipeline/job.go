package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hlsmill/internal/media"
)

// Job is one ephemeral transcode work order. Source paths are relative to
// the remote upload root; OutputDir is the derived remote directory the
// pipeline writes into. A job lives for exactly one orchestration run.
type Job struct {
	ID        string
	Target    media.Target
	Input     string
	Thumbnail string
	OutputDir string
}

// NewJob validates the target, derives the remote output directory, and
// assigns the job identifier. For playable targets thumbnail may be empty,
// in which case the frame is captured from the source video itself.
func NewJob(target media.Target, input, thumbnail, outputRoot string) (*Job, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	outputDir, err := target.OutputDir(outputRoot)
	if err != nil {
		return nil, err
	}

	playable := target.Kind == media.KindMovie || target.IsEpisode()
	if playable && input == "" {
		return nil, errors.New("job input path is required")
	}
	if !playable && thumbnail == "" {
		return nil, fmt.Errorf("series-level job for %s requires a thumbnail source", target.ContainerID())
	}
	if thumbnail == "" {
		thumbnail = input
	}

	return &Job{
		ID:        uuid.NewString(),
		Target:    target,
		Input:     input,
		Thumbnail: thumbnail,
		OutputDir: outputDir,
	}, nil
}
