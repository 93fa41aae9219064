package pipeline

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"hlsmill/internal/media"
)

const (
	// StepProvision creates the remote output directory tree.
	StepProvision = "provision"
	// StepTranscode segments the source video and writes the HLS manifest.
	StepTranscode = "transcode"
	// StepThumbnail captures a single representative frame as a JPEG.
	StepThumbnail = "thumbnail"
)

const (
	segmentTemplate = "segment_%03d.ts"
	manifestName    = "master.m3u8"
	thumbnailName   = "thumbnail.jpeg"
)

// ErrUnsafePath indicates a source path is absolute or escapes the remote
// upload root.
var ErrUnsafePath = errors.New("source path escapes the upload root")

// Step is one discrete remote command: a program name with its argument
// vector. Steps never embed unquoted user input.
type Step struct {
	Name    string
	Program string
	Args    []string
}

// Command renders the step for the remote exec channel with every argument
// individually quoted.
func (s Step) Command() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, quoteArg(s.Program))
	for _, arg := range s.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// Builder composes the command steps for transcode jobs against a fixed
// remote upload root.
type Builder struct {
	uploadDir        string
	segmentSeconds   int
	thumbnailQuality int
}

// NewBuilder constructs a Builder. uploadDir is the absolute remote
// directory operator-supplied source paths are resolved against.
func NewBuilder(uploadDir string, segmentSeconds, thumbnailQuality int) (*Builder, error) {
	uploadDir = strings.TrimSpace(uploadDir)
	if !path.IsAbs(uploadDir) {
		return nil, fmt.Errorf("upload root must be absolute, got %q", uploadDir)
	}
	if segmentSeconds <= 0 {
		return nil, fmt.Errorf("segment duration must be positive, got %d", segmentSeconds)
	}
	if thumbnailQuality <= 0 {
		return nil, fmt.Errorf("thumbnail quality must be positive, got %d", thumbnailQuality)
	}
	return &Builder{
		uploadDir:        path.Clean(uploadDir),
		segmentSeconds:   segmentSeconds,
		thumbnailQuality: thumbnailQuality,
	}, nil
}

// Steps builds the ordered step list for a job. Playable targets (movies
// and episodes) get provision, transcode, and thumbnail steps; a
// series-level target only provisions its directory and extracts the
// series thumbnail, since no stream exists at that level.
func (b *Builder) Steps(job *Job) ([]Step, error) {
	if job == nil {
		return nil, errors.New("job is required")
	}

	thumbnailSource, err := b.resolveUpload(job.Thumbnail)
	if err != nil {
		return nil, err
	}

	steps := []Step{{
		Name:    StepProvision,
		Program: "mkdir",
		Args:    []string{"-p", job.OutputDir},
	}}

	if job.Target.Kind == media.KindMovie || job.Target.IsEpisode() {
		inputSource, err := b.resolveUpload(job.Input)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{
			Name:    StepTranscode,
			Program: "ffmpeg",
			Args: []string{
				"-i", inputSource,
				"-hls_time", strconv.Itoa(b.segmentSeconds),
				"-hls_list_size", "0",
				"-hls_segment_filename", path.Join(job.OutputDir, segmentTemplate),
				"-f", "hls",
				path.Join(job.OutputDir, manifestName),
			},
		})
	}

	steps = append(steps, Step{
		Name:    StepThumbnail,
		Program: "ffmpeg",
		Args: []string{
			"-i", thumbnailSource,
			"-vframes", "1",
			"-q:v", strconv.Itoa(b.thumbnailQuality),
			path.Join(job.OutputDir, thumbnailName),
		},
	})

	return steps, nil
}

// resolveUpload joins a relative source path onto the upload root,
// rejecting absolute paths and traversal outside the root.
func (b *Builder) resolveUpload(source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", errors.New("source path is required")
	}
	if path.IsAbs(source) {
		return "", fmt.Errorf("%w: %q is absolute", ErrUnsafePath, source)
	}
	cleaned := path.Clean(source)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, source)
	}
	return path.Join(b.uploadDir, cleaned), nil
}

// quoteArg wraps an argument in single quotes for the remote shell,
// escaping embedded single quotes.
func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`&|;<>()*?[]#~=%!{}") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
