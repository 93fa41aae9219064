// Package pipeline composes the ordered command steps a transcode job runs
// on the remote host: output directory provisioning, HLS segmentation of
// the source video, and thumbnail extraction.
//
// Steps are discrete program/argument descriptors rather than one
// interpolated shell string; each argument is individually quoted when a
// step is rendered for the remote exec channel, so filenames with spaces or
// shell metacharacters cannot break out of their argument position. Steps
// are conjunctive: the orchestrator runs step N+1 only when step N exited
// with code 0.
//
// Source paths are resolved against the configured remote upload root and
// may not be absolute or traverse outside it.
package pipeline
