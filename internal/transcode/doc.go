// Package transcode coordinates one remote transcode run end to end: it
// opens the remote session, builds the command pipeline, executes the
// steps conjunctively, and resolves a single terminal outcome.
//
// The run moves through SessionOpening and PipelineRunning before landing
// in Succeeded or Failed. Failure is fail-fast: the first error-channel
// chunk a step emits marks the run failed even when the remote command
// later exits 0, and a step only runs when every predecessor exited
// cleanly. The session is closed exactly once on every exit path.
//
// No retries happen here; a failed run is reported and left to the
// operator, and an already-persisted catalog record is intentionally not
// rolled back.
package transcode
