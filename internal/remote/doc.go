// Package remote manages a single authenticated SSH connection to the
// transcoding host and streams the output of commands executed over it.
//
// A Session wraps one connection for the duration of one orchestration run;
// it is never pooled or reused. Execute returns a lazily consumed event
// sequence: ordered stdout/stderr chunks terminated by exactly one exit
// event carrying the command's exit code and, for signal terminations, the
// signal name. Dial failures are classified into distinct sentinel errors
// so callers can tell an unreachable host from rejected credentials or a
// malformed key.
//
// The package performs no retries; a single connection attempt per run is
// the designed behavior.
package remote
