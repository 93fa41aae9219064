package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hlsmill/internal/ledger"
	"hlsmill/internal/logging"
	"hlsmill/internal/pipeline"
	"hlsmill/internal/remote"
)

// State tracks the orchestration run lifecycle.
type State string

const (
	StateIdle            State = "idle"
	StateSessionOpening  State = "session_opening"
	StatePipelineRunning State = "pipeline_running"
	StateSucceeded       State = "succeeded"
	StateFailed          State = "failed"
)

// Session is the remote execution capability the orchestrator drives.
// *remote.Session satisfies it.
type Session interface {
	Execute(ctx context.Context, command string) (<-chan remote.Event, error)
	Close() error
}

// Dialer opens the session for one run. It is invoked at most once.
type Dialer func() (Session, error)

// Recorder persists run state transitions. *ledger.Store satisfies it.
type Recorder interface {
	UpdateStatus(ctx context.Context, id string, status ledger.Status, errorMessage string) error
}

// StepError describes a failed pipeline step with everything the operator
// needs to act: which step, how the remote command terminated, and what it
// wrote to the error channel.
type StepError struct {
	Step     string
	ExitCode int
	Signal   string
	Stderr   string
	Err      error
}

func (e *StepError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "step %s failed", e.Step)
	if e.Signal != "" {
		fmt.Fprintf(&b, ": terminated by signal %s", e.Signal)
	} else if e.Err == nil || e.ExitCode != 0 {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		fmt.Fprintf(&b, ": %s", detail)
	}
	return b.String()
}

func (e *StepError) Unwrap() error { return e.Err }

// Orchestrator runs one transcode job at a time against the remote host.
type Orchestrator struct {
	dial           Dialer
	builder        *pipeline.Builder
	recorder       Recorder
	logger         *slog.Logger
	commandTimeout time.Duration

	state State
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithRecorder wires the job ledger so run transitions are persisted.
func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

// WithCommandTimeout bounds each pipeline step. Zero keeps the historical
// behavior of waiting indefinitely.
func WithCommandTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.commandTimeout = timeout
	}
}

// New constructs an orchestrator.
func New(dial Dialer, builder *pipeline.Builder, logger *slog.Logger, opts ...Option) (*Orchestrator, error) {
	if dial == nil {
		return nil, errors.New("session dialer is required")
	}
	if builder == nil {
		return nil, errors.New("pipeline builder is required")
	}
	orch := &Orchestrator{
		dial:    dial,
		builder: builder,
		logger:  logging.NewComponentLogger(logger, "transcode"),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(orch)
	}
	return orch, nil
}

// State returns the current run state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the job's pipeline and resolves a terminal outcome. The
// session is opened once, used for every step, and closed before Run
// returns regardless of outcome.
func (o *Orchestrator) Run(ctx context.Context, job *pipeline.Job) error {
	if job == nil {
		return errors.New("job is required")
	}
	logger := o.logger.With(
		logging.String(logging.FieldJobID, job.ID),
		logging.String("container", job.Target.ContainerID()),
	)

	o.transition(ctx, job, StateSessionOpening, ledger.StatusSessionOpening)
	logger.Info("opening remote session", logging.String(logging.FieldEventType, "run_start"))

	session, err := o.dial()
	if err != nil {
		o.fail(ctx, logger, job, err)
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Warn("session close failed", logging.Error(closeErr))
		}
	}()

	steps, err := o.builder.Steps(job)
	if err != nil {
		err = fmt.Errorf("build pipeline: %w", err)
		o.fail(ctx, logger, job, err)
		return err
	}

	o.transition(ctx, job, StatePipelineRunning, ledger.StatusRunning)
	for _, step := range steps {
		if err := o.runStep(ctx, logger, session, step); err != nil {
			o.fail(ctx, logger, job, err)
			return err
		}
	}

	o.transition(ctx, job, StateSucceeded, ledger.StatusSucceeded)
	logger.Info("transcode run succeeded",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.String("output_dir", job.OutputDir),
	)
	return nil
}

func (o *Orchestrator) runStep(ctx context.Context, logger *slog.Logger, session Session, step pipeline.Step) error {
	stepCtx := ctx
	if o.commandTimeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, o.commandTimeout)
		defer cancel()
	}

	logger.Info("pipeline step started",
		logging.String(logging.FieldEventType, "step_start"),
		logging.String(logging.FieldStep, step.Name),
	)

	events, err := session.Execute(stepCtx, step.Command())
	if err != nil {
		return &StepError{Step: step.Name, ExitCode: -1, Err: err}
	}

	var stderr bytes.Buffer
	stderrSeen := false
	var exit *remote.Exit
	for event := range events {
		switch {
		case event.Exit != nil:
			exit = event.Exit
		case event.Channel == remote.ChannelStderr:
			stderrSeen = true
			stderr.Write(event.Data)
		default:
			if chunk := strings.TrimSpace(string(event.Data)); chunk != "" {
				logger.Info("remote output",
					logging.String(logging.FieldEventType, "step_output"),
					logging.String(logging.FieldStep, step.Name),
					logging.String("chunk", chunk),
				)
			}
		}
	}
	if exit == nil {
		return &StepError{Step: step.Name, ExitCode: -1, Err: errors.New("no exit status received")}
	}
	if exit.Err != nil {
		return &StepError{Step: step.Name, ExitCode: exit.Code, Signal: exit.Signal, Stderr: stderr.String(), Err: exit.Err}
	}
	// The first error-channel chunk is fatal even when the command exits 0.
	if stderrSeen || exit.Code != 0 || exit.Signal != "" {
		return &StepError{Step: step.Name, ExitCode: exit.Code, Signal: exit.Signal, Stderr: stderr.String()}
	}

	logger.Info("pipeline step finished",
		logging.String(logging.FieldEventType, "step_complete"),
		logging.String(logging.FieldStep, step.Name),
	)
	return nil
}

func (o *Orchestrator) transition(ctx context.Context, job *pipeline.Job, state State, status ledger.Status) {
	o.state = state
	o.record(ctx, job, status, "")
}

func (o *Orchestrator) fail(ctx context.Context, logger *slog.Logger, job *pipeline.Job, runErr error) {
	o.state = StateFailed
	logger.Error("transcode run failed",
		logging.String(logging.FieldEventType, "run_failure"),
		logging.Error(runErr),
	)
	o.record(ctx, job, ledger.StatusFailed, runErr.Error())
}

func (o *Orchestrator) record(ctx context.Context, job *pipeline.Job, status ledger.Status, message string) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.UpdateStatus(ctx, job.ID, status, message); err != nil {
		o.logger.Warn("ledger update failed",
			logging.String(logging.FieldJobID, job.ID),
			logging.String("status", string(status)),
			logging.Error(err),
		)
	}
}
