package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Channel discriminates the remote process output stream a chunk came from.
type Channel int

const (
	ChannelStdout Channel = iota
	ChannelStderr
)

// String renders the channel name for logs.
func (c Channel) String() string {
	if c == ChannelStderr {
		return "stderr"
	}
	return "stdout"
}

// Exit describes command termination. Signal is non-empty when the remote
// process was killed by a signal; Err carries transport failures that
// prevented a clean exit status from being observed.
type Exit struct {
	Code   int
	Signal string
	Err    error
}

// Event is one unit of remote command output. Chunks arrive in the order
// the remote process emitted them on each channel. Exactly one event per
// execution carries Exit, and it is always the final event.
type Event struct {
	Channel Channel
	Data    []byte
	Exit    *Exit
}

const readBufferSize = 4096

// Execute runs one command on the remote host and returns its event
// sequence. The sequence is not restartable; callers must drain it. Context
// cancellation kills the remote command and surfaces through the exit event.
func (s *Session) Execute(ctx context.Context, command string) (<-chan Event, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("session is closed")
	}

	execSession, err := s.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("open exec channel: %w", err)
	}

	stdout, err := execSession.StdoutPipe()
	if err != nil {
		_ = execSession.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := execSession.StderrPipe()
	if err != nil {
		_ = execSession.Close()
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := execSession.Start(command); err != nil {
		_ = execSession.Close()
		return nil, fmt.Errorf("start remote command: %w", err)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)

		var readers sync.WaitGroup
		readers.Add(2)
		go streamPipe(&readers, events, ChannelStdout, stdout)
		go streamPipe(&readers, events, ChannelStderr, stderr)

		finished := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = execSession.Signal(ssh.SIGKILL)
				_ = execSession.Close()
			case <-finished:
			}
		}()

		readers.Wait()
		waitErr := execSession.Wait()
		close(finished)
		_ = execSession.Close()

		exit := exitFromWait(waitErr)
		if exit.Err == nil && ctx.Err() != nil {
			exit.Err = ctx.Err()
		}
		events <- Event{Exit: exit}
	}()

	return events, nil
}

func streamPipe(wg *sync.WaitGroup, events chan<- Event, channel Channel, reader io.Reader) {
	defer wg.Done()
	buf := make([]byte, readBufferSize)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			events <- Event{Channel: channel, Data: chunk}
		}
		if err != nil {
			return
		}
	}
}

func exitFromWait(err error) *Exit {
	if err == nil {
		return &Exit{Code: 0}
	}
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return &Exit{Code: exitErr.ExitStatus(), Signal: exitErr.Signal()}
	}
	var missing *ssh.ExitMissingError
	if errors.As(err, &missing) {
		return &Exit{Code: -1, Err: missing}
	}
	return &Exit{Code: -1, Err: err}
}
