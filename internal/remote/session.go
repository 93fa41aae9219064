package remote

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

var (
	// ErrUnreachable indicates the remote host could not be reached.
	ErrUnreachable = errors.New("remote host unreachable")
	// ErrAuthFailed indicates the host rejected the presented credentials.
	ErrAuthFailed = errors.New("remote authentication failed")
	// ErrInvalidCredential indicates the private key material is malformed.
	ErrInvalidCredential = errors.New("invalid private key material")
)

// Session is one authenticated connection to the remote execution host.
type Session struct {
	client *ssh.Client
	addr   string
}

// Open establishes a single authenticated connection. The key is PEM
// private key material. No retries are attempted; callers own the decision
// to try again on a later run.
func Open(host string, port int, username string, key []byte, dialTimeout time.Duration) (*Session, error) {
	if strings.TrimSpace(host) == "" {
		return nil, errors.New("remote host is required")
	}
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("remote username is required")
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	clientConfig := &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	}

	client, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return nil, classifyDialError(addr, err)
	}

	return &Session{client: client, addr: addr}, nil
}

// Addr returns the host:port the session is connected to.
func (s *Session) Addr() string {
	return s.addr
}

// Close tears the connection down. Safe to call once per opened session.
func (s *Session) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// classifyDialError maps a dial failure onto the session error taxonomy.
// Authentication rejections surface through the handshake error text; any
// transport-level failure counts as unreachable.
func classifyDialError(addr string, err error) error {
	message := err.Error()
	if strings.Contains(message, "unable to authenticate") || strings.Contains(message, "no supported methods remain") {
		return fmt.Errorf("%w: %s: %v", ErrAuthFailed, addr, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, addr, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, addr, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUnreachable, addr, err)
}
