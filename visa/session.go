package visa

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/arloliu/go-visa/internal/pool"
	"github.com/arloliu/go-visa/logger"
)

// ConnState represents the connection state of a Session.
type ConnState uint32

const (
	// Disconnected indicates that no transport is open.
	Disconnected ConnState = iota
	// Connected indicates that the transport is open and I/O operations are allowed.
	Connected
)

// String returns string representation of the current state.
func (cs ConnState) String() string {
	switch cs {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

const (
	// DefaultTimeout is the initial I/O timeout of a new session.
	DefaultTimeout = 2 * time.Second
	// DefaultBufferSize is the read buffer size used when a caller passes a
	// non-positive maximum length.
	DefaultBufferSize = 2048
)

// Option customizes a Session at construction time.
type Option func(*Session)

// WithTimeout sets the I/O timeout. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// WithReadTermination enables read termination on the given character. Reads
// return as soon as the character is seen.
func WithReadTermination(c byte) Option {
	return func(s *Session) {
		s.readTerm = c
		s.readTermSet = true
	}
}

// WithWriteTermination sets the character appended to every command write.
func WithWriteTermination(c byte) Option {
	return func(s *Session) {
		s.writeTerm = c
		s.writeTermSet = true
	}
}

// WithAutoErrorCheck enables automatic instrument error checking. When enabled,
// the execution engine queries the instrument's error queue after every command
// and fails with an instrument-kind error if the queue is not empty.
func WithAutoErrorCheck(enable bool) Option {
	return func(s *Session) { s.autoCheck = enable }
}

// WithLogger sets the logger used by the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session owns one connection to one instrument and provides a channel for
// sending command text and receiving response text, plus configuration of
// timeout and line-termination behavior.
//
// A Session holds at most one live connection at a time. All I/O operations
// require the Connected state and fail with a connection-kind error otherwise.
// A failed I/O operation never changes the connection state; only Connect and
// Disconnect do, so the caller can retry or inspect state after a failure.
//
// A Session is NOT internally synchronized: the caller must ensure only one
// logical operation (one full write or write/delay/read cycle) is in flight at
// a time. See the package documentation.
type Session struct {
	logger    logger.Logger
	state     atomic.Uint32
	transport Transport
	resource  string

	timeout      time.Duration
	readTerm     byte
	readTermSet  bool
	writeTerm    byte
	writeTermSet bool
	autoCheck    bool
}

// NewSession creates a disconnected session. Configuration given through
// options is buffered and applied to the transport at the next Connect.
func NewSession(opts ...Option) *Session {
	s := &Session{
		logger:  logger.GetLogger(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open creates a session and connects it to the given resource. It is the
// pre-connected variant of NewSession + Connect.
func Open(ctx context.Context, resource string, opts ...Option) (*Session, error) {
	s := NewSession(opts...)
	if err := s.Connect(ctx, resource); err != nil {
		return nil, err
	}

	return s, nil
}

// State returns the current connection state.
func (s *Session) State() ConnState {
	return ConnState(s.state.Load())
}

// Connected reports whether the session holds a live connection.
func (s *Session) Connected() bool {
	return s.State() == Connected
}

// Resource returns the resource identifier of the current or last connection.
func (s *Session) Resource() string {
	return s.resource
}

// Timeout returns the configured I/O timeout.
func (s *Session) Timeout() time.Duration {
	return s.timeout
}

// AutoErrorCheck reports whether automatic instrument error checking is enabled.
func (s *Session) AutoErrorCheck() bool {
	return s.autoCheck
}

// SetAutoErrorCheck enables or disables automatic instrument error checking.
func (s *Session) SetAutoErrorCheck(enable bool) {
	s.autoCheck = enable
}

// Connect opens the transport to the instrument addressed by resource.
//
// Connecting an already-connected session is a no-op when the resource is the
// same, and fails with a connection-kind error wrapping ErrAlreadyConnected
// when it differs. An empty resource, an unparseable resource, an unregistered
// scheme, or a transport dial failure all fail with a connection-kind error.
func (s *Session) Connect(ctx context.Context, resource string) error {
	if resource == "" {
		return &Error{Kind: KindConnection, Op: "connect", Err: ErrEmptyResource}
	}

	if s.Connected() {
		if resource == s.resource {
			s.logger.Debug("connect called but already connected", "resource", resource)
			return nil
		}
		return &Error{Kind: KindConnection, Op: "connect", Resource: s.resource, Msg: "requested " + resource, Err: ErrAlreadyConnected}
	}

	rsrc, err := ParseResource(resource)
	if err != nil {
		return err
	}

	dialer, ok := lookupDialer(rsrc.Scheme)
	if !ok {
		return &Error{Kind: KindConnection, Op: "connect", Resource: resource, Msg: rsrc.Scheme, Err: ErrUnknownScheme}
	}

	transport, err := dialer.Dial(ctx, rsrc)
	if err != nil {
		return &Error{Kind: KindConnection, Op: "connect", Resource: resource, Err: err}
	}

	s.transport = transport
	s.resource = resource
	s.state.Store(uint32(Connected))

	if err := s.applyConfig(); err != nil {
		_ = transport.Close()
		s.transport = nil
		s.state.Store(uint32(Disconnected))
		return &Error{Kind: KindConnection, Op: "connect", Resource: resource, Msg: "apply configuration", Err: err}
	}

	s.logger.Info("connected", "resource", resource)
	return nil
}

// Disconnect releases the transport. It always succeeds and is a no-op when
// the session is already disconnected.
func (s *Session) Disconnect() {
	if !s.Connected() {
		return
	}

	if err := s.transport.Close(); err != nil {
		s.logger.Debug("transport close failed", "resource", s.resource, "error", err)
	}
	s.transport = nil
	s.state.Store(uint32(Disconnected))

	s.logger.Info("disconnected", "resource", s.resource)
}

// SetTimeout sets the I/O timeout. It is applied to the transport immediately
// when connected, and buffered for the next Connect otherwise.
func (s *Session) SetTimeout(d time.Duration) error {
	s.timeout = d
	if !s.Connected() {
		return nil
	}

	return s.transport.SetAttribute(AttrTimeout, d)
}

// SetReadTermination configures the character that terminates read operations.
// It is applied immediately when connected, and buffered otherwise.
func (s *Session) SetReadTermination(c byte, enable bool) error {
	s.readTerm = c
	s.readTermSet = enable
	if !s.Connected() {
		return nil
	}

	if err := s.transport.SetAttribute(AttrReadTermChar, c); err != nil {
		return err
	}

	return s.transport.SetAttribute(AttrReadTermEnable, enable)
}

// SetWriteTermination configures the character appended to every command write.
// It is applied immediately when connected, and buffered otherwise.
func (s *Session) SetWriteTermination(c byte) error {
	s.writeTerm = c
	s.writeTermSet = true
	if !s.Connected() {
		return nil
	}

	return s.transport.SetAttribute(AttrWriteTermChar, c)
}

// Write sends a command string to the instrument, appending the configured
// write termination character.
//
// It fails with a connection-kind error when disconnected, a timeout-kind
// error when the transport reports a timeout, and a command-kind error on any
// other transport failure.
func (s *Session) Write(command string) error {
	if !s.Connected() {
		return &Error{Kind: KindConnection, Op: "write", Resource: s.resource, Err: ErrNotConnected}
	}

	s.logger.Debug("writing command", "resource", s.resource, "cmd", command)

	payload := []byte(command)
	if s.writeTermSet {
		payload = append(payload, s.writeTerm)
	}

	if _, err := s.transport.Write(payload); err != nil {
		return s.classify("write", err)
	}

	return nil
}

// WriteBytes sends raw bytes to the instrument without appending any
// termination character. Binary payload transfer is delegated unchanged to the
// transport.
func (s *Session) WriteBytes(data []byte) error {
	if !s.Connected() {
		return &Error{Kind: KindConnection, Op: "write bytes", Resource: s.resource, Err: ErrNotConnected}
	}

	if _, err := s.transport.Write(data); err != nil {
		return s.classify("write bytes", err)
	}

	return nil
}

// Read receives response text from the instrument.
//
// It blocks until the read termination character is seen (when enabled),
// maxLen bytes have arrived, or the timeout expires. The returned text may be
// shorter than maxLen and includes the termination character; response decoding
// trims it. A non-positive maxLen means DefaultBufferSize.
func (s *Session) Read(maxLen int) (string, error) {
	data, err := s.read("read", maxLen, s.readTermSet)
	if err != nil {
		return "", err
	}

	s.logger.Debug("read response", "resource", s.resource, "len", len(data))
	return string(data), nil
}

// ReadBytes receives up to maxLen raw bytes from the instrument without
// scanning for a termination character.
func (s *Session) ReadBytes(maxLen int) ([]byte, error) {
	return s.read("read bytes", maxLen, false)
}

// Query sends a command and reads its response. The optional delay elapses
// strictly between write completion and read initiation.
func (s *Session) Query(command string, maxLen int, delay time.Duration) (string, error) {
	if !s.Connected() {
		return "", &Error{Kind: KindConnection, Op: "query", Resource: s.resource, Err: ErrNotConnected}
	}

	if err := s.Write(command); err != nil {
		return "", err
	}

	if delay > 0 {
		s.logger.Debug("delaying before read", "resource", s.resource, "delay", delay)
		pool.Sleep(delay)
	}

	return s.Read(maxLen)
}

func (s *Session) read(op string, maxLen int, scanTerm bool) ([]byte, error) {
	if !s.Connected() {
		return nil, &Error{Kind: KindConnection, Op: op, Resource: s.resource, Err: ErrNotConnected}
	}

	if maxLen <= 0 {
		maxLen = DefaultBufferSize
	}

	buf := make([]byte, maxLen)
	total := 0
	for total < maxLen {
		n, err := s.transport.Read(buf[total:])
		if n > 0 {
			if scanTerm {
				if i := bytes.IndexByte(buf[total:total+n], s.readTerm); i >= 0 {
					return buf[:total+i+1], nil
				}
			}
			total += n
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if total > 0 {
					return buf[:total], nil
				}
				return nil, &Error{Kind: KindConnection, Op: op, Resource: s.resource, Err: ErrConnClosed}
			}
			return nil, s.classify(op, err)
		}

		if !scanTerm && total > 0 {
			// without termination, return whatever the first read produced
			break
		}
	}

	return buf[:total], nil
}

// classify maps a transport failure onto the error taxonomy: normalized
// timeouts become KindTimeout, everything else KindCommand.
func (s *Session) classify(op string, err error) error {
	kind := KindCommand
	if errors.Is(err, ErrTimeout) {
		kind = KindTimeout
	}

	s.logger.Error("transport failure", "resource", s.resource, "op", op, "error", err)
	return &Error{Kind: kind, Op: op, Resource: s.resource, Err: err}
}

// applyConfig pushes the buffered configuration to a freshly dialed transport.
func (s *Session) applyConfig() error {
	if s.timeout > 0 {
		if err := s.transport.SetAttribute(AttrTimeout, s.timeout); err != nil {
			return err
		}
	}
	if s.readTermSet {
		if err := s.transport.SetAttribute(AttrReadTermChar, s.readTerm); err != nil {
			return err
		}
		if err := s.transport.SetAttribute(AttrReadTermEnable, true); err != nil {
			return err
		}
	}
	if s.writeTermSet {
		if err := s.transport.SetAttribute(AttrWriteTermChar, s.writeTerm); err != nil {
			return err
		}
	}

	return nil
}
