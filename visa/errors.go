package visa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConnected indicates that an I/O operation was attempted on a disconnected session.
	ErrNotConnected = errors.New("session is not connected")

	// ErrAlreadyConnected indicates that Connect was called with a different resource
	// while the session is connected. Connect to the same resource is a no-op.
	ErrAlreadyConnected = errors.New("session is already connected to a different resource")

	// ErrEmptyResource indicates that an empty resource identifier was provided.
	ErrEmptyResource = errors.New("resource identifier is empty")

	// ErrInvalidResource indicates that a resource identifier could not be parsed.
	ErrInvalidResource = errors.New("invalid resource identifier")

	// ErrUnknownScheme indicates that no transport dialer is registered for the
	// scheme of a resource identifier.
	ErrUnknownScheme = errors.New("no transport registered for resource scheme")

	// ErrConnClosed indicates that the transport was closed by the peer while a
	// read was pending.
	ErrConnClosed = errors.New("connection closed")

	// ErrTimeout is the normalized timeout cause. Transports wrap their native
	// timeout errors with it so the session can classify them as KindTimeout.
	ErrTimeout = errors.New("operation timed out")
)

// Kind classifies a failure into one of the four error categories of the module.
type Kind uint8

const (
	// KindConnection covers failures to establish or keep a connection, and any
	// operation attempted on a disconnected session.
	KindConnection Kind = iota + 1
	// KindCommand covers malformed commands, transport-level write/read failures
	// not classified as timeouts, and response parse failures.
	KindCommand
	// KindTimeout covers timeouts explicitly reported by the underlying transport.
	KindTimeout
	// KindInstrument covers errors reported by the instrument's own error queue
	// through the auto-error-check path.
	KindInstrument
)

// String returns string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindCommand:
		return "command"
	case KindTimeout:
		return "timeout"
	case KindInstrument:
		return "instrument"
	default:
		return "unknown"
	}
}

// Error is the concrete error type surfaced by go-visa operations.
//
// It carries the error kind, the failed operation, the resource identifier of
// the session (when known), an optional instrument status code, and the wrapped
// cause. It supports errors.Is/errors.As against the sentinel errors above.
type Error struct {
	// Kind is the error category.
	Kind Kind
	// Op names the operation that failed, e.g. "connect", "write", "read".
	Op string
	// Resource is the resource identifier of the session, may be empty.
	Resource string
	// Status carries a numeric status code when one exists, e.g. the error code
	// reported by the instrument's error queue. Zero means no code.
	Status int
	// Msg is an optional human-readable detail.
	Msg string
	// Err is the wrapped cause, may be nil.
	Err error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(" error")
	if e.Op != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Op)
	}
	if e.Resource != "" {
		fmt.Fprintf(&sb, " (%s)", e.Resource)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Status != 0 {
		fmt.Fprintf(&sb, " (status %d)", e.Status)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, op, resource string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Resource: resource, Err: cause}
}

// KindOf returns the error kind of err, or 0 if err is not a go-visa error.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return 0
}

// IsConnection reports whether err is a connection-kind error.
func IsConnection(err error) bool { return KindOf(err) == KindConnection }

// IsCommand reports whether err is a command-kind error.
func IsCommand(err error) bool { return KindOf(err) == KindCommand }

// IsTimeout reports whether err is a timeout-kind error.
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }

// IsInstrument reports whether err is an instrument-kind error.
func IsInstrument(err error) bool { return KindOf(err) == KindInstrument }
