package scpi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/go-visa/logger"
	"github.com/arloliu/go-visa/visa"
)

// DefaultMaxResponse is the read buffer size the engine uses for query responses.
const DefaultMaxResponse = 2048

// Session is the connection-scoped channel the engine drives commands through.
// *visa.Session satisfies it; tests substitute a fake.
type Session interface {
	// Write sends a command string to the instrument.
	Write(command string) error
	// Query sends a command and reads its response, with the delay elapsing
	// between write completion and read initiation.
	Query(command string, maxLen int, delay time.Duration) (string, error)
	// AutoErrorCheck reports whether the engine should poll the instrument's
	// error queue after every command.
	AutoErrorCheck() bool
	// Resource returns the resource identifier for error context.
	Resource() string
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(l logger.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithMaxResponse sets the read buffer size for query responses.
func WithMaxResponse(n int) EngineOption {
	return func(e *Engine) { e.maxResponse = n }
}

// Engine turns a (CommandSpec, arguments) pair into an effect on the Session
// and a raw or typed result.
//
// The engine holds no state beyond its Session reference; CommandSpec values
// are shared by reference across all invocations. It does not serialize access
// to the Session: overlapping Execute/ExecuteAsync calls against the same
// Session are a caller error (see the package documentation).
type Engine struct {
	sess        Session
	logger      logger.Logger
	maxResponse int
}

// NewEngine creates an execution engine over the given session.
func NewEngine(sess Session, opts ...EngineOption) *Engine {
	e := &Engine{
		sess:        sess,
		logger:      logger.GetLogger(),
		maxResponse: DefaultMaxResponse,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Session returns the session the engine executes against.
func (e *Engine) Session() Session {
	return e.sess
}

// FormatCommand substitutes arguments into a command template.
//
// It fails with a command-kind error, before any I/O occurs, when the number
// of arguments does not match the template's placeholders or an argument type
// is incompatible with its placeholder.
func FormatCommand(spec CommandSpec, args ...any) (string, error) {
	want := spec.Placeholders()
	if len(args) != want {
		return "", &visa.Error{
			Kind: visa.KindCommand,
			Op:   "format",
			Msg:  fmt.Sprintf("command %q takes %d arguments, got %d", spec.Template, want, len(args)),
			Err:  ErrArgumentCount,
		}
	}

	if want == 0 {
		return spec.Template, nil
	}

	cmd := fmt.Sprintf(spec.Template, args...)
	// fmt reports verb/argument mismatches inline as "%!verb(...)"
	if strings.Contains(cmd, "%!") {
		return "", &visa.Error{
			Kind: visa.KindCommand,
			Op:   "format",
			Msg:  fmt.Sprintf("command %q: %s", spec.Template, cmd),
			Err:  ErrArgumentType,
		}
	}

	return cmd, nil
}

// Execute formats spec with args and dispatches it to the session.
//
// A write command issues exactly one session write and returns an empty
// payload. A query issues one write, waits the spec's delay, then issues one
// read and returns the raw response text. When the session's auto-error-check
// flag is set, the instrument's error queue is polled after either variant and
// a pending error fails the call with an instrument-kind error.
func (e *Engine) Execute(spec CommandSpec, args ...any) (string, error) {
	command, err := FormatCommand(spec, args...)
	if err != nil {
		return "", err
	}

	e.logger.Debug("executing command", "resource", e.sess.Resource(), "cmd", command, "direction", spec.Direction)

	var response string
	if spec.Direction == Write {
		if err := e.sess.Write(command); err != nil {
			return "", err
		}
	} else {
		response, err = e.sess.Query(command, e.maxResponse, spec.Delay)
		if err != nil {
			return "", err
		}
	}

	if e.sess.AutoErrorCheck() {
		if err := e.CheckErrorQueue(); err != nil {
			return "", err
		}
	}

	return response, nil
}

// ExecuteChain concatenates the templates of write-direction, placeholder-free
// commands with the delimiter and issues them as exactly one session write.
//
// This trades per-command error granularity for reduced round-trip overhead:
// any failure, transport or instrument reported, is reported for the whole
// chain, not for an individual element. A query command or a command with
// placeholders fails the chain with a command-kind error before any I/O occurs.
func (e *Engine) ExecuteChain(specs []CommandSpec, delimiter string) error {
	if len(specs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		if spec.Direction != Write {
			return &visa.Error{Kind: visa.KindCommand, Op: "execute chain", Msg: spec.Template, Err: ErrChainNotWrite}
		}
		if spec.Placeholders() > 0 {
			return &visa.Error{Kind: visa.KindCommand, Op: "execute chain", Msg: spec.Template, Err: ErrChainPlaceholder}
		}
		parts = append(parts, spec.Template)
	}

	command := strings.Join(parts, delimiter)
	e.logger.Debug("executing command chain", "resource", e.sess.Resource(), "cmd", command)

	if err := e.sess.Write(command); err != nil {
		return err
	}

	if e.sess.AutoErrorCheck() {
		return e.CheckErrorQueue()
	}

	return nil
}

// QueryValue executes a query command and decodes its response into a typed
// value per the spec's response shape.
//
// The spec must be a consistent query (Validate); a decode failure carries
// both the offending response text and the command that produced it.
func (e *Engine) QueryValue(spec CommandSpec, args ...any) (Value, error) {
	if err := spec.Validate(); err != nil {
		return Value{}, err
	}
	if spec.Direction != Query {
		return Value{}, &visa.Error{Kind: visa.KindCommand, Op: "query", Msg: spec.Template, Err: ErrNotQuery}
	}

	raw, err := e.Execute(spec, args...)
	if err != nil {
		return Value{}, err
	}

	v, err := Decode(spec.Shape, raw)
	if err != nil {
		return Value{}, &visa.Error{
			Kind:     visa.KindCommand,
			Op:       "decode",
			Resource: e.sess.Resource(),
			Msg:      fmt.Sprintf("command %q", spec.Template),
			Err:      err,
		}
	}

	return v, nil
}

// QueryString executes a query and returns its response text with the trailing
// line ending trimmed.
func (e *Engine) QueryString(spec CommandSpec, args ...any) (string, error) {
	v, err := e.QueryValue(spec, args...)
	if err != nil {
		return "", err
	}

	return v.Text(), nil
}

// QueryFloat executes a query and returns its response as a float64.
func (e *Engine) QueryFloat(spec CommandSpec, args ...any) (float64, error) {
	v, err := e.QueryValue(spec, args...)
	if err != nil {
		return 0, err
	}

	return v.Float(), nil
}

// QueryInt executes a query and returns its response as an int64.
func (e *Engine) QueryInt(spec CommandSpec, args ...any) (int64, error) {
	v, err := e.QueryValue(spec, args...)
	if err != nil {
		return 0, err
	}

	return v.Int(), nil
}

// QueryBool executes a query and returns its response as a bool.
func (e *Engine) QueryBool(spec CommandSpec, args ...any) (bool, error) {
	v, err := e.QueryValue(spec, args...)
	if err != nil {
		return false, err
	}

	return v.Bool(), nil
}

// CheckErrorQueue reads one entry from the instrument's error queue and fails
// with an instrument-kind error if it is not the "no error" sentinel.
//
// The sentinel is a leading error code of zero ("0,..." or "+0,..."); any
// other entry, e.g. `-113,"Undefined header"`, is surfaced verbatim with its
// code as the error status.
func (e *Engine) CheckErrorQueue() error {
	raw, err := e.sess.Query(ErrorQuery.Template, e.maxResponse, 0)
	if err != nil {
		return err
	}

	entry := strings.TrimSpace(strings.TrimRight(raw, "\r\n"))
	code, ok := errorQueueCode(entry)
	if ok && code == 0 {
		return nil
	}

	e.logger.Warn("instrument reported error", "resource", e.sess.Resource(), "entry", entry)
	return &visa.Error{
		Kind:     visa.KindInstrument,
		Op:       "error queue",
		Resource: e.sess.Resource(),
		Status:   code,
		Msg:      entry,
	}
}

// errorQueueCode extracts the leading numeric code of an error queue entry.
func errorQueueCode(entry string) (int, bool) {
	head := entry
	if i := strings.IndexByte(entry, ','); i >= 0 {
		head = entry[:i]
	}

	code, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}

	return code, true
}
