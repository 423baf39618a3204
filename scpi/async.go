package scpi

import (
	"fmt"

	"github.com/arloliu/go-visa/visa"
)

// Future is the awaitable handle of an asynchronous query.
//
// There is no cancellation: once scheduled, the query runs to completion or
// failure, bounded only by the session's configured timeout. Wait merely
// blocks until that happens.
type Future struct {
	done chan struct{}
	raw  string
	err  error
}

// Done returns a channel that is closed when the query has completed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the query completes and returns the raw response text or
// the error the synchronous Execute would have produced.
func (f *Future) Wait() (string, error) {
	<-f.done
	return f.raw, f.err
}

// ExecuteAsync runs the Execute pipeline (format, write, delay, read, optional
// error-queue check) on its own goroutine and returns a Future to await.
//
// A write-direction spec and a format failure are rejected synchronously,
// before any concurrency is introduced.
//
// The Session underneath is not synchronized. An ExecuteAsync overlapping
// another ExecuteAsync or a synchronous Execute on the same Session races on
// the same transport handle; the caller must serialize them.
func (e *Engine) ExecuteAsync(spec CommandSpec, args ...any) (*Future, error) {
	if spec.Direction != Query {
		return nil, &visa.Error{Kind: visa.KindCommand, Op: "execute async", Msg: spec.Template, Err: ErrNotQuery}
	}

	// surface format faults synchronously; formatting is deterministic, so the
	// pipeline's own format pass cannot fail afterwards
	if _, err := FormatCommand(spec, args...); err != nil {
		return nil, err
	}

	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.raw, f.err = e.Execute(spec, args...)
	}()

	return f, nil
}

// QueryValueAsync awaits fut and decodes the response per the spec's shape,
// with the same error context QueryValue attaches.
func (e *Engine) QueryValueAsync(spec CommandSpec, fut *Future) (Value, error) {
	raw, err := fut.Wait()
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
