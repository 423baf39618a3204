package visa

import (
	"context"
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// Attribute identifies a configurable property of a Transport.
type Attribute uint8

const (
	// AttrTimeout is the I/O timeout applied to blocking reads and writes.
	// The value is a time.Duration; zero disables the timeout.
	AttrTimeout Attribute = iota + 1
	// AttrReadTermChar is the read termination character. The value is a byte.
	AttrReadTermChar
	// AttrReadTermEnable enables or disables read termination. The value is a bool.
	AttrReadTermEnable
	// AttrWriteTermChar is the character appended to every write. The value is a byte.
	AttrWriteTermChar
)

// Transport is the narrow byte-oriented contract a Session consumes. It is the
// boundary to the raw instrumentation bus: TCP sockets and serial ports are
// provided by this package, other buses can be plugged in via Dialer.
//
// Transports normalize their native timeout failures by wrapping ErrTimeout so
// the session can classify them uniformly. A transport may ignore attributes it
// cannot express; SetAttribute returns an error only when an attribute value
// has the wrong type or applying a supported attribute fails.
type Transport interface {
	// Write writes len(p) bytes to the bus.
	Write(p []byte) (int, error)
	// Read reads up to len(p) bytes from the bus, blocking until data arrives
	// or the configured timeout expires.
	Read(p []byte) (int, error)
	// SetAttribute applies a configuration attribute.
	SetAttribute(attr Attribute, value any) error
	// Close releases the underlying handle. It must be safe to call more than once.
	Close() error
}

// Dialer opens Transports for one resource scheme and enumerates the resources
// it can reach.
type Dialer interface {
	// Dial opens a transport to the instrument addressed by rsrc.
	Dial(ctx context.Context, rsrc *Resource) (Transport, error)
	// Discover enumerates candidate resource identifiers. The filter is advisory;
	// FindResources applies it again on the result. Returning an empty list is
	// not an error.
	Discover(filter string) ([]string, error)
}

var dialers = xsync.NewMapOf[string, Dialer]()

// RegisterDialer registers a transport dialer for a resource scheme, replacing
// any previous registration. The scheme is case-insensitive.
func RegisterDialer(scheme string, d Dialer) {
	dialers.Store(strings.ToUpper(scheme), d)
}

func lookupDialer(scheme string) (Dialer, bool) {
	return dialers.Load(strings.ToUpper(scheme))
}

// FindResources enumerates instrument resource identifiers matching a
// VISA-style filter pattern ('?' one character, '*' any run, case-insensitive)
// across all registered transports.
//
// An empty result is not an error; FindResources fails only when a transport's
// discovery subsystem itself cannot be initialized.
func FindResources(filter string) ([]string, error) {
	var (
		found   []string
		scanErr error
	)

	dialers.Range(func(scheme string, d Dialer) bool {
		addrs, err := d.Discover(filter)
		if err != nil {
			scanErr = &Error{Kind: KindConnection, Op: "find resources", Msg: scheme, Err: err}
			return false
		}
		for _, addr := range addrs {
			if MatchResource(filter, addr) {
				found = append(found, addr)
			}
		}
		return true
	})

	if scanErr != nil {
		return nil, scanErr
	}

	sort.Strings(found)
	return found, nil
}
