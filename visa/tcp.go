package visa

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// DefaultTCPPort is the conventional raw-socket SCPI port.
const DefaultTCPPort = "5025"

func init() {
	RegisterDialer("TCPIP", &tcpDialer{})
}

// tcpDialer opens raw TCP socket transports for TCPIP resources:
//
//	TCPIP[board]::host[::port][::SOCKET|::INSTR]
//
// The port defaults to 5025.
type tcpDialer struct{}

func (d *tcpDialer) Dial(ctx context.Context, rsrc *Resource) (Transport, error) {
	if len(rsrc.Args) == 0 || rsrc.Args[0] == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidResource, rsrc.Raw)
	}

	host := rsrc.Args[0]
	port := DefaultTCPPort
	if len(rsrc.Args) > 1 && rsrc.Args[1] != "" {
		port = rsrc.Args[1]
	}

	var nd net.Dialer
	conn, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, err
	}

	return &tcpTransport{conn: conn}, nil
}

// Discover returns no candidates; raw-socket instruments have no broadcast
// discovery mechanism.
func (d *tcpDialer) Discover(filter string) ([]string, error) {
	return nil, nil
}

type tcpTransport struct {
	conn    net.Conn
	timeout time.Duration
}

func (t *tcpTransport) Write(p []byte) (int, error) {
	if t.timeout > 0 {
		_ = t.conn.SetWriteDeadline(time.Now().Add(t.timeout))
	}
	n, err := t.conn.Write(p)
	return n, wrapNetTimeout(err)
}

func (t *tcpTransport) Read(p []byte) (int, error) {
	if t.timeout > 0 {
		_ = t.conn.SetReadDeadline(time.Now().Add(t.timeout))
	}
	n, err := t.conn.Read(p)
	return n, wrapNetTimeout(err)
}

func (t *tcpTransport) SetAttribute(attr Attribute, value any) error {
	switch attr {
	case AttrTimeout:
		d, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("attribute %d requires a time.Duration, got %T", attr, value)
		}
		t.timeout = d
	default:
		// termination characters are handled by the session
	}
	return nil
}

func (t *tcpTransport) Close() error {
	return t.conn.Close()
}

// wrapNetTimeout normalizes network timeouts to ErrTimeout.
func wrapNetTimeout(err error) error {
	if err == nil {
		return nil
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	return err
}
