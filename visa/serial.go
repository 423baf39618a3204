package visa

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goburrow/serial"
)

// DefaultBaudRate is used when an ASRL resource does not carry a baud rate segment.
const DefaultBaudRate = 9600

func init() {
	RegisterDialer("ASRL", &serialDialer{})
}

// serialDialer opens serial port transports for ASRL resources:
//
//	ASRL::/dev/ttyUSB0[::baud][::INSTR]
//
// The port is opened 8N1 at the given baud rate (default 9600).
type serialDialer struct{}

func (d *serialDialer) Dial(ctx context.Context, rsrc *Resource) (Transport, error) {
	if len(rsrc.Args) == 0 || rsrc.Args[0] == "" {
		return nil, fmt.Errorf("%w: missing device path in %q", ErrInvalidResource, rsrc.Raw)
	}

	baud := DefaultBaudRate
	if len(rsrc.Args) > 1 && rsrc.Args[1] != "" {
		b, err := strconv.Atoi(rsrc.Args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad baud rate in %q", ErrInvalidResource, rsrc.Raw)
		}
		baud = b
	}

	cfg := &serial.Config{
		Address:  rsrc.Args[0],
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
	}

	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}

	return &serialTransport{port: port, cfg: cfg}, nil
}

// Discover scans the usual serial device nodes and reports them as ASRL resources.
func (d *serialDialer) Discover(filter string) ([]string, error) {
	patterns := []string{"/dev/ttyS*", "/dev/ttyUSB*", "/dev/ttyACM*"}

	var addrs []string
	for _, pattern := range patterns {
		devices, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, dev := range devices {
			addrs = append(addrs, "ASRL::"+dev+"::INSTR")
		}
	}

	return addrs, nil
}

type serialTransport struct {
	port serial.Port
	cfg  *serial.Config
}

func (t *serialTransport) Write(p []byte) (int, error) {
	n, err := t.port.Write(p)
	return n, wrapSerialTimeout(err)
}

func (t *serialTransport) Read(p []byte) (int, error) {
	n, err := t.port.Read(p)
	return n, wrapSerialTimeout(err)
}

func (t *serialTransport) SetAttribute(attr Attribute, value any) error {
	switch attr {
	case AttrTimeout:
		d, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("attribute %d requires a time.Duration, got %T", attr, value)
		}
		t.cfg.Timeout = d
		// goburrow reopens the descriptor in place to apply a new config
		return t.port.Open(t.cfg)
	default:
		// termination characters are handled by the session
	}
	return nil
}

func (t *serialTransport) Close() error {
	return t.port.Close()
}

// wrapSerialTimeout normalizes serial read/write timeouts to ErrTimeout.
func wrapSerialTimeout(err error) error {
	if err == nil {
		return nil
	}
	if err == serial.ErrTimeout {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	return err
}
