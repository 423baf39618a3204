package scpi

import (
	"time"

	"github.com/arloliu/go-visa/visa"
)

// Direction indicates whether a command only sends data or expects a response.
type Direction uint8

const (
	// Write is a command that only sends data, e.g. "OUTP ON".
	Write Direction = iota
	// Query is a command that expects exactly one response, e.g. "VOLT?".
	Query
)

// String returns string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Write:
		return "write"
	case Query:
		return "query"
	default:
		return "unknown"
	}
}

// ResponseShape defines the expected data type of a query response.
type ResponseShape uint8

const (
	// None is used by write commands that have no response.
	None ResponseShape = iota
	// String is the raw response text with the trailing line ending trimmed.
	String
	// Double is a floating-point number.
	Double
	// Integer is an integer.
	Integer
	// Boolean is a boolean value, e.g. "0"/"1" or "OFF"/"ON".
	Boolean
)

// String returns string representation of the response shape.
func (s ResponseShape) String() string {
	switch s {
	case None:
		return "none"
	case String:
		return "string"
	case Double:
		return "double"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// CommandSpec is the immutable declarative definition of one instrument command.
//
// It separates the definition of a command, its string template and its
// fundamental type, from its execution. Drivers define their command sets as
// CommandSpec data, typically as a per-instance catalog, and feed them to an
// Engine.
//
// Construction never fails; the direction/shape consistency rule is checked by
// Validate at the call sites that use the spec.
type CommandSpec struct {
	// Template is the command text with fmt-style positional placeholders,
	// e.g. "VOLT %f". "%%" is a literal percent sign.
	Template string
	// Direction is the command type, Write or Query.
	Direction Direction
	// Shape is the expected response type. It must be None for write commands
	// and non-None for queries.
	Shape ResponseShape
	// Delay is the optional pause between the write and the read of a query.
	Delay time.Duration
	// Description is a human-readable description, documentation only.
	Description string
}

// Placeholders returns the number of format placeholders in the template,
// treating "%%" as a literal percent sign.
func (c CommandSpec) Placeholders() int {
	n := 0
	for i := 0; i < len(c.Template); i++ {
		if c.Template[i] != '%' {
			continue
		}
		if i+1 < len(c.Template) && c.Template[i+1] == '%' {
			i++
			continue
		}
		n++
	}

	return n
}

// Validate checks the direction/shape consistency invariant: a write command
// must have shape None, a query must not. It fails with a command-kind error
// wrapping ErrShapeMismatch.
func (c CommandSpec) Validate() error {
	if c.Direction == Write && c.Shape != None {
		return &visa.Error{Kind: visa.KindCommand, Op: "validate", Msg: c.Template, Err: ErrShapeMismatch}
	}
	if c.Direction == Query && c.Shape == None {
		return &visa.Error{Kind: visa.KindCommand, Op: "validate", Msg: c.Template, Err: ErrShapeMismatch}
	}

	return nil
}

// Common IEEE-488.2 commands shared by SCPI instruments.
var (
	// IDNQuery reads the instrument identification string.
	IDNQuery = CommandSpec{Template: "*IDN?", Direction: Query, Shape: String, Description: "Get identification string."}
	// Reset resets the instrument to its factory default state.
	Reset = CommandSpec{Template: "*RST", Direction: Write, Description: "Perform a system reset."}
	// ClearStatus clears the instrument's status registers.
	ClearStatus = CommandSpec{Template: "*CLS", Direction: Write, Description: "Clear status registers."}
	// SelfTestQuery initiates a self-test; 0 typically means success.
	SelfTestQuery = CommandSpec{Template: "*TST?", Direction: Query, Shape: Integer, Description: "Initiate a self-test."}
	// OPCQuery reports whether all pending operations are complete.
	OPCQuery = CommandSpec{Template: "*OPC?", Direction: Query, Shape: Integer, Description: "Operation complete query."}
	// WaitContinue blocks the instrument until pending operations complete.
	WaitContinue = CommandSpec{Template: "*WAI", Direction: Write, Description: "Wait for operation complete."}
	// STBQuery reads the status byte.
	STBQuery = CommandSpec{Template: "*STB?", Direction: Query, Shape: Integer, Description: "Get status byte."}
	// ESRQuery reads the event status register.
	ESRQuery = CommandSpec{Template: "*ESR?", Direction: Query, Shape: Integer, Description: "Get event status register."}
	// ESESet sets the event status enable register.
	ESESet = CommandSpec{Template: "*ESE %d", Direction: Write, Description: "Set event status enable."}
	// ESEQuery reads the event status enable register.
	ESEQuery = CommandSpec{Template: "*ESE?", Direction: Query, Shape: Integer, Description: "Get event status enable."}
	// SRESet sets the service request enable register.
	SRESet = CommandSpec{Template: "*SRE %d", Direction: Write, Description: "Set service request enable."}
	// SREQuery reads the service request enable register.
	SREQuery = CommandSpec{Template: "*SRE?", Direction: Query, Shape: Integer, Description: "Get service request enable."}
	// ErrorQuery reads the next entry from the instrument's error queue.
	ErrorQuery = CommandSpec{Template: "SYST:ERR?", Direction: Query, Shape: String, Description: "Read the next error queue entry."}
)
