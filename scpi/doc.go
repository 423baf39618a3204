// Package scpi provides a declarative command model and execution engine for
// SCPI-style instruments.
//
// Commands are declared as data: a CommandSpec carries the command template,
// its direction (write or query), the expected response shape, and an optional
// inter-step delay. An Engine formats a spec with arguments, dispatches it
// through a Session, decodes query responses into typed values, and optionally
// polls the instrument's error queue after every command.
//
// Command Execution:
//
//	eng := scpi.NewEngine(sess)
//	raw, err := eng.Execute(scpi.IDNQuery)          // raw response text
//	volts, err := eng.QueryFloat(getVoltage)        // decoded per the spec's shape
//	err = eng.ExecuteChain([]scpi.CommandSpec{...}, ";")
//
// Asynchronous Queries:
// ExecuteAsync runs the same pipeline off the caller's goroutine and returns a
// Future to await. The Session underneath is not synchronized: two overlapping
// executions against the same Session race on the same transport handle, and
// serializing them is the caller's obligation, not something the engine works
// around. See the visa package documentation.
package scpi
