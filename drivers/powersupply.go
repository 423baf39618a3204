package drivers

import (
	"github.com/arloliu/go-visa/scpi"
)

// Catalog keys of the generic power supply commands.
const (
	cmdSetVoltage = "setVoltage"
	cmdGetVoltage = "getVoltage"
	cmdSetCurrent = "setCurrent"
	cmdGetCurrent = "getCurrent"
	cmdSetOutput  = "setOutput"
	cmdGetOutput  = "getOutput"
)

// PowerSupply is a driver for generic SCPI power supplies that implement the
// short-form VOLT/CURR/OUTP command set.
type PowerSupply struct {
	*Instrument
	catalog map[string]scpi.CommandSpec
}

// NewPowerSupply creates a generic power supply driver over the given session.
func NewPowerSupply(sess scpi.Session, opts ...scpi.EngineOption) *PowerSupply {
	return &PowerSupply{
		Instrument: NewInstrument(sess, "Generic SCPI Power Supply", opts...),
		catalog: map[string]scpi.CommandSpec{
			cmdSetVoltage: {Template: "VOLT %f", Direction: scpi.Write, Description: "Set output voltage."},
			cmdGetVoltage: {Template: "VOLT?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get output voltage."},
			cmdSetCurrent: {Template: "CURR %f", Direction: scpi.Write, Description: "Set output current."},
			cmdGetCurrent: {Template: "CURR?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get output current."},
			cmdSetOutput:  {Template: "OUTP %d", Direction: scpi.Write, Description: "Set output state."},
			cmdGetOutput:  {Template: "OUTP?", Direction: scpi.Query, Shape: scpi.Boolean, Description: "Get output state."},
		},
	}
}

// Commands returns a copy of the driver's command catalog, keyed by operation
// name.
func (ps *PowerSupply) Commands() map[string]scpi.CommandSpec {
	catalog := make(map[string]scpi.CommandSpec, len(ps.catalog))
	for name, spec := range ps.catalog {
		catalog[name] = spec
	}

	return catalog
}

// SetVoltage sets the output voltage in volts.
func (ps *PowerSupply) SetVoltage(voltage float64) error {
	_, err := ps.Engine().Execute(ps.catalog[cmdSetVoltage], voltage)
	return err
}

// Voltage queries the output voltage setting in volts.
func (ps *PowerSupply) Voltage() (float64, error) {
	return ps.Engine().QueryFloat(ps.catalog[cmdGetVoltage])
}

// SetCurrent sets the output current limit in amperes.
func (ps *PowerSupply) SetCurrent(current float64) error {
	_, err := ps.Engine().Execute(ps.catalog[cmdSetCurrent], current)
	return err
}

// Current queries the output current setting in amperes.
func (ps *PowerSupply) Current() (float64, error) {
	return ps.Engine().QueryFloat(ps.catalog[cmdGetCurrent])
}

// SetOutput enables or disables the output.
func (ps *PowerSupply) SetOutput(enabled bool) error {
	_, err := ps.Engine().Execute(ps.catalog[cmdSetOutput], boolToInt(enabled))
	return err
}

// OutputEnabled queries whether the output is enabled.
func (ps *PowerSupply) OutputEnabled() (bool, error) {
	return ps.Engine().QueryBool(ps.catalog[cmdGetOutput])
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolToOnOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
