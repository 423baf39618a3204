package drivers

import (
	"github.com/arloliu/go-visa/scpi"
)

// Instrument composes a session with an execution engine and implements the
// IEEE-488.2 common commands shared by SCPI instruments. Concrete drivers
// embed it and add their instrument-specific command catalogs.
type Instrument struct {
	sess scpi.Session
	eng  *scpi.Engine
	desc string
}

// NewInstrument creates a generic instrument driver over the given session.
func NewInstrument(sess scpi.Session, desc string, opts ...scpi.EngineOption) *Instrument {
	return &Instrument{
		sess: sess,
		eng:  scpi.NewEngine(sess, opts...),
		desc: desc,
	}
}

// Session returns the session the driver executes against.
func (in *Instrument) Session() scpi.Session { return in.sess }

// Engine returns the execution engine of the driver.
func (in *Instrument) Engine() *scpi.Engine { return in.eng }

// Description returns the human-readable instrument description.
func (in *Instrument) Description() string { return in.desc }

// SetDescription sets the human-readable instrument description.
func (in *Instrument) SetDescription(desc string) { in.desc = desc }

// Identify queries the instrument's identification string (*IDN?).
func (in *Instrument) Identify() (string, error) {
	return in.eng.QueryString(scpi.IDNQuery)
}

// Reset resets the instrument to its factory default state (*RST).
func (in *Instrument) Reset() error {
	_, err := in.eng.Execute(scpi.Reset)
	return err
}

// ClearStatus clears the instrument's status registers (*CLS).
func (in *Instrument) ClearStatus() error {
	_, err := in.eng.Execute(scpi.ClearStatus)
	return err
}

// WaitToContinue blocks the instrument until all pending operations are
// complete (*WAI).
func (in *Instrument) WaitToContinue() error {
	_, err := in.eng.Execute(scpi.WaitContinue)
	return err
}

// OperationComplete queries if the pending operation is complete (*OPC?).
func (in *Instrument) OperationComplete() (bool, error) {
	n, err := in.eng.QueryInt(scpi.OPCQuery)
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// SelfTest runs the instrument's self-test routine (*TST?); 0 typically means
// success.
func (in *Instrument) SelfTest() (int, error) {
	n, err := in.eng.QueryInt(scpi.SelfTestQuery)
	return int(n), err
}

// StatusByte queries the instrument's status byte (*STB?).
func (in *Instrument) StatusByte() (uint8, error) {
	n, err := in.eng.QueryInt(scpi.STBQuery)
	return uint8(n), err
}

// EventStatus queries the event status register (*ESR?).
func (in *Instrument) EventStatus() (uint8, error) {
	n, err := in.eng.QueryInt(scpi.ESRQuery)
	return uint8(n), err
}

// SetEventStatusEnable sets the event status enable register (*ESE).
func (in *Instrument) SetEventStatusEnable(mask uint8) error {
	_, err := in.eng.Execute(scpi.ESESet, mask)
	return err
}

// EventStatusEnable queries the event status enable register (*ESE?).
func (in *Instrument) EventStatusEnable() (uint8, error) {
	n, err := in.eng.QueryInt(scpi.ESEQuery)
	return uint8(n), err
}

// SetServiceRequestEnable sets the service request enable register (*SRE).
func (in *Instrument) SetServiceRequestEnable(mask uint8) error {
	_, err := in.eng.Execute(scpi.SRESet, mask)
	return err
}

// ServiceRequestEnable queries the service request enable register (*SRE?).
func (in *Instrument) ServiceRequestEnable() (uint8, error) {
	n, err := in.eng.QueryInt(scpi.SREQuery)
	return uint8(n), err
}

// ExecuteChain issues a chain of argument-free write commands as a single
// delimited write. Failures are reported for the whole chain, not per element.
func (in *Instrument) ExecuteChain(specs []scpi.CommandSpec, delimiter string) error {
	return in.eng.ExecuteChain(specs, delimiter)
}
