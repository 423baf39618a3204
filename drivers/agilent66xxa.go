package drivers

import (
	"time"

	"github.com/arloliu/go-visa/scpi"
)

// Catalog keys of the Agilent 66xxA commands.
const (
	cmdA66SetVoltage          = "setVoltage"
	cmdA66GetVoltageSetting   = "getVoltageSetting"
	cmdA66MeasureVoltage      = "measureVoltage"
	cmdA66SetCurrent          = "setCurrent"
	cmdA66GetCurrentSetting   = "getCurrentSetting"
	cmdA66MeasureCurrent      = "measureCurrent"
	cmdA66SetOutput           = "setOutput"
	cmdA66GetOutputState      = "getOutputState"
	cmdA66ClearProtection     = "clearProtection"
	cmdA66SetOVP              = "setOverVoltageProtection"
	cmdA66GetOVP              = "getOverVoltageProtection"
	cmdA66SetOCP              = "setOverCurrentProtection"
	cmdA66GetOCP              = "getOverCurrentProtection"
	cmdA66SetDisplayEnabled   = "setDisplayEnabled"
	cmdA66GetDisplayEnabled   = "getDisplayEnabled"
	cmdA66DisplayText         = "displayText"
	cmdA66GetDisplayText      = "getDisplayText"
	cmdA66Initiate            = "initiate"
	cmdA66Abort               = "abort"
	cmdA66SetTriggerSourceBus = "setTriggerSourceBus"
	cmdA66Trigger             = "trigger"
	cmdA66SetTrigVoltage      = "setTriggeredVoltage"
	cmdA66GetTrigVoltage      = "getTriggeredVoltage"
	cmdA66SetTrigCurrent      = "setTriggeredCurrent"
	cmdA66GetTrigCurrent      = "getTriggeredCurrent"
)

// measureDelay gives the 66xxA DSP time to settle an averaged DC measurement
// before the response is read.
const measureDelay = 50 * time.Millisecond

// Agilent66xxA is a driver for the Agilent 66xxA series of system DC power
// supplies, covering source settings, DC measurements, protection, display,
// and the bus trigger subsystem.
type Agilent66xxA struct {
	*Instrument
	catalog map[string]scpi.CommandSpec
}

// NewAgilent66xxA creates an Agilent 66xxA driver over the given session.
func NewAgilent66xxA(sess scpi.Session, opts ...scpi.EngineOption) *Agilent66xxA {
	return &Agilent66xxA{
		Instrument: NewInstrument(sess, "Agilent 66xxA System DC Power Supply", opts...),
		catalog: map[string]scpi.CommandSpec{
			cmdA66SetVoltage:          {Template: "SOURCE:VOLTAGE:LEVEL:IMMEDIATE:AMPLITUDE %f", Direction: scpi.Write, Description: "Set output voltage."},
			cmdA66GetVoltageSetting:   {Template: "SOURCE:VOLTAGE:LEVEL:IMMEDIATE:AMPLITUDE?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get voltage setting."},
			cmdA66MeasureVoltage:      {Template: "MEASURE:VOLTAGE:DC?", Direction: scpi.Query, Shape: scpi.Double, Delay: measureDelay, Description: "Measure voltage."},
			cmdA66SetCurrent:          {Template: "SOURCE:CURRENT:LEVEL:IMMEDIATE:AMPLITUDE %f", Direction: scpi.Write, Description: "Set output current."},
			cmdA66GetCurrentSetting:   {Template: "SOURCE:CURRENT:LEVEL:IMMEDIATE:AMPLITUDE?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get current setting."},
			cmdA66MeasureCurrent:      {Template: "MEASURE:CURRENT:DC?", Direction: scpi.Query, Shape: scpi.Double, Delay: measureDelay, Description: "Measure current."},
			cmdA66SetOutput:           {Template: "OUTPUT:STATE %s", Direction: scpi.Write, Description: "Set output state."},
			cmdA66GetOutputState:      {Template: "OUTPUT:STATE?", Direction: scpi.Query, Shape: scpi.Boolean, Description: "Get output state."},
			cmdA66ClearProtection:     {Template: "OUTPUT:PROTECTION:CLEAR", Direction: scpi.Write, Description: "Clear tripped protection."},
			cmdA66SetOVP:              {Template: "SOURCE:VOLTAGE:PROTECTION:LEVEL %f", Direction: scpi.Write, Description: "Set OVP level."},
			cmdA66GetOVP:              {Template: "SOURCE:VOLTAGE:PROTECTION:LEVEL?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get OVP level."},
			cmdA66SetOCP:              {Template: "SOURCE:CURRENT:PROTECTION:STATE %s", Direction: scpi.Write, Description: "Set OCP state."},
			cmdA66GetOCP:              {Template: "SOURCE:CURRENT:PROTECTION:STATE?", Direction: scpi.Query, Shape: scpi.Boolean, Description: "Get OCP state."},
			cmdA66SetDisplayEnabled:   {Template: "DISPLAY:WINDOW:STATE %s", Direction: scpi.Write, Description: "Set display state."},
			cmdA66GetDisplayEnabled:   {Template: "DISPLAY:WINDOW:STATE?", Direction: scpi.Query, Shape: scpi.Boolean, Description: "Get display state."},
			cmdA66DisplayText:         {Template: `DISPLAY:WINDOW:TEXT:DATA "%s"`, Direction: scpi.Write, Description: "Display text."},
			cmdA66GetDisplayText:      {Template: "DISPLAY:WINDOW:TEXT:DATA?", Direction: scpi.Query, Shape: scpi.String, Description: "Get displayed text."},
			cmdA66Initiate:            {Template: "INITIATE:IMMEDIATE", Direction: scpi.Write, Description: "Initiate trigger system."},
			cmdA66Abort:               {Template: "ABORT", Direction: scpi.Write, Description: "Abort trigger action."},
			cmdA66SetTriggerSourceBus: {Template: "TRIGGER:SOURCE BUS", Direction: scpi.Write, Description: "Set trigger source to bus."},
			cmdA66Trigger:             {Template: "TRIGGER:IMMEDIATE", Direction: scpi.Write, Description: "Generate a trigger."},
			cmdA66SetTrigVoltage:      {Template: "SOURCE:VOLTAGE:LEVEL:TRIGGERED:AMPLITUDE %f", Direction: scpi.Write, Description: "Set triggered voltage."},
			cmdA66GetTrigVoltage:      {Template: "SOURCE:VOLTAGE:LEVEL:TRIGGERED:AMPLITUDE?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get triggered voltage."},
			cmdA66SetTrigCurrent:      {Template: "SOURCE:CURRENT:LEVEL:TRIGGERED:AMPLITUDE %f", Direction: scpi.Write, Description: "Set triggered current."},
			cmdA66GetTrigCurrent:      {Template: "SOURCE:CURRENT:LEVEL:TRIGGERED:AMPLITUDE?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get triggered current."},
		},
	}
}

// Commands returns a copy of the driver's command catalog, keyed by operation
// name.
func (a *Agilent66xxA) Commands() map[string]scpi.CommandSpec {
	catalog := make(map[string]scpi.CommandSpec, len(a.catalog))
	for name, spec := range a.catalog {
		catalog[name] = spec
	}

	return catalog
}

// SetVoltage sets the output voltage in volts.
func (a *Agilent66xxA) SetVoltage(voltage float64) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetVoltage], voltage)
	return err
}

// VoltageSetting queries the programmed voltage level in volts.
func (a *Agilent66xxA) VoltageSetting() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66GetVoltageSetting])
}

// MeasureVoltage measures the actual output voltage in volts.
func (a *Agilent66xxA) MeasureVoltage() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66MeasureVoltage])
}

// SetCurrent sets the output current limit in amperes.
func (a *Agilent66xxA) SetCurrent(current float64) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetCurrent], current)
	return err
}

// CurrentSetting queries the programmed current level in amperes.
func (a *Agilent66xxA) CurrentSetting() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66GetCurrentSetting])
}

// MeasureCurrent measures the actual output current in amperes.
func (a *Agilent66xxA) MeasureCurrent() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66MeasureCurrent])
}

// SetOutput enables or disables the output.
func (a *Agilent66xxA) SetOutput(enabled bool) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetOutput], boolToOnOff(enabled))
	return err
}

// OutputEnabled queries whether the output is enabled.
func (a *Agilent66xxA) OutputEnabled() (bool, error) {
	return a.Engine().QueryBool(a.catalog[cmdA66GetOutputState])
}

// ClearProtection resets a tripped overvoltage or overcurrent protection.
func (a *Agilent66xxA) ClearProtection() error {
	_, err := a.Engine().Execute(a.catalog[cmdA66ClearProtection])
	return err
}

// SetOverVoltageProtection sets the OVP trip level in volts.
func (a *Agilent66xxA) SetOverVoltageProtection(level float64) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetOVP], level)
	return err
}

// OverVoltageProtection queries the OVP trip level in volts.
func (a *Agilent66xxA) OverVoltageProtection() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66GetOVP])
}

// SetOverCurrentProtection enables or disables overcurrent protection.
func (a *Agilent66xxA) SetOverCurrentProtection(enabled bool) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetOCP], boolToOnOff(enabled))
	return err
}

// OverCurrentProtectionEnabled queries whether overcurrent protection is enabled.
func (a *Agilent66xxA) OverCurrentProtectionEnabled() (bool, error) {
	return a.Engine().QueryBool(a.catalog[cmdA66GetOCP])
}

// SetDisplayEnabled turns the front panel display on or off.
func (a *Agilent66xxA) SetDisplayEnabled(enabled bool) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetDisplayEnabled], boolToOnOff(enabled))
	return err
}

// DisplayEnabled queries whether the front panel display is on.
func (a *Agilent66xxA) DisplayEnabled() (bool, error) {
	return a.Engine().QueryBool(a.catalog[cmdA66GetDisplayEnabled])
}

// DisplayText shows text on the front panel display.
func (a *Agilent66xxA) DisplayText(text string) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66DisplayText], text)
	return err
}

// DisplayedText queries the text currently shown on the front panel display.
func (a *Agilent66xxA) DisplayedText() (string, error) {
	return a.Engine().QueryString(a.catalog[cmdA66GetDisplayText])
}

// Initiate enables the trigger system for one trigger action.
func (a *Agilent66xxA) Initiate() error {
	_, err := a.Engine().Execute(a.catalog[cmdA66Initiate])
	return err
}

// Abort cancels any pending trigger action.
func (a *Agilent66xxA) Abort() error {
	_, err := a.Engine().Execute(a.catalog[cmdA66Abort])
	return err
}

// SetTriggerSourceBus selects the bus as the trigger source.
func (a *Agilent66xxA) SetTriggerSourceBus() error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetTriggerSourceBus])
	return err
}

// Trigger generates an immediate trigger.
func (a *Agilent66xxA) Trigger() error {
	_, err := a.Engine().Execute(a.catalog[cmdA66Trigger])
	return err
}

// SetTriggeredVoltage sets the voltage level to apply on the next trigger.
func (a *Agilent66xxA) SetTriggeredVoltage(voltage float64) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetTrigVoltage], voltage)
	return err
}

// TriggeredVoltage queries the pending triggered voltage level.
func (a *Agilent66xxA) TriggeredVoltage() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66GetTrigVoltage])
}

// SetTriggeredCurrent sets the current level to apply on the next trigger.
func (a *Agilent66xxA) SetTriggeredCurrent(current float64) error {
	_, err := a.Engine().Execute(a.catalog[cmdA66SetTrigCurrent], current)
	return err
}

// TriggeredCurrent queries the pending triggered current level.
func (a *Agilent66xxA) TriggeredCurrent() (float64, error) {
	return a.Engine().QueryFloat(a.catalog[cmdA66GetTrigCurrent])
}
