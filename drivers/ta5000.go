package drivers

import (
	"github.com/arloliu/go-visa/scpi"
)

// Catalog keys of the TA-5000 commands.
const (
	cmdTAGetTemperature    = "getTemperature"
	cmdTAGetAirTemperature = "getAirTemperature"
	cmdTAGetDutTemperature = "getDutTemperature"
	cmdTASetSetpoint       = "setSetpoint"
	cmdTAGetSetpoint       = "getSetpoint"
	cmdTASetSoakTime       = "setSoakTime"
	cmdTAGetSoakTime       = "getSoakTime"
	cmdTASetWindow         = "setTemperatureWindow"
	cmdTAGetWindow         = "getTemperatureWindow"
	cmdTASetHeadDown       = "setHeadDown"
	cmdTASetHeadUp         = "setHeadUp"
	cmdTAGetHeadState      = "getHeadState"
	cmdTASetFlowOn         = "setFlowOn"
	cmdTASetFlowOff        = "setFlowOff"
	cmdTASetFlowRate       = "setFlowRate"
	cmdTAGetFlowSetting    = "getFlowRateSetting"
	cmdTAGetFlowMeasured   = "getFlowRateMeasured"
	cmdTAGetFlowLiters     = "getFlowRateLitersPerMin"
	cmdTASetDutModeOn      = "setDutControlModeOn"
	cmdTASetDutModeOff     = "setDutControlModeOff"
	cmdTAGetDutMode        = "getDutControlMode"
	cmdTASetDutSensor      = "setDutSensorType"
	cmdTAGetDutSensor      = "getDutSensorType"
	cmdTASetTrickleOn      = "setTrickleFlowOn"
	cmdTASetTrickleOff     = "setTrickleFlowOff"
	cmdTAGetTrickleState   = "getTrickleFlowState"
	cmdTASetLowerLimit     = "setLowerTemperatureLimit"
	cmdTAGetLowerLimit     = "getLowerTemperatureLimit"
	cmdTASetUpperLimit     = "setUpperTemperatureLimit"
	cmdTAGetUpperLimit     = "getUpperTemperatureLimit"
	cmdTAGetErrorState     = "getErrorState"
	cmdTASetAirDutDiff     = "setAirToDutMaxDifference"
	cmdTAGetAirDutDiff     = "getAirToDutMaxDifference"
	cmdTAGetAuxCondition   = "getAuxiliaryCondition"
	cmdTASetCompressorOn   = "setCompressorOn"
	cmdTASetCompressorOff  = "setCompressorOff"
	cmdTAGetCompressor     = "getCompressorState"
	cmdTASetCycleCount     = "setCycleCount"
	cmdTAGetCycleCount     = "getCycleCount"
	cmdTAStartCycling      = "startCycling"
	cmdTAStopCycling       = "stopCycling"
	cmdTAGetCyclingState   = "getCyclingState"
	cmdTASetAutoTuneMode   = "setDutAutoTuneMode"
	cmdTAGetAutoTuneMode   = "getDutAutoTuneMode"
	cmdTALockHead          = "lockHead"
	cmdTAUnlockHead        = "unlockHead"
	cmdTANextSetpoint      = "nextSetpoint"
	cmdTASetRampRate       = "setRampRate"
	cmdTAGetRampRate       = "getRampRate"
	cmdTAGetDynSetpoint    = "getDynamicSetpoint"
	cmdTASelectSetpoint    = "selectSetpoint"
	cmdTAGetSelSetpoint    = "getSelectedSetpoint"
	cmdTAGetTempEvent      = "getTemperatureEventCondition"
	cmdTASetMaxTestTime    = "setMaxTestTime"
	cmdTAGetMaxTestTime    = "getMaxTestTime"
)

// ThermalAirTA5000 is a driver for the MPI Thermal TA-5000 thermal air stream
// system, used for temperature testing of electronic components over a range
// of -80C to +225C.
type ThermalAirTA5000 struct {
	*Instrument
	catalog map[string]scpi.CommandSpec
}

// NewThermalAirTA5000 creates a TA-5000 driver over the given session.
func NewThermalAirTA5000(sess scpi.Session, opts ...scpi.EngineOption) *ThermalAirTA5000 {
	return &ThermalAirTA5000{
		Instrument: NewInstrument(sess, "MPI Thermal TA-5000", opts...),
		catalog: map[string]scpi.CommandSpec{
			cmdTAGetTemperature:    {Template: "TEMP?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read main temperature."},
			cmdTAGetAirTemperature: {Template: "TMPA?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read air temperature."},
			cmdTAGetDutTemperature: {Template: "TMPD?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read DUT temperature."},
			cmdTASetSetpoint:       {Template: "SETP %f", Direction: scpi.Write, Description: "Set temperature setpoint."},
			cmdTAGetSetpoint:       {Template: "SETP?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read temperature setpoint."},
			cmdTASetSoakTime:       {Template: "SOAK %d", Direction: scpi.Write, Description: "Set soak time."},
			cmdTAGetSoakTime:       {Template: "SOAK?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read soak time."},
			cmdTASetWindow:         {Template: "WNDW %f", Direction: scpi.Write, Description: "Set temperature window."},
			cmdTAGetWindow:         {Template: "WNDW?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read temperature window."},
			cmdTASetHeadDown:       {Template: "HEAD 1", Direction: scpi.Write, Description: "Put thermal head down."},
			cmdTASetHeadUp:         {Template: "HEAD 0", Direction: scpi.Write, Description: "Put thermal head up."},
			cmdTAGetHeadState:      {Template: "HEAD?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read head state."},
			cmdTASetFlowOn:         {Template: "FLOW 1", Direction: scpi.Write, Description: "Turn air flow ON."},
			cmdTASetFlowOff:        {Template: "FLOW 0", Direction: scpi.Write, Description: "Turn air flow OFF."},
			cmdTASetFlowRate:       {Template: "FLSE %d", Direction: scpi.Write, Description: "Set air flow rate."},
			cmdTAGetFlowSetting:    {Template: "FLSE?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read air flow rate setting."},
			cmdTAGetFlowMeasured:   {Template: "FLWR?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read measured air flow rate."},
			cmdTAGetFlowLiters:     {Template: "FLRL?", Direction: scpi.Query, Shape: scpi.Double, Description: "Read measured flow rate in l/min."},
			cmdTASetDutModeOn:      {Template: "DUTM 1", Direction: scpi.Write, Description: "Turn DUT control mode ON."},
			cmdTASetDutModeOff:     {Template: "DUTM 0", Direction: scpi.Write, Description: "Turn AIR control mode ON."},
			cmdTAGetDutMode:        {Template: "DUTM?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read DUT mode state."},
			cmdTASetDutSensor:      {Template: "DSNS %d", Direction: scpi.Write, Description: "Set DUT sensor type."},
			cmdTAGetDutSensor:      {Template: "DSNS?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read DUT sensor type."},
			cmdTASetTrickleOn:      {Template: "TRKL 1", Direction: scpi.Write, Description: "Turn trickle flow ON."},
			cmdTASetTrickleOff:     {Template: "TRKL 0", Direction: scpi.Write, Description: "Turn trickle flow OFF."},
			cmdTAGetTrickleState:   {Template: "TRKL?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read trickle flow setting."},
			cmdTASetLowerLimit:     {Template: "LLIM %f", Direction: scpi.Write, Description: "Set lower air temperature limit."},
			cmdTAGetLowerLimit:     {Template: "LLIM?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get lower air temperature limit."},
			cmdTASetUpperLimit:     {Template: "ULIM %d", Direction: scpi.Write, Description: "Set upper air temperature limit."},
			cmdTAGetUpperLimit:     {Template: "ULIM?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get upper air temperature limit."},
			cmdTAGetErrorState:     {Template: "EROR?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Read system error state."},
			cmdTASetAirDutDiff:     {Template: "ADMD %d", Direction: scpi.Write, Description: "Set air-to-DUT max difference."},
			cmdTAGetAirDutDiff:     {Template: "ADMD?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get air-to-DUT max difference."},
			cmdTAGetAuxCondition:   {Template: "AUXC?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get auxiliary condition data."},
			cmdTASetCompressorOn:   {Template: "COOL 1", Direction: scpi.Write, Description: "Turn compressor on."},
			cmdTASetCompressorOff:  {Template: "COOL 0", Direction: scpi.Write, Description: "Turn compressor off."},
			cmdTAGetCompressor:     {Template: "COOL?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get compressor state."},
			cmdTASetCycleCount:     {Template: "CYCC %d", Direction: scpi.Write, Description: "Set cycle count."},
			cmdTAGetCycleCount:     {Template: "CYCC?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get cycle count."},
			cmdTAStartCycling:      {Template: "CYCL 1", Direction: scpi.Write, Description: "Start cycling."},
			cmdTAStopCycling:       {Template: "CYCL 0", Direction: scpi.Write, Description: "Stop cycling."},
			cmdTAGetCyclingState:   {Template: "CYCP?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get cycling state."},
			cmdTASetAutoTuneMode:   {Template: "DUTN %d", Direction: scpi.Write, Description: "Set DUT auto tune mode."},
			cmdTAGetAutoTuneMode:   {Template: "DUTN?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get DUT auto tune mode."},
			cmdTALockHead:          {Template: "HDLK 1", Direction: scpi.Write, Description: "Lock test head."},
			cmdTAUnlockHead:        {Template: "HDLK 0", Direction: scpi.Write, Description: "Unlock test head."},
			cmdTANextSetpoint:      {Template: "NEXT", Direction: scpi.Write, Description: "Step to next setpoint."},
			cmdTASetRampRate:       {Template: "RAMP %f", Direction: scpi.Write, Description: "Set ramp rate."},
			cmdTAGetRampRate:       {Template: "RAMP?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get ramp rate."},
			cmdTAGetDynSetpoint:    {Template: "SETD?", Direction: scpi.Query, Shape: scpi.Double, Description: "Get dynamic setpoint."},
			cmdTASelectSetpoint:    {Template: "SETN %d", Direction: scpi.Write, Description: "Select setpoint."},
			cmdTAGetSelSetpoint:    {Template: "SETN?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get selected setpoint."},
			cmdTAGetTempEvent:      {Template: "TECR?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get temperature event condition."},
			cmdTASetMaxTestTime:    {Template: "TTIM %d", Direction: scpi.Write, Description: "Set max test time."},
			cmdTAGetMaxTestTime:    {Template: "TTIM?", Direction: scpi.Query, Shape: scpi.Integer, Description: "Get max test time."},
		},
	}
}

// Commands returns a copy of the driver's command catalog, keyed by operation
// name.
func (ta *ThermalAirTA5000) Commands() map[string]scpi.CommandSpec {
	catalog := make(map[string]scpi.CommandSpec, len(ta.catalog))
	for name, spec := range ta.catalog {
		catalog[name] = spec
	}

	return catalog
}

// Temperature reads the main temperature in degrees Celsius.
func (ta *ThermalAirTA5000) Temperature() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetTemperature])
}

// AirTemperature reads the air temperature in degrees Celsius.
func (ta *ThermalAirTA5000) AirTemperature() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetAirTemperature])
}

// DutTemperature reads the DUT temperature in degrees Celsius.
func (ta *ThermalAirTA5000) DutTemperature() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetDutTemperature])
}

// SetSetpoint sets the temperature setpoint in degrees Celsius.
func (ta *ThermalAirTA5000) SetSetpoint(temperature float64) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetSetpoint], temperature)
	return err
}

// Setpoint reads the current temperature setpoint in degrees Celsius.
func (ta *ThermalAirTA5000) Setpoint() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetSetpoint])
}

// SetSoakTime sets the soak time in seconds.
func (ta *ThermalAirTA5000) SetSoakTime(seconds int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetSoakTime], seconds)
	return err
}

// SoakTime reads the soak time in seconds.
func (ta *ThermalAirTA5000) SoakTime() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetSoakTime])
	return int(n), err
}

// SetTemperatureWindow sets the temperature window in degrees Celsius.
func (ta *ThermalAirTA5000) SetTemperatureWindow(window float64) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetWindow], window)
	return err
}

// TemperatureWindow reads the temperature window in degrees Celsius.
func (ta *ThermalAirTA5000) TemperatureWindow() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetWindow])
}

// SetHeadDown puts the thermal head down.
func (ta *ThermalAirTA5000) SetHeadDown() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetHeadDown])
	return err
}

// SetHeadUp puts the thermal head up.
func (ta *ThermalAirTA5000) SetHeadUp() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetHeadUp])
	return err
}

// HeadState reads the up/down state of the test head, 1 for up and 0 for down.
func (ta *ThermalAirTA5000) HeadState() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetHeadState])
	return int(n), err
}

// SetFlowOn turns the main nozzle air flow on.
func (ta *ThermalAirTA5000) SetFlowOn() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetFlowOn])
	return err
}

// SetFlowOff turns the main nozzle air flow off.
func (ta *ThermalAirTA5000) SetFlowOff() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetFlowOff])
	return err
}

// SetFlowRate sets the main nozzle air flow rate in scfm (4 to 25).
func (ta *ThermalAirTA5000) SetFlowRate(scfm int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetFlowRate], scfm)
	return err
}

// FlowRateSetting reads the desired main nozzle air flow rate setting in scfm.
func (ta *ThermalAirTA5000) FlowRateSetting() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetFlowSetting])
	return int(n), err
}

// FlowRateMeasured reads the measured main nozzle air flow rate in scfm.
func (ta *ThermalAirTA5000) FlowRateMeasured() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetFlowMeasured])
	return int(n), err
}

// FlowRateLitersPerMin reads the measured main nozzle flow rate in liters/min.
func (ta *ThermalAirTA5000) FlowRateLitersPerMin() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetFlowLiters])
}

// SetDutControlModeOn turns DUT control mode on.
func (ta *ThermalAirTA5000) SetDutControlModeOn() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetDutModeOn])
	return err
}

// SetDutControlModeOff turns AIR control mode on by turning DUT mode off.
func (ta *ThermalAirTA5000) SetDutControlModeOff() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetDutModeOff])
	return err
}

// DutControlMode reads the DUT mode state, 1 for on and 0 for off.
func (ta *ThermalAirTA5000) DutControlMode() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetDutMode])
	return int(n), err
}

// SetDutSensorType sets the DUT sensor type (0 to 4).
func (ta *ThermalAirTA5000) SetDutSensorType(sensorType int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetDutSensor], sensorType)
	return err
}

// DutSensorType reads the DUT sensor type.
func (ta *ThermalAirTA5000) DutSensorType() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetDutSensor])
	return int(n), err
}

// SetTrickleFlowOn turns trickle flow on.
func (ta *ThermalAirTA5000) SetTrickleFlowOn() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetTrickleOn])
	return err
}

// SetTrickleFlowOff turns trickle flow off.
func (ta *ThermalAirTA5000) SetTrickleFlowOff() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetTrickleOff])
	return err
}

// TrickleFlowState reads the trickle flow setting, 1 for on and 0 for off.
func (ta *ThermalAirTA5000) TrickleFlowState() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetTrickleState])
	return int(n), err
}

// SetLowerTemperatureLimit sets the lower air temperature limit in degrees
// Celsius.
func (ta *ThermalAirTA5000) SetLowerTemperatureLimit(limit float64) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetLowerLimit], limit)
	return err
}

// LowerTemperatureLimit reads the lower air temperature limit in degrees
// Celsius.
func (ta *ThermalAirTA5000) LowerTemperatureLimit() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetLowerLimit])
}

// SetUpperTemperatureLimit sets the upper air temperature limit in degrees
// Celsius.
func (ta *ThermalAirTA5000) SetUpperTemperatureLimit(limit int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetUpperLimit], limit)
	return err
}

// UpperTemperatureLimit reads the upper air temperature limit in degrees
// Celsius.
func (ta *ThermalAirTA5000) UpperTemperatureLimit() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetUpperLimit])
	return int(n), err
}

// ErrorState reads the bit-masked system error state.
func (ta *ThermalAirTA5000) ErrorState() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetErrorState])
	return int(n), err
}

// SetAirToDutMaxDifference sets the air-to-DUT maximum temperature difference
// in degrees Celsius (10 to 300).
func (ta *ThermalAirTA5000) SetAirToDutMaxDifference(difference int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetAirDutDiff], difference)
	return err
}

// AirToDutMaxDifference reads the air-to-DUT maximum temperature difference in
// degrees Celsius.
func (ta *ThermalAirTA5000) AirToDutMaxDifference() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetAirDutDiff])
	return int(n), err
}

// AuxiliaryCondition reads the bit-masked auxiliary condition data.
func (ta *ThermalAirTA5000) AuxiliaryCondition() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetAuxCondition])
	return int(n), err
}

// SetCompressorOn turns the compressor on.
func (ta *ThermalAirTA5000) SetCompressorOn() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetCompressorOn])
	return err
}

// SetCompressorOff turns the compressor off.
func (ta *ThermalAirTA5000) SetCompressorOff() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetCompressorOff])
	return err
}

// CompressorState reads the compressor state, 1 for on and 0 for off.
func (ta *ThermalAirTA5000) CompressorState() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetCompressor])
	return int(n), err
}

// SetCycleCount sets the cycle count (1 to 999).
func (ta *ThermalAirTA5000) SetCycleCount(count int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetCycleCount], count)
	return err
}

// CycleCount reads the cycle count.
func (ta *ThermalAirTA5000) CycleCount() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetCycleCount])
	return int(n), err
}

// StartCycling starts the temperature cycling function.
func (ta *ThermalAirTA5000) StartCycling() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTAStartCycling])
	return err
}

// StopCycling stops the temperature cycling function.
func (ta *ThermalAirTA5000) StopCycling() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTAStopCycling])
	return err
}

// CyclingState reads the cycling state, 1 for started and 0 for stopped.
func (ta *ThermalAirTA5000) CyclingState() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetCyclingState])
	return int(n), err
}

// SetDutAutoTuneMode sets the DUT auto tune mode, 0 for off, 1 for on, 2 for
// hold.
func (ta *ThermalAirTA5000) SetDutAutoTuneMode(mode int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetAutoTuneMode], mode)
	return err
}

// DutAutoTuneMode reads the DUT auto tune mode.
func (ta *ThermalAirTA5000) DutAutoTuneMode() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetAutoTuneMode])
	return int(n), err
}

// LockHead locks the test head in its current position.
func (ta *ThermalAirTA5000) LockHead() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTALockHead])
	return err
}

// UnlockHead unlocks the test head.
func (ta *ThermalAirTA5000) UnlockHead() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTAUnlockHead])
	return err
}

// NextSetpoint steps to the next setpoint during temperature cycling.
func (ta *ThermalAirTA5000) NextSetpoint() error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTANextSetpoint])
	return err
}

// SetRampRate sets the ramp rate in degrees Celsius per minute.
func (ta *ThermalAirTA5000) SetRampRate(rate float64) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetRampRate], rate)
	return err
}

// RampRate reads the ramp rate in degrees Celsius per minute.
func (ta *ThermalAirTA5000) RampRate() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetRampRate])
}

// DynamicSetpoint reads the dynamic temperature setpoint in degrees Celsius.
func (ta *ThermalAirTA5000) DynamicSetpoint() (float64, error) {
	return ta.Engine().QueryFloat(ta.catalog[cmdTAGetDynSetpoint])
}

// SelectSetpoint selects a setpoint to be the current setpoint, 0 for hot, 1
// for ambient, 2 for cold.
func (ta *ThermalAirTA5000) SelectSetpoint(index int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASelectSetpoint], index)
	return err
}

// SelectedSetpoint reads the current setpoint number.
func (ta *ThermalAirTA5000) SelectedSetpoint() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetSelSetpoint])
	return int(n), err
}

// TemperatureEventCondition reads the bit-masked temperature event condition
// register.
func (ta *ThermalAirTA5000) TemperatureEventCondition() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetTempEvent])
	return int(n), err
}

// SetMaxTestTime sets the maximum allowable test time in milliseconds.
func (ta *ThermalAirTA5000) SetMaxTestTime(ms int) error {
	_, err := ta.Engine().Execute(ta.catalog[cmdTASetMaxTestTime], ms)
	return err
}

// MaxTestTime reads the maximum allowable test time in milliseconds.
func (ta *ThermalAirTA5000) MaxTestTime() (int, error) {
	n, err := ta.Engine().QueryInt(ta.catalog[cmdTAGetMaxTestTime])
	return int(n), err
}
