package drivers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-visa/scpi"
)

// scriptSession is a fake scpi.Session that records every command it receives
// and serves scripted replies keyed by command text.
type scriptSession struct {
	commands  []string
	delays    []time.Duration
	replies   map[string]string
	autoCheck bool
}

var _ scpi.Session = (*scriptSession)(nil)

func newScriptSession() *scriptSession {
	return &scriptSession{replies: make(map[string]string)}
}

func (s *scriptSession) reply(command, response string) {
	s.replies[command] = response
}

func (s *scriptSession) Write(command string) error {
	s.commands = append(s.commands, command)
	return nil
}

func (s *scriptSession) Query(command string, _ int, delay time.Duration) (string, error) {
	s.commands = append(s.commands, command)
	s.delays = append(s.delays, delay)

	resp, ok := s.replies[command]
	if !ok {
		return "", fmt.Errorf("unexpected query %q", command)
	}
	return resp, nil
}

func (s *scriptSession) AutoErrorCheck() bool { return s.autoCheck }

func (s *scriptSession) Resource() string { return "TEST::dev1::INSTR" }

func TestInstrumentCommonCommands(t *testing.T) {
	require := require.New(t)

	sess := newScriptSession()
	sess.reply("*IDN?", "ACME,PSU-1,0,1.0\n")
	sess.reply("*OPC?", "1\n")
	sess.reply("*TST?", "0\n")
	sess.reply("*STB?", "64\n")
	sess.reply("*ESR?", "32\n")
	sess.reply("*ESE?", "255\n")
	sess.reply("*SRE?", "16\n")

	in := NewInstrument(sess, "test instrument")
	require.Equal("test instrument", in.Description())
	require.Same(sess, in.Session())

	idn, err := in.Identify()
	require.NoError(err)
	require.Equal("ACME,PSU-1,0,1.0", idn)

	require.NoError(in.Reset())
	require.NoError(in.ClearStatus())
	require.NoError(in.WaitToContinue())

	done, err := in.OperationComplete()
	require.NoError(err)
	require.True(done)

	code, err := in.SelfTest()
	require.NoError(err)
	require.Equal(0, code)

	stb, err := in.StatusByte()
	require.NoError(err)
	require.Equal(uint8(64), stb)

	esr, err := in.EventStatus()
	require.NoError(err)
	require.Equal(uint8(32), esr)

	require.NoError(in.SetEventStatusEnable(255))
	ese, err := in.EventStatusEnable()
	require.NoError(err)
	require.Equal(uint8(255), ese)

	require.NoError(in.SetServiceRequestEnable(16))
	sre, err := in.ServiceRequestEnable()
	require.NoError(err)
	require.Equal(uint8(16), sre)

	require.Contains(sess.commands, "*RST")
	require.Contains(sess.commands, "*CLS")
	require.Contains(sess.commands, "*WAI")
	require.Contains(sess.commands, "*ESE 255")
	require.Contains(sess.commands, "*SRE 16")

	in.SetDescription("renamed")
	require.Equal("renamed", in.Description())
}

func TestInstrumentExecuteChain(t *testing.T) {
	require := require.New(t)

	sess := newScriptSession()
	in := NewInstrument(sess, "test instrument")

	require.NoError(in.ExecuteChain([]scpi.CommandSpec{scpi.ClearStatus, scpi.Reset}, ";"))
	require.Equal([]string{"*CLS;*RST"}, sess.commands)
}

func TestPowerSupply(t *testing.T) {
	require := require.New(t)

	sess := newScriptSession()
	sess.reply("VOLT?", "12.500000\n")
	sess.reply("CURR?", "1.500000\n")
	sess.reply("OUTP?", "1\n")

	ps := NewPowerSupply(sess)

	require.NoError(ps.SetVoltage(12.5))
	require.Equal([]string{"VOLT 12.500000"}, sess.commands)

	v, err := ps.Voltage()
	require.NoError(err)
	require.InDelta(12.5, v, 1e-9)

	require.NoError(ps.SetCurrent(1.5))
	i, err := ps.Current()
	require.NoError(err)
	require.InDelta(1.5, i, 1e-9)

	require.NoError(ps.SetOutput(true))
	require.Contains(sess.commands, "OUTP 1")
	require.NoError(ps.SetOutput(false))
	require.Contains(sess.commands, "OUTP 0")

	on, err := ps.OutputEnabled()
	require.NoError(err)
	require.True(on)
}

func TestPowerSupplyCommands(t *testing.T) {
	require := require.New(t)

	ps := NewPowerSupply(newScriptSession())
	catalog := ps.Commands()
	require.Len(catalog, 6)
	for name, spec := range catalog {
		require.NoError(spec.Validate(), "catalog entry %s", name)
	}

	// the copy does not alias the driver's catalog
	catalog["setVoltage"] = scpi.CommandSpec{Template: "BOGUS"}
	require.Equal("VOLT %f", ps.Commands()["setVoltage"].Template)
}

func TestAgilent66xxA(t *testing.T) {
	require := require.New(t)

	sess := newScriptSession()
	sess.reply("SOURCE:VOLTAGE:LEVEL:IMMEDIATE:AMPLITUDE?", "+5.000000E+00\n")
	sess.reply("MEASURE:VOLTAGE:DC?", "+4.998700E+00\n")
	sess.reply("MEASURE:CURRENT:DC?", "+1.200000E-01\n")
	sess.reply("OUTPUT:STATE?", "1\n")
	sess.reply("SOURCE:VOLTAGE:PROTECTION:LEVEL?", "6.000000\n")
	sess.reply("SOURCE:CURRENT:PROTECTION:STATE?", "0\n")
	sess.reply("DISPLAY:WINDOW:STATE?", "ON\n")
	sess.reply("DISPLAY:WINDOW:TEXT:DATA?", "\"TESTING\"\n")
	sess.reply("SOURCE:VOLTAGE:LEVEL:TRIGGERED:AMPLITUDE?", "3.300000\n")
	sess.reply("SOURCE:CURRENT:LEVEL:TRIGGERED:AMPLITUDE?", "0.500000\n")

	psu := NewAgilent66xxA(sess)

	t.Run("SourceAndMeasure", func(t *testing.T) {
		require.NoError(psu.SetVoltage(5.0))
		require.Contains(sess.commands, "SOURCE:VOLTAGE:LEVEL:IMMEDIATE:AMPLITUDE 5.000000")

		setting, err := psu.VoltageSetting()
		require.NoError(err)
		require.InDelta(5.0, setting, 1e-9)

		measured, err := psu.MeasureVoltage()
		require.NoError(err)
		require.InDelta(4.9987, measured, 1e-6)
		// averaged DC measurements settle before the read
		require.Equal(measureDelay, sess.delays[len(sess.delays)-1])

		require.NoError(psu.SetCurrent(0.8))
		require.Contains(sess.commands, "SOURCE:CURRENT:LEVEL:IMMEDIATE:AMPLITUDE 0.800000")

		current, err := psu.MeasureCurrent()
		require.NoError(err)
		require.InDelta(0.12, current, 1e-6)
	})

	t.Run("OutputAndProtection", func(t *testing.T) {
		require.NoError(psu.SetOutput(true))
		require.Contains(sess.commands, "OUTPUT:STATE ON")
		require.NoError(psu.SetOutput(false))
		require.Contains(sess.commands, "OUTPUT:STATE OFF")

		on, err := psu.OutputEnabled()
		require.NoError(err)
		require.True(on)

		require.NoError(psu.SetOverVoltageProtection(6.0))
		ovp, err := psu.OverVoltageProtection()
		require.NoError(err)
		require.InDelta(6.0, ovp, 1e-9)

		require.NoError(psu.SetOverCurrentProtection(true))
		require.Contains(sess.commands, "SOURCE:CURRENT:PROTECTION:STATE ON")
		ocp, err := psu.OverCurrentProtectionEnabled()
		require.NoError(err)
		require.False(ocp)

		require.NoError(psu.ClearProtection())
		require.Contains(sess.commands, "OUTPUT:PROTECTION:CLEAR")
	})

	t.Run("Display", func(t *testing.T) {
		require.NoError(psu.DisplayText("TESTING"))
		require.Contains(sess.commands, `DISPLAY:WINDOW:TEXT:DATA "TESTING"`)

		text, err := psu.DisplayedText()
		require.NoError(err)
		require.Equal(`"TESTING"`, text)

		on, err := psu.DisplayEnabled()
		require.NoError(err)
		require.True(on)
	})

	t.Run("TriggerSubsystem", func(t *testing.T) {
		require.NoError(psu.SetTriggerSourceBus())
		require.NoError(psu.SetTriggeredVoltage(3.3))
		require.NoError(psu.SetTriggeredCurrent(0.5))
		require.NoError(psu.Initiate())
		require.NoError(psu.Trigger())
		require.NoError(psu.Abort())

		require.Contains(sess.commands, "TRIGGER:SOURCE BUS")
		require.Contains(sess.commands, "SOURCE:VOLTAGE:LEVEL:TRIGGERED:AMPLITUDE 3.300000")
		require.Contains(sess.commands, "INITIATE:IMMEDIATE")
		require.Contains(sess.commands, "TRIGGER:IMMEDIATE")
		require.Contains(sess.commands, "ABORT")

		tv, err := psu.TriggeredVoltage()
		require.NoError(err)
		require.InDelta(3.3, tv, 1e-9)

		tc, err := psu.TriggeredCurrent()
		require.NoError(err)
		require.InDelta(0.5, tc, 1e-9)
	})

	t.Run("CatalogConsistent", func(t *testing.T) {
		for name, spec := range psu.Commands() {
			require.NoError(spec.Validate(), "catalog entry %s", name)
		}
	})
}

func TestThermalAirTA5000(t *testing.T) {
	require := require.New(t)

	sess := newScriptSession()
	sess.reply("TEMP?", "25.300000\n")
	sess.reply("TMPA?", "25.100000\n")
	sess.reply("TMPD?", "26.000000\n")
	sess.reply("SETP?", "85.000000\n")
	sess.reply("SOAK?", "60\n")
	sess.reply("WNDW?", "1.500000\n")
	sess.reply("HEAD?", "1\n")
	sess.reply("FLSE?", "10\n")
	sess.reply("FLWR?", "9\n")
	sess.reply("FLRL?", "254.700000\n")
	sess.reply("DUTM?", "1\n")
	sess.reply("EROR?", "0\n")
	sess.reply("RAMP?", "5.000000\n")
	sess.reply("SETN?", "2\n")
	sess.reply("CYCP?", "1\n")

	ta := NewThermalAirTA5000(sess)

	t.Run("Temperatures", func(t *testing.T) {
		temp, err := ta.Temperature()
		require.NoError(err)
		require.InDelta(25.3, temp, 1e-9)

		air, err := ta.AirTemperature()
		require.NoError(err)
		require.InDelta(25.1, air, 1e-9)

		dut, err := ta.DutTemperature()
		require.NoError(err)
		require.InDelta(26.0, dut, 1e-9)
	})

	t.Run("SetpointAndSoak", func(t *testing.T) {
		require.NoError(ta.SetSetpoint(85.0))
		require.Contains(sess.commands, "SETP 85.000000")

		sp, err := ta.Setpoint()
		require.NoError(err)
		require.InDelta(85.0, sp, 1e-9)

		require.NoError(ta.SetSoakTime(60))
		require.Contains(sess.commands, "SOAK 60")

		soak, err := ta.SoakTime()
		require.NoError(err)
		require.Equal(60, soak)

		require.NoError(ta.SetTemperatureWindow(1.5))
		window, err := ta.TemperatureWindow()
		require.NoError(err)
		require.InDelta(1.5, window, 1e-9)
	})

	t.Run("HeadAndFlow", func(t *testing.T) {
		require.NoError(ta.SetHeadDown())
		require.Contains(sess.commands, "HEAD 1")
		require.NoError(ta.SetHeadUp())
		require.Contains(sess.commands, "HEAD 0")

		state, err := ta.HeadState()
		require.NoError(err)
		require.Equal(1, state)

		require.NoError(ta.SetFlowOn())
		require.Contains(sess.commands, "FLOW 1")
		require.NoError(ta.SetFlowRate(10))
		require.Contains(sess.commands, "FLSE 10")

		setting, err := ta.FlowRateSetting()
		require.NoError(err)
		require.Equal(10, setting)

		measured, err := ta.FlowRateMeasured()
		require.NoError(err)
		require.Equal(9, measured)

		liters, err := ta.FlowRateLitersPerMin()
		require.NoError(err)
		require.InDelta(254.7, liters, 1e-9)
	})

	t.Run("ControlModes", func(t *testing.T) {
		require.NoError(ta.SetDutControlModeOn())
		require.Contains(sess.commands, "DUTM 1")

		mode, err := ta.DutControlMode()
		require.NoError(err)
		require.Equal(1, mode)

		errState, err := ta.ErrorState()
		require.NoError(err)
		require.Equal(0, errState)
	})

	t.Run("Cycling", func(t *testing.T) {
		require.NoError(ta.SetCycleCount(5))
		require.Contains(sess.commands, "CYCC 5")
		require.NoError(ta.StartCycling())
		require.Contains(sess.commands, "CYCL 1")

		cycling, err := ta.CyclingState()
		require.NoError(err)
		require.Equal(1, cycling)

		require.NoError(ta.NextSetpoint())
		require.Contains(sess.commands, "NEXT")

		require.NoError(ta.SetRampRate(5.0))
		rate, err := ta.RampRate()
		require.NoError(err)
		require.InDelta(5.0, rate, 1e-9)

		require.NoError(ta.SelectSetpoint(2))
		require.Contains(sess.commands, "SETN 2")
		sel, err := ta.SelectedSetpoint()
		require.NoError(err)
		require.Equal(2, sel)

		require.NoError(ta.StopCycling())
		require.Contains(sess.commands, "CYCL 0")
	})

	t.Run("CatalogConsistent", func(t *testing.T) {
		for name, spec := range ta.Commands() {
			require.NoError(spec.Validate(), "catalog entry %s", name)
		}
	})
}
