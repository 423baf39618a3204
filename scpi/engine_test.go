package scpi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-visa/visa"
)

const testResource = "TCPIP::192.168.0.10::5025::SOCKET"

func newMockSession(autoCheck bool) *MockSession {
	sess := &MockSession{}
	sess.On("Resource").Return(testResource).Maybe()
	sess.On("AutoErrorCheck").Return(autoCheck).Maybe()
	return sess
}

func TestFormatCommand(t *testing.T) {
	require := require.New(t)

	t.Run("NoArguments", func(t *testing.T) {
		cmd, err := FormatCommand(CommandSpec{Template: "*RST", Direction: Write})
		require.NoError(err)
		require.Equal("*RST", cmd)
	})

	t.Run("FloatArgument", func(t *testing.T) {
		cmd, err := FormatCommand(CommandSpec{Template: "VOLT %f", Direction: Write}, 5.0)
		require.NoError(err)
		require.Equal("VOLT 5.000000", cmd)
	})

	t.Run("MultipleArguments", func(t *testing.T) {
		cmd, err := FormatCommand(CommandSpec{Template: "APPL %f,%f", Direction: Write}, 5.0, 1.5)
		require.NoError(err)
		require.Equal("APPL 5.000000,1.500000", cmd)
	})

	t.Run("TooFewArguments", func(t *testing.T) {
		_, err := FormatCommand(CommandSpec{Template: "VOLT %f", Direction: Write})
		require.ErrorIs(err, ErrArgumentCount)
		require.True(visa.IsCommand(err))
	})

	t.Run("TooManyArguments", func(t *testing.T) {
		_, err := FormatCommand(CommandSpec{Template: "*RST", Direction: Write}, 5.0)
		require.ErrorIs(err, ErrArgumentCount)
	})

	t.Run("WrongArgumentType", func(t *testing.T) {
		_, err := FormatCommand(CommandSpec{Template: "VOLT %f", Direction: Write}, "five")
		require.ErrorIs(err, ErrArgumentType)
		require.True(visa.IsCommand(err))
	})
}

func TestEngineExecuteWrite(t *testing.T) {
	require := require.New(t)

	sess := newMockSession(false)
	sess.On("Write", "VOLT 5.000000").Return(nil).Once()

	eng := NewEngine(sess)
	resp, err := eng.Execute(CommandSpec{Template: "VOLT %f", Direction: Write}, 5.0)
	require.NoError(err)
	require.Empty(resp)

	sess.AssertExpectations(t)
	sess.AssertNumberOfCalls(t, "Write", 1)
}

func TestEngineExecuteQuery(t *testing.T) {
	require := require.New(t)

	t.Run("PassesDelay", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Query", "MEASURE:VOLTAGE:DC?", DefaultMaxResponse, 50*time.Millisecond).
			Return(" 12.345\n", nil).Once()

		eng := NewEngine(sess)
		spec := CommandSpec{Template: "MEASURE:VOLTAGE:DC?", Direction: Query, Shape: Double, Delay: 50 * time.Millisecond}
		resp, err := eng.Execute(spec)
		require.NoError(err)
		require.Equal(" 12.345\n", resp)

		sess.AssertExpectations(t)
	})

	t.Run("SessionFailure", func(t *testing.T) {
		sessErr := &visa.Error{Kind: visa.KindTimeout, Op: "read", Resource: testResource, Err: visa.ErrTimeout}
		sess := newMockSession(false)
		sess.On("Query", "VOLT?", DefaultMaxResponse, time.Duration(0)).Return("", sessErr).Once()

		eng := NewEngine(sess)
		_, err := eng.Execute(CommandSpec{Template: "VOLT?", Direction: Query, Shape: Double})
		require.ErrorIs(err, visa.ErrTimeout)
		require.True(visa.IsTimeout(err))
	})

	t.Run("FormatErrorBeforeIO", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		_, err := eng.Execute(CommandSpec{Template: "VOLT %f", Direction: Write}, 1.0, 2.0)
		require.ErrorIs(err, ErrArgumentCount)

		sess.AssertNotCalled(t, "Write")
		sess.AssertNotCalled(t, "Query")
	})
}

func TestEngineAutoErrorCheck(t *testing.T) {
	require := require.New(t)

	t.Run("NoPendingError", func(t *testing.T) {
		sess := newMockSession(true)
		sess.On("Write", "*RST").Return(nil).Once()
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).
			Return("+0,\"No error\"\n", nil).Once()

		eng := NewEngine(sess)
		_, err := eng.Execute(Reset)
		require.NoError(err)

		sess.AssertExpectations(t)
	})

	t.Run("PendingError", func(t *testing.T) {
		sess := newMockSession(true)
		sess.On("Write", "VOLTZ 5.000000").Return(nil).Once()
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).
			Return("-113,\"Undefined header\"\n", nil).Once()

		eng := NewEngine(sess)
		_, err := eng.Execute(CommandSpec{Template: "VOLTZ %f", Direction: Write}, 5.0)
		require.Error(err)
		require.True(visa.IsInstrument(err))

		var verr *visa.Error
		require.ErrorAs(err, &verr)
		require.Equal(-113, verr.Status)
		require.Contains(verr.Msg, "Undefined header")
	})

	t.Run("DisabledSkipsQueue", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Write", "*RST").Return(nil).Once()

		eng := NewEngine(sess)
		_, err := eng.Execute(Reset)
		require.NoError(err)

		sess.AssertNotCalled(t, "Query")
	})
}

func TestEngineExecuteChain(t *testing.T) {
	require := require.New(t)

	t.Run("SingleJoinedWrite", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Write", "*CLS;*RST;OUTP OFF").Return(nil).Once()

		eng := NewEngine(sess)
		specs := []CommandSpec{
			ClearStatus,
			Reset,
			{Template: "OUTP OFF", Direction: Write},
		}
		require.NoError(eng.ExecuteChain(specs, ";"))

		sess.AssertExpectations(t)
		sess.AssertNumberOfCalls(t, "Write", 1)
	})

	t.Run("EmptyChain", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		require.NoError(eng.ExecuteChain(nil, ";"))
		sess.AssertNotCalled(t, "Write")
	})

	t.Run("RejectsQueryBeforeIO", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		err := eng.ExecuteChain([]CommandSpec{Reset, IDNQuery}, ";")
		require.ErrorIs(err, ErrChainNotWrite)
		require.True(visa.IsCommand(err))
		sess.AssertNotCalled(t, "Write")
	})

	t.Run("RejectsPlaceholderBeforeIO", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		specs := []CommandSpec{Reset, {Template: "VOLT %f", Direction: Write}}
		err := eng.ExecuteChain(specs, ";")
		require.ErrorIs(err, ErrChainPlaceholder)
		sess.AssertNotCalled(t, "Write")
	})

	t.Run("AutoErrorCheckAfterChain", func(t *testing.T) {
		sess := newMockSession(true)
		sess.On("Write", "*CLS;*RST").Return(nil).Once()
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).
			Return("0,\"No error\"\n", nil).Once()

		eng := NewEngine(sess)
		require.NoError(eng.ExecuteChain([]CommandSpec{ClearStatus, Reset}, ";"))
		sess.AssertExpectations(t)
	})
}

func TestEngineQueryValue(t *testing.T) {
	require := require.New(t)

	t.Run("TypedResult", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Query", "VOLT?", DefaultMaxResponse, time.Duration(0)).Return("+5.000000E+00\n", nil).Once()

		eng := NewEngine(sess)
		v, err := eng.QueryValue(CommandSpec{Template: "VOLT?", Direction: Query, Shape: Double})
		require.NoError(err)
		require.Equal(Double, v.Shape())
		require.InDelta(5.0, v.Float(), 1e-9)
	})

	t.Run("RejectsWriteSpec", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		_, err := eng.QueryValue(Reset)
		require.ErrorIs(err, ErrNotQuery)
		sess.AssertNotCalled(t, "Query")
	})

	t.Run("RejectsInconsistentSpec", func(t *testing.T) {
		sess := newMockSession(false)

		eng := NewEngine(sess)
		_, err := eng.QueryValue(CommandSpec{Template: "VOLT?", Direction: Query, Shape: None})
		require.ErrorIs(err, ErrShapeMismatch)
		sess.AssertNotCalled(t, "Query")
	})

	t.Run("DecodeFailureNamesCommand", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Query", "VOLT?", DefaultMaxResponse, time.Duration(0)).Return("garbage\n", nil).Once()

		eng := NewEngine(sess)
		_, err := eng.QueryValue(CommandSpec{Template: "VOLT?", Direction: Query, Shape: Double})
		require.Error(err)
		require.True(visa.IsCommand(err))
		require.Contains(err.Error(), `"VOLT?"`)
		require.Contains(err.Error(), `"garbage"`)
	})
}

func TestEngineTypedQueries(t *testing.T) {
	require := require.New(t)

	sess := newMockSession(false)
	sess.On("Query", "*IDN?", DefaultMaxResponse, time.Duration(0)).Return("ACME,PSU-1,0,1.0\n", nil).Once()
	sess.On("Query", "VOLT?", DefaultMaxResponse, time.Duration(0)).Return("12.5\n", nil).Once()
	sess.On("Query", "*ESR?", DefaultMaxResponse, time.Duration(0)).Return("32\n", nil).Once()
	sess.On("Query", "OUTP?", DefaultMaxResponse, time.Duration(0)).Return("1\n", nil).Once()

	eng := NewEngine(sess)

	s, err := eng.QueryString(IDNQuery)
	require.NoError(err)
	require.Equal("ACME,PSU-1,0,1.0", s)

	f, err := eng.QueryFloat(CommandSpec{Template: "VOLT?", Direction: Query, Shape: Double})
	require.NoError(err)
	require.InDelta(12.5, f, 1e-9)

	n, err := eng.QueryInt(ESRQuery)
	require.NoError(err)
	require.Equal(int64(32), n)

	b, err := eng.QueryBool(CommandSpec{Template: "OUTP?", Direction: Query, Shape: Boolean})
	require.NoError(err)
	require.True(b)
}

func TestEngineWithMaxResponse(t *testing.T) {
	require := require.New(t)

	sess := newMockSession(false)
	sess.On("Query", "*IDN?", 128, time.Duration(0)).Return("ACME,PSU-1,0,1.0\n", nil).Once()

	eng := NewEngine(sess, WithMaxResponse(128))
	_, err := eng.QueryString(IDNQuery)
	require.NoError(err)
	sess.AssertExpectations(t)
}

func TestCheckErrorQueue(t *testing.T) {
	require := require.New(t)

	t.Run("NoErrorSentinels", func(t *testing.T) {
		for _, entry := range []string{"0,\"No error\"\n", "+0,\"No error\"\n", "0\n"} {
			sess := newMockSession(false)
			sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).Return(entry, nil).Once()

			eng := NewEngine(sess)
			require.NoError(eng.CheckErrorQueue(), "entry %q", entry)
		}
	})

	t.Run("PendingEntry", func(t *testing.T) {
		sess := newMockSession(false)
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).
			Return("-222,\"Data out of range\"\n", nil).Once()

		eng := NewEngine(sess)
		err := eng.CheckErrorQueue()
		require.True(visa.IsInstrument(err))

		var verr *visa.Error
		require.ErrorAs(err, &verr)
		require.Equal(-222, verr.Status)
	})

	t.Run("UnparseableEntry", func(t *testing.T) {
		// an entry without a leading numeric code is not the no-error sentinel
		sess := newMockSession(false)
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).Return("garbled\n", nil).Once()

		eng := NewEngine(sess)
		err := eng.CheckErrorQueue()
		require.True(visa.IsInstrument(err))
	})

	t.Run("QueueQueryFails", func(t *testing.T) {
		sessErr := errors.New("broken pipe")
		sess := newMockSession(false)
		sess.On("Query", "SYST:ERR?", DefaultMaxResponse, time.Duration(0)).Return("", sessErr).Once()

		eng := NewEngine(sess)
		require.ErrorIs(eng.CheckErrorQueue(), sessErr)
	})
}
