package scpi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-visa/visa"
)

// Value is the typed result of decoding a query response. It is a tagged
// value over {string, double, integer, boolean}; the accessor matching the
// shape returns the decoded data, the others return zero values.
type Value struct {
	shape ResponseShape
	raw   string
	text  string
	num   float64
	inum  int64
	bval  bool
}

// Shape returns the response shape the value was decoded as.
func (v Value) Shape() ResponseShape { return v.shape }

// Raw returns the response text as received, before any trimming.
func (v Value) Raw() string { return v.raw }

// Text returns the response text with the trailing line ending trimmed.
func (v Value) Text() string { return v.text }

// Float returns the decoded floating-point value for shape Double, and the
// numeric value for shape Integer.
func (v Value) Float() float64 { return v.num }

// Int returns the decoded integer value for shape Integer.
func (v Value) Int() int64 { return v.inum }

// Bool returns the decoded boolean value for shape Boolean.
func (v Value) Bool() bool { return v.bval }

// Decode converts a raw query response into the type implied by shape.
//
// The trailing line-ending characters ('\n', '\r') are always trimmed before
// interpretation. Numeric shapes use a locale-independent parse of the
// whitespace-trimmed text; a parse failure is a command-kind error carrying
// the offending response text. Shape None fails with ErrNotDecodable.
//
// Boolean decoding is deliberately permissive: the result is true if the
// trimmed text contains the substring "1" or the substring "ON", false
// otherwise. Instruments reply "1"/"0" or "ON"/"OFF" inconsistently, which
// this heuristic absorbs; the known weakness is that purely numeric responses
// such as "10" also decode to true.
func Decode(shape ResponseShape, raw string) (Value, error) {
	text := strings.TrimRight(raw, "\r\n")
	v := Value{shape: shape, raw: raw, text: text}

	switch shape {
	case String:
		return v, nil

	case Double:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return Value{}, decodeError(shape, text)
		}
		v.num = f

	case Integer:
		s := strings.TrimSpace(text)
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// instruments report integer registers in numeric notations such as
			// "+5.000000E+00"; accept anything that parses as a float
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return Value{}, decodeError(shape, text)
			}
			n = int64(f)
		}
		v.inum = n
		v.num = float64(n)

	case Boolean:
		v.bval = strings.Contains(text, "1") || strings.Contains(text, "ON")

	case None:
		return Value{}, &visa.Error{Kind: visa.KindCommand, Op: "decode", Err: ErrNotDecodable}

	default:
		return Value{}, &visa.Error{Kind: visa.KindCommand, Op: "decode", Msg: fmt.Sprintf("unknown response shape %d", shape)}
	}

	return v, nil
}

func decodeError(shape ResponseShape, text string) *visa.Error {
	return &visa.Error{
		Kind: visa.KindCommand,
		Op:   "decode",
		Msg:  fmt.Sprintf("failed to parse %s from instrument response %q", shape, text),
	}
}
