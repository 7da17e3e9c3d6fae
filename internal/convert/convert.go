package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/comigor/unitconv-go/internal/units"
)

// ErrMissingValue is returned when no value was provided for conversion.
var ErrMissingValue = errors.New("missing value")

// Result is a successful conversion.
type Result struct {
	Value     float64
	From      string
	To        string
	Converted float64
	// Identity marks the from == to short-circuit: Converted is the input
	// echoed untouched, and rendering must not reformat it.
	Identity bool
}

// Convert converts value from one unit of category to another. A nil value
// yields ErrMissingValue before any arithmetic. When from equals to, the
// value is echoed without computation so the identity case stays bit-exact.
func Convert(category string, value *float64, from, to string) (Result, error) {
	if value == nil {
		return Result{}, ErrMissingValue
	}
	v := *value
	if from == to {
		return Result{Value: v, From: from, To: to, Converted: v, Identity: true}, nil
	}
	c, err := units.Lookup(category)
	if err != nil {
		return Result{}, err
	}
	out, err := c.Convert(v, from, to)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, From: from, To: to, Converted: out}, nil
}

// String renders the conversion as "{value} {from} = {result} {to}".
func (r Result) String() string {
	v := formatValue(r.Value)
	if r.Identity {
		return fmt.Sprintf("%s %s = %s %s", v, r.From, v, r.To)
	}
	return fmt.Sprintf("%s %s = %s %s", v, r.From, formatResult(r.Converted), r.To)
}

// Render produces the user-facing line for either outcome of Convert. Every
// error is recovered here and turned into marked text; nothing escapes to the
// caller as a failure.
func Render(r Result, err error) string {
	switch {
	case err == nil:
		return r.String()
	case errors.Is(err, ErrMissingValue):
		return "❌ Enter a number."
	case errors.Is(err, units.ErrInvalidTemperatureUnit):
		return "❌ Invalid temperature unit."
	default:
		return "❌ Error: " + err.Error()
	}
}

// formatValue echoes an input value exactly, without exponent notation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatResult renders a computed value: within 1e-9 absolute of an integer
// it renders as that integer, otherwise with 6 decimals and trailing zeros
// stripped. The tolerance does not scale with magnitude, so results beyond
// roughly 1e12 may land on the integer path.
func formatResult(v float64) string {
	rounded := math.Round(v)
	if math.Abs(v-rounded) < 1e-9 {
		if rounded == 0 {
			return "0"
		}
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	out := strconv.FormatFloat(v, 'f', 6, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}
