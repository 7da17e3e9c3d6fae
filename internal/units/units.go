package units

import (
	"errors"
	"fmt"
)

// Category is a measurement domain. Linear categories relate their units to a
// base unit through multiplicative scale factors; Temperature is affine and
// carries dedicated formulas instead of a scale table.
type Category interface {
	Name() string
	// Units returns the unit labels of the category in display order.
	Units() []string
	// Convert converts value from one unit of the category to another.
	Convert(value float64, from, to string) (float64, error)
}

var (
	// ErrUnknownCategory is returned when a category name is outside the
	// closed set. Callers are expected to pass names from Names, so hitting
	// this is a programming error rather than user input.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidTemperatureUnit is returned when a temperature conversion is
	// asked for a unit other than °C, °F or K.
	ErrInvalidTemperatureUnit = errors.New("invalid temperature unit")
)

// UnknownUnitError reports a unit label absent from a category's scale table.
type UnknownUnitError struct {
	Category string
	Unit     string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q in category %s", e.Unit, e.Category)
}

// scaledUnit is one entry of a linear category's table: label times factor
// equals the amount in base units.
type scaledUnit struct {
	label  string
	factor float64
}

// linear is a category whose units are all multiples of a common base unit.
// The base unit has factor exactly 1.
type linear struct {
	name  string
	base  string
	units []scaledUnit
}

func (c *linear) Name() string { return c.name }

func (c *linear) Units() []string {
	labels := make([]string, len(c.units))
	for i, u := range c.units {
		labels[i] = u.label
	}
	return labels
}

func (c *linear) factor(label string) (float64, bool) {
	// Tables hold at most a handful of units; a scan keeps insertion order
	// and the lookup in one structure.
	for _, u := range c.units {
		if u.label == label {
			return u.factor, true
		}
	}
	return 0, false
}

func (c *linear) Convert(value float64, from, to string) (float64, error) {
	ff, ok := c.factor(from)
	if !ok {
		return 0, &UnknownUnitError{Category: c.name, Unit: from}
	}
	ft, ok := c.factor(to)
	if !ok {
		return 0, &UnknownUnitError{Category: c.name, Unit: to}
	}
	return value * ff / ft, nil
}

const (
	celsius    = "°C"
	fahrenheit = "°F"
	kelvin     = "K"
)

// temperature is the affine category: °C, °F and K are related by formulas
// with an additive term, so normalization goes through Celsius.
type temperature struct{}

func (temperature) Name() string { return "Temperature" }

func (temperature) Units() []string {
	return []string{celsius, fahrenheit, kelvin}
}

func (temperature) Convert(value float64, from, to string) (float64, error) {
	var base float64
	switch from {
	case celsius:
		base = value
	case fahrenheit:
		base = (value - 32) * 5.0 / 9.0
	case kelvin:
		base = value - 273.15
	default:
		return 0, ErrInvalidTemperatureUnit
	}
	switch to {
	case celsius:
		return base, nil
	case fahrenheit:
		return base*9.0/5.0 + 32, nil
	case kelvin:
		return base + 273.15, nil
	default:
		return 0, ErrInvalidTemperatureUnit
	}
}
