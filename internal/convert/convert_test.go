package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comigor/unitconv-go/internal/units"
)

func ptr(v float64) *float64 { return &v }

func line(t *testing.T, category string, value float64, from, to string) string {
	t.Helper()
	res, err := Convert(category, ptr(value), from, to)
	return Render(res, err)
}

func TestConvert_ExactStrings(t *testing.T) {
	cases := []struct {
		category string
		value    float64
		from, to string
		want     string
	}{
		{"Temperature", 0, "°C", "°F", "0 °C = 32 °F"},
		{"Temperature", 32, "°F", "°C", "32 °F = 0 °C"},
		{"Temperature", 0, "°C", "K", "0 °C = 273.15 K"},
		{"Length", 1, "km", "m", "1 km = 1000 m"},
		{"Data", 1, "byte", "bit", "1 byte = 8 bit"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, line(t, tc.category, tc.value, tc.from, tc.to))
	}
}

func TestConvert_Formatting(t *testing.T) {
	// 2000 m -> km is exactly 2: integer rendering, no decimal point.
	require.Equal(t, "2000 m = 2 km", line(t, "Length", 2000, "m", "km"))
	// 2500 m -> km is 2.5: trailing zeros stripped.
	require.Equal(t, "2500 m = 2.5 km", line(t, "Length", 2500, "m", "km"))
	// 20 min -> h is 1/3: six decimals, trimmed.
	require.Equal(t, "20 min = 0.333333 h", line(t, "Time", 20, "min", "h"))
}

func TestConvert_Identity(t *testing.T) {
	// Same unit on both sides echoes the value without recomputation, for
	// every category including Temperature.
	for _, category := range units.Names() {
		labels, err := units.ListUnits(category)
		require.NoError(t, err)
		for _, u := range labels {
			res, err := Convert(category, ptr(2.5), u, u)
			require.NoError(t, err)
			require.True(t, res.Identity)
			require.Equal(t, "2.5 "+u+" = 2.5 "+u, res.String())
		}
	}

	// The echo is exact even when reformatting would alter the value.
	v := 1.0000000001
	res, err := Convert("Length", &v, "km", "km")
	require.NoError(t, err)
	require.Equal(t, v, res.Converted)
	require.Equal(t, "1.0000000001 km = 1.0000000001 km", res.String())
}

func TestConvert_MissingValue(t *testing.T) {
	for _, category := range units.Names() {
		res, err := Convert(category, nil, "a", "b")
		require.ErrorIs(t, err, ErrMissingValue)
		require.Equal(t, "❌ Enter a number.", Render(res, err))
	}
}

func TestConvert_InvalidTemperatureUnit(t *testing.T) {
	res, err := Convert("Temperature", ptr(1), "R", "K")
	require.ErrorIs(t, err, units.ErrInvalidTemperatureUnit)
	require.Equal(t, "❌ Invalid temperature unit.", Render(res, err))
}

func TestConvert_UnknownUnit(t *testing.T) {
	res, err := Convert("Length", ptr(1), "furlong", "m")
	var uerr *units.UnknownUnitError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, `❌ Error: unknown unit "furlong" in category Length`, Render(res, err))
}

func TestConvert_UnknownCategory(t *testing.T) {
	res, err := Convert("Currency", ptr(1), "USD", "EUR")
	require.ErrorIs(t, err, units.ErrUnknownCategory)
	require.Equal(t, "❌ Error: unknown category", Render(res, err))
}

func TestConvert_RoundTrip(t *testing.T) {
	// Converting there and back lands within 1e-6 relative error.
	// Temperature is affine and Data spans nine orders of magnitude, so both
	// sit outside the law.
	for _, category := range units.Names() {
		if category == "Temperature" || category == "Data" {
			continue
		}
		labels, err := units.ListUnits(category)
		require.NoError(t, err)
		for _, a := range labels {
			for _, b := range labels {
				if a == b {
					continue
				}
				v := 3.7
				first, err := Convert(category, &v, a, b)
				require.NoError(t, err)
				second, err := Convert(category, &first.Converted, b, a)
				require.NoError(t, err)
				require.InEpsilon(t, v, second.Converted, 1e-6,
					"%s: %s -> %s -> %s", category, a, b, a)
			}
		}
	}
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{2.0000000001, "2"},
		{-2.0000000001, "-2"},
		{1.0 / 3.0, "0.333333"},
		{273.15, "273.15"},
		{1e-10, "0"},
		{-1e-10, "0"},
		{0.0001234567, "0.000123"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatResult(tc.in), "formatResult(%v)", tc.in)
	}
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "1", formatValue(1))
	require.Equal(t, "2.5", formatValue(2.5))
	require.Equal(t, "-0.25", formatValue(-0.25))
	require.Equal(t, "1000000000000", formatValue(1e12))
}
