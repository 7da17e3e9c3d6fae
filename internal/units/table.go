package units

import "math"

// categories is the closed set of measurement domains, in display order.
// Scale factors express how many base units one of the labeled unit equals
// (1 mi = 1609.344 m, 1 byte = 8 bit, 1 deg = π/180 rad, ...).
var categories = []Category{
	&linear{name: "Length", base: "m", units: []scaledUnit{
		{"m", 1},
		{"km", 1000},
		{"cm", 0.01},
		{"mm", 0.001},
		{"mi", 1609.344},
		{"yd", 0.9144},
		{"ft", 0.3048},
		{"in", 0.0254},
	}},
	&linear{name: "Mass", base: "kg", units: []scaledUnit{
		{"kg", 1},
		{"g", 0.001},
		{"mg", 1e-6},
		{"lb", 0.45359237},
		{"oz", 0.0283495},
	}},
	temperature{},
	&linear{name: "Time", base: "s", units: []scaledUnit{
		{"s", 1},
		{"min", 60},
		{"h", 3600},
		{"day", 86400},
	}},
	&linear{name: "Speed", base: "m/s", units: []scaledUnit{
		{"m/s", 1},
		{"km/h", 1000.0 / 3600.0},
		{"mph", 1609.344 / 3600.0},
		{"knot", 1852.0 / 3600.0},
	}},
	&linear{name: "Area", base: "m²", units: []scaledUnit{
		{"m²", 1},
		{"cm²", 0.0001},
		{"mm²", 1e-6},
		{"km²", 1e6},
		{"ft²", 0.092903},
		{"in²", 0.00064516},
		{"acre", 4046.856},
		{"hectare", 10000},
	}},
	&linear{name: "Volume", base: "L", units: []scaledUnit{
		{"L", 1},
		{"mL", 0.001},
		{"m³", 1000},
		{"cm³", 0.001},
		{"ft³", 28.3168},
		{"in³", 0.0163871},
		{"gal(US)", 3.78541},
		{"qt(US)", 0.946353},
	}},
	&linear{name: "Energy", base: "J", units: []scaledUnit{
		{"J", 1},
		{"kJ", 1000},
		{"Wh", 3600},
		{"kWh", 3.6e6},
		{"cal", 4.184},
		{"kcal", 4184},
	}},
	&linear{name: "Pressure", base: "Pa", units: []scaledUnit{
		{"Pa", 1},
		{"kPa", 1000},
		{"bar", 1e5},
		{"atm", 101325},
		{"psi", 6894.76},
		{"mmHg", 133.322},
	}},
	&linear{name: "Data", base: "byte", units: []scaledUnit{
		{"bit", 1.0 / 8.0},
		{"byte", 1},
		{"KB", 1024},
		{"MB", 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"TB", 1024 * 1024 * 1024 * 1024},
	}},
	&linear{name: "Angle", base: "rad", units: []scaledUnit{
		{"deg", math.Pi / 180},
		{"rad", 1},
		{"grad", math.Pi / 200},
	}},
}

// Names returns the category names in display order.
func Names() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the category with the given name, or ErrUnknownCategory.
func Lookup(name string) (Category, error) {
	for _, c := range categories {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, ErrUnknownCategory
}

// ListUnits returns the ordered unit labels of the named category.
func ListUnits(name string) ([]string, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Units(), nil
}
