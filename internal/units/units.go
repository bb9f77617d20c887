package units

// System identifies the unit system used for user-facing values. All
// engine-internal arithmetic is metric (kPa, mm, kN); conversion happens
// only at the input and output boundary.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Quantity identifies a physical quantity with a known conversion pair.
type Quantity string

const (
	Pressure   Quantity = "pressure"     // kPa / psf
	UDL        Quantity = "udl"          // kN/m / plf
	Load       Quantity = "load"         // kN / lb
	LengthFtM  Quantity = "length_ft_m"  // m / ft
	LengthFtMM Quantity = "length_ft_mm" // mm / ft
	LengthInMM Quantity = "length_in_mm" // mm / in
)

type conversion struct {
	metricUnit   string
	imperialUnit string
	toMetric     float64
}

var conversions = map[Quantity]conversion{
	Pressure:   {"kPa", "psf", 0.04788},
	UDL:        {"kN/m", "plf", 0.01459},
	Load:       {"kN", "lb", 4.448222 / 1000},
	LengthFtM:  {"m", "ft", 1 / 3.28084},
	LengthFtMM: {"mm", "ft", 304.8},
	LengthInMM: {"mm", "in", 25.4},
}

// Converter translates values between the display system and the internal
// metric system.
type Converter struct {
	System System
}

func NewConverter(system System) Converter {
	return Converter{System: system}
}

// ToMetric converts a display-system value to metric. Metric values pass
// through unchanged.
func (c Converter) ToMetric(value float64, q Quantity) float64 {
	if c.System == Imperial {
		return value * conversions[q].toMetric
	}
	return value
}

// FromMetric converts an internal metric value to the display system.
func (c Converter) FromMetric(value float64, q Quantity) float64 {
	if c.System == Imperial {
		return value / conversions[q].toMetric
	}
	return value
}

// DisplayUnit returns the unit symbol for a quantity in the active system.
func (c Converter) DisplayUnit(q Quantity) string {
	if c.System == Imperial {
		return conversions[q].imperialUnit
	}
	return conversions[q].metricUnit
}
