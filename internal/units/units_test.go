package units

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestImperialToMetric(t *testing.T) {
	c := NewConverter(Imperial)

	cases := []struct {
		name     string
		value    float64
		quantity Quantity
		want     float64
		tol      float64
	}{
		{"10 ft to mm", 10, LengthFtMM, 3048, 1e-9},
		{"10 ft to m", 10, LengthFtM, 3.048, 1e-6},
		{"16 in to mm", 16, LengthInMM, 406.4, 1e-9},
		{"20 psf to kPa", 20, Pressure, 0.9576, 1e-4},
		{"1000 lb to kN", 1000, Load, 4.448222, 1e-6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.ToMetric(tc.value, tc.quantity)
			if !almostEqual(got, tc.want, tc.tol) {
				t.Errorf("ToMetric(%v, %s) = %v, want %v", tc.value, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestMetricPassThrough(t *testing.T) {
	c := NewConverter(Metric)
	if got := c.ToMetric(3.5, Pressure); got != 3.5 {
		t.Errorf("metric ToMetric changed value: %v", got)
	}
	if got := c.FromMetric(3.5, Pressure); got != 3.5 {
		t.Errorf("metric FromMetric changed value: %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	c := NewConverter(Imperial)
	for _, q := range []Quantity{Pressure, UDL, Load, LengthFtM, LengthFtMM, LengthInMM} {
		v := 42.5
		back := c.FromMetric(c.ToMetric(v, q), q)
		if !almostEqual(back, v, 1e-9) {
			t.Errorf("round trip for %s: got %v, want %v", q, back, v)
		}
	}
}

func TestDisplayUnit(t *testing.T) {
	imp := NewConverter(Imperial)
	met := NewConverter(Metric)
	if imp.DisplayUnit(Pressure) != "psf" {
		t.Errorf("imperial pressure unit = %s", imp.DisplayUnit(Pressure))
	}
	if met.DisplayUnit(Pressure) != "kPa" {
		t.Errorf("metric pressure unit = %s", met.DisplayUnit(Pressure))
	}
	if imp.DisplayUnit(LengthInMM) != "in" {
		t.Errorf("imperial spacing unit = %s", imp.DisplayUnit(LengthInMM))
	}
}
