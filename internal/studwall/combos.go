package studwall

import "github.com/halledega/StudWalls/internal/o86"

// Combo is one NBCC gravity load combination: independent factors on the
// dead, live and snow cases, plus the duration split used for the Kd
// factor. Wind and seismic are outside this engine.
type Combo struct {
	Name string `json:"name"`

	Dead float64 `json:"dead"`
	Live float64 `json:"live"`
	Snow float64 `json:"snow"`

	Duration o86.Duration `json:"duration"`

	// Short-term share of each variable case when splitting the load into
	// long and short components for Cl 5.3.2.3 (principal load full,
	// companion load half).
	ShortLive float64 `json:"-"`
	ShortSnow float64 `json:"-"`
}

// Factored returns the total factored line load (kN/m) for the combination.
func (c Combo) Factored(l StoryLoads) float64 {
	return c.Dead*l.Dead + c.Live*l.Live + c.Snow*l.Snow
}

// DurationSplit returns the unfactored long-term and short-term load
// components (kN/m) feeding the load duration factor.
func (c Combo) DurationSplit(l StoryLoads) (long, short float64) {
	if c.Duration == o86.DurationLong {
		return 0, 0
	}
	return l.Dead, c.ShortLive*l.Live + c.ShortSnow*l.Snow
}

// DefaultCombos is the NBCC 2020 gravity set checked for every candidate.
// Order is fixed so the governing-combo selection is reproducible.
func DefaultCombos() []Combo {
	return []Combo{
		{Name: "1.4DL", Dead: 1.4, Duration: o86.DurationLong},
		{Name: "1.25DL+1.5LL+1.0SL", Dead: 1.25, Live: 1.5, Snow: 1.0, Duration: o86.DurationStandard, ShortLive: 1.0, ShortSnow: 0.5},
		{Name: "1.25DL+1.5SL+1.0LL", Dead: 1.25, Live: 1.0, Snow: 1.5, Duration: o86.DurationStandard, ShortLive: 0.5, ShortSnow: 1.0},
		{Name: "1.25DL+1.5LL", Dead: 1.25, Live: 1.5, Duration: o86.DurationStandard, ShortLive: 1.0},
		{Name: "1.25DL+1.5SL", Dead: 1.25, Snow: 1.5, Duration: o86.DurationStandard, ShortSnow: 1.0},
	}
}
