package studwall

import (
	"fmt"

	"github.com/halledega/StudWalls/internal/units"
)

// Input describes one load-bearing wall line of a multi-story building.
// Values are given in the declared unit system (psf/ft when imperial,
// kPa/m when metric). WallHeights is ordered roof level first; loads
// accumulate downward from it.
type Input struct {
	Name  string       `json:"name,omitempty"`
	Units units.System `json:"units,omitempty"`

	WallHeights []float64 `json:"wall_heights"` // per story, roof first
	RoofDead    float64   `json:"roof_dead"`
	RoofSnow    float64   `json:"roof_snow"`
	FloorDead   float64   `json:"floor_dead"`
	FloorLive   float64   `json:"floor_live"`
	Partitions  float64   `json:"partitions"`
	WallSW      float64   `json:"wall_sw"` // wall self-weight
	RoofTrib    float64   `json:"roof_trib"`
	FloorTrib   float64   `json:"floor_trib"`

	// Optional search space overrides.
	SpacingsMM []float64 `json:"spacings_mm,omitempty"` // default 406, 305, 203
	MaxPlys    int       `json:"max_plys,omitempty"`    // default 3
	Materials  []string  `json:"materials,omitempty"`   // library names, default all
}

// wall is the engine-internal, fully metric form of an Input. It is
// immutable once built; the calculation passes only read it.
type wall struct {
	name       string
	heightsMM  []float64
	roofDead   float64 // kPa
	roofSnow   float64
	floorDead  float64
	floorLive  float64
	partitions float64
	selfWeight float64
	roofTribM  float64
	floorTribM float64
}

// normalize converts an Input to metric and validates its geometry.
// Validation happens before any accumulation: one bad story corrupts every
// story below it.
func normalize(in Input) (*wall, error) {
	conv := units.NewConverter(in.Units)

	w := &wall{
		name:       in.Name,
		roofDead:   conv.ToMetric(in.RoofDead, units.Pressure),
		roofSnow:   conv.ToMetric(in.RoofSnow, units.Pressure),
		floorDead:  conv.ToMetric(in.FloorDead, units.Pressure),
		floorLive:  conv.ToMetric(in.FloorLive, units.Pressure),
		partitions: conv.ToMetric(in.Partitions, units.Pressure),
		selfWeight: conv.ToMetric(in.WallSW, units.Pressure),
		roofTribM:  conv.ToMetric(in.RoofTrib, units.LengthFtM),
		floorTribM: conv.ToMetric(in.FloorTrib, units.LengthFtM),
	}
	for _, h := range in.WallHeights {
		w.heightsMM = append(w.heightsMM, conv.ToMetric(h, units.LengthFtMM))
	}

	if len(w.heightsMM) == 0 {
		return nil, &ConfigError{Msg: "wall has no stories"}
	}
	for i, h := range w.heightsMM {
		if h <= 0 {
			return nil, &ConfigError{Msg: fmt.Sprintf("story %d height must be positive, got %.1f mm", i+1, h)}
		}
	}
	if w.roofTribM <= 0 {
		return nil, &ConfigError{Msg: "roof tributary width must be positive"}
	}
	if w.floorTribM < 0 {
		return nil, &ConfigError{Msg: "floor tributary width must not be negative"}
	}
	if len(w.heightsMM) > 1 && w.floorTribM == 0 {
		return nil, &ConfigError{Msg: "floor tributary width must be positive for multi-story walls"}
	}
	if w.roofDead < 0 || w.roofSnow < 0 || w.floorDead < 0 || w.floorLive < 0 || w.partitions < 0 || w.selfWeight < 0 {
		return nil, &ConfigError{Msg: "load magnitudes must not be negative"}
	}
	return w, nil
}
