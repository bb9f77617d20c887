package studwall

import (
	"math"
	"testing"

	"github.com/halledega/StudWalls/internal/units"
)

func singleStoryInput() Input {
	return Input{
		Units:       units.Imperial,
		WallHeights: []float64{10},
		RoofDead:    22,
		RoofSnow:    69,
		WallSW:      12,
		RoofTrib:    2,
	}
}

func fiveStoryInput() Input {
	return Input{
		Units:       units.Imperial,
		WallHeights: []float64{10, 10, 10, 10, 12},
		RoofDead:    22,
		RoofSnow:    69,
		FloorDead:   35,
		FloorLive:   40,
		Partitions:  20,
		WallSW:      12,
		RoofTrib:    2,
		FloorTrib:   11,
	}
}

func TestAccumulateSingleStory(t *testing.T) {
	w, err := normalize(singleStoryInput())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	loads := accumulateLoads(w)
	if len(loads) != 1 {
		t.Fatalf("len(loads) = %d, want 1", len(loads))
	}

	// 22 psf roof dead over 2 ft of trib plus 12 psf of wall over 10 ft.
	wantDead := 22*0.04788*(2/3.28084) + 12*0.04788*3.048
	wantSnow := 69 * 0.04788 * (2 / 3.28084)
	if math.Abs(loads[0].Dead-wantDead) > 1e-6 {
		t.Errorf("Dead = %v, want %v", loads[0].Dead, wantDead)
	}
	if math.Abs(loads[0].Snow-wantSnow) > 1e-6 {
		t.Errorf("Snow = %v, want %v", loads[0].Snow, wantSnow)
	}
	if loads[0].Live != 0 {
		t.Errorf("Live = %v, want 0 on a roof story", loads[0].Live)
	}
}

func TestAccumulateNonDecreasing(t *testing.T) {
	w, err := normalize(fiveStoryInput())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	loads := accumulateLoads(w)
	if len(loads) != 5 {
		t.Fatalf("len(loads) = %d, want 5", len(loads))
	}
	for i := 1; i < len(loads); i++ {
		if loads[i].Dead < loads[i-1].Dead || loads[i].Live < loads[i-1].Live || loads[i].Snow < loads[i-1].Snow {
			t.Errorf("loads decreased between story %d and %d: %+v -> %+v", i, i+1, loads[i-1], loads[i])
		}
	}
}

func TestAccumulateFoundationExceedsTop(t *testing.T) {
	in := fiveStoryInput()
	w, err := normalize(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	loads := accumulateLoads(w)

	top := loads[0]
	bottom := loads[len(loads)-1]

	// The foundation level must carry everything the intermediate floors
	// added: four floors of dead + partitions plus the lower wall weights,
	// and four floors of live load.
	conv := units.NewConverter(units.Imperial)
	floorDead := conv.ToMetric(in.FloorDead+in.Partitions, units.Pressure) * conv.ToMetric(in.FloorTrib, units.LengthFtM)
	floorLive := conv.ToMetric(in.FloorLive, units.Pressure) * conv.ToMetric(in.FloorTrib, units.LengthFtM)
	sw := conv.ToMetric(in.WallSW, units.Pressure)
	var lowerWalls float64
	for _, h := range in.WallHeights[1:] {
		lowerWalls += sw * conv.ToMetric(h, units.LengthFtMM) / 1000
	}

	wantDeadGain := 4*floorDead + lowerWalls
	if math.Abs((bottom.Dead-top.Dead)-wantDeadGain) > 1e-6 {
		t.Errorf("dead gain = %v, want %v", bottom.Dead-top.Dead, wantDeadGain)
	}
	if math.Abs((bottom.Live-top.Live)-4*floorLive) > 1e-6 {
		t.Errorf("live gain = %v, want %v", bottom.Live-top.Live, 4*floorLive)
	}
}

func TestNormalizeRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"no stories", func(in *Input) { in.WallHeights = nil }},
		{"zero height", func(in *Input) { in.WallHeights = []float64{10, 0, 10} }},
		{"negative height", func(in *Input) { in.WallHeights = []float64{-10} }},
		{"zero roof trib", func(in *Input) { in.RoofTrib = 0 }},
		{"negative floor trib", func(in *Input) { in.FloorTrib = -1 }},
		{"multi-story zero floor trib", func(in *Input) { in.WallHeights = []float64{10, 10}; in.FloorTrib = 0 }},
		{"negative load", func(in *Input) { in.RoofSnow = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := fiveStoryInput()
			tc.mutate(&in)
			if _, err := normalize(in); err == nil {
				t.Error("expected ConfigError")
			} else if _, ok := err.(*ConfigError); !ok {
				t.Errorf("error type = %T, want *ConfigError", err)
			}
		})
	}
}
