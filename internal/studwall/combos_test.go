package studwall

import (
	"math"
	"testing"

	"github.com/halledega/StudWalls/internal/o86"
)

func TestFactoredCombinations(t *testing.T) {
	l := StoryLoads{Dead: 10, Live: 4, Snow: 2}

	want := map[string]float64{
		"1.4DL":              14,
		"1.25DL+1.5LL+1.0SL": 12.5 + 6 + 2,
		"1.25DL+1.5SL+1.0LL": 12.5 + 3 + 4,
		"1.25DL+1.5LL":       12.5 + 6,
		"1.25DL+1.5SL":       12.5 + 3,
	}
	for _, combo := range DefaultCombos() {
		got := combo.Factored(l)
		if math.Abs(got-want[combo.Name]) > 1e-9 {
			t.Errorf("%s = %v, want %v", combo.Name, got, want[combo.Name])
		}
	}
}

func TestDurationSplit(t *testing.T) {
	l := StoryLoads{Dead: 10, Live: 4, Snow: 2}
	combos := DefaultCombos()

	// 1.4DL is a long-duration check with no variable component.
	long, short := combos[0].DurationSplit(l)
	if combos[0].Duration != o86.DurationLong || long != 0 || short != 0 {
		t.Errorf("1.4DL split = (%v, %v), want (0, 0)", long, short)
	}

	// Live-principal: full live plus half the snow companion.
	long, short = combos[1].DurationSplit(l)
	if long != 10 || math.Abs(short-(4+1)) > 1e-9 {
		t.Errorf("live-principal split = (%v, %v), want (10, 5)", long, short)
	}

	// Snow-principal: full snow plus half the live companion.
	long, short = combos[2].DurationSplit(l)
	if long != 10 || math.Abs(short-(2+2)) > 1e-9 {
		t.Errorf("snow-principal split = (%v, %v), want (10, 4)", long, short)
	}
}

func TestComboOrderStable(t *testing.T) {
	a := DefaultCombos()
	b := DefaultCombos()
	if len(a) != len(b) {
		t.Fatal("combo sets differ in length")
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Errorf("combo order differs at %d: %s vs %s", i, a[i].Name, b[i].Name)
		}
	}
}
