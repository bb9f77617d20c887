package studwall

import (
	"fmt"

	"github.com/halledega/StudWalls/internal/o86"
	"github.com/halledega/StudWalls/internal/section"
)

// StoryStatus classifies the outcome of the search for one story.
type StoryStatus string

const (
	// StatusOK means at least one candidate passed and an optimal design
	// was selected.
	StatusOK StoryStatus = "ok"
	// StatusInfeasible means candidates existed but every one failed the
	// code check. This is a result, not an error: the caller reports
	// "no valid design" for the story while other stories stand.
	StatusInfeasible StoryStatus = "infeasible"
)

// DesignResult is the outcome of checking one candidate for one story.
// Inputs are echoed and every modification factor is retained individually
// so each can be audited against its code clause. Results are read-only
// once produced.
type DesignResult struct {
	Level    int             `json:"level"` // 1 = roof story
	Section  section.Section `json:"section"`
	Material string          `json:"material"`
	Spacing  float64         `json:"spacing_mm"`
	Plys     int             `json:"plys"`

	KFactors o86.KFactors `json:"k_factors"`
	Kzc      float64      `json:"kzc"`
	Kc       float64      `json:"kc"`
	CcStrong float64      `json:"cc_strong"`
	CcWeak   float64      `json:"cc_weak"`

	PfKN           float64 `json:"pf_kn"` // factored axial load per stud
	PrKN           float64 `json:"pr_kn"` // factored compressive resistance
	DCRatio        float64 `json:"dc_ratio"`
	GoverningCombo string  `json:"governing_combo"`

	// WoodVolume is area × plys / spacing: mm² of wood per mm of wall,
	// the proxy ranked by the optimizer.
	WoodVolume float64 `json:"wood_volume"`

	Pass   bool   `json:"pass"`
	Reason string `json:"reason,omitempty"` // set when disqualified outright
}

// Label returns the conventional stud designation, e.g. "(2)-38x140".
func (r DesignResult) Label() string {
	return fmt.Sprintf("(%d)-%s", r.Plys, r.Section.Name())
}

// StoryResult collects every evaluated candidate for one story plus the
// optimal selection. Results keep enumeration order; Optimal indexes into
// Results, or is -1 when the story is design-infeasible.
type StoryResult struct {
	Level    int                `json:"level"`
	HeightMM float64            `json:"height_mm"`
	Loads    StoryLoads         `json:"loads"`
	Factored map[string]float64 `json:"factored"` // combo name -> kN/m

	Results []DesignResult `json:"results"`
	Optimal int            `json:"optimal"`
	Status  StoryStatus    `json:"status"`
}

// OptimalResult returns the selected design, or nil for an infeasible
// story. It is derived from Results, never stored independently.
func (s *StoryResult) OptimalResult() *DesignResult {
	if s.Optimal < 0 || s.Optimal >= len(s.Results) {
		return nil
	}
	return &s.Results[s.Optimal]
}

// Result is the full output for a wall: per-story candidate sets and
// selections, ordered roof to foundation, sufficient for reporting both
// "all valid solutions" and "optimal per floor" without recomputation.
type Result struct {
	Name    string        `json:"name,omitempty"`
	Stories []StoryResult `json:"stories"`
}
