// Package studwall sizes light-frame wood stud walls for multi-story
// buildings against CSA O86-20, using NBCC gravity load combinations.
// Loads accumulate roof-down, every (material, section, spacing, ply)
// candidate is checked per story, and the cheapest passing design is
// selected per floor.
package studwall

import (
	"github.com/halledega/StudWalls/internal/o86"
	"github.com/halledega/StudWalls/internal/section"
	"github.com/halledega/StudWalls/internal/wood"
)

// defaultSpacings are the standard stud spacings in mm (16", 12", 8" o/c).
var defaultSpacings = []float64{406, 305, 203}

const (
	defaultMaxPlys = 3

	// defaultLuWeakMM is the weak-axis restraint spacing: sheathing
	// nailing holds the stud about its weak axis at close intervals.
	defaultLuWeakMM = 152
)

// Calculator runs the stud wall design search. Library and Catalog are
// immutable reference data injected by the caller; the calculator never
// mutates them.
type Calculator struct {
	Library  wood.Library
	Catalog  []section.Section
	Spacings []float64
	MaxPlys  int
	Combos   []Combo
	LuWeakMM float64
}

func NewCalculator(lib wood.Library) *Calculator {
	return &Calculator{
		Library:  lib,
		Catalog:  section.Catalog(),
		Spacings: defaultSpacings,
		MaxPlys:  defaultMaxPlys,
		Combos:   DefaultCombos(),
		LuWeakMM: defaultLuWeakMM,
	}
}

// candidate is a transient tuple owned by the search loop; it is discarded
// after evaluation unless its DesignResult survives.
type candidate struct {
	sec     section.Section
	mat     wood.Wood
	spacing float64
	plys    int
}

// Calculate runs the full design pass for one wall: validate, accumulate
// loads top-down for every story, then search candidates per story. A
// ConfigError aborts the whole wall; design infeasibility and per-candidate
// domain errors are localized to their story or candidate.
func (c *Calculator) Calculate(in Input) (*Result, error) {
	w, err := normalize(in)
	if err != nil {
		return nil, err
	}

	mats, err := c.materials(in.Materials)
	if err != nil {
		return nil, err
	}
	spacings := in.SpacingsMM
	if len(spacings) == 0 {
		spacings = c.Spacings
	}
	maxPlys := in.MaxPlys
	if maxPlys <= 0 {
		maxPlys = c.MaxPlys
	}
	for _, s := range spacings {
		if s <= 0 {
			return nil, &ConfigError{Msg: "stud spacings must be positive"}
		}
	}
	if len(spacings) == 0 || len(c.Catalog) == 0 {
		return nil, &ConfigError{Msg: "empty candidate set: no spacings or sections to search"}
	}

	// Load accumulation completes for all stories before any code check:
	// each story's factored load depends on everything above it.
	loads := accumulateLoads(w)

	res := &Result{Name: w.name}
	for i, h := range w.heightsMM {
		res.Stories = append(res.Stories, c.designStory(i+1, h, loads[i], mats, spacings, maxPlys))
	}
	return res, nil
}

// materials resolves the requested material names against the library, or
// returns the whole library when no filter is given.
func (c *Calculator) materials(names []string) ([]wood.Wood, error) {
	if len(names) == 0 {
		all := c.Library.All()
		if len(all) == 0 {
			return nil, &ConfigError{Msg: "material library is empty"}
		}
		return all, nil
	}
	out := make([]wood.Wood, 0, len(names))
	for _, name := range names {
		m, err := c.Library.Get(name)
		if err != nil {
			return nil, &ConfigError{Msg: err.Error()}
		}
		out = append(out, m)
	}
	return out, nil
}

// designStory enumerates the candidate cross-product for one story,
// retains every result, and selects the minimum-volume passing design.
// Ties break on lower DC ratio, then on enumeration (catalog) order.
func (c *Calculator) designStory(level int, heightMM float64, loads StoryLoads, mats []wood.Wood, spacings []float64, maxPlys int) StoryResult {
	story := StoryResult{
		Level:    level,
		HeightMM: heightMM,
		Loads:    loads,
		Factored: make(map[string]float64, len(c.Combos)),
		Optimal:  -1,
		Status:   StatusInfeasible,
	}
	for _, combo := range c.Combos {
		story.Factored[combo.Name] = combo.Factored(loads)
	}

	for _, mat := range mats {
		for _, sec := range c.Catalog {
			for _, spacing := range spacings {
				for plys := 1; plys <= maxPlys; plys++ {
					r := c.evaluate(level, heightMM, loads, candidate{sec: sec, mat: mat, spacing: spacing, plys: plys})
					story.Results = append(story.Results, r)

					if !r.Pass {
						continue
					}
					best := story.OptimalResult()
					if best == nil ||
						r.WoodVolume < best.WoodVolume ||
						(r.WoodVolume == best.WoodVolume && r.DCRatio < best.DCRatio) {
						story.Optimal = len(story.Results) - 1
					}
				}
			}
		}
	}
	if story.Optimal >= 0 {
		story.Status = StatusOK
	}
	return story
}

// evaluate checks one candidate against every load combination and keeps
// the governing (worst DC) case. A pure function of its inputs: identical
// calls yield identical results.
func (c *Calculator) evaluate(level int, heightMM float64, loads StoryLoads, cand candidate) DesignResult {
	sec := cand.sec
	sec.Plys = cand.plys

	r := DesignResult{
		Level:      level,
		Section:    sec,
		Material:   cand.mat.Name,
		Spacing:    cand.spacing,
		Plys:       cand.plys,
		WoodVolume: sec.Ag() / cand.spacing,
	}

	ksc, kse := o86.ServiceFactors(cand.mat.Service)
	kt := o86.TreatmentFactor(cand.mat.Treated, cand.mat.Incised)
	kh := o86.SystemFactor(cand.spacing, cand.plys)

	governed := false
	for _, combo := range c.Combos {
		// kN/m * m = kN carried per stud.
		pf := combo.Factored(loads) * cand.spacing / 1000
		long, short := combo.DurationSplit(loads)
		pl := long * cand.spacing / 1000
		ps := short * cand.spacing / 1000

		k := o86.KFactors{
			Kd:  o86.LoadDurationFactor(combo.Duration, pl, ps),
			Kh:  kh,
			Ksc: ksc,
			Kse: kse,
			Kt:  kt,
		}

		strong, errStrong := o86.CompressiveResistance(cand.mat, sec.Ag(), sec.Depth, heightMM, k)
		weak, errWeak := o86.CompressiveResistance(cand.mat, sec.Ag(), sec.Width*float64(cand.plys), c.LuWeakMM, k)
		if errStrong != nil || errWeak != nil {
			// Out-of-domain geometry disqualifies the candidate outright;
			// slenderness does not depend on the combination, so stop here.
			err := errStrong
			if err == nil {
				err = errWeak
			}
			r.KFactors = k
			r.Kzc = strong.Kzc
			r.Kc = strong.Kc
			r.CcStrong = strong.Cc
			r.CcWeak = weak.Cc
			r.DCRatio = 0
			r.Pass = false
			r.Reason = err.Error()
			return r
		}

		// The governing axis is the one with the lower resistance.
		gov := strong
		if weak.Pr < strong.Pr {
			gov = weak
		}
		pr := gov.Pr / 1000 // N -> kN
		if pr <= 0 {
			r.Pass = false
			r.Reason = "zero factored resistance"
			return r
		}

		dc := pf / pr
		if !governed || dc > r.DCRatio {
			governed = true
			r.DCRatio = dc
			r.GoverningCombo = combo.Name
			r.PfKN = pf
			r.PrKN = pr
			r.KFactors = k
			r.Kzc = gov.Kzc
			r.Kc = gov.Kc
			r.CcStrong = strong.Cc
			r.CcWeak = weak.Cc
		}
	}

	r.Pass = governed && r.DCRatio <= 1.0
	return r
}
