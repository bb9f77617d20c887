// Package o86 implements the CSA O86-20 clauses needed to check sawn
// lumber compression members. Each modification factor is an explicit
// function so it can be verified against the standard's tables in
// isolation.
package o86

import (
	"fmt"
	"math"

	"github.com/halledega/StudWalls/internal/wood"
)

const (
	// PhiSawn is the resistance factor for sawn lumber.
	PhiSawn = 0.8

	// MaxSlenderness is the absolute slenderness ceiling for compression
	// members (Cl 6.5.6.2.2). Members beyond it fail outright.
	MaxSlenderness = 50.0

	// systemSpacingMM is the widest member spacing that still qualifies
	// as a load-sharing system (Cl 6.4.4 Case 1).
	systemSpacingMM = 610.0

	// systemFactorKh is the capped system factor for compression
	// parallel to grain in a qualifying system.
	systemFactorKh = 1.1
)

// Duration is the load duration category of Cl 5.3.2.2.
type Duration string

const (
	DurationLong     Duration = "Long"
	DurationStandard Duration = "Standard"
	DurationShort    Duration = "Short"
)

// DomainError reports a resistance formula input outside its defined
// range. It disqualifies the one candidate being checked; it is never a
// failure of the whole search.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return e.Msg
}

// LoadDurationFactor returns Kd per Cl 5.3.2.2. When both a long-term and
// a short-term load component are present, the combined-duration formula
// of Cl 5.3.2.3 governs.
func LoadDurationFactor(d Duration, pl, ps float64) float64 {
	switch {
	case pl > ps && ps > 0:
		return CombinedDurationFactor(pl, ps)
	case pl > ps && ps == 0:
		return 0.65
	case d == DurationShort:
		return 1.15
	case d == DurationLong:
		return 0.65
	default:
		return 1.0
	}
}

// CombinedDurationFactor returns Kd per Cl 5.3.2.3 for a load with both
// long-term component pl and short-term component ps, bounded to
// [0.65, 1.0].
func CombinedDurationFactor(pl, ps float64) float64 {
	if pl <= 0 || ps <= 0 {
		return 1.0
	}
	return math.Min(1.0, math.Max(1.0-0.5*math.Log10(pl/ps), 0.65))
}

// SystemFactor returns Kh per Cl 6.4.4 Case 1 for compression parallel to
// grain. A stud qualifies as part of a load-sharing system when spaced no
// wider than 610 mm, or when built up from two or more plys fastened
// together. The factor is capped at 1.1.
func SystemFactor(spacingMM float64, plys int) float64 {
	if spacingMM > 0 && spacingMM <= systemSpacingMM {
		return systemFactorKh
	}
	if plys >= 2 {
		return systemFactorKh
	}
	return 1.0
}

// ServiceFactors returns (Ksc, Kse) per Table 5.4.2 for sawn lumber:
// the service condition factors on compressive strength and on modulus
// of elasticity.
func ServiceFactors(sc wood.ServiceCondition) (ksc, kse float64) {
	if sc == wood.Wet {
		return 0.69, 0.94
	}
	return 1.0, 1.0
}

// TreatmentFactor returns Kt per Cl 5.4.3. Preservative treatment alone
// does not reduce strength; incising for treatment does.
func TreatmentFactor(treated, incised bool) float64 {
	if treated && incised {
		return 0.75
	}
	return 1.0
}

// SlendernessRatio returns Cc = Lu/d per Cl 6.5.6.2.2 for a rectangular
// member buckling about the axis with dimension d.
func SlendernessRatio(lu, d float64) float64 {
	if d == 0 {
		return 0
	}
	return lu / d
}

// SizeFactor returns Kzc, the size factor for compressive resistance,
// capped at 1.3.
func SizeFactor(d, lu float64) float64 {
	if d*lu <= 0 {
		return 1.3
	}
	return math.Min(6.3*math.Pow(d*lu, -0.13), 1.3)
}

// KFactors carries the externally determined modification factors applied
// to the specified compressive strength.
type KFactors struct {
	Kd  float64 `json:"kd"`  // load duration
	Kh  float64 `json:"kh"`  // system
	Ksc float64 `json:"ksc"` // service condition, compression
	Kse float64 `json:"kse"` // service condition, elasticity
	Kt  float64 `json:"kt"`  // treatment
}

// Resistance is the outcome of one compressive resistance check about one
// axis. Every intermediate factor is retained so a reviewer can audit it
// against its clause.
type Resistance struct {
	Pr  float64 `json:"pr"`  // factored compressive resistance, N
	Fc  float64 `json:"fc"`  // factored compressive strength, MPa
	Kzc float64 `json:"kzc"` // size factor
	Kc  float64 `json:"kc"`  // column stability factor
	Cc  float64 `json:"cc"`  // slenderness ratio
}

// adjustedE05 returns the fifth-percentile modulus of elasticity for
// stability calculations, reduced for machine-graded lumber.
func adjustedE05(mat wood.Wood) float64 {
	switch mat.Type {
	case wood.MSR:
		return 0.85 * mat.E05
	case wood.MEL:
		return 0.75 * mat.E05
	default:
		return mat.E05
	}
}

// CompressiveResistance computes the factored compressive resistance
// parallel to grain per Cl 6.5.6.2.3 for a member of gross area ag (mm²)
// buckling about the axis with dimension d (mm) over unsupported length
// lu (mm). A DomainError marks the candidate infeasible without aborting
// the surrounding search.
func CompressiveResistance(mat wood.Wood, ag, d, lu float64, k KFactors) (Resistance, error) {
	res := Resistance{Cc: SlendernessRatio(lu, d)}

	res.Fc = mat.Fc * k.Kd * k.Kh * k.Ksc * k.Kt
	res.Kzc = SizeFactor(d, lu)

	e05 := adjustedE05(mat) * k.Kse * k.Kt
	if e05 <= 0 {
		return res, &DomainError{Msg: fmt.Sprintf("non-positive stiffness E05 for %s", mat.Name)}
	}
	res.Kc = 1.0 / (1.0 + res.Fc*res.Kzc*math.Pow(res.Cc, 3)/(35*e05))

	if res.Cc > MaxSlenderness {
		// Overslender members are disqualified regardless of load.
		return res, &DomainError{Msg: fmt.Sprintf("slenderness ratio %.1f exceeds limit %.0f", res.Cc, MaxSlenderness)}
	}

	res.Pr = PhiSawn * res.Fc * ag * res.Kc * res.Kzc
	return res, nil
}
