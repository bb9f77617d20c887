package section

import "fmt"

// Section is the cross-section of a built-up stud: one or more plys of a
// nominal lumber size. Dimensions are in mm. Sections are immutable
// reference data from the catalog; the search loop copies one and sets
// the ply count per candidate.
type Section struct {
	Width float64 `json:"width"` // single ply width
	Depth float64 `json:"depth"`
	Plys  int     `json:"plys"`
}

// Ag returns the gross cross-sectional area in mm².
func (s Section) Ag() float64 {
	return s.Width * s.Depth * float64(s.Plys)
}

// Ix returns the moment of inertia about the strong axis, mm⁴.
func (s Section) Ix() float64 {
	return float64(s.Plys) * s.Width * s.Depth * s.Depth * s.Depth / 12
}

// Iy returns the moment of inertia about the weak axis, mm⁴.
func (s Section) Iy() float64 {
	b := float64(s.Plys) * s.Width
	return s.Depth * b * b * b / 12
}

// Sx returns the section modulus about the strong axis, mm³.
func (s Section) Sx() float64 {
	if s.Depth == 0 {
		return 0
	}
	return s.Ix() / (s.Depth / 2)
}

// Sy returns the section modulus about the weak axis, mm³.
func (s Section) Sy() float64 {
	b := float64(s.Plys) * s.Width
	if b == 0 {
		return 0
	}
	return s.Iy() / (b / 2)
}

// Name returns the conventional size label, e.g. "38x89".
func (s Section) Name() string {
	return fmt.Sprintf("%.0fx%.0f", s.Width, s.Depth)
}

// Catalog returns the standard stud sizes considered by the design search,
// smallest first. Order is significant: it is the deterministic tie-break
// of last resort when ranking otherwise equal solutions.
func Catalog() []Section {
	return []Section{
		{Width: 38, Depth: 89, Plys: 1},  // 2x4
		{Width: 38, Depth: 140, Plys: 1}, // 2x6
		{Width: 38, Depth: 184, Plys: 1}, // 2x8
	}
}
