package wood

import "fmt"

// MaterialType distinguishes the lumber grading method, which affects the
// fifth-percentile modulus of elasticity used in stability calculations.
type MaterialType string

const (
	Sawn MaterialType = "Sawn" // visually graded sawn lumber
	MSR  MaterialType = "MSR"  // machine stress-rated
	MEL  MaterialType = "MEL"  // machine evaluated lumber
)

// ServiceCondition is the moisture service condition of the member.
type ServiceCondition string

const (
	Dry ServiceCondition = "dry"
	Wet ServiceCondition = "wet"
)

// Wood holds the specified strengths and stiffness of one species/grade
// of dimension lumber. All strengths are in MPa. Records are immutable
// reference data; the engine looks them up by name and never mutates them.
type Wood struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Species  string       `json:"species"`
	Grade    string       `json:"grade"`
	Fb       float64      `json:"fb"`  // bending
	Fv       float64      `json:"fv"`  // shear
	Fc       float64      `json:"fc"`  // compression parallel to grain
	Fcp      float64      `json:"fcp"` // compression perpendicular to grain
	Ft       float64      `json:"ft"`  // tension parallel to grain
	E        float64      `json:"e"`   // mean modulus of elasticity
	E05      float64      `json:"e05"` // fifth percentile modulus of elasticity
	Type     MaterialType `json:"material_type"`

	Service ServiceCondition `json:"service_condition"`
	Treated bool             `json:"treated"`
	Incised bool             `json:"incised"`
}

// Library is a read-only lookup of wood materials. Implementations may be
// backed by an in-memory table or a database; the engine only depends on
// this interface.
type Library interface {
	Get(name string) (Wood, error)
	All() []Wood
}

// MemoryLibrary is an in-memory Library that preserves insertion order,
// so repeated searches enumerate materials deterministically.
type MemoryLibrary struct {
	byName map[string]Wood
	order  []string
}

func NewMemoryLibrary(materials ...Wood) *MemoryLibrary {
	lib := &MemoryLibrary{byName: make(map[string]Wood, len(materials))}
	for _, m := range materials {
		lib.Add(m)
	}
	return lib
}

// Add inserts or replaces a material. Replacing keeps the original position.
func (l *MemoryLibrary) Add(m Wood) {
	if _, ok := l.byName[m.Name]; !ok {
		l.order = append(l.order, m.Name)
	}
	l.byName[m.Name] = m
}

func (l *MemoryLibrary) Get(name string) (Wood, error) {
	m, ok := l.byName[name]
	if !ok {
		return Wood{}, fmt.Errorf("material %q not found in library", name)
	}
	return m, nil
}

func (l *MemoryLibrary) All() []Wood {
	out := make([]Wood, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.byName[name])
	}
	return out
}

// DefaultLibrary returns the built-in CSA O86-20 structural joist and plank
// table for common Canadian species groups. Strengths in MPa, dry service,
// untreated.
func DefaultLibrary() *MemoryLibrary {
	jp := func(species, grade string, fb, fv, fc, fcp, ft, e, e05 float64) Wood {
		return Wood{
			Name:     species + " " + grade,
			Category: "Joist and Plank",
			Species:  species,
			Grade:    grade,
			Fb:       fb,
			Fv:       fv,
			Fc:       fc,
			Fcp:      fcp,
			Ft:       ft,
			E:        e,
			E05:      e05,
			Type:     Sawn,
			Service:  Dry,
		}
	}
	return NewMemoryLibrary(
		jp("SPF", "No1/No2", 11.8, 1.5, 11.5, 5.3, 5.5, 9500, 6500),
		jp("SPF", "SS", 16.5, 1.5, 14.5, 5.3, 8.6, 10500, 7500),
		jp("D.Fir-L", "No1/No2", 10.0, 1.9, 13.0, 7.0, 5.8, 11000, 7500),
		jp("D.Fir-L", "SS", 16.5, 1.9, 14.5, 7.0, 10.6, 12500, 8500),
		jp("Hem-Fir", "No1/No2", 11.0, 1.6, 13.0, 4.6, 6.2, 11000, 7500),
		jp("Hem-Fir", "SS", 16.0, 1.6, 14.8, 4.6, 9.7, 12000, 8500),
		jp("Northern", "No1/No2", 7.6, 1.3, 10.4, 3.5, 4.0, 7000, 5000),
		jp("Northern", "SS", 10.6, 1.3, 13.0, 3.5, 6.2, 7500, 5500),
	)
}
