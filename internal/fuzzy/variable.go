// Package fuzzy implements the start/sit recommendation engine: four linguistic
// input variables, one output variable, a fixed Mamdani rule base and centroid
// defuzzification.
package fuzzy

// Triangle is a triangular membership function with breakpoints A <= B <= C.
type Triangle struct {
	A, B, C float64
}

// Degree returns the membership of x. It is 0 outside [A, C] and 1 at B.
func (t Triangle) Degree(x float64) float64 {
	switch {
	case x < t.A || x > t.C:
		return 0
	case x == t.B:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.C - x) / (t.C - t.B)
	}
}

// FuzzySet is a named partition of a Variable's universe.
type FuzzySet struct {
	Name string
	MF   Triangle
}

// Variable is a linguistic variable over the closed universe [Min, Max].
type Variable struct {
	Name string
	Min  float64
	Max  float64
	Sets []FuzzySet
}

// Clamp forces x into the variable's universe.
func (v Variable) Clamp(x float64) float64 {
	if x < v.Min {
		return v.Min
	}
	if x > v.Max {
		return v.Max
	}
	return x
}

// Fuzzify clamps x and returns its degree of membership in every set.
func (v Variable) Fuzzify(x float64) map[string]float64 {
	x = v.Clamp(x)
	degrees := make(map[string]float64, len(v.Sets))
	for _, s := range v.Sets {
		degrees[s.Name] = s.MF.Degree(x)
	}
	return degrees
}

func (v Variable) Set(name string) (FuzzySet, bool) {
	for _, s := range v.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return FuzzySet{}, false
}

// Input variable names.
const (
	VarVolume     = "volume"
	VarYards      = "yards"
	VarReceptions = "receptions"
	VarTD         = "td"

	VarRecommendation = "recommendation"
)

// Output set names.
const (
	SetSit   = "sit"
	SetFlex  = "flex"
	SetStart = "start"
)

var (
	// Volume is carries plus targets.
	Volume = Variable{
		Name: VarVolume,
		Min:  0,
		Max:  30,
		Sets: []FuzzySet{
			{Name: "low", MF: Triangle{0, 0, 8}},
			{Name: "medium", MF: Triangle{3, 13, 22}},
			{Name: "high", MF: Triangle{18, 30, 30}},
		},
	}

	// Yards is rushing plus receiving yards.
	Yards = Variable{
		Name: VarYards,
		Min:  0,
		Max:  150,
		Sets: []FuzzySet{
			{Name: "poor", MF: Triangle{0, 0, 45}},
			{Name: "average", MF: Triangle{20, 70, 110}},
			{Name: "elite", MF: Triangle{100, 130, 150}},
		},
	}

	Receptions = Variable{
		Name: VarReceptions,
		Min:  0,
		Max:  15,
		Sets: []FuzzySet{
			{Name: "low", MF: Triangle{0, 0, 4}},
			{Name: "decent", MF: Triangle{2, 7, 12}},
			{Name: "high", MF: Triangle{10, 15, 15}},
		},
	}

	// TD is rushing plus receiving touchdowns.
	TD = Variable{
		Name: VarTD,
		Min:  0,
		Max:  3,
		Sets: []FuzzySet{
			{Name: "none", MF: Triangle{0, 0, 0.5}},
			{Name: "one", MF: Triangle{0, 1, 2}},
			{Name: "multiple", MF: Triangle{1, 3, 3}},
		},
	}

	Recommendation = Variable{
		Name: VarRecommendation,
		Min:  0,
		Max:  100,
		Sets: []FuzzySet{
			{Name: SetSit, MF: Triangle{0, 0, 40}},
			{Name: SetFlex, MF: Triangle{20, 50, 80}},
			{Name: SetStart, MF: Triangle{60, 100, 100}},
		},
	}
)

// Antecedents returns the input variables in a stable order.
func Antecedents() []Variable {
	return []Variable{Volume, Yards, Receptions, TD}
}
