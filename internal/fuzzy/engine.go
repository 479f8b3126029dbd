package fuzzy

import (
	"errors"
	"math"
	"slices"
)

// ErrNoRuleFired is returned when no rule has a non-zero firing strength, which
// leaves the aggregated output empty and the centroid undefined.
var ErrNoRuleFired = errors.New("no rule fired: centroid undefined")

// Input holds the crisp box-score values for one player week. Values outside a
// variable's universe are clamped, never rejected.
type Input struct {
	Volume     int `json:"volume"`
	Yards      int `json:"yards"`
	Receptions int `json:"receptions"`
	TD         int `json:"td"`
}

// Clamped returns the input forced into every variable's universe.
func (in Input) Clamped() Input {
	return Input{
		Volume:     int(Volume.Clamp(float64(in.Volume))),
		Yards:      int(Yards.Clamp(float64(in.Yards))),
		Receptions: int(Receptions.Clamp(float64(in.Receptions))),
		TD:         int(TD.Clamp(float64(in.TD))),
	}
}

func (in Input) values() map[string]float64 {
	return map[string]float64{
		VarVolume:     float64(in.Volume),
		VarYards:      float64(in.Yards),
		VarReceptions: float64(in.Receptions),
		VarTD:         float64(in.TD),
	}
}

type Output struct {
	Score   float64 `json:"score"`
	Verdict Verdict `json:"verdict"`
}

// Activation records how strongly each rule fired and the resulting clip level
// of each recommendation set.
type Activation struct {
	Memberships Memberships        `json:"-"`
	Rules       []float64          `json:"rules"`
	Sets        map[string]float64 `json:"sets"`
}

// Fired reports whether any rule had a non-zero firing strength.
func (a Activation) Fired() bool {
	for _, s := range a.Sets {
		if s > 0 {
			return true
		}
	}
	return false
}

// Fuzzify clamps every input and returns the membership of each antecedent term.
func Fuzzify(in Input) Memberships {
	values := in.values()
	m := make(Memberships, 12)
	for _, v := range Antecedents() {
		for set, degree := range v.Fuzzify(values[v.Name]) {
			m[Term{Variable: v.Name, Set: set}] = degree
		}
	}
	return m
}

// Evaluate fuzzifies the input and fires the whole rule base. Rules concluding
// the same set are aggregated with max.
func Evaluate(in Input) Activation {
	m := Fuzzify(in)
	act := Activation{
		Memberships: m,
		Rules:       make([]float64, len(ruleBase)),
		Sets:        make(map[string]float64, len(Recommendation.Sets)),
	}
	for _, s := range Recommendation.Sets {
		act.Sets[s.Name] = 0
	}

	for i, r := range ruleBase {
		strength := r.Antecedent.Eval(m)
		act.Rules[i] = strength
		act.Sets[r.Consequent] = math.Max(act.Sets[r.Consequent], strength)
	}

	return act
}

// Infer runs the full Mamdani pipeline for one player and classifies the crisp
// score. It holds no state between calls and is safe for concurrent use.
func Infer(in Input) (Output, error) {
	score, err := Centroid(Evaluate(in).Sets)
	if err != nil {
		return Output{}, err
	}

	return Output{Score: score, Verdict: Classify(score)}, nil
}

// Centroid defuzzifies the recommendation output clipped at the given set
// levels. The aggregated curve max_s(min(level_s, mf_s(y))) is piecewise linear,
// so its area and first moment are integrated exactly segment by segment.
func Centroid(levels map[string]float64) (float64, error) {
	curves := make([]clipped, 0, len(Recommendation.Sets))
	for _, s := range Recommendation.Sets {
		if level := levels[s.Name]; level > 0 {
			curves = append(curves, clipped{mf: s.MF, level: math.Min(level, 1)})
		}
	}
	if len(curves) == 0 {
		return 0, ErrNoRuleFired
	}

	lo, hi := Recommendation.Min, Recommendation.Max
	xs := []float64{lo, hi}
	for _, c := range curves {
		xs = append(xs, c.knots()...)
	}
	xs = sortedWithin(xs, lo, hi)

	// Between knots every clipped curve is linear; add the points where two of
	// them cross so the upper envelope is linear on each final segment.
	crossings := make([]float64, 0)
	for k := 1; k < len(xs); k++ {
		x0, x1 := xs[k-1], xs[k]
		for i := 0; i < len(curves); i++ {
			for j := i + 1; j < len(curves); j++ {
				d0 := curves[i].at(x0) - curves[j].at(x0)
				d1 := curves[i].at(x1) - curves[j].at(x1)
				if d0*d1 < 0 {
					crossings = append(crossings, x0+(x1-x0)*d0/(d0-d1))
				}
			}
		}
	}
	xs = sortedWithin(append(xs, crossings...), lo, hi)

	var area, moment float64
	for k := 1; k < len(xs); k++ {
		x0, x1 := xs[k-1], xs[k]
		y0, y1 := envelope(curves, x0), envelope(curves, x1)
		h := x1 - x0
		area += h * (y0 + y1) / 2
		moment += h * (x0*(2*y0+y1) + x1*(y0+2*y1)) / 6
	}

	if area <= 0 {
		return 0, ErrNoRuleFired
	}

	return moment / area, nil
}

// clipped is one output set's membership function cut at its activation level.
type clipped struct {
	mf    Triangle
	level float64
}

func (c clipped) at(x float64) float64 {
	return math.Min(c.level, c.mf.Degree(x))
}

// knots returns the x positions where the clipped curve changes slope.
func (c clipped) knots() []float64 {
	t := c.mf
	return []float64{
		t.A,
		t.A + c.level*(t.B-t.A),
		t.B,
		t.C - c.level*(t.C-t.B),
		t.C,
	}
}

func envelope(curves []clipped, x float64) float64 {
	y := 0.0
	for _, c := range curves {
		y = math.Max(y, c.at(x))
	}
	return y
}

func sortedWithin(xs []float64, lo, hi float64) []float64 {
	kept := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x >= lo && x <= hi {
			kept = append(kept, x)
		}
	}
	slices.Sort(kept)
	return slices.Compact(kept)
}
