package fuzzy

import (
	"StartSitApi/internal/assert"
	"testing"
)

func TestInferScenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantScore float64
		verdict   Verdict
		fired     []int
	}{
		{
			name:      "Elite Workhorse",
			input:     Input{Volume: 25, Yards: 130, Receptions: 8, TD: 2},
			wantScore: 3800.0 / 45,
			verdict:   MustStart,
			fired:     []int{1, 7},
		},
		{
			name:      "Inactive Bench Player",
			input:     Input{Volume: 2, Yards: 10, Receptions: 1, TD: 0},
			wantScore: 13.87205,
			verdict:   Sit,
			fired:     []int{2, 5},
		},
		{
			name:      "Decent Floor No Touchdown",
			input:     Input{Volume: 14, Yards: 75, Receptions: 7, TD: 0},
			wantScore: 50,
			verdict:   Flex,
			fired:     []int{4, 9, 16},
		},
		{
			name:      "All Zero",
			input:     Input{},
			wantScore: 40.0 / 3,
			verdict:   Sit,
			fired:     []int{2, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Infer(tt.input)
			assert.NilError(t, err)
			assert.InDelta(t, out.Score, tt.wantScore, 1e-3)
			assert.Equal(t, out.Verdict, tt.verdict)

			act := Evaluate(tt.input)
			for _, n := range tt.fired {
				if act.Rules[n-1] <= 0 {
					t.Errorf("rule %d did not fire", n)
				}
			}
		})
	}
}

func TestEvaluateStrengths(t *testing.T) {
	act := Evaluate(Input{Volume: 0, Yards: 0, Receptions: 0, TD: 0})
	assert.Equal(t, act.Rules[1], 1.0)
	assert.Equal(t, act.Rules[4], 1.0)
	assert.Equal(t, act.Sets[SetSit], 1.0)
	assert.Equal(t, act.Sets[SetFlex], 0.0)
	assert.Equal(t, act.Sets[SetStart], 0.0)
	assert.Equal(t, act.Fired(), true)

	act = Evaluate(Input{Volume: 14, Yards: 75, Receptions: 7, TD: 0})
	assert.InDelta(t, act.Sets[SetFlex], 0.875, 1e-9)
	assert.Equal(t, len(act.Rules), 19)
}

func TestInferNoRuleFired(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "Busy Receiver No Yards One TD", input: Input{Volume: 30, Yards: 0, Receptions: 15, TD: 1}},
		{name: "Clamped Into Same Corner", input: Input{Volume: 44, Yards: -8, Receptions: 21, TD: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Infer(tt.input)
			assert.ErrorIs(t, err, ErrNoRuleFired)
			assert.Equal(t, Evaluate(tt.input).Fired(), false)
		})
	}
}

func TestInferClampsInput(t *testing.T) {
	tests := []struct {
		name    string
		inside  Input
		outside Input
	}{
		{
			name:    "Above Universe",
			inside:  Input{Volume: 30, Yards: 130, Receptions: 15, TD: 3},
			outside: Input{Volume: 55, Yards: 130, Receptions: 19, TD: 6},
		},
		{
			name:    "Below Universe",
			inside:  Input{Volume: 2, Yards: 0, Receptions: 0, TD: 0},
			outside: Input{Volume: 2, Yards: -40, Receptions: -1, TD: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := Infer(tt.inside)
			assert.NilError(t, err)

			got, err := Infer(tt.outside)
			assert.NilError(t, err)

			assert.Equal(t, got, want)
			assert.Equal(t, tt.outside.Clamped(), tt.inside)
		})
	}
}

func TestInferScoreRange(t *testing.T) {
	for v := 0; v <= 30; v += 3 {
		for y := 0; y <= 150; y += 10 {
			for r := 0; r <= 15; r += 3 {
				for td := 0; td <= 3; td++ {
					out, err := Infer(Input{Volume: v, Yards: y, Receptions: r, TD: td})
					if err != nil {
						assert.ErrorIs(t, err, ErrNoRuleFired)
						continue
					}
					assert.Between(t, out.Score, 0, 100)
					assert.Equal(t, out.Verdict, Classify(out.Score))
				}
			}
		}
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name   string
		levels map[string]float64
		want   float64
	}{
		{name: "Full Sit", levels: map[string]float64{SetSit: 1}, want: 40.0 / 3},
		{name: "Full Flex", levels: map[string]float64{SetFlex: 1}, want: 50},
		{name: "Full Start", levels: map[string]float64{SetStart: 1}, want: 260.0 / 3},
		{name: "Clipped Flex", levels: map[string]float64{SetFlex: 0.3}, want: 50},
		{name: "Sit And Start Balanced", levels: map[string]float64{SetSit: 1, SetStart: 1}, want: 50},
		{name: "Mixed Levels", levels: map[string]float64{SetSit: 0.3, SetFlex: 0.8, SetStart: 0.6},
			want: 55.10325},
		{name: "Level Above One", levels: map[string]float64{SetFlex: 3}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Centroid(tt.levels)
			assert.NilError(t, err)
			assert.InDelta(t, got, tt.want, 1e-4)
		})
	}
}

// Overlapping sets cross inside a segment; the envelope must follow the max.
func TestCentroidOverlap(t *testing.T) {
	got, err := Centroid(map[string]float64{SetSit: 1, SetFlex: 1})
	assert.NilError(t, err)

	// Numerical reference on a fine grid.
	var area, moment float64
	const step = 0.001
	for y := 0.0; y <= 100; y += step {
		mu := max(Recommendation.Sets[0].MF.Degree(y), Recommendation.Sets[1].MF.Degree(y))
		area += mu * step
		moment += y * mu * step
	}
	assert.InDelta(t, got, moment/area, 1e-2)
}

func TestCentroidEmpty(t *testing.T) {
	_, err := Centroid(map[string]float64{SetSit: 0, SetFlex: 0, SetStart: 0})
	assert.ErrorIs(t, err, ErrNoRuleFired)

	_, err = Centroid(nil)
	assert.ErrorIs(t, err, ErrNoRuleFired)
}
