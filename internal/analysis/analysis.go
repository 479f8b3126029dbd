// Package analysis runs the fuzzy engine over a batch of player stat records.
package analysis

import (
	"StartSitApi/internal/fuzzy"
	"StartSitApi/internal/jsonlog"
	"errors"
	"strconv"
)

// Record is one player's box score for a week, already reduced to the four
// engine inputs. Values are raw; clamping happens inside the engine.
type Record struct {
	Name       string `json:"name"`
	Team       string `json:"team"`
	Position   string `json:"position"`
	Volume     int    `json:"volume"`
	Yards      int    `json:"yards"`
	Receptions int    `json:"receptions"`
	TD         int    `json:"td"`
}

// Empty reports whether the record is missing or carries no data at all.
func (r *Record) Empty() bool {
	return r == nil || *r == Record{}
}

func (r *Record) Input() fuzzy.Input {
	return fuzzy.Input{
		Volume:     r.Volume,
		Yards:      r.Yards,
		Receptions: r.Receptions,
		TD:         r.TD,
	}
}

type Result struct {
	PlayerName     string            `json:"player_name"`
	Team           string            `json:"team"`
	Position       string            `json:"position"`
	Volume         int               `json:"volume"`
	Yards          int               `json:"yards"`
	Receptions     int               `json:"receptions"`
	TD             int               `json:"td"`
	RecoScore      float64           `json:"reco_score"`
	RecoConclusion fuzzy.Verdict     `json:"reco_conclusion"`
	InputYear      int               `json:"input_year"`
	InputWeek      int               `json:"input_week"`
	Activation     *fuzzy.Activation `json:"activation,omitempty"`
}

type Analyzer struct {
	logger *jsonlog.Logger
	// Explain attaches rule firing strengths to every result.
	Explain bool
}

func New(logger *jsonlog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Stream analyses records in order and hands each successful result to emit.
// Empty records are skipped silently; records the engine cannot defuzzify are
// skipped with a warning. An error from emit stops the batch and is returned.
func (a *Analyzer) Stream(records []*Record, year, week int, emit func(Result) error) error {
	for _, rec := range records {
		if rec.Empty() {
			continue
		}

		act := fuzzy.Evaluate(rec.Input())
		score, err := fuzzy.Centroid(act.Sets)
		if err != nil {
			switch {
			case errors.Is(err, fuzzy.ErrNoRuleFired):
				a.logger.PrintWarn("fuzzy analysis skipped player", map[string]string{
					"player": rec.Name,
					"team":   rec.Team,
					"week":   strconv.Itoa(week),
					"error":  err.Error(),
				})
				continue
			default:
				return err
			}
		}

		result := Result{
			PlayerName:     rec.Name,
			Team:           rec.Team,
			Position:       rec.Position,
			Volume:         rec.Volume,
			Yards:          rec.Yards,
			Receptions:     rec.Receptions,
			TD:             rec.TD,
			RecoScore:      score,
			RecoConclusion: fuzzy.Classify(score),
			InputYear:      year,
			InputWeek:      week,
		}
		if a.Explain {
			result.Activation = &act
		}

		if err := emit(result); err != nil {
			return err
		}
	}

	return nil
}

// Analyze collects every successful result. It never fails; a batch where no
// player could be analysed yields an empty slice.
func (a *Analyzer) Analyze(records []*Record, year, week int) []Result {
	results := make([]Result, 0, len(records))
	// The collector never fails and Stream absorbs ErrNoRuleFired, the only
	// error the engine reports, so there is nothing to return.
	_ = a.Stream(records, year, week, func(r Result) error {
		results = append(results, r)
		return nil
	})
	return results
}
