package fuzzy

// Verdict is the linguistic recommendation derived from a crisp score.
type Verdict string

const (
	MustStart Verdict = "MUST START"
	Flex      Verdict = "FLEX / HIGH POTENTIAL START"
	Sit       Verdict = "SIT / LOW FLEX"
)

// Score thresholds, inclusive on the lower bound.
const (
	MustStartThreshold = 75.0
	FlexThreshold      = 45.0
)

func Classify(score float64) Verdict {
	switch {
	case score >= MustStartThreshold:
		return MustStart
	case score >= FlexThreshold:
		return Flex
	default:
		return Sit
	}
}

// Badge returns the verdict with the marker shown in reports.
func (v Verdict) Badge() string {
	switch v {
	case MustStart:
		return "🔥 " + string(v)
	case Flex:
		return "🟢 " + string(v)
	case Sit:
		return "🔴 " + string(v)
	default:
		return string(v)
	}
}
