package rules

// MaxScore is the upper bound of a strength score.
const MaxScore = 100

// Tier buckets a strength score for display purposes. It never decides
// whether a password is accepted.
type Tier int

const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierMedium:
		return "medium"
	case TierStrong:
		return "strong"
	default:
		return "weak"
	}
}

// MarshalText encodes the tier by name so JSON snapshots stay readable.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Color returns the indicator color associated with the tier.
func (t Tier) Color() string {
	switch t {
	case TierMedium:
		return "#f59e0b"
	case TierStrong:
		return "#10b981"
	default:
		return "#ef4444"
	}
}

// Strength pairs a score with its display tier.
type Strength struct {
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

// Score sums the weights of the rules pw satisfies, capped at MaxScore.
func Score(pw string) int {
	if pw == "" {
		return 0
	}
	score := 0
	for _, rule := range passwordRules {
		if rule.Test(pw) {
			score += rule.Weight
		}
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// TierFor maps a score onto its tier: below 35 is weak, below 70 medium,
// everything else strong.
func TierFor(score int) Tier {
	switch {
	case score < 35:
		return TierWeak
	case score < 70:
		return TierMedium
	default:
		return TierStrong
	}
}

// Measure scores pw and resolves its tier.
func Measure(pw string) Strength {
	score := Score(pw)
	return Strength{Score: score, Tier: TierFor(score)}
}
