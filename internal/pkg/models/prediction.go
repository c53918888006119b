package models

// DerivedMetrics are the per-fighter intermediate values of one scoring pass.
// Computed on demand, never stored.
type DerivedMetrics struct {
	TotalFights int     `json:"total_fights"`
	WinRate     float64 `json:"win_rate"`
	// EffectiveStrikes is the fighter's striking rate discounted by the
	// opponent's strike defense.
	EffectiveStrikes float64 `json:"effective_strikes"`
}

// PredictionResult is the outcome of scoring one fighter pair.
type PredictionResult struct {
	// Likelihoods are percentages rounded to two decimals and sum to 100.
	LikelihoodA float64 `json:"likelihood_a"`
	LikelihoodB float64 `json:"likelihood_b"`
	// Winner is the predicted fighter's display name; empty when Tie is set.
	Winner string `json:"winner"`
	// Tie marks the degenerate case of two empty records (both scores zero).
	// An ordinary equal-likelihood pair is not a Tie: the second fighter wins.
	Tie bool `json:"tie"`
}
