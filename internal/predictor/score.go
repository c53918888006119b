package predictor

import (
	"math"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// Scoring policy weights: a fighter's record counts for 60% of the prediction
// score, effective striking for 40%.
const (
	weightWinRate  = 0.6
	weightStriking = 0.4
)

// Derive computes the per-fighter intermediates for one scoring pass.
// EffectiveStrikes is a cross term: it discounts the fighter's striking rate
// by the *opponent's* defense.
func Derive(f, opponent models.FighterStats) models.DerivedMetrics {
	return models.DerivedMetrics{
		TotalFights:      f.TotalFights(),
		WinRate:          f.WinRate(),
		EffectiveStrikes: f.StrikesLandedPerMinute * (1 - float64(opponent.StrikeDefensePercent)/100),
	}
}

// Score computes the win-likelihood split for a fighter pair. Pure and
// deterministic: same inputs, same result.
//
// Two degenerate cases are handled without dividing by zero: if neither
// fighter lands anything after the opponent's defense, the strike ratio is a
// neutral 50/50 split; if both prediction scores are zero (two empty records),
// the result is a 50/50 tie.
//
// Equal rounded likelihoods on a non-zero score go to fighter B: the winner
// check is strictly-greater on A. Kept as-is for compatibility with the
// original scoring behavior; do not "fix" to a symmetric tie.
func Score(a, b models.FighterStats) models.PredictionResult {
	am := Derive(a, b)
	bm := Derive(b, a)

	aRatio, bRatio := 0.5, 0.5
	if total := am.EffectiveStrikes + bm.EffectiveStrikes; total != 0 {
		aRatio = am.EffectiveStrikes / total
		bRatio = bm.EffectiveStrikes / total
	}

	aScore := am.WinRate*weightWinRate + aRatio*100*weightStriking
	bScore := bm.WinRate*weightWinRate + bRatio*100*weightStriking

	totalScore := aScore + bScore
	if totalScore == 0 {
		return models.PredictionResult{LikelihoodA: 50.0, LikelihoodB: 50.0, Tie: true}
	}

	result := models.PredictionResult{
		LikelihoodA: round2(aScore / totalScore * 100),
		LikelihoodB: round2(bScore / totalScore * 100),
	}
	if result.LikelihoodA > result.LikelihoodB {
		result.Winner = a.Name
	} else {
		result.Winner = b.Name
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
