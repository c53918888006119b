// Package report renders a finished prediction: console summary, PNG bar
// chart, and an optional Telegram notification. Presentation only; nothing
// here feeds back into scoring.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
	"github.com/parthpatel/ufcpredict/internal/predictor"
)

// Print writes the fight prediction report to w.
func Print(w io.Writer, result models.PredictionResult, a, b models.FighterStats) {
	am := predictor.Derive(a, b)
	bm := predictor.Derive(b, a)

	fmt.Fprintln(w, "\n================ UFC FIGHT PREDICTION REPORT ================")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tWins\tLosses\tDraws\tWin_Rate\tSLpM\tStr_Def")
	for _, row := range []struct {
		f models.FighterStats
		m models.DerivedMetrics
	}{{a, am}, {b, bm}} {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t%.2f\t%d\n",
			row.f.Name, row.f.Wins, row.f.Losses, row.f.Draws,
			row.m.WinRate, row.f.StrikesLandedPerMinute, row.f.StrikeDefensePercent)
	}
	tw.Flush()

	fmt.Fprintln(w, "\n-------------------------------------------------------------")
	fmt.Fprintf(w, "Effective Strikes: %s = %.2f, %s = %.2f\n",
		a.Name, am.EffectiveStrikes, b.Name, bm.EffectiveStrikes)
	fmt.Fprintf(w, "Prediction Likelihood: %s = %v%%, %s = %v%%\n",
		a.Name, result.LikelihoodA, b.Name, result.LikelihoodB)
	fmt.Fprintln(w, "-------------------------------------------------------------")
	fmt.Fprintf(w, "Predicted Winner: %s\n", WinnerLine(result))
	fmt.Fprintln(w, "=============================================================")
}

// Sprint renders the same report to a string (for the Telegram notifier).
func Sprint(result models.PredictionResult, a, b models.FighterStats) string {
	var sb strings.Builder
	Print(&sb, result, a, b)
	return sb.String()
}

// WinnerLine is the human form of the verdict, tie sentinel included.
func WinnerLine(result models.PredictionResult) string {
	if result.Tie {
		return "It's a perfect tie!"
	}
	return result.Winner
}
