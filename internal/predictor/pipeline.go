package predictor

import (
	"context"
	"log/slog"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// ProfileSource fetches roster listings and profile text. Implemented by the
// ufcstats client; faked in tests.
type ProfileSource interface {
	// FetchRoster returns the candidates whose surname starts with initial.
	FetchRoster(ctx context.Context, initial string) ([]models.CandidateRecord, error)
	// FetchProfile returns the raw profile text blocks behind a roster locator.
	FetchProfile(ctx context.Context, locator string) (*models.DetailText, error)
}

// Lookup runs the resolve -> fetch -> extract pipeline for one fighter.
//
// Collaborator failures never abort the run: a fetch error, an unresolved
// name, or unparseable profile text all degrade to the zero-default record so
// a prediction is always produced. The returned stats are valid even when err
// is non-nil (err currently only reports a malformed input name).
func Lookup(ctx context.Context, src ProfileSource, rawName string, displayName string) (models.FighterStats, error) {
	slog.Info("Searching for fighter", "name", displayName)

	initial, err := SurnameInitial(rawName)
	if err != nil {
		return Extract(displayName, nil), err
	}

	roster, err := src.FetchRoster(ctx, initial)
	if err != nil {
		// Treated the same as an empty roster: the fighter stays unresolved.
		slog.Warn("Failed to fetch fighter roster", "initial", initial, "error", err)
		roster = nil
	}

	locator, found, err := Resolve(rawName, roster)
	if err != nil {
		return Extract(displayName, nil), err
	}
	if !found {
		slog.Warn("Could not find profile for fighter", "name", displayName)
		return Extract(displayName, nil), nil
	}

	detail, err := src.FetchProfile(ctx, locator)
	if err != nil {
		slog.Warn("Failed to fetch fighter profile", "name", displayName, "locator", locator, "error", err)
		detail = nil
	}

	return Extract(displayName, detail), nil
}
