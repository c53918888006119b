package predictor

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

const (
	recordPrefix = "Record: "
	slpmLabel    = "SLpM:"
	strDefLabel  = "Str. Def:"

	// emptyStat is the placeholder ufcstats shows for fighters with no data yet.
	emptyStat = "--"
)

// Extract builds the canonical FighterStats record from a fighter's scraped
// profile text. A nil detail (unresolved fighter or failed fetch) yields the
// all-zero default record; so does an unparseable record summary. Stat lines
// are parsed tolerantly per field, so one bad line never poisons the other.
//
// The returned record always carries the caller-supplied display name and has
// every field populated.
func Extract(name string, detail *models.DetailText) models.FighterStats {
	if detail == nil {
		return defaultStats(name)
	}

	wins, losses, draws, err := parseRecord(detail.Record)
	if err != nil {
		slog.Warn("Failed to parse fighter record, using default stats", "fighter", name, "error", err)
		return defaultStats(name)
	}

	var slpm float64
	var strDef int
	for _, line := range detail.Stats {
		if value, ok := statValue(line, slpmLabel); ok {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				slog.Warn("Unparseable SLpM value", "fighter", name, "value", value)
				continue
			}
			slpm = parsed
		} else if value, ok := statValue(line, strDefLabel); ok {
			value = strings.TrimSuffix(value, "%")
			parsed, err := strconv.Atoi(value)
			if err != nil {
				slog.Warn("Unparseable Str. Def value", "fighter", name, "value", value)
				continue
			}
			strDef = parsed
		}
	}

	// A zero here is ambiguous: either the stat was missing/"--" or the fighter
	// genuinely has an all-zero stat. ufcstats gives no way to tell them apart.
	if slpm == 0 {
		slog.Warn("Could not parse SLpM, defaulting to 0", "fighter", name)
	}
	if strDef == 0 {
		slog.Warn("Could not parse Str. Def, defaulting to 0", "fighter", name)
	}

	return models.FighterStats{
		Name:                   name,
		Wins:                   wins,
		Losses:                 losses,
		Draws:                  draws,
		StrikesLandedPerMinute: slpm,
		StrikeDefensePercent:   strDef,
	}
}

func defaultStats(name string) models.FighterStats {
	return models.FighterStats{Name: name}
}

// parseRecord parses a record summary like "Record: 27-1-0" or
// "Record: 11-3-0 (1 NC)". The no-contest annotation rides on the draws
// segment and is ignored.
func parseRecord(record string) (wins, losses, draws int, err error) {
	text := strings.TrimPrefix(record, recordPrefix)
	parts := strings.Split(text, "-")
	if len(parts) < 3 {
		return 0, 0, 0, fmt.Errorf("record %q: expected W-L-D", record)
	}

	wins, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("record %q: wins: %w", record, err)
	}
	losses, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("record %q: losses: %w", record, err)
	}

	// "0 (1 NC)" -> "0"
	drawFields := strings.Fields(parts[2])
	if len(drawFields) == 0 {
		return 0, 0, 0, fmt.Errorf("record %q: empty draws segment", record)
	}
	draws, err = strconv.Atoi(drawFields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("record %q: draws: %w", record, err)
	}

	return wins, losses, draws, nil
}

// statValue returns the trimmed text after a stat label, and whether the line
// carries that label with a real value (the "--" placeholder counts as absent).
func statValue(line, label string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), label)
	if !ok {
		return "", false
	}
	value := strings.TrimSpace(rest)
	if value == "" || value == emptyStat {
		return "", false
	}
	return value, true
}
