package models

// CandidateRecord is one row of the ufcstats roster listing for a surname letter.
// Records are ephemeral: they only live for the duration of one resolution pass.
type CandidateRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Locator is the profile URL the roster row links to. The resolver treats it
	// as opaque; only the ufcstats client knows how to dereference it.
	Locator string `json:"locator"`
}

// DetailText holds the raw text blocks scraped from one fighter profile page.
// The extractor works on these blocks only, never on HTML.
type DetailText struct {
	// Record is the summary line, e.g. "Record: 27-1-0" or "Record: 11-3-0 (1 NC)".
	Record string `json:"record"`
	// Stats are the labeled career statistic lines, e.g. "SLpM: 2.63", "Str. Def: 61%".
	Stats []string `json:"stats"`
}

// FighterStats is the canonical per-fighter record produced by extraction.
// Every field is always populated; a fighter that could not be resolved or
// parsed gets the zero defaults rather than missing values.
type FighterStats struct {
	Name                   string  `json:"name"`
	Wins                   int     `json:"wins"`
	Losses                 int     `json:"losses"`
	Draws                  int     `json:"draws"`
	StrikesLandedPerMinute float64 `json:"slpm"`
	StrikeDefensePercent   int     `json:"str_def"`
}

// TotalFights is wins+losses+draws. No-contest bouts are not counted.
func (f FighterStats) TotalFights() int {
	return f.Wins + f.Losses + f.Draws
}

// WinRate returns the win percentage over all counted fights, 0 for a fighter
// with no fights on record.
func (f FighterStats) WinRate() float64 {
	total := f.TotalFights()
	if total == 0 {
		return 0
	}
	return float64(f.Wins) / float64(total) * 100
}
