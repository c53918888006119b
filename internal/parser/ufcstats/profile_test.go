package ufcstats

import (
	"testing"
)

// Trimmed-down copy of the ufcstats.com fighter profile markup.
const sampleProfileHTML = `
<html><body>
<section class="b-statistics__section_details">
  <h2 class="b-content__title">
    <span class="b-content__title-highlight">
      Jon Jones
    </span>
    <span class="b-content__title-record">
      Record: 27-1-0 (1 NC)
    </span>
  </h2>
  <div class="b-list__info-box">
    <ul class="b-list__box-list">
      <li class="b-list__box-list-item b-list__box-list-item_type_block">
        <i class="b-list__box-item-title">Height:</i>
        6' 4"
      </li>
      <li class="b-list__box-list-item b-list__box-list-item_type_block">
        <i class="b-list__box-item-title">SLpM:</i>
        4.32
      </li>
      <li class="b-list__box-list-item b-list__box-list-item_type_block">
        <i class="b-list__box-item-title">Str. Def:</i>
        64%
      </li>
      <li class="b-list__box-list-item b-list__box-list-item_type_block">
        <i class="b-list__box-item-title">TD Avg.:</i>
        --
      </li>
    </ul>
  </div>
</section>
</body></html>`

func TestParseProfile(t *testing.T) {
	detail, err := ParseProfile([]byte(sampleProfileHTML))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	if detail.Record != "Record: 27-1-0 (1 NC)" {
		t.Errorf("Record = %q, want %q", detail.Record, "Record: 27-1-0 (1 NC)")
	}

	wantStats := []string{
		`Height: 6' 4"`,
		"SLpM: 4.32",
		"Str. Def: 64%",
		"TD Avg.: --",
	}
	if len(detail.Stats) != len(wantStats) {
		t.Fatalf("got %d stat lines, want %d: %q", len(detail.Stats), len(wantStats), detail.Stats)
	}
	for i := range wantStats {
		if detail.Stats[i] != wantStats[i] {
			t.Errorf("stat line %d = %q, want %q", i, detail.Stats[i], wantStats[i])
		}
	}
}

func TestParseProfileMissingRecord(t *testing.T) {
	// A redesigned page without the record span still parses; the extractor is
	// the one that decides an empty record means default stats.
	detail, err := ParseProfile([]byte(`<html><body><p>nothing here</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}
	if detail.Record != "" {
		t.Errorf("Record = %q, want empty", detail.Record)
	}
	if len(detail.Stats) != 0 {
		t.Errorf("Stats = %q, want none", detail.Stats)
	}
}
