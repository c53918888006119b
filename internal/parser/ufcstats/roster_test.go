package ufcstats

import (
	"testing"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// Trimmed-down copy of the ufcstats.com fighter listing markup.
const sampleRosterHTML = `
<html><body>
<table class="b-statistics__table">
  <thead>
    <tr><th>First</th><th>Last</th><th>Nickname</th></tr>
  </thead>
  <tbody>
    <tr class="b-statistics__table-row">
      <td class="b-statistics__table-col">
        <a href="http://ufcstats.com/fighter-details/07225ba28ae309b6" class="b-link">
          Jon
        </a>
      </td>
      <td class="b-statistics__table-col">
        <a href="http://ufcstats.com/fighter-details/07225ba28ae309b6" class="b-link">
          Jones
        </a>
      </td>
      <td class="b-statistics__table-col">Bones</td>
    </tr>
    <tr class="b-statistics__table-row">
      <td class="b-statistics__table-col">
        <a href="http://ufcstats.com/fighter-details/1338e2c7480bdf9e" class="b-link">DaMarques</a>
      </td>
      <td class="b-statistics__table-col">
        <a href="http://ufcstats.com/fighter-details/1338e2c7480bdf9e" class="b-link">Johnson</a>
      </td>
      <td class="b-statistics__table-col"></td>
    </tr>
    <tr class="b-statistics__table-row">
      <td class="b-statistics__table-col" colspan="3">row without links is skipped</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseRoster(t *testing.T) {
	roster, err := ParseRoster([]byte(sampleRosterHTML))
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}

	want := []models.CandidateRecord{
		{FirstName: "Jon", LastName: "Jones", Locator: "http://ufcstats.com/fighter-details/07225ba28ae309b6"},
		{FirstName: "DaMarques", LastName: "Johnson", Locator: "http://ufcstats.com/fighter-details/1338e2c7480bdf9e"},
	}
	if len(roster) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(roster), len(want), roster)
	}
	for i := range want {
		if roster[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", i, roster[i], want[i])
		}
	}
}

func TestParseRosterNoTable(t *testing.T) {
	_, err := ParseRoster([]byte(`<html><body><p>maintenance</p></body></html>`))
	if err == nil {
		t.Fatal("expected an error for a page without a fighter table")
	}
}
