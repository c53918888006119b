package predictor

import (
	"errors"
	"testing"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

func testRoster() []models.CandidateRecord {
	return []models.CandidateRecord{
		{FirstName: "Jon", LastName: "Jones", Locator: "http://ufcstats.com/fighter-details/jones"},
		{FirstName: "Deiveson", LastName: "Figueiredo", Locator: "http://ufcstats.com/fighter-details/figueiredo"},
		{FirstName: "Jon", LastName: "Jones", Locator: "http://ufcstats.com/fighter-details/jones-duplicate"},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLocator string
		wantFound   bool
	}{
		{"exact match", "Jon Jones", "http://ufcstats.com/fighter-details/jones", true},
		{"case insensitive", "jON joNES", "http://ufcstats.com/fighter-details/jones", true},
		{"surrounding whitespace", "  jon jones \t", "http://ufcstats.com/fighter-details/jones", true},
		{"no match", "Israel Adesanya", "", false},
		{"partial name does not match", "Jones", "", false},
		{"substring does not match", "Jon Jone", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator, found, err := Resolve(tt.input, testRoster())
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if found != tt.wantFound || locator != tt.wantLocator {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
					tt.input, locator, found, tt.wantLocator, tt.wantFound)
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Duplicate full names resolve to whichever comes first in roster order.
	locator, found, err := Resolve("jon jones", testRoster())
	if err != nil || !found {
		t.Fatalf("Resolve = (%q, %v, %v), want a match", locator, found, err)
	}
	if locator != "http://ufcstats.com/fighter-details/jones" {
		t.Errorf("Resolve picked %q, want the first roster entry", locator)
	}
}

func TestResolveInvalidName(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, _, err := Resolve(input, testRoster())
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidName", input, err)
		}
	}
}

func TestResolveEmptyRoster(t *testing.T) {
	// A failed or empty roster fetch is indistinguishable from no match.
	_, found, err := Resolve("Jon Jones", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("Resolve on empty roster reported a match")
	}
}

func TestSurnameInitial(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Jon Jones", "j", false},
		{"deiveson FIGUEIREDO", "f", false},
		{"Shogun", "s", false},
		{"  kamaru   usman  ", "u", false},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tt := range tests {
		got, err := SurnameInitial(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("SurnameInitial(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SurnameInitial(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SurnameInitial(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
