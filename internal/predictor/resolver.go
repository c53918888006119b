package predictor

import (
	"errors"
	"strings"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// ErrInvalidName marks a free-text name with no surname token. Resolution for
// that fighter cannot even start because there is no roster letter to look up.
var ErrInvalidName = errors.New("invalid fighter name: no surname token")

// Resolve matches a free-text fighter name against a roster listing.
//
// The input is trimmed and lower-cased, then compared for exact equality
// against each candidate's lower-cased "first last" concatenation, in roster
// order. The first exact match wins. No fuzzy or partial matching: ufcstats
// roster pages are one alphabetic bucket, and near-miss matches would risk
// pulling a different fighter's record.
//
// found == false is the normal "no such fighter on this page" outcome, not an
// error; ErrInvalidName is returned only for a malformed name.
func Resolve(fullName string, roster []models.CandidateRecord) (locator string, found bool, err error) {
	searchName := strings.ToLower(strings.TrimSpace(fullName))
	if len(strings.Fields(searchName)) == 0 {
		return "", false, ErrInvalidName
	}

	for _, c := range roster {
		candidate := strings.ToLower(c.FirstName) + " " + strings.ToLower(c.LastName)
		if candidate == searchName {
			return c.Locator, true, nil
		}
	}
	return "", false, nil
}

// SurnameInitial returns the lower-cased first letter of the last name token,
// used to pick the roster bucket page. ErrInvalidName if there is no token.
func SurnameInitial(fullName string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(fullName))
	if len(fields) == 0 {
		return "", ErrInvalidName
	}
	surname := []rune(strings.ToLower(fields[len(fields)-1]))
	return string(surname[0]), nil
}
