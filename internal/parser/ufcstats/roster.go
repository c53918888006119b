package ufcstats

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// ParseRoster parses the fighter listing table. Each row carries the first
// and last name in separate columns; both name links point at the same
// profile URL, which becomes the candidate's locator.
func ParseRoster(pageHTML []byte) ([]models.CandidateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse fighter list page: %w", err)
	}

	tbody := doc.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, fmt.Errorf("could not find fighter table on page")
	}

	var roster []models.CandidateRecord
	tbody.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}

		firstLink := cols.Eq(0).Find("a").First()
		lastLink := cols.Eq(1).Find("a").First()
		if firstLink.Length() == 0 || lastLink.Length() == 0 {
			return
		}

		href, ok := firstLink.Attr("href")
		if !ok || href == "" {
			return
		}

		roster = append(roster, models.CandidateRecord{
			FirstName: collapseText(firstLink.Text()),
			LastName:  collapseText(lastLink.Text()),
			Locator:   href,
		})
	})

	return roster, nil
}

// collapseText trims and collapses runs of whitespace; ufcstats markup is
// heavily indented inside text nodes.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
