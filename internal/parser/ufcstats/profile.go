package ufcstats

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// CSS classes of the profile page pieces the extractor needs.
const (
	recordSelector   = "span.b-content__title-record"
	statItemSelector = "li.b-list__box-list-item"
)

// ParseProfile pulls the record summary and the labeled stat lines out of a
// fighter profile page. Missing pieces come back empty rather than as errors;
// the extractor decides what an absent field means.
func ParseProfile(pageHTML []byte) (*models.DetailText, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse profile page: %w", err)
	}

	detail := &models.DetailText{
		Record: collapseText(doc.Find(recordSelector).First().Text()),
	}

	doc.Find(statItemSelector).Each(func(_ int, item *goquery.Selection) {
		if line := collapseText(item.Text()); line != "" {
			detail.Stats = append(detail.Stats, line)
		}
	})

	return detail, nil
}
