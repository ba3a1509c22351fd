// Package projector maps sheet rows onto card view models.
//
// Every projector is a pure function: rows are read, never modified, and
// the output keeps input order. Rows narrower than the layout are skipped,
// as are rows whose title or link is absent (see normalize.IsPresent).
package projector

import (
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/normalize"
)

// CardColumns is the width of a generic card row:
// Title, Description, Image, URL.
const CardColumns = 4

const (
	cardTitle = iota
	cardDescription
	cardImage
	cardURL
)

// ProjectCards projects generic card rows.
func ProjectCards(rows []models.Row) []models.Card {
	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		if len(row) < CardColumns {
			continue
		}
		title, url := row.Cell(cardTitle), row.Cell(cardURL)
		if !normalize.IsPresent(title) || !normalize.IsPresent(url) {
			continue
		}
		cards = append(cards, models.Card{
			Title:       normalize.Text(title),
			Description: normalize.Text(row.Cell(cardDescription)),
			Image:       normalize.ImageURL(row.Cell(cardImage)),
			URL:         normalize.Text(url),
		})
	}
	return cards
}
