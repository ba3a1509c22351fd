package projector

import (
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/normalize"
)

// LandingColumns is the width of a landing row: Title, Description,
// Category, Highlight, Image, Redirect URL, Page Parameter.
const LandingColumns = 7

const (
	landingTitle = iota
	landingDescription
	landingCategory
	landingHighlight
	landingImage
	landingRedirectURL
	landingPageParameter
)

// ProjectLandingCards projects landing page rows. A row with a page
// parameter links to baseURL?page=<parameter> and its redirect URL
// cell is ignored.
func ProjectLandingCards(rows []models.Row, baseURL string) []models.LandingCard {
	cards := make([]models.LandingCard, 0, len(rows))
	for _, row := range rows {
		if len(row) < LandingColumns {
			continue
		}
		url := row.Cell(landingRedirectURL)
		if page := row.Cell(landingPageParameter); normalize.IsPresent(page) {
			url = PageURL(baseURL, normalize.Text(page))
		}
		title := row.Cell(landingTitle)
		if !normalize.IsPresent(title) || !normalize.IsPresent(url) {
			continue
		}
		cards = append(cards, models.LandingCard{
			Title:       normalize.Text(title),
			Description: normalize.Text(row.Cell(landingDescription)),
			Category:    normalize.Text(row.Cell(landingCategory)),
			Highlight:   normalize.Text(row.Cell(landingHighlight)),
			Image:       normalize.ImageURL(row.Cell(landingImage)),
			URL:         normalize.Text(url),
		})
	}
	return cards
}

// PageURL builds a same-origin link to another gallery page.
func PageURL(baseURL, page string) string {
	return baseURL + "?page=" + page
}
