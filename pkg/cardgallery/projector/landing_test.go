package projector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/normalize"
)

const baseURL = "https://script.example/exec"

func TestProjectLandingCards(t *testing.T) {
	rows := []models.Row{
		{"Gems", "Our gems", "Showcase", "New!", nil, "https://ignored.example", "gems"},
		{"External", "Off site", "Links", "", "http://img/x.png", "https://external.example", nil},
		{"Hash", "", "", "", "", "#", ""},
		{"Nowhere", "", "", "", "", "", ""},
		{"", "No title", "", "", "", "https://x.example", "staff"},
		{"Numeric page", "", "", "", "", "", int64(7)},
		{"Too short", "", "", "", "", "https://x.example"},
	}

	cards := ProjectLandingCards(rows, baseURL)

	expected := []models.LandingCard{
		{
			Title:       "Gems",
			Description: "Our gems",
			Category:    "Showcase",
			Highlight:   "New!",
			Image:       normalize.NoImagePlaceholder,
			URL:         baseURL + "?page=gems",
		},
		{
			Title:       "External",
			Description: "Off site",
			Category:    "Links",
			Image:       "http://img/x.png",
			URL:         "https://external.example",
		},
		{Title: "Hash", Image: normalize.NoImagePlaceholder, URL: "#"},
		{Title: "Numeric page", Image: normalize.NoImagePlaceholder, URL: baseURL + "?page=7"},
	}
	if diff := cmp.Diff(expected, cards); diff != "" {
		t.Errorf("ProjectLandingCards mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectLandingCardsPageParameterOverridesRedirect(t *testing.T) {
	rows := []models.Row{{"T", "", "", "", "", "https://redirect.example", "staff"}}

	cards := ProjectLandingCards(rows, "")

	if assert.Len(t, cards, 1) {
		assert.Equal(t, "?page=staff", cards[0].URL)
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://svc/exec?page=gems", PageURL("https://svc/exec", "gems"))
}
