package projector

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/normalize"
)

const driveID = "1AbCdEfGhIjKlMnOpQrStUvWxYz"

func cloneRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = append(models.Row(nil), r...)
	}
	return out
}

func TestProjectCards(t *testing.T) {
	rows := []models.Row{
		{"Gem One", "First", "https://drive.google.com/file/d/" + driveID + "/view", "https://one.example"},
		{"", "no title", nil, "https://skip.example"},
		{"No link", "no url", nil, nil},
		{int64(0), "zero title", nil, "https://zero.example"},
		{"Gem Two", nil, nil, "https://two.example"},
		{"Short row", "x", nil},
		{"Zero link", "x", nil, 0.0},
		{math.NaN(), "nan title", nil, "https://nan.example"},
		{int64(2048), "numeric title", "http://img.example/a.png", "https://2048.example"},
	}

	cards := ProjectCards(rows)

	expected := []models.Card{
		{
			Title:       "Gem One",
			Description: "First",
			Image:       "https://drive.google.com/thumbnail?id=" + driveID + "&sz=w600",
			URL:         "https://one.example",
		},
		{Title: "Gem Two", Image: normalize.NoImagePlaceholder, URL: "https://two.example"},
		{Title: "2048", Description: "numeric title", Image: "http://img.example/a.png", URL: "https://2048.example"},
	}
	if diff := cmp.Diff(expected, cards); diff != "" {
		t.Errorf("ProjectCards mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectCardsEmpty(t *testing.T) {
	cards := ProjectCards(nil)
	require.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestProjectorsAreDeterministicAndDoNotMutate(t *testing.T) {
	rows := []models.Row{
		{"A", "a", "https://drive.google.com/open?id=" + driveID, "https://a.example", "Cat", "K, 7, 1", "gems"},
		{"B", "b", "", "#", "Cat", "", ""},
	}
	before := cloneRows(rows)

	assert.Equal(t, ProjectCards(rows), ProjectCards(rows))
	assert.Equal(t, ProjectLandingCards(rows, "https://svc"), ProjectLandingCards(rows, "https://svc"))
	assert.Equal(t, ProjectLearningAppCards(rows), ProjectLearningAppCards(rows))

	if diff := cmp.Diff(before, rows); diff != "" {
		t.Errorf("rows were mutated (-before +after):\n%s", diff)
	}
}
