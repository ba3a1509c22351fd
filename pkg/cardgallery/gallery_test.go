package cardgallery

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/render"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

const testBase = StaticBaseURL("https://svc.example/exec")

func newTestGallery(t *testing.T, sheets map[string][]models.Row) *Gallery {
	t.Helper()
	pages, err := NewRegistry(MergePages([]Page{
		{ID: "gems", Template: "Cards"},
		{ID: "staff"},
		{ID: "events", Template: "Cards"},
	})...)
	require.NoError(t, err)
	return New(pages, source.NewMemory(sheets), render.New(""))
}

func testSheets() map[string][]models.Row {
	return map[string][]models.Row{
		"Landing Page": {
			{"Gems", "Our gems", "Showcase", "New!", nil, "https://ignored.example", "gems"},
			{"Docs", "Reading", "Links", "", nil, "https://docs.example", nil},
			{"", "untitled", "", "", nil, "#", nil},
		},
		"Interactive Learning Apps": {
			{"Fractions", "", "Math", "K, 7, 1", nil, "https://fractions.example"},
		},
		"Gems": {
			{"Ruby", "Red", nil, "https://ruby.example"},
			{"Opal", "No link", nil, nil},
		},
		"Staff": {},
	}
}

func TestViewLanding(t *testing.T) {
	g := newTestGallery(t, testSheets())

	page, view, err := g.View(context.Background(), "", testBase)
	require.NoError(t, err)

	assert.Equal(t, "landing", page.ID)
	assert.Equal(t, "Welcome", view.Title)
	assert.Equal(t, "https://svc.example/exec", view.WebAppURL)
	cards, ok := view.Cards.([]models.LandingCard)
	require.True(t, ok, "landing view should carry landing cards, got %T", view.Cards)
	require.Len(t, cards, 2)
	assert.Equal(t, "https://svc.example/exec?page=gems", cards[0].URL)
	assert.Equal(t, "https://docs.example", cards[1].URL)
}

func TestViewLearningApps(t *testing.T) {
	g := newTestGallery(t, testSheets())

	_, view, err := g.View(context.Background(), "interactivelearningapps", testBase)
	require.NoError(t, err)

	cards, ok := view.Cards.([]models.LearningAppCard)
	require.True(t, ok)
	require.Len(t, cards, 1)
	assert.Equal(t, []string{"K-2", "6-8"}, cards[0].GradeRanges)
}

func TestRenderGeneric(t *testing.T) {
	g := newTestGallery(t, testSheets())

	var buf bytes.Buffer
	page, err := g.Render(context.Background(), &buf, "gems", testBase)
	require.NoError(t, err)
	assert.Equal(t, "Cards", page.Template)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Gems", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("article.card").Length())
}

func TestRenderEmptySheet(t *testing.T) {
	sheets := testSheets()
	sheets["Landing Page"] = nil
	sheets["Events"] = nil
	g := newTestGallery(t, sheets)

	for _, id := range []string{"landing", "events"} {
		var buf bytes.Buffer
		_, err := g.Render(context.Background(), &buf, id, testBase)
		require.NoError(t, err, id)

		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Find("article.card").Length(), id)
	}
}

func TestRenderErrors(t *testing.T) {
	g := newTestGallery(t, testSheets())

	tests := []struct {
		page     string
		sentinel error
		stage    string
		message  string
	}{
		{"nope", ErrPageNotFound, StageLookup, `Error: Page "nope" not found.`},
		{"events", ErrSourceNotFound, StageRows, `Error: Sheet named "Events" not found.`},
		{"staff", ErrTemplateNotFound, StageRender, `Error: HTML template named "Staff.html" not found.`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		_, err := g.Render(context.Background(), &buf, tt.page, testBase)

		require.Error(t, err, tt.page)
		assert.True(t, errors.Is(err, tt.sentinel), "%s: %v", tt.page, err)
		var pe *PageError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, tt.stage, pe.Stage)
		assert.Equal(t, tt.message, UserMessage(err))
		assert.Zero(t, buf.Len(), "%s: no partial output", tt.page)
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	pages, err := NewRegistry(Page{ID: "gems"})
	require.NoError(t, err)
	tpl := render.NewFS(fstest.MapFS{
		"Gems.html": {Data: []byte(`{{range .Cards}}[{{.Title}}|{{.URL}}]{{end}}`)},
	})
	g := New(pages, source.NewMemory(testSheets()), tpl)

	var buf bytes.Buffer
	_, err = g.Render(context.Background(), &buf, "gems", testBase)
	require.NoError(t, err)
	assert.Equal(t, "[Ruby|https://ruby.example]", buf.String())
}

func TestUserMessageUnknownError(t *testing.T) {
	assert.Equal(t, "Error: the page could not be displayed.", UserMessage(errors.New("boom")))
	assert.Equal(t, `Error: page "gems" could not be displayed.`,
		UserMessage(NewPageError("gems", StageRows, "Gems", context.Canceled)))
}
