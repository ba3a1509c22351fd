package cardgallery

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/projector"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/render"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

// BaseURLProvider returns the service's own address.
type BaseURLProvider interface {
	BaseURL(ctx context.Context) string
}

// StaticBaseURL is a BaseURLProvider returning a fixed address.
type StaticBaseURL string

// BaseURL implements BaseURLProvider.
func (s StaticBaseURL) BaseURL(context.Context) string {
	return string(s)
}

// Gallery builds pages: it reads a page's rows, projects them into cards
// and renders the page template. A Gallery holds no per-request state.
type Gallery struct {
	pages    *Registry
	rows     source.RowSource
	renderer render.Renderer
	logger   *zap.Logger
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Gallery) {
		g.logger = logger
	}
}

// New creates a Gallery.
func New(pages *Registry, rows source.RowSource, renderer render.Renderer, opts ...Option) *Gallery {
	g := &Gallery{
		pages:    pages,
		rows:     rows,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Pages returns the page registry.
func (g *Gallery) Pages() *Registry {
	return g.pages
}

// View builds the template view of a page.
func (g *Gallery) View(ctx context.Context, pageID string, base BaseURLProvider) (Page, models.View, error) {
	page, err := g.pages.Lookup(pageID)
	if err != nil {
		return Page{}, models.View{}, err
	}

	rows, err := g.rows.Rows(ctx, page.Source, page.Layout.Columns())
	if err != nil {
		return page, models.View{}, NewPageError(page.ID, StageRows, source.ParseReference(page.Source).Sheet, err)
	}

	baseURL := base.BaseURL(ctx)
	cards, n := project(page.Layout, rows, baseURL)
	g.logger.Debug("Projected page",
		zap.String("page", page.ID),
		zap.Int("rows", len(rows)),
		zap.Int("cards", n))

	return page, models.View{
		Title:     page.Title,
		Page:      page.ID,
		WebAppURL: baseURL,
		Cards:     cards,
	}, nil
}

// Render writes the complete document of a page to w. Nothing is written
// when building the page fails.
func (g *Gallery) Render(ctx context.Context, w io.Writer, pageID string, base BaseURLProvider) (Page, error) {
	page, view, err := g.View(ctx, pageID, base)
	if err != nil {
		return page, err
	}

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, page.Template, view); err != nil {
		return page, NewPageError(page.ID, StageRender, page.Template, err)
	}

	_, err = buf.WriteTo(w)
	return page, err
}

// project runs the projector of layout and returns the cards with their count.
func project(layout Layout, rows []models.Row, baseURL string) (interface{}, int) {
	switch layout {
	case LayoutLanding:
		cards := projector.ProjectLandingCards(rows, baseURL)
		return cards, len(cards)
	case LayoutLearningApps:
		cards := projector.ProjectLearningAppCards(rows)
		return cards, len(cards)
	default:
		cards := projector.ProjectCards(rows)
		return cards, len(cards)
	}
}
