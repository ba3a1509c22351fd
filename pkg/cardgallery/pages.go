// Package cardgallery builds card gallery pages from sheet rows.
package cardgallery

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/projector"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

// Layout selects the row shape and projector of a page.
type Layout string

const (
	// LayoutGeneric reads Title, Description, Image, URL rows.
	LayoutGeneric Layout = "generic"
	// LayoutLanding reads Title, Description, Category, Highlight, Image,
	// Redirect URL, Page Parameter rows.
	LayoutLanding Layout = "landing"
	// LayoutLearningApps reads Title, Description, Category, Grade Level,
	// Image, URL rows.
	LayoutLearningApps Layout = "learningapps"
)

// Columns returns the row width of the layout, or 0 for an unknown layout.
func (l Layout) Columns() int {
	switch l {
	case LayoutGeneric:
		return projector.CardColumns
	case LayoutLanding:
		return projector.LandingColumns
	case LayoutLearningApps:
		return projector.LearningAppColumns
	default:
		return 0
	}
}

// DefaultPageID is served when a request names no page.
const DefaultPageID = "landing"

// Page describes one gallery page.
type Page struct {
	// ID is the value of the page query parameter.
	ID string `yaml:"id" json:"id"`
	// Title is the document title.
	Title string `yaml:"title" json:"title"`
	// Source is the sheet name, optionally with a data origin ("'Sheet'!B3").
	Source string `yaml:"source" json:"source"`
	// Template is the template name, without the .html extension.
	Template string `yaml:"template" json:"template"`
	// Layout is the row layout.
	Layout Layout `yaml:"layout" json:"layout"`
}

// DefaultPages returns the landing and learning-apps pages.
func DefaultPages() []Page {
	return []Page{
		{
			ID:       DefaultPageID,
			Title:    "Welcome",
			Source:   "Landing Page",
			Template: "LandingPage",
			Layout:   LayoutLanding,
		},
		{
			ID:       "interactivelearningapps",
			Title:    "Interactive Learning Apps",
			Source:   "Interactive Learning Apps",
			Template: "InteractiveLearningApps",
			Layout:   LayoutLearningApps,
		},
	}
}

// withDefaults fills unset fields of a generic page from its id:
// "gems" reads sheet "Gems" and renders template "Gems".
func (p Page) withDefaults() Page {
	if p.Layout == "" {
		p.Layout = LayoutGeneric
	}
	name := capitalize(p.ID)
	if p.Source == "" {
		p.Source = name
	}
	if p.Template == "" {
		p.Template = name
	}
	if p.Title == "" {
		p.Title = source.ParseReference(p.Source).Sheet
	}
	return p
}

func (p Page) validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("empty page id"))
	}
	if p.Layout.Columns() == 0 {
		errs = append(errs, fmt.Errorf("unknown layout %q", p.Layout))
	}
	if p.Source == "" {
		errs = append(errs, errors.New("empty source"))
	}
	if p.Template == "" {
		errs = append(errs, errors.New("empty template"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("page %q: %w", p.ID, errors.Join(errs...))
	}
	return nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Registry maps page identifiers to pages.
type Registry struct {
	pages map[string]Page
	order []string
}

// NewRegistry builds a registry from pages, filling defaults and
// rejecting invalid or duplicate entries.
func NewRegistry(pages ...Page) (*Registry, error) {
	r := &Registry{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		p.ID = strings.TrimSpace(p.ID)
		p = p.withDefaults()
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.pages[p.ID]; dup {
			return nil, fmt.Errorf("page %q: duplicate id", p.ID)
		}
		r.pages[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

// Lookup returns the page for id. An empty id selects DefaultPageID.
func (r *Registry) Lookup(id string) (Page, error) {
	if id == "" {
		id = DefaultPageID
	}
	p, ok := r.pages[id]
	if !ok {
		return Page{}, NewPageError(id, StageLookup, id, ErrPageNotFound)
	}
	return p, nil
}

// Pages returns all pages in registration order.
func (r *Registry) Pages() []Page {
	pages := make([]Page, 0, len(r.order))
	for _, id := range r.order {
		pages = append(pages, r.pages[id])
	}
	return pages
}

// MergePages returns DefaultPages with any page of the same id overlaid
// by its entry in pages, followed by the remaining pages in order.
// Fields left empty in an override keep the built-in value.
func MergePages(pages []Page) []Page {
	byID := make(map[string]Page, len(pages))
	for _, p := range pages {
		byID[strings.TrimSpace(p.ID)] = p
	}

	var merged []Page
	for _, def := range DefaultPages() {
		if p, ok := byID[def.ID]; ok {
			merged = append(merged, def.overlay(p))
			delete(byID, def.ID)
			continue
		}
		merged = append(merged, def)
	}
	for _, p := range pages {
		if _, ok := byID[strings.TrimSpace(p.ID)]; ok {
			merged = append(merged, p)
		}
	}
	return merged
}

// overlay returns p with the non-empty fields of o.
func (p Page) overlay(o Page) Page {
	if o.Title != "" {
		p.Title = o.Title
	}
	if o.Source != "" {
		p.Source = o.Source
	}
	if o.Template != "" {
		p.Template = o.Template
	}
	if o.Layout != "" {
		p.Layout = o.Layout
	}
	return p
}
