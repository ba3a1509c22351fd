package cardgallery

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/render"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

// ErrPageNotFound indicates the requested page identifier is not registered.
var ErrPageNotFound = errors.New("page not found")

// ErrSourceNotFound indicates the page's sheet does not exist.
var ErrSourceNotFound = source.ErrSourceNotFound

// ErrTemplateNotFound indicates the page's template does not exist.
var ErrTemplateNotFound = render.ErrTemplateNotFound

// Stages of building a page.
const (
	StageLookup = "lookup"
	StageRows   = "rows"
	StageRender = "render"
)

// PageError represents an error while building a page.
type PageError struct {
	PageID string
	Stage  string // "lookup", "rows", "render"
	// Name is the page id, sheet or template the stage was working on.
	Name string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %q (%s %s): %v", e.PageID, e.Stage, e.Name, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// NewPageError creates a new PageError.
func NewPageError(pageID, stage, name string, err error) *PageError {
	return &PageError{
		PageID: pageID,
		Stage:  stage,
		Name:   name,
		Err:    err,
	}
}

// UserMessage returns the message shown in place of a page that failed
// to build.
func UserMessage(err error) string {
	var pe *PageError
	if !errors.As(err, &pe) {
		return "Error: the page could not be displayed."
	}

	switch {
	case errors.Is(err, ErrPageNotFound):
		return fmt.Sprintf("Error: Page %q not found.", pe.Name)
	case errors.Is(err, ErrSourceNotFound):
		return fmt.Sprintf("Error: Sheet named %q not found.", pe.Name)
	case errors.Is(err, ErrTemplateNotFound):
		return fmt.Sprintf("Error: HTML template named %q not found.", pe.Name+".html")
	default:
		return fmt.Sprintf("Error: page %q could not be displayed.", pe.PageID)
	}
}
