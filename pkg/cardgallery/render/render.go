// Package render turns gallery views into HTML documents.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/yuin/goldmark"
)

// ErrTemplateNotFound indicates the named template does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer renders a view with the named template.
type Renderer interface {
	Render(w io.Writer, name string, view models.View) error
}

//go:embed templates/*.html
var builtin embed.FS

// Builtin returns the templates shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// mdRenderer converts markdown descriptions. Raw HTML in the input is
// escaped (WithUnsafe is not set).
var mdRenderer = goldmark.New()

// Templates renders html/template files named <name>.html. Files are
// looked up in each layer in order, and parsed on every call.
type Templates struct {
	layers []fs.FS
}

// New returns templates read from dir, falling back to the built-in set.
// An empty dir uses the built-in set only.
func New(dir string) *Templates {
	if dir == "" {
		return NewFS(Builtin())
	}
	return NewFS(os.DirFS(dir), Builtin())
}

// NewFS returns templates looked up in the given file systems in order.
func NewFS(layers ...fs.FS) *Templates {
	return &Templates{layers: layers}
}

// Render implements Renderer.
func (t *Templates) Render(w io.Writer, name string, view models.View) error {
	data, err := t.read(name)
	if err != nil {
		return err
	}

	tpl, err := template.New(name).Funcs(t.funcs()).Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse template %s.html: %w", name, err)
	}
	if err := tpl.Execute(w, view); err != nil {
		return fmt.Errorf("execute template %s.html: %w", name, err)
	}
	return nil
}

// read returns the contents of <name>.html from the first layer holding it.
func (t *Templates) read(name string) ([]byte, error) {
	file := name + ".html"
	for _, layer := range t.layers {
		data, err := fs.ReadFile(layer, file)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("read template %s: %w", file, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, file)
}

func (t *Templates) funcs() template.FuncMap {
	return template.FuncMap{
		// include inlines another template file verbatim.
		"include": func(name string) (template.HTML, error) {
			data, err := t.read(name)
			if err != nil {
				return "", fmt.Errorf("include %q: %v", name, err)
			}
			return template.HTML(data), nil
		},
		"markdown": func(src string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(src))
			}
			return template.HTML(buf.String())
		},
		"join": strings.Join,
	}
}
