package render

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
)

// ToMarkdown converts a rendered HTML document to Markdown. Relative links
// are kept relative.
func ToMarkdown(html string) (string, error) {
	return md.NewConverter("", true, nil).ConvertString(html)
}
