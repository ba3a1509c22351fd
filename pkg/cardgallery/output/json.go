// Package output serializes gallery data for the command line.
package output

import (
	"encoding/json"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
)

// ToJSON serializes v, indenting when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// CardsToJSON serializes the cards of a view. A view without cards
// serializes as an empty array.
func CardsToJSON(view models.View, pretty bool) ([]byte, error) {
	if view.Cards == nil {
		return []byte("[]"), nil
	}
	return ToJSON(view.Cards, pretty)
}
