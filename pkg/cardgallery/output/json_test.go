package output

import (
	"testing"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
)

func TestCardsToJSON(t *testing.T) {
	tests := []struct {
		view     models.View
		pretty   bool
		expected string
	}{
		{models.View{}, false, `[]`},
		{models.View{Cards: []models.Card{}}, false, `[]`},
		{
			models.View{Cards: []models.Card{{Title: "Ruby", URL: "https://ruby.example"}}},
			false,
			`[{"title":"Ruby","description":"","image":"","url":"https://ruby.example"}]`,
		},
		{
			models.View{Cards: []models.LearningAppCard{{Title: "F", GradeArray: []string{"K"}, GradeRanges: []string{"K-2"}}}},
			false,
			`[{"title":"F","description":"","category":"","gradeLevel":"","gradeArray":["K"],"gradeRanges":["K-2"],"image":"","url":""}]`,
		},
		{
			models.View{Cards: []models.Card{{Title: "Ruby"}}},
			true,
			"[\n  {\n    \"title\": \"Ruby\",\n    \"description\": \"\",\n    \"image\": \"\",\n    \"url\": \"\"\n  }\n]",
		},
	}

	for _, tt := range tests {
		result, err := CardsToJSON(tt.view, tt.pretty)
		if err != nil {
			t.Fatalf("CardsToJSON failed: %v", err)
		}
		if string(result) != tt.expected {
			t.Errorf("CardsToJSON(%+v, %v) = %s, expected %s", tt.view, tt.pretty, result, tt.expected)
		}
	}
}
