package projector

import (
	"strings"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/normalize"
)

// LearningAppColumns is the width of a learning-apps row: Title,
// Description, Category, Grade Level, Image, URL.
const LearningAppColumns = 6

const (
	appTitle = iota
	appDescription
	appCategory
	appGradeLevel
	appImage
	appURL
)

// ProjectLearningAppCards projects learning-apps rows, parsing the grade
// cell into tokens and grade bands.
func ProjectLearningAppCards(rows []models.Row) []models.LearningAppCard {
	cards := make([]models.LearningAppCard, 0, len(rows))
	for _, row := range rows {
		if len(row) < LearningAppColumns {
			continue
		}
		title, url := row.Cell(appTitle), row.Cell(appURL)
		if !normalize.IsPresent(title) || !normalize.IsPresent(url) {
			continue
		}

		var level string
		if cell := row.Cell(appGradeLevel); normalize.IsPresent(cell) {
			level = strings.TrimSpace(normalize.Text(cell))
		}
		grades := normalize.SplitGrades(level)
		bands := normalize.GradeRanges(grades)
		ranges := make([]string, len(bands))
		for i, b := range bands {
			ranges[i] = string(b)
		}

		cards = append(cards, models.LearningAppCard{
			Title:       normalize.Text(title),
			Description: normalize.Text(row.Cell(appDescription)),
			Category:    normalize.Text(row.Cell(appCategory)),
			GradeLevel:  level,
			GradeArray:  grades,
			GradeRanges: ranges,
			Image:       normalize.ImageURL(row.Cell(appImage)),
			URL:         normalize.Text(url),
		})
	}
	return cards
}
