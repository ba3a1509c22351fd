package models

// Card represents one tile of a generic card page.
type Card struct {
	// Title is the card heading.
	Title string `json:"title"`
	// Description is the card body text.
	Description string `json:"description"`
	// Image is a directly embeddable image URL.
	Image string `json:"image"`
	// URL is the link target of the card.
	URL string `json:"url"`
}

// LandingCard represents one tile of the landing page.
type LandingCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Highlight   string `json:"highlight"`
	Image       string `json:"image"`
	// URL is either a same-origin page link (<base>?page=<id>) or the
	// literal redirect URL from the sheet.
	URL string `json:"url"`
}

// LearningAppCard represents one tile of the learning-apps catalogue.
type LearningAppCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// GradeLevel is the trimmed grade cell, e.g. "K, 1, 2".
	GradeLevel string `json:"gradeLevel"`
	// GradeArray holds the comma-separated tokens of GradeLevel.
	GradeArray []string `json:"gradeArray"`
	// GradeRanges holds the grade bands of GradeArray in first-seen order.
	GradeRanges []string `json:"gradeRanges"`
	Image       string   `json:"image"`
	URL         string   `json:"url"`
}
