package models

// View is the object handed to a page template.
type View struct {
	// Title is the document title.
	Title string `json:"title"`
	// Page is the page identifier that was requested.
	Page string `json:"page"`
	// WebAppURL is the service's own base URL, for same-origin links.
	WebAppURL string `json:"web_app_url"`
	// Cards is a []Card, []LandingCard or []LearningAppCard depending on
	// the page layout.
	Cards interface{} `json:"cards"`
}
