package dto

// LessonResponse is the wire shape of generated lesson content.
// Cache hits return image_prompt and summary empty; those fields only
// exist for freshly generated lessons.
type LessonResponse struct {
	LessonTitle     string `json:"lesson_title"`
	ContentMarkdown string `json:"content_markdown"`
	MermaidCode     string `json:"mermaid_code"`
	ImagePrompt     string `json:"image_prompt"`
	Summary         string `json:"summary"`
}

// SuggestionItem is one recommended follow-on course.
type SuggestionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionsResponse wraps the dashboard suggestion listing.
type SuggestionsResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
}
