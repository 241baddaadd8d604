package entity

// Diagram is a generated Mermaid visualization of a lesson's core
// concept, together with a short explanation of what it shows.
type Diagram struct {
	LessonTitle string `json:"lesson_title"`
	MermaidCode string `json:"mermaid_code"`
	Explanation string `json:"explanation"`
}

// Suggestion is one recommended follow-on course.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
