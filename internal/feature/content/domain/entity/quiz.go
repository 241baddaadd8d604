package entity

// QuizQuestion is one multiple-choice question with four labeled
// options and the correct answer spelled out in full.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated set of questions for one lesson.
type Quiz struct {
	LessonTitle string         `json:"lesson_title"`
	Questions   []QuizQuestion `json:"questions"`
}
