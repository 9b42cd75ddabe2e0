package entity

import "time"

// TotalLessons is the fixed length of every generated curriculum.
const TotalLessons = 14

// Session holds one learner's course progress. The service keeps at most one
// session alive at a time; selecting a new language replaces it wholesale.
type Session struct {
	SessionID        string      `json:"session_id"`
	Language         string      `json:"language"`
	Curriculum       Curriculum  `json:"curriculum"`
	CurrentLesson    int         `json:"current_lesson"`
	CompletedLessons []int       `json:"completed_lessons"`
	ChatHistory      []ChatEntry `json:"chat_history"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Curriculum is the ordered 14-lesson plan generated on language selection.
type Curriculum struct {
	Language string       `json:"language"`
	Lessons  []LessonInfo `json:"lessons"`
}

// LessonInfo is one curriculum entry. Immutable once generated.
type LessonInfo struct {
	LessonNumber int      `json:"lesson_number"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Objectives   []string `json:"objectives"`
}

// ChatEntry is one tutor exchange in the session's chat history.
type ChatEntry struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
