package entity

import "github.com/barmaja/barmaja-be/internal/entity"

type LanguageSelectionRequest struct {
	Language string `json:"language" validate:"required"`
}

type QuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type QuizSubmissionRequest struct {
	LessonID int   `json:"lesson_id" validate:"required,min=1"`
	Answers  []int `json:"answers" validate:"required"`
}

type CodeSubmissionRequest struct {
	Code        string `json:"code" validate:"required"`
	ChallengeID string `json:"challenge_id" validate:"required"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	AIModel string `json:"ai_model"`
	Message string `json:"message"`
}

type SelectLanguageResponse struct {
	Message            string              `json:"message"`
	SessionID          string              `json:"session_id"`
	Language           string              `json:"language"`
	CurrentLesson      int                 `json:"current_lesson"`
	TotalLessons       int                 `json:"total_lessons"`
	CurriculumOverview []entity.LessonInfo `json:"curriculum_overview"`
}

type LessonResponse struct {
	LessonNumber int                  `json:"lesson_number"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Objectives   []string             `json:"objectives"`
	Content      entity.LessonContent `json:"content"`
	Language     string               `json:"language"`
}

type TutorResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type QuizResponse struct {
	LessonNumber int            `json:"lesson_number"`
	LessonTitle  string         `json:"lesson_title"`
	Questions    entity.QuizSet `json:"questions"`
	Cached       bool           `json:"cached"`
}

// QuizAnswerResult is the per-question breakdown in a quiz result.
type QuizAnswerResult struct {
	QuestionNumber int    `json:"question_number"`
	QuestionText   string `json:"question_text"`
	UserAnswer     int    `json:"user_answer"`
	CorrectAnswer  int    `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
}

type QuizResultResponse struct {
	Score               float64            `json:"score"`
	Passed              bool               `json:"passed"`
	CorrectAnswers      int                `json:"correct_answers"`
	TotalQuestions      int                `json:"total_questions"`
	Results             []QuizAnswerResult `json:"results"`
	Message             string             `json:"message"`
	NextLessonAvailable *int               `json:"next_lesson_available"`
	QuizWasCached       bool               `json:"quiz_was_cached"`
}

type SessionStatusResponse struct {
	HasActiveSession   bool    `json:"has_active_session"`
	Message            string  `json:"message,omitempty"`
	SessionID          string  `json:"session_id,omitempty"`
	Language           string  `json:"language,omitempty"`
	CurrentLesson      int     `json:"current_lesson,omitempty"`
	CompletedLessons   []int   `json:"completed_lessons,omitempty"`
	TotalLessons       int     `json:"total_lessons,omitempty"`
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
	ChatHistoryCount   int     `json:"chat_history_count,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
}

type Language struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LanguagesResponse struct {
	Languages []Language `json:"languages"`
}

type ChallengeResponse struct {
	Challenge entity.CodingChallenge `json:"challenge"`
	Message   string                 `json:"message"`
	IsCached  bool                   `json:"is_cached"`
}

type CodeResultResponse struct {
	Evaluation     entity.CodeEvaluation `json:"evaluation"`
	ChallengeID    string                `json:"challenge_id"`
	ChallengeTitle string                `json:"challenge_title"`
}
