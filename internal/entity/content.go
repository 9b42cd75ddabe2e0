package entity

// LessonContent is the model-generated body of a lesson. Regenerated on every
// fetch; only quizzes and challenges are cached.
type LessonContent struct {
	Introduction        string        `json:"introduction"`
	DetailedExplanation string        `json:"detailed_explanation"`
	CodeExamples        []CodeExample `json:"code_examples"`
	Tips                []string      `json:"tips"`
	Summary             string        `json:"summary"`
}

type CodeExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// QuizQuestion is one multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// QuizSet is the full question set for one lesson. Once cached for a session
// it is reused verbatim for every fetch and for grading, so client-submitted
// answer indices stay valid.
type QuizSet struct {
	Questions []QuizQuestion `json:"questions"`
}

// CodingChallenge is a milestone coding exercise.
type CodingChallenge struct {
	ChallengeID   string   `json:"challenge_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Requirements  []string `json:"requirements"`
	ExampleInput  string   `json:"example_input"`
	ExampleOutput string   `json:"example_output"`
	Hints         []string `json:"hints"`
}

// CodeEvaluation is the model's review of a submitted solution.
type CodeEvaluation struct {
	IsCorrect   bool     `json:"is_correct"`
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Errors      []string `json:"errors"`
	Hints       []string `json:"hints"`
	Suggestions []string `json:"suggestions"`
}
