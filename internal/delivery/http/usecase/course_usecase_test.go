package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpEntity "github.com/barmaja/barmaja-be/internal/delivery/http/entity"
	"github.com/barmaja/barmaja-be/internal/entity"
	"github.com/barmaja/barmaja-be/internal/pkg/generator"
	"github.com/barmaja/barmaja-be/internal/pkg/llm"
	"github.com/barmaja/barmaja-be/internal/session"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestUsecase(mock *llm.MockCompleter) (CourseUsecase, *session.Store) {
	store := session.NewStore()
	gen := generator.New(mock, testLogger()).WithIDFunc(func() string { return "ab12cd34" })
	uc := NewCourseUsecase(CourseConfig{
		Store:     store,
		Generator: gen,
		Model:     mock.ModelID(),
		Log:       testLogger(),
	})
	return uc, store
}

func curriculumJSON(language string, lessonCount int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `{"language": %q, "lessons": [`, language)
	for i := 1; i <= lessonCount; i++ {
		if i > 1 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"lesson_number": %d, "title": "درس %d", "description": "وصف", "objectives": ["هدف"]}`, i, i)
	}
	sb.WriteString("]}")
	return sb.String()
}

func quizJSON(correct ...int) string {
	var sb strings.Builder
	sb.WriteString(`{"questions": [`)
	for i, c := range correct {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"question": "سؤال %d", "options": ["أ", "ب", "ج", "د"], "correct_answer": %d, "explanation": "شرح"}`, i+1, c)
	}
	sb.WriteString("]}")
	return sb.String()
}

const challengeJSON = `{
	"title": "آلة حاسبة",
	"description": "اكتب برنامج آلة حاسبة",
	"requirements": ["جمع", "طرح"],
	"example_input": "1 2",
	"example_output": "3",
	"hints": ["استخدم الدوال"]
}`

// startSession selects a language with a full curriculum and returns the
// select-language response.
func startSession(t *testing.T, uc CourseUsecase, mock *llm.MockCompleter, language string) *httpEntity.SelectLanguageResponse {
	t.Helper()
	mock.AddResponse(llm.MockResponse{Text: curriculumJSON(language, entity.TotalLessons)})
	resp := uc.SelectLanguage(t.Context(), language)
	require.NotNil(t, resp)
	return resp
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestHealth(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	resp := uc.Health()

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "mock", resp.AIModel)
}

func TestSelectLanguage_StartsFreshSession(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)

	resp := startSession(t, uc, mock, "Python")

	assert.True(t, strings.HasPrefix(resp.SessionID, "session_"))
	assert.Equal(t, 1, resp.CurrentLesson)
	assert.Equal(t, entity.TotalLessons, resp.TotalLessons)
	assert.Len(t, resp.CurriculumOverview, 3)
	assert.Contains(t, resp.Message, "Python")

	sess, ok := store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, resp.SessionID, sess.SessionID)
}

func TestSelectLanguage_ReplacesPreviousSession(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)

	first := startSession(t, uc, mock, "Python")
	second := startSession(t, uc, mock, "Go")

	assert.NotEqual(t, first.SessionID, second.SessionID)

	status := uc.SessionStatus()
	assert.Equal(t, "Go", status.Language)
	assert.Empty(t, status.CompletedLessons)
}

func TestSelectLanguage_SucceedsOnGenerationFailure(t *testing.T) {
	mock := llm.NewMockCompleter(llm.MockResponse{Err: errors.New("model down")})
	uc, _ := newTestUsecase(mock)

	resp := uc.SelectLanguage(t.Context(), "Rust")

	assert.Equal(t, entity.TotalLessons, resp.TotalLessons)
	assert.NotEmpty(t, resp.SessionID)
}

func TestLesson_NoSession(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	_, err := uc.Lesson(t.Context(), 1)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestLesson_LockedAheadOfProgress(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	_, err := uc.Lesson(t.Context(), 5)

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestLesson_OutOfRange(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	_, err := uc.Lesson(t.Context(), 0)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestLesson_ReturnsGeneratedContent(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: `{
		"introduction": "مقدمة",
		"detailed_explanation": "شرح مفصل",
		"code_examples": [{"title": "مثال", "code": "x = 1", "explanation": "شرح"}],
		"tips": ["نصيحة"],
		"summary": "ملخص"
	}`})

	resp, err := uc.Lesson(t.Context(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.LessonNumber)
	assert.Equal(t, "درس 1", resp.Title)
	assert.Equal(t, "مقدمة", resp.Content.Introduction)
	assert.Equal(t, "Python", resp.Language)
}

func TestAskTutor_RecordsChatHistory(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: "المتغير مكان لتخزين القيم."})

	resp, err := uc.AskTutor(t.Context(), "ما هو المتغير؟")

	require.NoError(t, err)
	assert.Equal(t, "المتغير مكان لتخزين القيم.", resp.Response)

	sess, _ := store.Snapshot()
	require.Len(t, sess.ChatHistory, 1)
	assert.Equal(t, "ما هو المتغير؟", sess.ChatHistory[0].Question)
}

func TestAskTutor_NoSession(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	_, err := uc.AskTutor(t.Context(), "سؤال")

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestGenerateQuiz_CachesPerLesson(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(0, 1, 2)})

	first, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Len(t, first.Questions.Questions, 3)

	callsAfterFirst := mock.CallCount()

	second, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Questions, second.Questions)
	assert.Equal(t, callsAfterFirst, mock.CallCount())
}

func TestGenerateQuiz_NoSession(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	_, err := uc.GenerateQuiz(t.Context(), 1)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestSubmitQuiz_PassAdvancesLesson(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(0, 1, 2, 3, 0)})
	_, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)

	// 4 of 5 correct: 80%
	resp, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{0, 1, 2, 3, 1},
	})

	require.NoError(t, err)
	assert.InDelta(t, 80.0, resp.Score, 0.001)
	assert.True(t, resp.Passed)
	assert.Equal(t, 4, resp.CorrectAnswers)
	assert.True(t, resp.QuizWasCached)
	require.NotNil(t, resp.NextLessonAvailable)
	assert.Equal(t, 2, *resp.NextLessonAvailable)

	status := uc.SessionStatus()
	assert.Equal(t, 2, status.CurrentLesson)
	assert.Equal(t, []int{1}, status.CompletedLessons)
}

func TestSubmitQuiz_FailDoesNotAdvance(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(0, 1, 2, 3, 0)})
	_, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)

	// 3 of 5 correct: 60%
	resp, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{0, 1, 2, 0, 1},
	})

	require.NoError(t, err)
	assert.InDelta(t, 60.0, resp.Score, 0.001)
	assert.False(t, resp.Passed)
	assert.Nil(t, resp.NextLessonAvailable)

	status := uc.SessionStatus()
	assert.Equal(t, 1, status.CurrentLesson)
	assert.Empty(t, status.CompletedLessons)
}

func TestSubmitQuiz_GeneratesWhenNotCached(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(1, 1)})

	resp, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{1, 1},
	})

	require.NoError(t, err)
	assert.False(t, resp.QuizWasCached)
	assert.InDelta(t, 100.0, resp.Score, 0.001)
}

func TestSubmitQuiz_ShortSubmissionScoredAgainstAllQuestions(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(0, 0, 0, 0)})
	_, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)

	// Two correct answers out of four questions: 50%, not 100%.
	resp, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{0, 0},
	})

	require.NoError(t, err)
	assert.InDelta(t, 50.0, resp.Score, 0.001)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, 4, resp.TotalQuestions)
}

func TestSubmitQuiz_ExtraAnswersIgnored(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(2, 2)})
	_, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)

	resp, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{2, 2, 3, 3, 3},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.InDelta(t, 100.0, resp.Score, 0.001)
}

func TestSubmitQuiz_EmptyAnswers(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	mock.AddResponse(llm.MockResponse{Text: quizJSON(0)})
	_, err := uc.GenerateQuiz(t.Context(), 1)
	require.NoError(t, err)

	_, err = uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: 1,
		Answers:  []int{},
	})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestSubmitQuiz_LessonOutOfRange(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	_, err := uc.SubmitQuiz(t.Context(), httpEntity.QuizSubmissionRequest{
		LessonID: entity.TotalLessons + 1,
		Answers:  []int{0},
	})

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestSessionStatus_NoSession(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	status := uc.SessionStatus()

	assert.False(t, status.HasActiveSession)
	assert.NotEmpty(t, status.Message)
}

func TestSessionStatus_ProgressPercentage(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	for l := 1; l <= 7; l++ {
		store.RecordPass(l)
	}

	status := uc.SessionStatus()

	assert.True(t, status.HasActiveSession)
	assert.InDelta(t, 50.0, status.ProgressPercentage, 0.001)
	assert.Equal(t, 8, status.CurrentLesson)
}

func TestAvailableLanguages(t *testing.T) {
	uc, _ := newTestUsecase(llm.NewMockCompleter())

	resp := uc.AvailableLanguages()

	require.Len(t, resp.Languages, 8)
	assert.Equal(t, "Python", resp.Languages[0].Name)
	assert.NotEmpty(t, resp.Languages[0].Description)
}

func TestCodingChallenge_LockedBeforeFourLessons(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")
	store.RecordPass(1)
	store.RecordPass(2)

	_, err := uc.CodingChallenge(t.Context())

	require.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "2")
}

func TestCodingChallenge_CachedPerMilestone(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")
	for l := 1; l <= 5; l++ {
		store.RecordPass(l)
	}

	mock.AddResponse(llm.MockResponse{Text: challengeJSON})

	first, err := uc.CodingChallenge(t.Context())
	require.NoError(t, err)
	assert.False(t, first.IsCached)
	assert.Equal(t, "challenge_4_ab12cd34", first.Challenge.ChallengeID)

	callsAfterFirst := mock.CallCount()

	// 5 completed lessons still map to the 4-lesson milestone bucket.
	second, err := uc.CodingChallenge(t.Context())
	require.NoError(t, err)
	assert.True(t, second.IsCached)
	assert.Equal(t, first.Challenge, second.Challenge)
	assert.Equal(t, callsAfterFirst, mock.CallCount())
}

func TestCodingChallenge_NewMilestoneNewChallenge(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")
	for l := 1; l <= 4; l++ {
		store.RecordPass(l)
	}

	mock.AddResponse(llm.MockResponse{Err: errors.New("model down")})
	first, err := uc.CodingChallenge(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "challenge_4_ab12cd34", first.Challenge.ChallengeID)

	for l := 5; l <= 8; l++ {
		store.RecordPass(l)
	}

	mock.AddResponse(llm.MockResponse{Err: errors.New("model down")})
	second, err := uc.CodingChallenge(t.Context())
	require.NoError(t, err)
	assert.False(t, second.IsCached)
	assert.Equal(t, "challenge_8_ab12cd34", second.Challenge.ChallengeID)
}

func TestSubmitCode_EvaluatesAgainstStoredChallenge(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, store := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")
	for l := 1; l <= 4; l++ {
		store.RecordPass(l)
	}

	mock.AddResponse(llm.MockResponse{Text: challengeJSON})
	challenge, err := uc.CodingChallenge(t.Context())
	require.NoError(t, err)

	mock.AddResponse(llm.MockResponse{Text: `{
		"is_correct": true,
		"score": 95,
		"feedback": "ممتاز",
		"errors": [],
		"hints": [],
		"suggestions": []
	}`})

	resp, err := uc.SubmitCode(t.Context(), httpEntity.CodeSubmissionRequest{
		Code:        "print(1+2)",
		ChallengeID: challenge.Challenge.ChallengeID,
	})

	require.NoError(t, err)
	assert.True(t, resp.Evaluation.IsCorrect)
	assert.Equal(t, 95, resp.Evaluation.Score)
	assert.Equal(t, challenge.Challenge.ChallengeID, resp.ChallengeID)
	assert.Equal(t, "آلة حاسبة", resp.ChallengeTitle)
}

func TestSubmitCode_UnknownChallenge(t *testing.T) {
	mock := llm.NewMockCompleter()
	uc, _ := newTestUsecase(mock)
	startSession(t, uc, mock, "Python")

	_, err := uc.SubmitCode(t.Context(), httpEntity.CodeSubmissionRequest{
		Code:        "print(1)",
		ChallengeID: "challenge_4_missing",
	})

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}
