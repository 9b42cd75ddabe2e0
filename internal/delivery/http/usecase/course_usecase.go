package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/barmaja/barmaja-be/internal/delivery/http/domain"
	httpEntity "github.com/barmaja/barmaja-be/internal/delivery/http/entity"
	"github.com/barmaja/barmaja-be/internal/entity"
	"github.com/barmaja/barmaja-be/internal/pkg/generator"
	"github.com/barmaja/barmaja-be/internal/session"
)

// passingScore is the minimum quiz score (percent) that unlocks progress.
const passingScore = 70

type CourseUsecase interface {
	Health() *httpEntity.HealthResponse
	SelectLanguage(ctx context.Context, language string) *httpEntity.SelectLanguageResponse
	Lesson(ctx context.Context, lessonNumber int) (*httpEntity.LessonResponse, error)
	AskTutor(ctx context.Context, question string) (*httpEntity.TutorResponse, error)
	GenerateQuiz(ctx context.Context, lessonNumber int) (*httpEntity.QuizResponse, error)
	SubmitQuiz(ctx context.Context, req httpEntity.QuizSubmissionRequest) (*httpEntity.QuizResultResponse, error)
	SessionStatus() *httpEntity.SessionStatusResponse
	AvailableLanguages() *httpEntity.LanguagesResponse
	CodingChallenge(ctx context.Context) (*httpEntity.ChallengeResponse, error)
	SubmitCode(ctx context.Context, req httpEntity.CodeSubmissionRequest) (*httpEntity.CodeResultResponse, error)
}

type CourseConfig struct {
	Store     *session.Store
	Generator *generator.Generator
	Model     string
	Log       *logrus.Logger
}

type courseUsecase struct {
	cfg CourseConfig
}

func NewCourseUsecase(cfg CourseConfig) CourseUsecase {
	return &courseUsecase{cfg: cfg}
}

func (u *courseUsecase) Health() *httpEntity.HealthResponse {
	return &httpEntity.HealthResponse{
		Status:  "healthy",
		AIModel: u.cfg.Model,
		Message: domain.HEALTH_STATUS_MESSAGE,
	}
}

// SelectLanguage generates a curriculum and replaces the active session.
// All state tied to any previous session is discarded.
func (u *courseUsecase) SelectLanguage(ctx context.Context, language string) *httpEntity.SelectLanguageResponse {
	curriculum := u.cfg.Generator.Curriculum(ctx, language)

	sess := entity.Session{
		SessionID:     "session_" + uuid.NewString(),
		Language:      language,
		Curriculum:    curriculum,
		CurrentLesson: 1,
		CreatedAt:     time.Now(),
	}
	u.cfg.Store.Replace(sess)

	u.cfg.Log.WithFields(logrus.Fields{
		"session_id": sess.SessionID,
		"language":   language,
	}).Info("course created")

	overview := curriculum.Lessons
	if len(overview) > 3 {
		overview = overview[:3]
	}

	return &httpEntity.SelectLanguageResponse{
		Message:            fmt.Sprintf(domain.COURSE_CREATED_FMT, language),
		SessionID:          sess.SessionID,
		Language:           language,
		CurrentLesson:      sess.CurrentLesson,
		TotalLessons:       len(curriculum.Lessons),
		CurriculumOverview: overview,
	}
}

// Lesson regenerates content for an unlocked lesson. Content is never cached;
// only quizzes and challenges are.
func (u *courseUsecase) Lesson(ctx context.Context, lessonNumber int) (*httpEntity.LessonResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	if lessonNumber > sess.CurrentLesson {
		return nil, fiber.NewError(fiber.StatusForbidden, domain.LESSON_LOCKED)
	}

	info, err := lessonInfo(sess, lessonNumber)
	if err != nil {
		return nil, err
	}

	content := u.cfg.Generator.LessonContent(ctx, sess.Language, lessonNumber, info.Title)

	return &httpEntity.LessonResponse{
		LessonNumber: lessonNumber,
		Title:        info.Title,
		Description:  info.Description,
		Objectives:   info.Objectives,
		Content:      content,
		Language:     sess.Language,
	}, nil
}

func (u *courseUsecase) AskTutor(ctx context.Context, question string) (*httpEntity.TutorResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	answer := u.cfg.Generator.TutorReply(ctx, question, sess.Language, sess.CurrentLesson, sess.ChatHistory)
	u.cfg.Store.AppendChat(question, answer)

	return &httpEntity.TutorResponse{
		Response:  answer,
		SessionID: sess.SessionID,
	}, nil
}

func (u *courseUsecase) GenerateQuiz(ctx context.Context, lessonNumber int) (*httpEntity.QuizResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	info, err := lessonInfo(sess, lessonNumber)
	if err != nil {
		return nil, err
	}

	set, cached := u.cfg.Store.Quiz(lessonNumber)
	if !cached {
		set = u.cfg.Generator.QuizQuestions(ctx, sess.Language, lessonNumber, info.Title)
		u.cfg.Store.PutQuiz(lessonNumber, set)
	}

	return &httpEntity.QuizResponse{
		LessonNumber: lessonNumber,
		LessonTitle:  info.Title,
		Questions:    set,
		Cached:       cached,
	}, nil
}

// SubmitQuiz grades answers against the cached question set. Answers are
// compared element-wise up to the shorter of the two sequences; the score
// still divides by the full question count, so short submissions are scored
// against only the first N questions by intent.
func (u *courseUsecase) SubmitQuiz(ctx context.Context, req httpEntity.QuizSubmissionRequest) (*httpEntity.QuizResultResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	lessonNumber := req.LessonID
	info, err := lessonInfo(sess, lessonNumber)
	if err != nil {
		return nil, err
	}

	set, wasCached := u.cfg.Store.Quiz(lessonNumber)
	if !wasCached {
		u.cfg.Log.Warnf("no cached quiz for lesson %d, generating one for grading", lessonNumber)
		set = u.cfg.Generator.QuizQuestions(ctx, sess.Language, lessonNumber, info.Title)
		u.cfg.Store.PutQuiz(lessonNumber, set)
	}

	questions := set.Questions
	if len(questions) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, domain.NO_QUESTIONS_FOUND)
	}

	correctCount := 0
	results := make([]httpEntity.QuizAnswerResult, 0, len(req.Answers))
	for i, userAnswer := range req.Answers {
		if i >= len(questions) {
			break
		}
		question := questions[i]
		isCorrect := userAnswer == question.CorrectAnswer
		if isCorrect {
			correctCount++
		}

		explanation := question.Explanation
		if explanation == "" {
			explanation = domain.NO_EXPLANATION
		}

		results = append(results, httpEntity.QuizAnswerResult{
			QuestionNumber: i + 1,
			QuestionText:   question.Question,
			UserAnswer:     userAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      isCorrect,
			Explanation:    explanation,
		})
	}

	if len(results) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, domain.NO_VALID_ANSWERS)
	}

	score := float64(correctCount) / float64(len(questions)) * 100
	passed := score >= passingScore

	message := domain.QUIZ_FAILED_MESSAGE
	var nextLesson *int
	if passed {
		current := u.cfg.Store.RecordPass(lessonNumber)
		nextLesson = &current
		message = domain.QUIZ_PASSED_MESSAGE
	}

	return &httpEntity.QuizResultResponse{
		Score:               score,
		Passed:              passed,
		CorrectAnswers:      correctCount,
		TotalQuestions:      len(questions),
		Results:             results,
		Message:             message,
		NextLessonAvailable: nextLesson,
		QuizWasCached:       wasCached,
	}, nil
}

func (u *courseUsecase) SessionStatus() *httpEntity.SessionStatusResponse {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return &httpEntity.SessionStatusResponse{
			HasActiveSession: false,
			Message:          domain.NO_SESSION_STATUS,
		}
	}

	return &httpEntity.SessionStatusResponse{
		HasActiveSession:   true,
		SessionID:          sess.SessionID,
		Language:           sess.Language,
		CurrentLesson:      sess.CurrentLesson,
		CompletedLessons:   sess.CompletedLessons,
		TotalLessons:       len(sess.Curriculum.Lessons),
		ProgressPercentage: float64(len(sess.CompletedLessons)*100) / entity.TotalLessons,
		ChatHistoryCount:   len(sess.ChatHistory),
		CreatedAt:          sess.CreatedAt.Format(time.RFC3339),
	}
}

func (u *courseUsecase) AvailableLanguages() *httpEntity.LanguagesResponse {
	return &httpEntity.LanguagesResponse{
		Languages: []httpEntity.Language{
			{Name: "Python", Description: "لغة برمجة سهلة ومناسبة للمبتدئين"},
			{Name: "JavaScript", Description: "لغة برمجة الويب والتطبيقات التفاعلية"},
			{Name: "Java", Description: "لغة برمجة قوية ومناسبة للمشاريع الكبيرة"},
			{Name: "C++", Description: "لغة برمجة سريعة ومناسبة للألعاب والأنظمة"},
			{Name: "C#", Description: "لغة برمجة من مايكروسوفت لتطوير التطبيقات"},
			{Name: "Go", Description: "لغة برمجة حديثة وسريعة من جوجل"},
			{Name: "Rust", Description: "لغة برمجة آمنة وسريعة للأنظمة"},
			{Name: "PHP", Description: "لغة برمجة مخصصة لتطوير مواقع الويب"},
		},
	}
}

// CodingChallenge serves the challenge for the learner's current milestone
// bucket, generating it on first request. The bucket is recomputed from the
// completed-lesson count on every call.
func (u *courseUsecase) CodingChallenge(ctx context.Context) (*httpEntity.ChallengeResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	completedCount := len(sess.CompletedLessons)
	if completedCount < 4 {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(domain.CHALLENGE_LOCKED_FMT, completedCount))
	}

	milestone := session.Milestone(completedCount)

	if challenge, cached := u.cfg.Store.ChallengeForMilestone(milestone); cached {
		return &httpEntity.ChallengeResponse{
			Challenge: challenge,
			Message:   fmt.Sprintf(domain.CHALLENGE_CACHED_FMT, milestone),
			IsCached:  true,
		}, nil
	}

	challenge := u.cfg.Generator.CodingChallenge(ctx, sess.Language, milestone)
	u.cfg.Store.PutChallenge(milestone, challenge)

	return &httpEntity.ChallengeResponse{
		Challenge: challenge,
		Message:   fmt.Sprintf(domain.CHALLENGE_CREATED_FMT, milestone),
		IsCached:  false,
	}, nil
}

func (u *courseUsecase) SubmitCode(ctx context.Context, req httpEntity.CodeSubmissionRequest) (*httpEntity.CodeResultResponse, error) {
	sess, ok := u.cfg.Store.Snapshot()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.NO_ACTIVE_SESSION)
	}

	challenge, found := u.cfg.Store.ChallengeByID(req.ChallengeID)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, domain.CHALLENGE_NOT_FOUND)
	}

	evaluation := u.cfg.Generator.EvaluateCode(ctx, sess.Language, req.Code, challenge)

	return &httpEntity.CodeResultResponse{
		Evaluation:     evaluation,
		ChallengeID:    req.ChallengeID,
		ChallengeTitle: challenge.Title,
	}, nil
}

func lessonInfo(sess entity.Session, lessonNumber int) (entity.LessonInfo, error) {
	lessons := sess.Curriculum.Lessons
	if lessonNumber < 1 || lessonNumber > len(lessons) {
		return entity.LessonInfo{}, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf(domain.LESSON_NOT_FOUND_FMT, lessonNumber))
	}
	return lessons[lessonNumber-1], nil
}
