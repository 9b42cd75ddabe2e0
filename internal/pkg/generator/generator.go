// Package generator turns prompt parameters into typed course documents by
// calling the model, extracting JSON, and validating the result. Any failure
// along the way is absorbed into a deterministic fallback document; callers
// never see generation errors.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/barmaja/barmaja-be/internal/entity"
	"github.com/barmaja/barmaja-be/internal/pkg/extract"
	"github.com/barmaja/barmaja-be/internal/pkg/llm"
)

type Generator struct {
	completer llm.Completer
	log       *logrus.Logger
	newID     func() string
}

// New creates a Generator. Challenge IDs come from an injected generator so
// they do not depend on wall-clock uniqueness.
func New(completer llm.Completer, log *logrus.Logger) *Generator {
	return &Generator{
		completer: completer,
		log:       log,
		newID: func() string {
			return uuid.NewString()[:8]
		},
	}
}

// WithIDFunc overrides the challenge-ID generator. Used by tests.
func (g *Generator) WithIDFunc(fn func() string) *Generator {
	g.newID = fn
	return g
}

// Curriculum generates the 14-lesson plan for a language.
func (g *Generator) Curriculum(ctx context.Context, language string) entity.Curriculum {
	var curriculum entity.Curriculum
	if err := g.generate(ctx, curriculumPrompt(language), curriculumSchema, &curriculum); err != nil {
		g.warn("curriculum", err)
		return fallbackCurriculum(language)
	}
	curriculum.Language = language
	return curriculum
}

// LessonContent generates the full body of one lesson. Not cached; each call
// produces fresh content.
func (g *Generator) LessonContent(ctx context.Context, language string, lessonNumber int, lessonTitle string) entity.LessonContent {
	var content entity.LessonContent
	if err := g.generate(ctx, lessonContentPrompt(language, lessonNumber, lessonTitle), lessonContentSchema, &content); err != nil {
		g.warn("lesson content", err)
		return fallbackLessonContent(language, lessonNumber, lessonTitle)
	}
	return content
}

// QuizQuestions generates the multiple-choice set for one lesson.
func (g *Generator) QuizQuestions(ctx context.Context, language string, lessonNumber int, lessonTitle string) entity.QuizSet {
	var set entity.QuizSet
	if err := g.generate(ctx, quizPrompt(language, lessonNumber, lessonTitle), quizSchema, &set); err != nil {
		g.warn("quiz questions", err)
		return fallbackQuiz(lessonNumber, lessonTitle)
	}
	return set
}

// CodingChallenge generates a milestone challenge. When the model omits the
// challenge id, a composite of the milestone and a fresh unique id is used.
func (g *Generator) CodingChallenge(ctx context.Context, language string, lessonsCompleted int) entity.CodingChallenge {
	defaultID := fmt.Sprintf("challenge_%d_%s", lessonsCompleted, g.newID())

	var challenge entity.CodingChallenge
	if err := g.generate(ctx, challengePrompt(language, lessonsCompleted), challengeSchema, &challenge); err != nil {
		g.warn("coding challenge", err)
		return fallbackChallenge(lessonsCompleted, defaultID)
	}

	if challenge.ChallengeID == "" {
		challenge.ChallengeID = defaultID
	}
	return challenge
}

// EvaluateCode reviews a submitted solution against its challenge.
func (g *Generator) EvaluateCode(ctx context.Context, language, code string, challenge entity.CodingChallenge) entity.CodeEvaluation {
	var evaluation entity.CodeEvaluation
	if err := g.generate(ctx, evaluationPrompt(language, code, challenge), evaluationSchema, &evaluation); err != nil {
		g.warn("code evaluation", err)
		return fallbackEvaluation()
	}
	return evaluation
}

// TutorReply answers a free-form student question. This is the only operation
// with no JSON contract; on failure it returns a fixed apology string.
func (g *Generator) TutorReply(ctx context.Context, question, language string, lessonNumber int, history []entity.ChatEntry) string {
	text, err := g.completer.Complete(ctx, tutorPrompt(question, language, lessonNumber, history))
	if err != nil {
		g.warn("tutor reply", err)
		return TutorApology
	}
	return text
}

// generate runs one prompt through the model, extracts the JSON object,
// validates it against the document schema, and unmarshals it into out.
func (g *Generator) generate(ctx context.Context, prompt string, schema *docSchema, out any) error {
	text, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("model call: %w", err)
	}

	raw, err := extract.Object(text)
	if err != nil {
		return err
	}

	if err := validateDocument(schema, []byte(raw)); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", schema.Name, err)
	}

	return nil
}

func (g *Generator) warn(op string, err error) {
	if g.log == nil {
		return
	}
	g.log.WithError(err).Warnf("%s generation failed, using fallback", op)
}
