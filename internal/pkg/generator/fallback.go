package generator

import (
	"fmt"

	"github.com/barmaja/barmaja-be/internal/entity"
)

// Hand-authored Arabic fallback documents. Returned whenever the model is
// unreachable or produces output that cannot be parsed, so callers always
// receive pedagogically-valid-shaped content.

// TutorApology is the fixed reply when the tutor call fails.
const TutorApology = "عذراً، حدث خطأ في النظام. يرجى إعادة المحاولة."

func fallbackCurriculum(language string) entity.Curriculum {
	lessons := make([]entity.LessonInfo, len(lessonSkeleton))
	for i, title := range lessonSkeleton {
		lessons[i] = entity.LessonInfo{
			LessonNumber: i + 1,
			Title:        title,
			Description:  fmt.Sprintf("تعلم %s في لغة %s", title, language),
			Objectives: []string{
				fmt.Sprintf("فهم أساسيات %s", title),
				fmt.Sprintf("تطبيق %s عملياً", title),
				fmt.Sprintf("حل المشاكل باستخدام %s", title),
			},
		}
	}
	return entity.Curriculum{Language: language, Lessons: lessons}
}

func fallbackLessonContent(language string, lessonNumber int, lessonTitle string) entity.LessonContent {
	return entity.LessonContent{
		Introduction: fmt.Sprintf(
			"مرحباً بك في الدرس %d: %s. في هذا الدرس سنتعلم المفاهيم الأساسية والمهمة في %s.",
			lessonNumber, lessonTitle, lessonTitle),
		DetailedExplanation: fmt.Sprintf(
			"في هذا الدرس سنتعلم %s في لغة %s. هذا الموضوع مهم جداً للمبتدئين ويشكل أساساً قوياً لفهم المفاهيم المتقدمة في البرمجة.",
			lessonTitle, language),
		CodeExamples: []entity.CodeExample{
			{
				Title:       "مثال بسيط",
				Code:        fmt.Sprintf("// هذا مثال بسيط في %s\n// %s\nprint('مرحباً بالعالم');", language, lessonTitle),
				Explanation: "هذا المثال يوضح المفهوم الأساسي",
			},
		},
		Tips:    []string{"تدرب كثيراً على الأمثلة", "اقرأ الكود بعناية", "لا تتردد في طرح الأسئلة"},
		Summary: fmt.Sprintf("تعلمنا في هذا الدرس %s وأهمية هذا المفهوم في البرمجة", lessonTitle),
	}
}

func fallbackQuiz(lessonNumber int, lessonTitle string) entity.QuizSet {
	return entity.QuizSet{
		Questions: []entity.QuizQuestion{
			{
				Question:      fmt.Sprintf("ما هو الموضوع الرئيسي للدرس %d؟", lessonNumber),
				Options:       []string{lessonTitle, "موضوع آخر", "لا أعرف", "كل ما سبق"},
				CorrectAnswer: 0,
				Explanation:   fmt.Sprintf("الإجابة الصحيحة هي %s", lessonTitle),
			},
		},
	}
}

func fallbackChallenge(lessonsCompleted int, challengeID string) entity.CodingChallenge {
	return entity.CodingChallenge{
		ChallengeID: challengeID,
		Title:       fmt.Sprintf("تحدي برمجي بعد %d دروس", lessonsCompleted),
		Description: fmt.Sprintf(
			"قم بكتابة برنامج يحل المشكلة التالية بناءً على ما تعلمته في الدروس %d-%d",
			lessonsCompleted-3, lessonsCompleted),
		Requirements:  []string{"يجب أن يحل البرنامج المشكلة المطلوبة", "يجب أن يكون الكود نظيفًا وواضحًا"},
		ExampleInput:  "المدخلات المطلوبة",
		ExampleOutput: "المخرجات المتوقعة",
		Hints:         []string{"فكر في استخدام الدوال", "تأكد من معالجة جميع الحالات"},
	}
}

func fallbackEvaluation() entity.CodeEvaluation {
	return entity.CodeEvaluation{
		IsCorrect:   false,
		Score:       0,
		Feedback:    "عذرًا، حدث خطأ في تقييم الكود. يرجى المحاولة مرة أخرى.",
		Errors:      []string{"لا يمكن تقييم الكود حاليًا"},
		Hints:       []string{"تأكد من صحة بناء الجملة في الكود"},
		Suggestions: []string{"راجع الدروس السابقة للتعرف على المفاهيم الأساسية"},
	}
}
