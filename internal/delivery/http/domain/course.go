package domain

// User-facing message strings. The learner-facing platform speaks Arabic;
// operational error details stay in English.
var (
	COURSE_CREATED_FMT    = "تم إنشاء كورس %s بنجاح!"
	QUIZ_PASSED_MESSAGE   = "تهانينا! لقد نجحت في الاختبار"
	QUIZ_FAILED_MESSAGE   = "للأسف، لم تجتز الاختبار. حاول مرة أخرى"
	NO_EXPLANATION        = "لا يوجد شرح متاح"
	CHALLENGE_CACHED_FMT  = "تم إيجاد تحدي برمجي سابق بعد إكمال %d دروس"
	CHALLENGE_CREATED_FMT = "تم إنشاء تحدي برمجي جديد بعد إكمال %d دروس"
	CHALLENGE_LOCKED_FMT  = "يتم إنشاء التحديات البرمجية بعد إكمال 4 دروس على الأقل. لقد أكملت %d دروس فقط حتى الآن."

	NO_ACTIVE_SESSION     = "No active session. Please select a language first."
	LESSON_LOCKED         = "Complete previous lessons first"
	LESSON_NOT_FOUND_FMT  = "Lesson %d not found"
	CHALLENGE_NOT_FOUND   = "Challenge not found"
	NO_QUESTIONS_FOUND    = "No questions found"
	NO_VALID_ANSWERS      = "No valid answers to evaluate"
	NO_SESSION_STATUS     = "No active session"
	HEALTH_STATUS_MESSAGE = "API is running successfully"
)
