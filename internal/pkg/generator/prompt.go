package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/barmaja/barmaja-be/internal/entity"
)

// lessonSkeleton is the fixed 14-topic course structure, in Arabic. Every
// generated curriculum follows it, re-titled for the target language.
var lessonSkeleton = []string{
	"أساسيات الحاسوب ونظام التشغيل",
	"تثبيت بايثون وضبط بيئة العمل",
	"تعلم أساسيات اللغة",
	"التعامل مع المتغيرات وأنواع البيانات",
	"التحكم في سير البرنامج باستخدام الشروط والتكرار",
	"الدوال",
	"المجموعات مثل Lists و Tuples و Sets و Dictionaries",
	"التعامل مع الملفات",
	"استخدام الموديولات والمكتبات",
	"التعامل مع الأخطاء",
	"بناء مشاريع عملية صغيرة",
	"استخدام أدوات إدارة الحزم مثل pip و venv",
	"العمل على مشاريع مفتوحة المصدر أو حل تمارين برمجية",
	"تعلم مكتبات متخصصة مثل NumPy و Pandas و Matplotlib لتحليل البيانات",
}

func curriculumPrompt(language string) string {
	skeleton, _ := json.MarshalIndent(lessonSkeleton, "", "  ")

	return fmt.Sprintf(`أنت مدرس خبير في البرمجة. أريد منك إنشاء منهج تعليمي للغة البرمجة %s باللغة العربية.

يجب أن يتكون المنهج من 14 درسًا بناءً على هذا الهيكل:
%s

لكل درس، أريد:
1. عنوان الدرس مُعدّل ليناسب لغة %s
2. وصف موجز للمحتوى (2-3 جمل)
3. الأهداف التعليمية (3-4 نقاط)

أرجع النتيجة في صيغة JSON صحيحة بهذا الشكل فقط، بدون أي نص إضافي أو تنسيق markdown:
{
    "language": "%s",
    "lessons": [
        {
            "lesson_number": 1,
            "title": "العنوان",
            "description": "الوصف",
            "objectives": ["هدف 1", "هدف 2", "هدف 3"]
        }
    ]
}

مهم جداً: لا تضع النتيجة في code blocks أو أي تنسيق markdown. أرجع JSON خام فقط.
تأكد من أن المحتوى مناسب للمبتدئين ومرتب بشكل منطقي.`,
		language, skeleton, language, language)
}

func lessonContentPrompt(language string, lessonNumber int, lessonTitle string) string {
	return fmt.Sprintf(`أنت مدرس خبير في لغة البرمجة %s. أريد منك إنشاء محتوى تفصيلي للدرس رقم %d: "%s" باللغة العربية.

يجب أن يتضمن المحتوى:
1. مقدمة عن الموضوع (100-150 كلمة)
2. الشرح التفصيلي مع الأمثلة (300-500 كلمة)
3. أمثلة برمجية عملية مع التعليقات باللغة العربية (3-5 أمثلة)
4. نصائح مهمة للطلاب
5. ملخص سريع للدرس

أرجع النتيجة في صيغة JSON صحيحة فقط، بدون أي نص إضافي أو تنسيق markdown:
{
    "introduction": "المقدمة",
    "detailed_explanation": "الشرح التفصيلي",
    "code_examples": [
        {
            "title": "عنوان المثال",
            "code": "الكود",
            "explanation": "شرح المثال"
        }
    ],
    "tips": ["نصيحة 1", "نصيحة 2"],
    "summary": "الملخص"
}

مهم جداً: لا تضع النتيجة في code blocks أو أي تنسيق markdown. أرجع JSON خام فقط.
تأكد من أن الأمثلة صحيحة ومناسبة للمستوى المبتدئ.`,
		language, lessonNumber, lessonTitle)
}

func quizPrompt(language string, lessonNumber int, lessonTitle string) string {
	return fmt.Sprintf(`أنت مدرس خبير في لغة البرمجة %s. أريد منك إنشاء 5 أسئلة اختيار متعدد للدرس رقم %d: "%s" باللغة العربية.

لكل سؤال:
1. السؤال واضح ومباشر
2. 4 خيارات (أ، ب، ج، د)
3. إجابة واحدة صحيحة فقط
4. تغطي النقاط المهمة في الدرس

أرجع النتيجة في صيغة JSON صحيحة فقط، بدون أي نص إضافي:
{
    "questions": [
        {
            "question": "نص السؤال",
            "options": ["الخيار أ", "الخيار ب", "الخيار ج", "الخيار د"],
            "correct_answer": 0,
            "explanation": "شرح الإجابة الصحيحة"
        }
    ]
}

تأكد من أن الأسئلة متنوعة وتختبر الفهم الحقيقي وليس الحفظ فقط.`,
		language, lessonNumber, lessonTitle)
}

func challengePrompt(language string, lessonsCompleted int) string {
	return fmt.Sprintf(`أنت مدرس خبير في لغة البرمجة %s. الطالب قد أكمل %d دروس حتى الآن.

أريد منك إنشاء تحدي برمجي مناسب لمستوى الطالب الحالي. التحدي يجب أن:
1. يكون مناسبًا للمستوى الحالي (بعد %d دروس)
2. يكون عمليًا وواقعيًا
3. يتضمن وصفًا واضحًا للمشكلة
4. يتضمن أمثلة للإدخال والإخراج المتوقع
5. يكون باللغة العربية

أرجع النتيجة في صيغة JSON صحيحة فقط، بدون أي نص إضافي:
{
    "challenge_id": "معرف فريد للتحدي",
    "title": "عنوان التحدي",
    "description": "وصف مفصل للتحدي والمشكلة التي يجب حلها",
    "requirements": ["المتطلب 1", "المتطلب 2"],
    "example_input": "مثال للإدخال",
    "example_output": "مثال للإخراج المتوقع",
    "hints": ["تلميح 1", "تلميح 2"]
}`,
		language, lessonsCompleted, lessonsCompleted)
}

func evaluationPrompt(language, code string, challenge entity.CodingChallenge) string {
	requirements, _ := json.Marshal(challenge.Requirements)

	return fmt.Sprintf(`أنت مدرس خبير في لغة البرمجة %s. الطالب قد كتب الكود التالي لتحدي برمجي:

الكود:
%s

معلومات التحدي:
- العنوان: %s
- الوصف: %s
- المتطلبات: %s
- مثال الإدخال: %s
- مثال الإخراج: %s

قم بتقييم الكود بناءً على:
1. هل يحل المشكلة بشكل صحيح؟
2. هل يلبي جميع المتطلبات؟
3. هل هناك أخطاء في الكود؟
4. جودة الكود ووضوحه

إذا كان هناك أخطاء، قدم تلميحات لمساعدة الطالب على تصحيحها دون إعطاء الحل مباشرة.

أرجع النتيجة في صيغة JSON صحيحة فقط، بدون أي نص إضافي:
{
    "is_correct": true,
    "score": 85,
    "feedback": "ملاحظات عامة على الكود",
    "errors": ["قائمة بالأخطاء إن وجدت"],
    "hints": ["تلميحات لتحسين الكود أو تصحيح الأخطاء"],
    "suggestions": ["اقتراحات لتحسين جودة الكود"]
}

كن مشجعًا وتعليميًا في ملاحظاتك.`,
		language, code, challenge.Title, challenge.Description, requirements,
		challenge.ExampleInput, challenge.ExampleOutput)
}

// tutorContextWindow limits how much chat history the tutor prompt carries.
const tutorContextWindow = 5

func tutorPrompt(question, language string, lessonNumber int, history []entity.ChatEntry) string {
	if len(history) > tutorContextWindow {
		history = history[len(history)-tutorContextWindow:]
	}

	var context strings.Builder
	for i, entry := range history {
		if i > 0 {
			context.WriteString("\n")
		}
		fmt.Fprintf(&context, "الطالب: %s\nالمدرس: %s", entry.Question, entry.Answer)
	}

	return fmt.Sprintf(`أنت مدرس ذكي ومتخصص في تعليم لغة البرمجة %s باللغة العربية. الطالب حاليًا في الدرس رقم %d.

السياق السابق للمحادثة:
%s

سؤال الطالب الحالي: %s

قواعد مهمة:
1. أجب فقط عن الأسئلة المتعلقة بالدرس الحالي أو الدروس السابقة
2. إذا سأل عن موضوع من درس متقدم، قل له بلطف أنه سيتعلم هذا في الدروس القادمة
3. استخدم أمثلة برمجية بسيطة ومفهومة
4. كن صبورًا ومشجعًا
5. إذا كان السؤال غير واضح، اطلب التوضيح
6. إذا كان السؤال خارج البرمجة تمامًا، وجهه بلطف للعودة للموضوع

أجب بطريقة ودودة وتعليمية باللغة العربية.`,
		language, lessonNumber, context.String(), question)
}
