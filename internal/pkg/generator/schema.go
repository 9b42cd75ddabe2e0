package generator

// JSON schemas for every typed document parsed from model output. A document
// that unmarshals but violates its schema is treated the same as a parse
// failure and routed to the fallback.

type docSchema struct {
	Name       string
	Definition map[string]any
}

var curriculumSchema = &docSchema{
	Name: "curriculum",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"language": map[string]any{"type": "string"},
			"lessons": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"lesson_number": map[string]any{"type": "integer", "minimum": 1},
						"title":         map[string]any{"type": "string", "minLength": 1},
						"description":   map[string]any{"type": "string"},
						"objectives": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"lesson_number", "title"},
				},
			},
		},
		"required": []any{"lessons"},
	},
}

var lessonContentSchema = &docSchema{
	Name: "lesson-content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"introduction":         map[string]any{"type": "string"},
			"detailed_explanation": map[string]any{"type": "string"},
			"code_examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"code":        map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"code"},
				},
			},
			"tips":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"summary": map[string]any{"type": "string"},
		},
		"required": []any{"introduction", "detailed_explanation"},
	},
}

var quizSchema = &docSchema{
	Name: "quiz-questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
						"correct_answer": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
						"explanation":    map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

var challengeSchema = &docSchema{
	Name: "coding-challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"challenge_id":   map[string]any{"type": "string"},
			"title":          map[string]any{"type": "string", "minLength": 1},
			"description":    map[string]any{"type": "string", "minLength": 1},
			"requirements":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"example_input":  map[string]any{"type": "string"},
			"example_output": map[string]any{"type": "string"},
			"hints":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"title", "description"},
	},
}

var evaluationSchema = &docSchema{
	Name: "code-evaluation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct":  map[string]any{"type": "boolean"},
			"score":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"feedback":    map[string]any{"type": "string"},
			"errors":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"hints":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"is_correct", "score", "feedback"},
	},
}
