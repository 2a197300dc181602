package contract

// JSON Schema definitions for each contract shape. The oracle has no schema
// enforcement of its own, so these are the single source of truth for what
// counts as well-formed output.

var questionProperties = map[string]any{
	"id":           map[string]any{"type": "string"},
	"question":     map[string]any{"type": "string", "minLength": 1},
	"options":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 4, "maxItems": 4},
	"correctIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
	"explanation":  map[string]any{"type": "string"},
}

var questionSchema = map[string]any{
	"type":       "object",
	"properties": questionProperties,
	"required":   []any{"question", "options", "correctIndex"},
}

var questionsSchema = map[string]any{
	"type":     "array",
	"items":    questionSchema,
	"minItems": 1,
}

var leaderboardSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "string"},
			"name":   map[string]any{"type": "string", "minLength": 1},
			"score":  map[string]any{"type": "integer", "minimum": 0},
			"avatar": map[string]any{"type": "string"},
			"level":  map[string]any{"type": "integer", "minimum": 1},
			"streak": map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []any{"name", "score"},
	},
	"minItems": 1,
}

var dailyLessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"date":        map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"keyPoint":    map[string]any{"type": "string"},
		"examples": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"en": map[string]any{"type": "string"},
					"vi": map[string]any{"type": "string"},
				},
				"required": []any{"en", "vi"},
			},
		},
		"tip":  map[string]any{"type": "string"},
		"quiz": questionsSchema,
	},
	"required": []any{"title", "description", "keyPoint", "examples", "tip", "quiz"},
}

var readingPassageSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string"},
		"title":      map[string]any{"type": "string", "minLength": 1},
		"passage":    map[string]any{"type": "string", "minLength": 1},
		"questions":  questionsSchema,
		"topic":      map[string]any{"type": "string"},
		"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
	},
	"required": []any{"title", "passage", "questions"},
}
