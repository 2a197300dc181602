package contract

import (
	"errors"
	"strings"
	"testing"
)

const questionBatchJSON = `[
	{
		"id": "dup",
		"question": "She ___ to school every day.",
		"options": ["go", "goes", "going", "gone"],
		"correctIndex": 1,
		"explanation": "Chủ ngữ ngôi thứ ba số ít dùng 'goes'."
	},
	{
		"id": "dup",
		"question": "I have lived here ___ 2010.",
		"options": ["for", "since", "in", "at"],
		"correctIndex": 1,
		"explanation": "'Since' đi với mốc thời gian."
	}
]`

func TestParseQuestions_RewritesDuplicateIDs(t *testing.T) {
	questions, err := ParseQuestions(questionBatchJSON)
	if err != nil {
		t.Fatalf("ParseQuestions() error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	if questions[0].ID == "" || questions[1].ID == "" {
		t.Error("parser left an empty id")
	}
	if questions[0].ID == questions[1].ID {
		t.Errorf("ids collide: %q", questions[0].ID)
	}
	if questions[0].ID == "dup" || questions[1].ID == "dup" {
		t.Error("oracle-supplied id survived parsing")
	}
}

func TestParseQuestions_FencedRoundTrip(t *testing.T) {
	fenced := "```json\n" + questionBatchJSON + "\n```"

	plain, err := ParseQuestions(questionBatchJSON)
	if err != nil {
		t.Fatalf("unfenced parse error: %v", err)
	}
	wrapped, err := ParseQuestions(fenced)
	if err != nil {
		t.Fatalf("fenced parse error: %v", err)
	}

	if len(plain) != len(wrapped) {
		t.Fatalf("fenced parse yielded %d questions, unfenced %d", len(wrapped), len(plain))
	}
	for i := range plain {
		if plain[i].Question != wrapped[i].Question ||
			plain[i].CorrectIndex != wrapped[i].CorrectIndex {
			t.Errorf("question %d differs between fenced and unfenced parse", i)
		}
	}
}

func TestParseQuestions_RejectsMalformedShape(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not JSON", "Sorry, I cannot help with that."},
		{"wrong option count", `[{"question": "Q?", "options": ["a", "b"], "correctIndex": 0}]`},
		{"index out of range", `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctIndex": 7}]`},
		{"empty batch", `[]`},
		{"object not array", `{"question": "Q?"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuestions(tc.raw)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if perr.Shape != ShapeQuestions {
				t.Errorf("shape = %q, want %q", perr.Shape, ShapeQuestions)
			}
		})
	}
}

func TestParseLeaderboard_SortsAndFillsAvatars(t *testing.T) {
	raw := `[
		{"name": "Trần Thị Hương", "score": 900, "level": 9, "streak": 3},
		{"name": "Nguyễn Văn An", "score": 1850, "avatar": "NVA", "level": 15, "streak": 12}
	]`

	entries, err := ParseLeaderboard(raw)
	if err != nil {
		t.Fatalf("ParseLeaderboard() error: %v", err)
	}

	if entries[0].Score != 1850 {
		t.Errorf("entries not sorted by score: first = %d", entries[0].Score)
	}
	if entries[1].Avatar != "TTH" {
		t.Errorf("avatar = %q, want initials \"TTH\"", entries[1].Avatar)
	}
	if entries[0].ID == entries[1].ID || entries[0].ID == "" {
		t.Error("leaderboard ids missing or colliding")
	}
}

func TestParseDailyLesson_DeterministicQuizIDs(t *testing.T) {
	raw := `{
		"date": "2020-01-01",
		"title": "Who vs Which",
		"description": "Who dùng cho người, which dùng cho vật.",
		"keyPoint": "Who → người, Which → vật.",
		"examples": [{"en": "The man who called is my uncle.", "vi": "Người đàn ông đã gọi là chú tôi."}],
		"tip": "Nhớ: WHO = HUMAN.",
		"quiz": [
			{"question": "The book ___ I read was great.", "options": ["who", "which", "whom", "whose"], "correctIndex": 1, "explanation": "Vật dùng which."}
		]
	}`

	lesson, err := ParseDailyLesson(raw, "2025-06-01")
	if err != nil {
		t.Fatalf("ParseDailyLesson() error: %v", err)
	}

	// The requested date wins over whatever the oracle echoed back.
	if lesson.Date != "2025-06-01" {
		t.Errorf("date = %q, want requested date", lesson.Date)
	}
	if lesson.Quiz[0].ID != "daily-2025-06-01-0" {
		t.Errorf("quiz id = %q, want daily-2025-06-01-0", lesson.Quiz[0].ID)
	}
}

func TestParseReadingPassage(t *testing.T) {
	raw := "```\n" + `{
		"title": "The Internet in Education",
		"passage": "The internet has changed the way students learn...",
		"questions": [
			{"question": "What is the main idea?", "options": ["a", "b", "c", "d"], "correctIndex": 0, "explanation": "Đoạn đầu nêu ý chính."},
			{"question": "The word 'it' refers to...", "options": ["a", "b", "c", "d"], "correctIndex": 2, "explanation": ""}
		],
		"difficulty": "medium"
	}` + "\n```"

	passage, err := ParseReadingPassage(raw)
	if err != nil {
		t.Fatalf("ParseReadingPassage() error: %v", err)
	}

	if passage.ID == "" {
		t.Error("passage id not assigned")
	}
	for i, q := range passage.Questions {
		if !strings.HasPrefix(q.ID, passage.ID) {
			t.Errorf("question %d id %q not derived from passage id", i, q.ID)
		}
	}
	if passage.Questions[0].ID == passage.Questions[1].ID {
		t.Error("question ids collide")
	}
}

func TestParseExplanation(t *testing.T) {
	got, err := ParseExplanation("```\nĐáp án đúng là 'goes' vì chủ ngữ số ít.\n```")
	if err != nil {
		t.Fatalf("ParseExplanation() error: %v", err)
	}
	if got != "Đáp án đúng là 'goes' vì chủ ngữ số ít." {
		t.Errorf("ParseExplanation() = %q", got)
	}

	if _, err := ParseExplanation("   "); err == nil {
		t.Error("empty explanation accepted")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n[1]\n```", "[1]"},
		{"```\n{}\n```", "{}"},
		{"plain text", "plain text"},
		{"  \n[1, 2]\n ", "[1, 2]"},
		{"```json\n{\"a\": \"```\"}\n```", "{\"a\": \"```\"}"},
	}
	for _, tt := range tests {
		if got := StripFences(tt.in); got != tt.want {
			t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Nguyễn Văn An", "NVA"},
		{"Lê Hoàng Long", "LHL"},
		{"Mai", "M"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
