package generate

import (
	"fmt"
	"strings"

	"github.com/gwang08/GenLingo/internal/contract"
)

const explanationSystemPrompt = `Bạn là một giáo viên tiếng Anh giỏi, giải thích cho học sinh THPT Việt Nam.
Trả lời ngắn gọn, dễ hiểu, thân thiện, bằng tiếng Việt. Không dùng định dạng markdown.`

// buildExplanationPrompt asks for a short Vietnamese explanation of why the
// student's answer was wrong.
func buildExplanationPrompt(question, correctAnswer, userAnswer string) string {
	var b strings.Builder

	b.WriteString("Học sinh đã trả lời sai câu hỏi sau:\n\n")
	fmt.Fprintf(&b, "Câu hỏi: %s\n", question)
	fmt.Fprintf(&b, "Đáp án đúng: %s\n", correctAnswer)
	fmt.Fprintf(&b, "Đáp án của học sinh: %s\n", userAnswer)

	b.WriteString("\nHãy giải thích ngắn gọn (2-3 câu) bằng tiếng Việt:\n")
	fmt.Fprintf(&b, "1. Tại sao đáp án đúng là %q\n", correctAnswer)
	b.WriteString("2. Một ví dụ minh họa đơn giản\n")
	b.WriteString("3. Một mẹo nhớ ngắn gọn\n")

	return b.String()
}

const questionsSystemPrompt = `Bạn là một giáo viên tiếng Anh giỏi, soạn câu hỏi trắc nghiệm cho học sinh THPT Việt Nam.
Chỉ trả về JSON đúng format yêu cầu, không có text thừa, không có markdown fence.`

// buildQuestionsPrompt asks for a fresh batch of multiple-choice questions.
// Existing questions are included so the oracle avoids duplicates.
func buildQuestionsPrompt(topicTitle, topicDescription string, existing []contract.QuizQuestion, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hãy tạo %d câu hỏi trắc nghiệm MỚI về chủ đề:\n\n", count)
	fmt.Fprintf(&b, "Tên chủ đề: %s\n", topicTitle)
	fmt.Fprintf(&b, "Mô tả: %s\n", topicDescription)

	b.WriteString(`
YÊU CẦU:
1. Câu hỏi HOÀN TOÀN MỚI, không trùng với câu hỏi cũ bên dưới
2. Mỗi câu có đúng 4 đáp án (options)
3. Câu hỏi phù hợp với học sinh THPT Việt Nam, độ khó từ dễ đến trung bình
4. Có giải thích (explanation) bằng tiếng Việt
`)

	b.WriteString("\nCâu hỏi cũ cần tránh:\n")
	b.WriteString(buildExistingQuestions(existing, 10))

	b.WriteString(`
FORMAT JSON (chỉ trả về array, bắt đầu bằng [ và kết thúc bằng ]):
[
  {
    "id": "q1",
    "question": "Câu hỏi tiếng Anh",
    "options": ["A", "B", "C", "D"],
    "correctIndex": 0,
    "explanation": "Giải thích ngắn bằng tiếng Việt"
  }
]
`)

	return b.String()
}

// buildExistingQuestions formats prior question texts for deduplication,
// capped at max entries.
func buildExistingQuestions(existing []contract.QuizQuestion, max int) string {
	if len(existing) == 0 {
		return "Không có"
	}
	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}

	var b strings.Builder
	for i, q := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
	}
	return strings.TrimRight(b.String(), "\n")
}

const leaderboardSystemPrompt = `Bạn là một game designer cho app học tiếng Anh THPT.
Chỉ trả về JSON đúng format yêu cầu, không có text thừa, không có markdown fence.`

// buildLeaderboardPrompt asks for a synthetic top-10 board themed around the
// user's current score.
func buildLeaderboardPrompt(userScore int) string {
	lo := userScore + 50
	if lo < 500 {
		lo = 500
	}
	hi := userScore + 500
	if hi < 2000 {
		hi = 2000
	}

	var b strings.Builder

	b.WriteString("Hãy tạo bảng xếp hạng top 10 cho app học tiếng Anh THPT.\n\n")
	fmt.Fprintf(&b, "Điểm của user hiện tại: %d\n", userScore)

	fmt.Fprintf(&b, `
YÊU CẦU:
1. Tạo 10 người với tên người Việt Nam thực tế, đa dạng
2. Điểm số (score) từ %d đến %d, cao hơn user để tạo động lực
3. Level từ 1-20, tương ứng với điểm
4. Streak từ 1-30 ngày
5. Avatar là chữ cái đầu của tên (VD: "Nguyễn Văn An" -> "NVA")
6. Sắp xếp score giảm dần, không có 2 người cùng điểm

FORMAT JSON (chỉ trả về array):
[
  {
    "id": "user-1",
    "name": "Nguyễn Văn An",
    "score": 1850,
    "avatar": "NVA",
    "level": 15,
    "streak": 12
  }
]
`, lo, hi)

	return b.String()
}

const dailyLessonSystemPrompt = `Bạn là một giáo viên tiếng Anh chuyên nghiệp, soạn bài cho học sinh THPT ôn thi Quốc gia.
Chỉ trả về JSON đúng format yêu cầu, không có text thừa, không có markdown fence.`

// buildDailyLessonPrompt asks for the micro-lesson of the given calendar day.
func buildDailyLessonPrompt(date string) string {
	var b strings.Builder

	b.WriteString("Hãy tạo 1 bài học ngắn (mini lesson) cho học sinh THPT ôn thi Quốc gia.\n\n")
	fmt.Fprintf(&b, "NGÀY: %s\n", date)

	b.WriteString(`
YÊU CẦU:
1. Chọn 1 điểm ngữ pháp QUAN TRỌNG, THƯỜNG GẶP trong đề thi THPT
2. Giải thích NGẮN GỌN, DỄ HIỂU (2-3 câu)
3. Đưa 3 ví dụ thực tế (tiếng Anh + dịch tiếng Việt)
4. 1 mẹo nhớ (tip) hữu ích
5. 5 câu quiz kiểm tra nhanh

CHỦ ĐỀ NÊN CHỌN (random 1 trong số này):
- Sự khác biệt: Who vs Which
- Khi nào dùng 'ing' sau giới từ
- Make vs Do: Phân biệt dễ dàng
- So sánh hơn và nhất
- Thì hiện tại hoàn thành vs quá khứ đơn
- Unless vs If not
- Although vs Despite
- Few vs Little
- Used to vs Be used to
- Đại từ quan hệ
`)

	fmt.Fprintf(&b, `
FORMAT JSON (chỉ trả về object, bắt đầu bằng { và kết thúc bằng }):
{
  "date": "%s",
  "title": "Tên bài học ngắn gọn",
  "description": "Giải thích 2-3 câu",
  "keyPoint": "Điểm chính cần nhớ",
  "examples": [
    { "en": "Câu tiếng Anh", "vi": "Dịch tiếng Việt" }
  ],
  "tip": "Mẹo nhớ hữu ích",
  "quiz": [
    {
      "id": "q1",
      "question": "Câu hỏi tiếng Anh",
      "options": ["A", "B", "C", "D"],
      "correctIndex": 0,
      "explanation": "Giải thích ngắn"
    }
  ]
}
`, date)

	return b.String()
}

const readingSystemPrompt = `Bạn là một giáo viên tiếng Anh chuyên luyện đọc hiểu theo format đề thi THPT Quốc gia.
Chỉ trả về JSON đúng format yêu cầu, không có text thừa, không có markdown fence.`

// buildReadingPrompt asks for a reading passage with comprehension questions.
func buildReadingPrompt(topic, difficulty string) string {
	difficultyDesc := map[string]string{
		"easy":   "dễ, cơ bản, phù hợp mới bắt đầu",
		"medium": "trung bình, phù hợp lớp 11-12",
		"hard":   "nâng cao, phù hợp ôn thi THPT Quốc gia",
	}
	desc, ok := difficultyDesc[difficulty]
	if !ok {
		desc = difficultyDesc["medium"]
	}

	var b strings.Builder

	b.WriteString("Hãy tạo 1 bài đọc hiểu tiếng Anh theo format đề thi THPT Quốc gia.\n\n")
	fmt.Fprintf(&b, "CHỦ ĐỀ: %s\n", topic)
	fmt.Fprintf(&b, "ĐỘ KHÓ: %s\n", desc)

	b.WriteString(`
YÊU CẦU:
1. Đoạn văn tiếng Anh 150-250 từ, chủ đề gần gũi với học sinh
2. 5 câu hỏi trắc nghiệm đọc hiểu, mỗi câu 4 đáp án
3. Có câu hỏi về ý chính, chi tiết, từ vựng và suy luận
4. Giải thích (explanation) bằng tiếng Việt cho từng câu

FORMAT JSON (chỉ trả về object):
{
  "id": "rc-1",
  "title": "Tiêu đề bài đọc",
  "passage": "Đoạn văn tiếng Anh...",
  "questions": [
    {
      "id": "q1",
      "question": "Câu hỏi tiếng Anh",
      "options": ["A", "B", "C", "D"],
      "correctIndex": 0,
      "explanation": "Giải thích ngắn bằng tiếng Việt"
    }
  ]
}
`)

	return b.String()
}
