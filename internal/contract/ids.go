package contract

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newItemID builds a collision-resistant identifier for a list item:
// timestamp + batch index + random suffix. Oracle-supplied ids may repeat
// across calls or within a batch, so they are never trusted.
func newItemID(prefix string, index int) string {
	return fmt.Sprintf("%s-%d-%d-%s", prefix, time.Now().UnixMilli(), index, uuid.NewString()[:8])
}

// dailyQuizID builds a deterministic id for a daily-lesson quiz question.
// The (date, index) pair is unique within the lesson, so no random suffix
// is needed.
func dailyQuizID(date string, index int) string {
	return fmt.Sprintf("daily-%s-%d", date, index)
}
