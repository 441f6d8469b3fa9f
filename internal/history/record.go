package history

import (
	"time"

	"quizdoc/internal/quiz"
)

const dateLayout = "02.01.2006, 15:04:05"

// Record is one finished attempt as kept in the client history.
type Record struct {
	Date           string `json:"date"`
	TotalQuestions int    `json:"totalQuestions"`
	CorrectAnswers int    `json:"correctAnswers"`
	// Timestamp is milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

func NewRecord(result quiz.Result, now time.Time) Record {
	return Record{
		Date:           now.Local().Format(dateLayout),
		TotalQuestions: result.Total,
		CorrectAnswers: result.Correct,
		Timestamp:      now.UnixMilli(),
	}
}

// Result converts the record back into a score.
func (r Record) Result() quiz.Result {
	return quiz.Result{Correct: r.CorrectAnswers, Total: r.TotalQuestions}
}
