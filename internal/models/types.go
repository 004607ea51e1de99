package models

import (
	"time"
)

// MinScore and MaxScore bound the marking scale for a 5-mark question.
const (
	MinScore = 0
	MaxScore = 5
)

// GuideSection is one unit of reference material extracted from a single
// guide image. Immutable after ingestion.
type GuideSection struct {
	SourceID string `json:"source_id"`
	Content  string `json:"content"`
}

// Input message

type EvaluationRequest struct {
	EventID    string `json:"event_id"`
	AnswerText string `json:"answer_text"`
}

// Normalized internal object
type EvaluationContext struct {
	RequestID  string    `json:"request_id" jsonschema:"required,description=Unique event identifier"`
	AnswerText string    `json:"answer_text" jsonschema:"required,description=Student answer text to grade"`
	CreatedAt  time.Time `json:"created_at" jsonschema:"description=Time when the evaluation context was created"`
}

// EvaluationResult is the grading outcome for one answer. Score is always
// within [MinScore, MaxScore].
type EvaluationResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Valid reports whether the score sits inside the marking scale.
func (r EvaluationResult) Valid() bool {
	return r.Score >= MinScore && r.Score <= MaxScore
}
