package grader

import (
	"testing"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantScore  int
		wantReason string
		wantErr    bool
	}{
		{
			name:       "plain json",
			raw:        `{"score": 4, "reason": "Solid coverage of the topic"}`,
			wantScore:  4,
			wantReason: "Solid coverage of the topic",
		},
		{
			name:       "json wrapped in prose",
			raw:        "Here is my evaluation:\n{\"score\": 3, \"reason\": \"Missing one key point\"}\nHope that helps.",
			wantScore:  3,
			wantReason: "Missing one key point",
		},
		{
			name:       "markdown fenced json",
			raw:        "```json\n{\"score\": 5, \"reason\": \"Complete answer\"}\n```",
			wantScore:  5,
			wantReason: "Complete answer",
		},
		{
			name:       "float score truncated",
			raw:        `{"score": 3.9, "reason": "rounded down"}`,
			wantScore:  3,
			wantReason: "rounded down",
		},
		{
			name:       "string score",
			raw:        `{"score": "4", "reason": "numeric string"}`,
			wantScore:  4,
			wantReason: "numeric string",
		},
		{
			name:    "non-integer string score",
			raw:     `{"score": "4.5", "reason": "half marks"}`,
			wantErr: true,
		},
		{
			name:    "missing score",
			raw:     `{"reason": "no score given"}`,
			wantErr: true,
		},
		{
			name:    "missing reason",
			raw:     `{"score": 3}`,
			wantErr: true,
		},
		{
			name:    "score above range",
			raw:     `{"score": 6, "reason": "too high"}`,
			wantErr: true,
		},
		{
			name:    "negative score",
			raw:     `{"score": -2, "reason": "below zero"}`,
			wantErr: true,
		},
		{
			name:    "no json object",
			raw:     "The answer deserves a 4 out of 5.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			raw:     `} not a payload {`,
			wantErr: true,
		},
		{
			name:    "invalid json between braces",
			raw:     `{score: 4, reason: missing quotes}`,
			wantErr: true,
		},
		{
			name:       "zero score is valid",
			raw:        `{"score": 0, "reason": "No relevant content"}`,
			wantScore:  0,
			wantReason: "No relevant content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseEvaluation(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, result.Score)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, result.Reason)
			}
		})
	}
}

func TestParseEvaluationTrimsReason(t *testing.T) {
	result, err := parseEvaluation(`{"score": 2, "reason": "  padded reason  "}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reason != "padded reason" {
		t.Errorf("expected trimmed reason, got %q", result.Reason)
	}
}
