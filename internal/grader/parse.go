package grader

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/answersheet/gradebot/internal/models"
)

// parseEvaluation pulls the structured grading result out of a raw backend
// response. Backends wrap the JSON payload in prose or markdown fences, so
// the substring between the outermost braces is what gets parsed.
func parseEvaluation(raw string) (models.EvaluationResult, error) {
	var result models.EvaluationResult

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return result, fmt.Errorf("no JSON object in response")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return result, fmt.Errorf("invalid JSON in response: %w", err)
	}

	scoreVal, ok := payload["score"]
	if !ok {
		return result, fmt.Errorf("response missing score key")
	}
	reasonVal, ok := payload["reason"]
	if !ok {
		return result, fmt.Errorf("response missing reason key")
	}

	score, err := coerceScore(scoreVal)
	if err != nil {
		return result, err
	}

	result.Score = score
	result.Reason = strings.TrimSpace(fmt.Sprint(reasonVal))

	if !result.Valid() {
		return models.EvaluationResult{}, fmt.Errorf("score %d out of range [%d, %d]",
			score, models.MinScore, models.MaxScore)
	}

	return result, nil
}

func coerceScore(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		score, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("score %q is not an integer", n)
		}
		return score, nil
	default:
		return 0, fmt.Errorf("score has unsupported type %T", v)
	}
}
