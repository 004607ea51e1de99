package grader

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/llm"
	"github.com/answersheet/gradebot/internal/models"
)

//go:generate mockgen -source=grader.go -destination=mocks/grader_mocks.go -package=mocks

// GuideLoader triggers the one-time guide ingestion.
type GuideLoader interface {
	Load(ctx context.Context) bool
}

// ContextSelector builds a bounded reference context for an answer.
type ContextSelector interface {
	SelectContext(answerText string, maxSections int) string
}

// Options configures the grading fallback chain and its sampling.
type Options struct {
	// CandidateModels are tried in order; smaller text models first, the
	// extraction vision model last.
	CandidateModels []string
	MaxSections     int
	MaxTokens       int
	Temperature     float64
}

// Engine grades answer text against the reference guide. Evaluate never
// fails: every internal failure degrades to a deterministic result.
type Engine struct {
	client   llm.Client
	guide    GuideLoader
	selector ContextSelector
	opts     Options
	logger   *zerolog.Logger
}

func NewEngine(client llm.Client, guide GuideLoader, selector ContextSelector, opts Options, logger *zerolog.Logger) *Engine {
	return &Engine{
		client:   client,
		guide:    guide,
		selector: selector,
		opts:     opts,
		logger:   logger,
	}
}

// Evaluate grades an answer on the 0-5 scale. Candidate models are tried in
// order until one returns a parsable in-range result; when all fail, a
// word-count heuristic takes over.
func (e *Engine) Evaluate(ctx context.Context, answerText string) (result models.EvaluationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error().Interface("panic", rec).Msg("evaluation failed")
			result = models.EvaluationResult{
				Score:  0,
				Reason: "Unable to evaluate answer due to technical error",
			}
		}
	}()

	answer := strings.TrimSpace(answerText)
	if answer == "" {
		return models.EvaluationResult{Score: 0, Reason: "No answer provided"}
	}

	// Ensure the guide has attempted a load; grading proceeds either way.
	e.guide.Load(ctx)

	guideContent := e.selector.SelectContext(answer, e.opts.MaxSections)

	prompt, err := buildPrompt(guideContent, answer)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to build evaluation prompt")
		return e.fallback(answer)
	}

	for _, model := range e.opts.CandidateModels {
		resp, err := e.client.Generate(ctx, llm.Request{
			Model:       model,
			Prompt:      prompt,
			MaxTokens:   e.opts.MaxTokens,
			Temperature: e.opts.Temperature,
		})
		if err != nil {
			e.logger.Warn().Err(err).Str("model", model).Msg("evaluation model failed")
			continue
		}

		parsed, err := parseEvaluation(resp.Content)
		if err != nil {
			e.logger.Warn().Err(err).Str("model", model).
				Str("content", resp.Content).Msg("unusable evaluation response")
			continue
		}

		e.logger.Info().Str("model", model).Int("score", parsed.Score).Msg("evaluation successful")
		return parsed
	}

	e.logger.Warn().Msg("all evaluation models failed, using fallback scoring")
	return e.fallback(answer)
}

// fallback maps answer length onto a banded score when no model produced a
// usable result.
func (e *Engine) fallback(answer string) models.EvaluationResult {
	wordCount := len(strings.Fields(answer))
	switch {
	case wordCount < 10:
		return models.EvaluationResult{Score: 1, Reason: "Answer too short for a 5-mark question"}
	case wordCount < 30:
		return models.EvaluationResult{Score: 2, Reason: "Brief answer, may lack detail"}
	case wordCount < 60:
		return models.EvaluationResult{Score: 3, Reason: "Adequate length, content evaluation needed"}
	default:
		return models.EvaluationResult{Score: 4, Reason: "Good length, appears comprehensive"}
	}
}
