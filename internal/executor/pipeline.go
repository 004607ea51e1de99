package executor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/models"
)

// MinAnswerChars is the smallest extracted answer worth grading; anything
// shorter gets a "too short" outcome without a grading call.
const MinAnswerChars = 20

// Extractor converts an image file into text.
type Extractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// Evaluator grades answer text.
type Evaluator interface {
	Evaluate(ctx context.Context, answerText string) models.EvaluationResult
}

// ImageOutcome is the result of running the full image pipeline.
type ImageOutcome struct {
	// Text is the extracted answer, empty when the image held no readable text.
	Text string
	// Evaluated is false when the text was too short to grade.
	Evaluated bool
	Result    models.EvaluationResult
}

// Pipeline chains extraction and grading for one incoming answer.
type Pipeline struct {
	extractor Extractor
	evaluator Evaluator
	logger    *zerolog.Logger
}

func NewPipeline(extractor Extractor, evaluator Evaluator, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		evaluator: evaluator,
		logger:    logger,
	}
}

// GradeImage extracts text from the image and grades it. An extraction error
// is returned to the caller; grading itself never fails.
func (p *Pipeline) GradeImage(ctx context.Context, imagePath string) (ImageOutcome, error) {
	text, err := p.extractor.ExtractText(ctx, imagePath)
	if err != nil {
		p.logger.Error().Err(err).Str("image", imagePath).Msg("extraction failed")
		return ImageOutcome{}, err
	}

	outcome := ImageOutcome{Text: text}
	if text == "" {
		return outcome, nil
	}

	if len(text) <= MinAnswerChars {
		p.logger.Info().Int("chars", len(text)).Msg("answer too short for evaluation")
		return outcome, nil
	}

	p.logger.Info().Msg("starting answer evaluation")
	outcome.Evaluated = true
	outcome.Result = p.evaluator.Evaluate(ctx, text)
	return outcome, nil
}

// GradeText grades already-extracted answer text.
func (p *Pipeline) GradeText(ctx context.Context, requestID string, answerText string) models.EvaluationResult {
	p.logger.Info().Str("requestID", requestID).Msg("starting evaluation")

	result := p.evaluator.Evaluate(ctx, answerText)

	p.logger.Info().
		Str("requestID", requestID).
		Int("score", result.Score).
		Msg("evaluation complete")
	return result
}
