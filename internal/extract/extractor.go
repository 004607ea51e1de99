package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/llm"
)

// Fixed transcription instruction for the vision model. The answer must come
// back literally, so grading sees the student's own words.
const ocrPrompt = `Read ALL text in this image. Extract every word, number, and character visible.

READ EVERYTHING:
- All handwritten text (cursive, print, notes)
- All printed text (documents, books, signs)
- All digital text (screens, apps)
- Numbers, dates, addresses, phone numbers
- Equations, formulas, symbols
- Faded text, partial text, crossed-out text
- Text at any angle or size

RULES:
- Don't skip anything
- Keep exact spelling and punctuation
- Don't interpret or correct
- Transcribe exactly what you see

OUTPUT: Only the actual text content.`

// Extractor turns an image file into text through a vision-capable model.
type Extractor struct {
	client      llm.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zerolog.Logger
}

func New(client llm.Client, model string, maxTokens int, temperature float64, logger *zerolog.Logger) *Extractor {
	return &Extractor{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Model reports the vision model identifier the extractor was wired with.
func (e *Extractor) Model() string {
	return e.model
}

// ExtractText transcribes the image at the given path. A failure of any kind
// surfaces as an error; callers degrade instead of aborting.
func (e *Extractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	return e.Extract(ctx, imagePath, "")
}

// Extract is ExtractText with an optional custom instruction.
func (e *Extractor) Extract(ctx context.Context, imagePath string, customPrompt string) (string, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("unable to read image %s: %w", imagePath, err)
	}

	prompt := customPrompt
	if prompt == "" {
		prompt = ocrPrompt
	}

	resp, err := e.client.Generate(ctx, llm.Request{
		Model:       e.model,
		Prompt:      prompt,
		Images:      [][]byte{image},
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	e.logger.Info().Int("chars", len(text)).Msg("extracted text from image")
	return text, nil
}
