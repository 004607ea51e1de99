package ollama

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/llm"
)

var ErrNoVisionModel = errors.New("no usable vision model found")

// Model name fragments that indicate vision capability.
var visionKeywords = []string{"llava", "vision", "minicpm", "visual"}

// PickVisionModel selects a vision-capable model from the backend. It prefers
// models whose name matches a known vision pattern, within those the minicpm
// family. When no listed model looks vision-capable it probes the preferred
// model and the given fallbacks with a one-token generation and takes the
// first that answers.
func PickVisionModel(ctx context.Context, client llm.Client, preferred string, fallbacks []string, logger *zerolog.Logger) (string, error) {
	available, err := client.ListModels(ctx)
	if err != nil {
		return "", err
	}

	var visionModels []string
	for _, name := range available {
		if matchesAny(name, visionKeywords...) {
			visionModels = append(visionModels, name)
		}
	}

	if len(visionModels) == 0 {
		for _, candidate := range append([]string{preferred}, fallbacks...) {
			if candidate == "" {
				continue
			}
			_, err := client.Generate(ctx, llm.Request{
				Model:     candidate,
				Prompt:    "test",
				MaxTokens: 1,
			})
			if err != nil {
				logger.Debug().Err(err).Str("model", candidate).Msg("probe failed")
				continue
			}
			logger.Info().Str("model", candidate).Msg("using model")
			return candidate, nil
		}
		return "", ErrNoVisionModel
	}

	selected := visionModels[0]
	for _, name := range visionModels {
		if matchesAny(name, "minicpm") {
			selected = name
			break
		}
	}

	logger.Info().Str("model", selected).Msg("using model")
	return selected, nil
}

func matchesAny(name string, keywords ...string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
