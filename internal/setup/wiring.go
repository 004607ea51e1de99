package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/config"
	"github.com/answersheet/gradebot/internal/executor"
	"github.com/answersheet/gradebot/internal/extract"
	"github.com/answersheet/gradebot/internal/grader"
	"github.com/answersheet/gradebot/internal/guide"
	"github.com/answersheet/gradebot/internal/llm"
	"github.com/answersheet/gradebot/internal/llm/bedrock"
	"github.com/answersheet/gradebot/internal/llm/ollama"
	"github.com/answersheet/gradebot/internal/llm/openai"
)

type Config struct {
	Provider      string
	OllamaHost    string
	AWSRegion     string
	ClaudeModelID string
	OpenAIKey     string
	OpenAIModelID string
	GuideFolder   string
	BotToken      string
	MessageLog    string
}

type Dependencies struct {
	Pipeline  *executor.Pipeline
	Grader    *grader.Engine
	Extractor *extract.Extractor
	Guide     *guide.Repository
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Provider:      getEnv("LLM_PROVIDER", "ollama"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID: getEnv("OPEN_AI_MODEL_ID", ""),
		GuideFolder:   getEnv("GUIDE_FOLDER", ""),
		BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		MessageLog:    getEnv("MESSAGE_LOG_PATH", "messages_data.jsonl"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	graderCfg, err := config.LoadGraderConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load grader config: %w", err)
	}

	// Guide folder location is a single configurable value; env wins over YAML.
	if cfg.GuideFolder != "" {
		graderCfg.Guide.Folder = cfg.GuideFolder
	}

	llmClient, err := createLLMClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	visionModel, candidates := selectModels(ctx, cfg, graderCfg, llmClient, logger)

	ext := extract.New(
		llmClient,
		visionModel,
		graderCfg.Extraction.MaxTokens,
		graderCfg.Extraction.Temperature,
		logger,
	)

	repo := guide.NewRepository(graderCfg.Guide.Folder, ext, logger)
	selector := guide.NewSelector(repo, logger)

	engine := grader.NewEngine(llmClient, repo, selector, grader.Options{
		CandidateModels: candidates,
		MaxSections:     graderCfg.Guide.MaxSections,
		MaxTokens:       graderCfg.Grading.MaxTokens,
		Temperature:     graderCfg.Grading.Temperature,
	}, logger)

	pipeline := executor.NewPipeline(ext, engine, logger)

	return &Dependencies{
		Pipeline:  pipeline,
		Grader:    engine,
		Extractor: ext,
		Guide:     repo,
		Logger:    logger,
	}, nil
}

// selectModels resolves the vision model and the grading candidate chain for
// the active provider. The vision model always grades last.
func selectModels(ctx context.Context, cfg *Config, graderCfg *config.Config, client llm.Client, logger *zerolog.Logger) (string, []string) {
	switch cfg.Provider {
	case "bedrock":
		return graderCfg.Extraction.PreferredModel, []string{cfg.ClaudeModelID}
	case "openai":
		return graderCfg.Extraction.PreferredModel, []string{cfg.OpenAIModelID}
	}

	visionModel, err := ollama.PickVisionModel(
		ctx,
		client,
		graderCfg.Extraction.PreferredModel,
		graderCfg.Extraction.FallbackModels,
		logger,
	)
	if err != nil {
		// Extraction will fail per call and degrade instead of aborting startup.
		logger.Warn().Err(err).Msg("vision model probe failed, image extraction may be unavailable")
		visionModel = graderCfg.Extraction.PreferredModel
	}

	candidates := make([]string, 0, len(graderCfg.Grading.CandidateModels)+1)
	candidates = append(candidates, graderCfg.Grading.CandidateModels...)
	candidates = append(candidates, visionModel)
	return visionModel, candidates
}

func createLLMClient(ctx context.Context, cfg *Config, logger *zerolog.Logger) (llm.Client, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama.NewClient(cfg.OllamaHost, 30*time.Second, logger)
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return ollama.NewClient(cfg.OllamaHost, 30*time.Second, logger)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
