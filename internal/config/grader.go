package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadGraderConfig() (*Config, error) {
	path := os.Getenv("GRADER_CONFIG_PATH")
	if path == "" {
		path = "configs/grader.yaml"
	}

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No config file: run with defaults.
		applyDefaults(&cfg)
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Guide.Folder == "" {
		cfg.Guide.Folder = "guide"
	}
	if cfg.Guide.MaxSections == 0 {
		cfg.Guide.MaxSections = 2
	}
	if len(cfg.Grading.CandidateModels) == 0 {
		cfg.Grading.CandidateModels = []string{"llama3.2:3b", "mistral:7b-instruct", "llama2:latest"}
	}
	if cfg.Grading.MaxTokens == 0 {
		cfg.Grading.MaxTokens = 200
	}
	if cfg.Grading.Temperature == 0 {
		cfg.Grading.Temperature = 0.2
	}
	if cfg.Extraction.PreferredModel == "" {
		cfg.Extraction.PreferredModel = "minicpm-v:latest"
	}
	if len(cfg.Extraction.FallbackModels) == 0 {
		cfg.Extraction.FallbackModels = []string{"llava:latest", "minicpm-v:latest", "llava", "minicpm-v"}
	}
	if cfg.Extraction.MaxTokens == 0 {
		cfg.Extraction.MaxTokens = 2048
	}
	if cfg.Extraction.Temperature == 0 {
		cfg.Extraction.Temperature = 0.1
	}
}

func (c *Config) Validate() error {
	if c.Guide.MaxSections < 1 {
		return fmt.Errorf("guide.max_sections must be positive, got %d", c.Guide.MaxSections)
	}
	if c.Grading.MaxTokens < 1 {
		return fmt.Errorf("grading.max_tokens must be positive, got %d", c.Grading.MaxTokens)
	}
	return nil
}
