package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGraderConfigDefaults(t *testing.T) {
	t.Setenv("GRADER_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadGraderConfig()
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}

	if cfg.Guide.Folder != "guide" {
		t.Errorf("expected default guide folder, got %q", cfg.Guide.Folder)
	}
	if cfg.Guide.MaxSections != 2 {
		t.Errorf("expected default max sections 2, got %d", cfg.Guide.MaxSections)
	}
	want := []string{"llama3.2:3b", "mistral:7b-instruct", "llama2:latest"}
	if len(cfg.Grading.CandidateModels) != len(want) {
		t.Fatalf("unexpected candidate models %v", cfg.Grading.CandidateModels)
	}
	for i, m := range want {
		if cfg.Grading.CandidateModels[i] != m {
			t.Errorf("candidate %d: expected %q, got %q", i, m, cfg.Grading.CandidateModels[i])
		}
	}
	if cfg.Grading.MaxTokens != 200 || cfg.Grading.Temperature != 0.2 {
		t.Errorf("unexpected grading sampling: %+v", cfg.Grading)
	}
	if cfg.Extraction.PreferredModel != "minicpm-v:latest" {
		t.Errorf("unexpected preferred extraction model %q", cfg.Extraction.PreferredModel)
	}
	if cfg.Extraction.MaxTokens != 2048 || cfg.Extraction.Temperature != 0.1 {
		t.Errorf("unexpected extraction sampling: %+v", cfg.Extraction)
	}
}

func TestLoadGraderConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grader.yaml")
	content := `guide:
  folder: /data/reference
  max_sections: 3
grading:
  candidate_models:
    - llama3.2:3b
  max_tokens: 150
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADER_CONFIG_PATH", path)

	cfg, err := LoadGraderConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Guide.Folder != "/data/reference" {
		t.Errorf("expected configured folder, got %q", cfg.Guide.Folder)
	}
	if cfg.Guide.MaxSections != 3 {
		t.Errorf("expected configured max sections, got %d", cfg.Guide.MaxSections)
	}
	if len(cfg.Grading.CandidateModels) != 1 || cfg.Grading.CandidateModels[0] != "llama3.2:3b" {
		t.Errorf("unexpected candidates %v", cfg.Grading.CandidateModels)
	}
	if cfg.Grading.MaxTokens != 150 {
		t.Errorf("expected configured max tokens, got %d", cfg.Grading.MaxTokens)
	}
	// Untouched fields keep defaults.
	if cfg.Grading.Temperature != 0.2 {
		t.Errorf("expected default temperature, got %f", cfg.Grading.Temperature)
	}
	if cfg.Extraction.PreferredModel != "minicpm-v:latest" {
		t.Errorf("expected default extraction model, got %q", cfg.Extraction.PreferredModel)
	}
}

func TestLoadGraderConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grader.yaml")
	content := `guide:
  max_sections: -1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADER_CONFIG_PATH", path)

	if _, err := LoadGraderConfig(); err == nil {
		t.Fatal("expected a validation error for negative max_sections")
	}
}

func TestLoadGraderConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grader.yaml")
	if err := os.WriteFile(path, []byte("guide: [not: closed"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADER_CONFIG_PATH", path)

	if _, err := LoadGraderConfig(); err == nil {
		t.Fatal("expected a parse error for malformed yaml")
	}
}
