package config

// Config represents the complete grader configuration
type Config struct {
	Guide      GuideConfig      `yaml:"guide"`
	Grading    GradingConfig    `yaml:"grading"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// GuideConfig locates the reference guide images and bounds context selection
type GuideConfig struct {
	Folder      string `yaml:"folder"`
	MaxSections int    `yaml:"max_sections"`
}

// GradingConfig drives the grading model fallback chain and its sampling
type GradingConfig struct {
	CandidateModels []string `yaml:"candidate_models"`
	MaxTokens       int      `yaml:"max_tokens"`
	Temperature     float64  `yaml:"temperature"`
}

// ExtractionConfig drives vision model selection and OCR sampling
type ExtractionConfig struct {
	PreferredModel string   `yaml:"preferred_model"`
	FallbackModels []string `yaml:"fallback_models"`
	MaxTokens      int      `yaml:"max_tokens"`
	Temperature    float64  `yaml:"temperature"`
}
