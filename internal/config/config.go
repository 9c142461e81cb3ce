// Package config loads runtime settings for the brandgen CLI from the
// environment. Command-line flags override these values.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhpenta/brandgen"
	"github.com/shouni/go-utils/envutil"
)

// Default values.
const (
	DefaultPromptModel      = string(brandgen.ModelPromptDefault)
	DefaultImageModel       = string(brandgen.ModelImageDefault)
	DefaultImageSize        = string(brandgen.ImageSize2K)
	DefaultAspectRatio      = string(brandgen.AspectRatio16x9)
	DefaultThinkingLevel    = string(brandgen.ThinkingLevelHigh)
	DefaultInstructionsFile = "meta_image_prompt.md"
	DefaultOutputDir        = "outputs"
	DefaultRefImage1        = "hyperfinity_logo_dark.png"
	DefaultRefImage2        = "hyperfinity_template.png"
	DefaultTimeout          = 10 * time.Minute
)

// Config holds environment-level settings.
type Config struct {
	GeminiAPIKey     string
	PromptModel      string
	ImageModel       string
	ImageSize        string
	AspectRatio      string
	ThinkingLevel    string
	InstructionsFile string
	OutputDir        string
	BasePrefix       string
}

// LoadConfig reads the environment, falling back to defaults.
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		PromptModel:      getEnv("PROMPT_GEMINI_MODEL", DefaultPromptModel),
		ImageModel:       getEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		ImageSize:        getEnv("IMAGE_SIZE", DefaultImageSize),
		AspectRatio:      getEnv("IMAGE_ASPECT_RATIO", DefaultAspectRatio),
		ThinkingLevel:    getEnv("THINKING_LEVEL", DefaultThinkingLevel),
		InstructionsFile: getEnv("INSTRUCTIONS_FILE", DefaultInstructionsFile),
		OutputDir:        getEnv("OUTPUT_DIR", DefaultOutputDir),
		BasePrefix:       getEnv("OUTPUT_BASE_PREFIX", brandgen.DefaultBasePrefix),
	}
}

// getEnv is envutil.GetEnv that also treats a set-but-empty variable as unset.
func getEnv(key, def string) string {
	if v := strings.TrimSpace(envutil.GetEnv(key, "")); v != "" {
		return v
	}
	return def
}

// GenerateOptions are the per-run parameters supplied on the command line.
type GenerateOptions struct {
	// Inputs
	Client           string   // --client
	SpecFile         string   // --spec
	InstructionsFile string   // --instructions
	PromptFile       string   // --prompt-file (image stage input)
	ReferenceImages  []string // --ref

	// Outputs
	OutputDir  string // --output-dir
	BaseName   string // --base-name
	PromptOut  string // --prompt-out
	BasePrefix string // --base-prefix

	// Model behaviour
	PromptModel   string // --model
	ImageModel    string // --image-model
	ImageSize     string // --size
	AspectRatio   string // --aspect-ratio
	ThinkingLevel string // --thinking-level
	NoSearch      bool   // --no-search

	// Execution control
	Timeout time.Duration // --timeout
	Verbose bool          // --verbose
}

// ApplyDefaults fills options left empty from cfg and derives the
// per-client file names.
func (o *GenerateOptions) ApplyDefaults(cfg *Config) {
	if o.InstructionsFile == "" {
		o.InstructionsFile = cfg.InstructionsFile
	}
	if o.OutputDir == "" {
		o.OutputDir = cfg.OutputDir
	}
	if o.BasePrefix == "" {
		o.BasePrefix = cfg.BasePrefix
	}
	if o.PromptModel == "" {
		o.PromptModel = cfg.PromptModel
	}
	if o.ImageModel == "" {
		o.ImageModel = cfg.ImageModel
	}
	if o.ImageSize == "" {
		o.ImageSize = cfg.ImageSize
	}
	if o.AspectRatio == "" {
		o.AspectRatio = cfg.AspectRatio
	}
	if o.ThinkingLevel == "" {
		o.ThinkingLevel = cfg.ThinkingLevel
	}
	if len(o.ReferenceImages) == 0 {
		o.ReferenceImages = []string{DefaultRefImage1, DefaultRefImage2}
	}
	if o.Client != "" {
		if o.SpecFile == "" {
			o.SpecFile = SpecFileFor(o.Client)
		}
		if o.PromptOut == "" {
			o.PromptOut = PromptFileFor(o.Client)
		}
		if o.PromptFile == "" {
			o.PromptFile = PromptFileFor(o.Client)
		}
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
}

// PromptConfig converts the options into a prompt-stage config.
func (o *GenerateOptions) PromptConfig() *brandgen.PromptConfig {
	cfg := brandgen.DefaultPromptConfig()
	if o.PromptModel != "" {
		cfg = cfg.WithModel(brandgen.Model(o.PromptModel))
	}
	if o.ThinkingLevel != "" {
		cfg.ThinkingLevel = brandgen.ThinkingLevel(o.ThinkingLevel)
	}
	cfg.EnableSearch = !o.NoSearch
	return cfg
}

// SynthesisConfig converts the options into an image-stage config.
func (o *GenerateOptions) SynthesisConfig() *brandgen.SynthesisConfig {
	cfg := brandgen.DefaultSynthesisConfig()
	if o.ImageModel != "" {
		cfg = cfg.WithModel(brandgen.Model(o.ImageModel))
	}
	if o.ImageSize != "" {
		cfg.Size = brandgen.ImageSize(o.ImageSize)
	}
	if o.AspectRatio != "" {
		cfg.AspectRatio = brandgen.AspectRatio(o.AspectRatio)
	}
	return cfg
}

// SpecFileFor returns the conventional spec file name for a client.
func SpecFileFor(client string) string {
	return fmt.Sprintf("abm-pack-%s.json", client)
}

// PromptFileFor returns the conventional prompt file name for a client.
func PromptFileFor(client string) string {
	return fmt.Sprintf("%s_image_prompt.txt", client)
}
