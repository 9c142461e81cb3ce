package config

import (
	"testing"

	"github.com/mhpenta/brandgen"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PROMPT_GEMINI_MODEL", "IMAGE_GEMINI_MODEL", "IMAGE_SIZE", "IMAGE_ASPECT_RATIO", "THINKING_LEVEL", "OUTPUT_DIR"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, DefaultPromptModel, cfg.PromptModel)
	assert.Equal(t, DefaultImageModel, cfg.ImageModel)
	assert.Equal(t, "2K", cfg.ImageSize)
	assert.Equal(t, "16:9", cfg.AspectRatio)
	assert.Equal(t, "high", cfg.ThinkingLevel)
	assert.Equal(t, "outputs", cfg.OutputDir)
}

func TestLoadConfig_EmptyValuesFallBack(t *testing.T) {
	tests := []struct {
		key  string
		got  func(*Config) string
		want string
	}{
		{key: "IMAGE_SIZE", got: func(c *Config) string { return c.ImageSize }, want: DefaultImageSize},
		{key: "IMAGE_ASPECT_RATIO", got: func(c *Config) string { return c.AspectRatio }, want: DefaultAspectRatio},
		{key: "THINKING_LEVEL", got: func(c *Config) string { return c.ThinkingLevel }, want: DefaultThinkingLevel},
		{key: "OUTPUT_DIR", got: func(c *Config) string { return c.OutputDir }, want: DefaultOutputDir},
		{key: "INSTRUCTIONS_FILE", got: func(c *Config) string { return c.InstructionsFile }, want: DefaultInstructionsFile},
		{key: "OUTPUT_BASE_PREFIX", got: func(c *Config) string { return c.BasePrefix }, want: brandgen.DefaultBasePrefix},
	}

	for _, tt := range tests {
		for _, value := range []string{"", "  "} {
			t.Run(tt.key+"="+value, func(t *testing.T) {
				t.Setenv(tt.key, value)
				assert.Equal(t, tt.want, tt.got(LoadConfig()))
			})
		}
	}
}

func TestGenerateOptions_EmptyEnvironmentKeepsHighThinking(t *testing.T) {
	t.Setenv("THINKING_LEVEL", "")

	opts := &GenerateOptions{}
	opts.ApplyDefaults(LoadConfig())

	assert.Equal(t, brandgen.ThinkingLevelHigh, opts.PromptConfig().ThinkingLevel)
	assert.Equal(t, DefaultOutputDir, opts.OutputDir)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("IMAGE_SIZE", "4K")
	t.Setenv("IMAGE_ASPECT_RATIO", "1:1")
	t.Setenv("OUTPUT_DIR", "/tmp/renders")

	cfg := LoadConfig()
	assert.Equal(t, "4K", cfg.ImageSize)
	assert.Equal(t, "1:1", cfg.AspectRatio)
	assert.Equal(t, "/tmp/renders", cfg.OutputDir)
}

func TestGenerateOptions_ApplyDefaults(t *testing.T) {
	cfg := &Config{
		PromptModel:      "p",
		ImageModel:       "i",
		ImageSize:        "2K",
		AspectRatio:      "16:9",
		ThinkingLevel:    "high",
		InstructionsFile: "meta.md",
		OutputDir:        "outputs",
		BasePrefix:       "gemini_image",
	}

	opts := &GenerateOptions{Client: "adidas", ImageSize: "4K"}
	opts.ApplyDefaults(cfg)

	assert.Equal(t, "abm-pack-adidas.json", opts.SpecFile)
	assert.Equal(t, "adidas_image_prompt.txt", opts.PromptOut)
	assert.Equal(t, "adidas_image_prompt.txt", opts.PromptFile)
	assert.Equal(t, "4K", opts.ImageSize, "flag value must win over environment")
	assert.Equal(t, "16:9", opts.AspectRatio)
	assert.Equal(t, "meta.md", opts.InstructionsFile)
	assert.Equal(t, []string{DefaultRefImage1, DefaultRefImage2}, opts.ReferenceImages)
	assert.Equal(t, DefaultTimeout, opts.Timeout)
}

func TestGenerateOptions_Configs(t *testing.T) {
	opts := &GenerateOptions{
		PromptModel:   "gemini-3-pro-preview",
		ThinkingLevel: "low",
		NoSearch:      true,
		ImageModel:    "gemini-3-pro-image-preview",
		ImageSize:     "1K",
		AspectRatio:   "4:3",
	}

	pc := opts.PromptConfig()
	assert.Equal(t, brandgen.Model("gemini-3-pro-preview"), pc.Model)
	assert.Equal(t, brandgen.ThinkingLevelLow, pc.ThinkingLevel)
	assert.False(t, pc.EnableSearch)

	sc := opts.SynthesisConfig()
	assert.Equal(t, brandgen.Model("gemini-3-pro-image-preview"), sc.Model)
	assert.Equal(t, brandgen.ImageSize1K, sc.Size)
	assert.Equal(t, brandgen.AspectRatio4x3, sc.AspectRatio)
	assert.NoError(t, brandgen.ValidateSynthesisConfig(sc))
}

func TestGenerateOptions_ConfigsFallBackToDefaults(t *testing.T) {
	opts := &GenerateOptions{}

	pc := opts.PromptConfig()
	assert.Equal(t, brandgen.ModelPromptDefault, pc.Model)
	assert.Equal(t, brandgen.ThinkingLevelHigh, pc.ThinkingLevel)
	assert.True(t, pc.EnableSearch)

	sc := opts.SynthesisConfig()
	assert.Equal(t, brandgen.ModelImageDefault, sc.Model)
	assert.Equal(t, brandgen.ImageSize2K, sc.Size)
	assert.Equal(t, brandgen.AspectRatio16x9, sc.AspectRatio)
}
