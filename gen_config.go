package brandgen

import (
	"strings"
)

// Model represents a remote model identifier.
type Model string

// Default model identifiers.
const (
	ModelPromptDefault Model = "gemini-3-pro-preview"
	ModelImageDefault  Model = "gemini-3-pro-image-preview"
)

// ImageSize represents the output resolution for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio2x3  AspectRatio = "2:3"  // Photo portrait
	AspectRatio3x2  AspectRatio = "3:2"  // Photo landscape (35mm film ratio)
	AspectRatio4x5  AspectRatio = "4:5"  // Instagram portrait
	AspectRatio5x4  AspectRatio = "5:4"  // Large format photo
	AspectRatio21x9 AspectRatio = "21:9" // Ultrawide/cinematic
)

// ThinkingLevel is the reasoning effort hint passed to the text model.
type ThinkingLevel string

const (
	ThinkingLevelLow  ThinkingLevel = "low"
	ThinkingLevelHigh ThinkingLevel = "high"
)

// PromptConfig holds options for the prompt-building call.
type PromptConfig struct {
	// Model to use for prompt generation
	Model Model

	// ThinkingLevel controls how much reasoning the model spends before answering
	ThinkingLevel ThinkingLevel

	// EnableSearch declares Google Search grounding as an available tool
	EnableSearch bool
}

// SynthesisConfig holds options for the image-generation call.
type SynthesisConfig struct {
	// Model to use for image generation
	Model Model

	// Size of the output image (1K, 2K, 4K)
	Size ImageSize

	// AspectRatio of the output image
	AspectRatio AspectRatio
}

// DefaultPromptConfig returns the prompt configuration used by the original workflow.
func DefaultPromptConfig() *PromptConfig {
	return &PromptConfig{
		Model:         ModelPromptDefault,
		ThinkingLevel: ThinkingLevelHigh,
		EnableSearch:  true,
	}
}

// DefaultSynthesisConfig returns a 2K, 16:9 configuration for the default image model.
func DefaultSynthesisConfig() *SynthesisConfig {
	return &SynthesisConfig{
		Model:       ModelImageDefault,
		Size:        ImageSize2K,
		AspectRatio: AspectRatio16x9,
	}
}

// WithModel returns a copy of the config with the specified model.
func (c *PromptConfig) WithModel(model Model) *PromptConfig {
	if c == nil {
		c = DefaultPromptConfig()
	}
	cX := *c
	cX.Model = model
	return &cX
}

// WithModel returns a copy of the config with the specified model.
func (c *SynthesisConfig) WithModel(model Model) *SynthesisConfig {
	if c == nil {
		c = DefaultSynthesisConfig()
	}
	cX := *c
	cX.Model = model
	return &cX
}

// ReferenceImage is a decoded, NRGBA-normalized input image ready for transmission.
type ReferenceImage struct {
	// Path the image was loaded from
	Path string

	// Data holds the re-encoded PNG bytes
	Data []byte

	// MIMEType of Data, always "image/png" for loaded references
	MIMEType string

	Width  int
	Height int
}

func (s ImageSize) String() string {
	return string(s)
}

func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}

// String returns the lower-case level name.
func (l ThinkingLevel) String() string {
	return strings.ToLower(string(l))
}
