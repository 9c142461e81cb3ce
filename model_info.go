package brandgen

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnsupportedFeature is returned when a request asks a model for something
// its catalog entry says it cannot do.
var ErrUnsupportedFeature = errors.New("model does not support requested feature")

// ModelCapabilities describes what features a model supports.
type ModelCapabilities struct {
	SupportsTextOutput  bool
	SupportsImageOutput bool
	SupportsMultiImage  bool // Multiple input images per request

	SupportsGrounding bool // Google Search grounding
	SupportsThinking  bool // Reasoning/thinking mode

	MaxInputImages int
}

// ImageConstraints defines supported image configurations for a model.
type ImageConstraints struct {
	SupportedAspectRatios []AspectRatio
	SupportedSizes        []ImageSize
}

// ModelInfo contains metadata for a remote model.
type ModelInfo struct {
	Name         string // Public model name (e.g., "nano-banana-pro")
	APIModelName string // Actual API name (e.g., "gemini-3-pro-image-preview")

	Capabilities     ModelCapabilities
	ImageConstraints ImageConstraints
}

// CheckPromptConfig reports whether the model can write a text prompt with
// cfg's thinking level and search grounding.
func (m ModelInfo) CheckPromptConfig(cfg *PromptConfig) error {
	if !m.Capabilities.SupportsTextOutput {
		return fmt.Errorf("%w: model %s does not produce text", ErrUnsupportedFeature, m.APIModelName)
	}
	if cfg == nil {
		return nil
	}
	if cfg.ThinkingLevel != "" && !m.Capabilities.SupportsThinking {
		return fmt.Errorf("%w: model %s has no thinking mode", ErrUnsupportedFeature, m.APIModelName)
	}
	if cfg.EnableSearch && !m.Capabilities.SupportsGrounding {
		return fmt.Errorf("%w: model %s has no search grounding", ErrUnsupportedFeature, m.APIModelName)
	}
	return nil
}

// CheckSynthesisConfig reports whether the model accepts cfg's size, aspect
// ratio and reference image count.
func (m ModelInfo) CheckSynthesisConfig(cfg *SynthesisConfig, refCount int) error {
	if !m.Capabilities.SupportsImageOutput {
		return fmt.Errorf("%w: model %s does not produce images", ErrUnsupportedFeature, m.APIModelName)
	}
	if cfg != nil {
		sizes := m.ImageConstraints.SupportedSizes
		if cfg.Size != "" && len(sizes) > 0 && !slices.Contains(sizes, cfg.Size) {
			return fmt.Errorf("%w: %s for model %s", ErrInvalidImageSize, cfg.Size, m.APIModelName)
		}
		ratios := m.ImageConstraints.SupportedAspectRatios
		if cfg.AspectRatio != "" && len(ratios) > 0 && !slices.Contains(ratios, cfg.AspectRatio) {
			return fmt.Errorf("%w: %s for model %s", ErrInvalidAspectRatio, cfg.AspectRatio, m.APIModelName)
		}
	}
	if refCount > 1 && !m.Capabilities.SupportsMultiImage {
		return fmt.Errorf("%w: model %s takes a single input image", ErrReferenceCount, m.APIModelName)
	}
	if limit := m.Capabilities.MaxInputImages; limit > 0 && refCount > limit {
		return fmt.Errorf("%w: %d (max %d)", ErrReferenceCount, refCount, limit)
	}
	return nil
}
