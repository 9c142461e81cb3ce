package brandgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validation errors
var (
	ErrEmptyPrompt          = errors.New("prompt cannot be empty")
	ErrEmptyImageData       = errors.New("image data cannot be empty")
	ErrInvalidMIMEType      = errors.New("invalid or unsupported MIME type")
	ErrImageTooLarge        = errors.New("image data exceeds maximum size")
	ErrReferenceCount       = errors.New("wrong number of reference images")
	ErrInvalidImageSize     = errors.New("unsupported image size")
	ErrInvalidAspectRatio   = errors.New("unsupported aspect ratio")
	ErrInvalidThinkingLevel = errors.New("unsupported thinking level")
)

const (
	// MaxImageSize is the maximum allowed image size in bytes (20MB)
	MaxImageSize = 20 * 1024 * 1024

	// ReferenceImageCount is the number of reference images each synthesis call carries.
	ReferenceImageCount = 2
)

// ValidMIMETypes contains the supported image MIME types
var ValidMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// SupportedImageSizes lists the resolutions the image model accepts.
var SupportedImageSizes = []ImageSize{ImageSize1K, ImageSize2K, ImageSize4K}

// SupportedAspectRatios lists the aspect ratios the image model accepts.
var SupportedAspectRatios = []AspectRatio{
	AspectRatio1x1,
	AspectRatio16x9,
	AspectRatio9x16,
	AspectRatio4x3,
	AspectRatio3x4,
	AspectRatio2x3,
	AspectRatio3x2,
	AspectRatio4x5,
	AspectRatio5x4,
	AspectRatio21x9,
}

// ValidatePrompt validates a text prompt.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateInstructions validates the system instruction template.
func ValidateInstructions(instructions string) error {
	if strings.TrimSpace(instructions) == "" {
		return ErrEmptyInstructions
	}
	return nil
}

// ValidateReferenceImage validates a loaded reference image.
func ValidateReferenceImage(img ReferenceImage) error {
	if len(img.Data) == 0 {
		return ErrEmptyImageData
	}

	if len(img.Data) > MaxImageSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(img.Data), MaxImageSize)
	}

	if img.MIMEType == "" {
		return fmt.Errorf("%w: MIME type is required", ErrInvalidMIMEType)
	}

	if !ValidMIMETypes[img.MIMEType] {
		return fmt.Errorf("%w: %s", ErrInvalidMIMEType, img.MIMEType)
	}

	return nil
}

// ValidateReferenceImages checks that exactly ReferenceImageCount valid images are present.
func ValidateReferenceImages(images []ReferenceImage) error {
	if len(images) != ReferenceImageCount {
		return fmt.Errorf("%w: %d (want %d)", ErrReferenceCount, len(images), ReferenceImageCount)
	}

	for i, img := range images {
		if err := ValidateReferenceImage(img); err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}
	}

	return nil
}

// ValidatePromptConfig checks the enumerated prompt options.
func ValidatePromptConfig(cfg *PromptConfig) error {
	if cfg == nil {
		return nil
	}
	switch cfg.ThinkingLevel {
	case "", ThinkingLevelLow, ThinkingLevelHigh:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidThinkingLevel, cfg.ThinkingLevel)
}

// ValidateSynthesisConfig checks the resolution and aspect ratio against the supported sets.
func ValidateSynthesisConfig(cfg *SynthesisConfig) error {
	if cfg == nil {
		return nil
	}
	if cfg.Size != "" && !slices.Contains(SupportedImageSizes, cfg.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidImageSize, cfg.Size)
	}
	if cfg.AspectRatio != "" && !slices.Contains(SupportedAspectRatios, cfg.AspectRatio) {
		return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, cfg.AspectRatio)
	}
	return nil
}
