package brandgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrProviderNotConfigured is returned when a pipeline stage has no backing provider.
var ErrProviderNotConfigured = errors.New("provider not configured")

// Job describes one spec-to-image run.
type Job struct {
	// Spec is forwarded verbatim to the prompt model
	Spec Spec

	// Instructions are the system-level guidance for the prompt model
	Instructions string

	// ReferencePaths are the two reference images, in request order
	ReferencePaths []string

	// OutputDir receives the interim and final images
	OutputDir string

	// BaseName overrides the allocated batch name when set
	BaseName string

	// PromptPath, when set, receives the generated prompt text
	PromptPath string

	PromptConfig    *PromptConfig
	SynthesisConfig *SynthesisConfig
}

// Pipeline runs the prompt and image stages strictly in sequence.
type Pipeline struct {
	prompts PromptBuilder
	images  ImageSynthesizer

	// Logger for structured logging
	logger *slog.Logger

	// Storage for the prompt text and generated images
	storage Storage

	// Prefix for allocated batch names
	basePrefix string
}

// New creates a Pipeline with local storage and the default logger.
func New(prompts PromptBuilder, images ImageSynthesizer) *Pipeline {
	return &Pipeline{
		prompts:    prompts,
		images:     images,
		logger:     slog.Default(),
		storage:    NewLocalStorage(),
		basePrefix: DefaultBasePrefix,
	}
}

// Run builds a prompt from the job's spec, renders images from it and
// persists them. Nothing is written to OutputDir unless synthesis returns
// at least one image.
func (p *Pipeline) Run(ctx context.Context, job Job) (*Report, error) {
	if err := p.validateJob(job); err != nil {
		return nil, err
	}

	prompt, promptPath, err := p.buildPrompt(ctx, job)
	if err != nil {
		return nil, err
	}

	report, err := p.synthesize(ctx, prompt, job)
	if err != nil {
		return nil, err
	}
	report.PromptPath = promptPath
	return report, nil
}

// RunFromPrompt skips prompt building and renders images from an existing prompt.
func (p *Pipeline) RunFromPrompt(ctx context.Context, prompt string, job Job) (*Report, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if err := ValidateSynthesisConfig(job.SynthesisConfig); err != nil {
		return nil, err
	}
	if len(job.ReferencePaths) != ReferenceImageCount {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrReferenceCount, len(job.ReferencePaths), ReferenceImageCount)
	}
	return p.synthesize(ctx, prompt, job)
}

// BuildPrompt runs the prompt stage only and saves the prompt when job.PromptPath is set.
func (p *Pipeline) BuildPrompt(ctx context.Context, job Job) (string, error) {
	if err := ValidateInstructions(job.Instructions); err != nil {
		return "", err
	}
	if err := ValidatePromptConfig(job.PromptConfig); err != nil {
		return "", err
	}
	prompt, _, err := p.buildPrompt(ctx, job)
	return prompt, err
}

func (p *Pipeline) validateJob(job Job) error {
	if err := ValidateInstructions(job.Instructions); err != nil {
		return err
	}
	if err := ValidatePromptConfig(job.PromptConfig); err != nil {
		return err
	}
	if err := ValidateSynthesisConfig(job.SynthesisConfig); err != nil {
		return err
	}
	if len(job.ReferencePaths) != ReferenceImageCount {
		return fmt.Errorf("%w: %d (want %d)", ErrReferenceCount, len(job.ReferencePaths), ReferenceImageCount)
	}
	return nil
}

func (p *Pipeline) buildPrompt(ctx context.Context, job Job) (string, string, error) {
	if p.prompts == nil {
		return "", "", fmt.Errorf("%w: prompt builder", ErrProviderNotConfigured)
	}

	cfg := job.PromptConfig
	if cfg == nil {
		cfg = DefaultPromptConfig()
	}

	start := time.Now()
	p.logger.Info("building image prompt",
		"model", cfg.Model.String(),
		"thinking_level", cfg.ThinkingLevel.String(),
		"search", cfg.EnableSearch,
	)

	prompt, err := p.prompts.BuildPrompt(ctx, job.Spec, job.Instructions, cfg)
	duration := time.Since(start)
	if err != nil {
		p.logger.Error("prompt generation failed",
			"model", cfg.Model.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return "", "", err
	}

	p.logger.Info("prompt generation completed",
		"model", cfg.Model.String(),
		"duration_ms", duration.Milliseconds(),
		"prompt_length", len(prompt),
	)

	if job.PromptPath == "" {
		return prompt, "", nil
	}

	saved, err := SavePrompt(ctx, p.storage, job.PromptPath, prompt)
	if err != nil {
		return "", "", err
	}
	p.logger.Info("saved image prompt", "path", saved)
	return prompt, saved, nil
}

func (p *Pipeline) synthesize(ctx context.Context, prompt string, job Job) (*Report, error) {
	if p.images == nil {
		return nil, fmt.Errorf("%w: image synthesizer", ErrProviderNotConfigured)
	}

	cfg := job.SynthesisConfig
	if cfg == nil {
		cfg = DefaultSynthesisConfig()
	}

	refs, err := LoadReferenceImages(job.ReferencePaths)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p.logger.Info("generating image",
		"model", cfg.Model.String(),
		"resolution", cfg.Size.String(),
		"aspect_ratio", cfg.AspectRatio.String(),
		"prompt_preview", preview(prompt, 50),
	)

	result, err := p.images.Synthesize(ctx, prompt, refs, cfg)
	duration := time.Since(start)
	if err == nil && (result == nil || len(result.Images) == 0) {
		err = ErrNoImage
	}
	if err != nil {
		p.logger.Error("image generation failed",
			"model", cfg.Model.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	logAttrs := []any{
		"model", cfg.Model.String(),
		"duration_ms", duration.Milliseconds(),
		"image_count", len(result.Images),
	}
	if result.UsageMetadata != nil {
		logAttrs = append(logAttrs,
			"prompt_tokens", result.UsageMetadata.PromptTokens,
			"response_tokens", result.UsageMetadata.CandidatesTokens,
			"total_tokens", result.UsageMetadata.TotalTokens,
		)
	}
	p.logger.Info("image generation completed", logAttrs...)

	base := job.BaseName
	if base == "" {
		base, err = NextBaseName(job.OutputDir, p.basePrefix)
		if err != nil {
			return nil, err
		}
	}

	paths, err := Persist(ctx, p.storage, result.Images, job.OutputDir, base)
	for _, path := range paths {
		p.logger.Info("saved image", "path", path)
	}
	if err != nil {
		p.logger.Error("saving images failed",
			"base_name", base,
			"saved", len(paths),
			"error", err.Error(),
		)
		return nil, err
	}

	return &Report{
		Prompt:   prompt,
		BaseName: base,
		Paths:    paths,
		Usage:    result.UsageMetadata,
	}, nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
