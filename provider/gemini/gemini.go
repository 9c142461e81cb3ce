// Package gemini provides the PromptBuilder and ImageSynthesizer
// implementations using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/mhpenta/brandgen"
	"google.golang.org/genai"
)

// contentGenerator is the slice of *genai.Models the provider depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider implements brandgen.Provider using Google's Gemini API.
type Provider struct {
	models contentGenerator
	logger *slog.Logger
}

// Ensure Provider implements the interfaces.
var _ brandgen.Provider = (*Provider)(nil)

// Config configures the Gemini client.
type Config struct {
	// APIKey for authentication. When empty the SDK reads GOOGLE_API_KEY or GEMINI_API_KEY.
	APIKey string

	// BaseURL for custom endpoints (optional)
	BaseURL string

	Logger *slog.Logger
}

// New creates a Provider backed by a single genai client.
func New(ctx context.Context, config *Config) (*Provider, error) {
	if config == nil {
		config = &Config{}
	}

	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	}
	if config.APIKey != "" {
		clientCfg.APIKey = config.APIKey
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newProvider(client.Models, config.Logger), nil
}

// NewWithAPIKey creates a provider with an API key for Gemini API.
func NewWithAPIKey(ctx context.Context, apiKey string) (*Provider, error) {
	return New(ctx, &Config{APIKey: apiKey})
}

func newProvider(models contentGenerator, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{models: models, logger: logger}
}

// BuildPrompt asks the text model to turn spec into an image-generation prompt.
// The instructions are sent as the system instruction and the indented JSON
// spec as the only user message.
func (p *Provider) BuildPrompt(ctx context.Context, spec brandgen.Spec, instructions string, config *brandgen.PromptConfig) (string, error) {
	if err := brandgen.ValidateInstructions(instructions); err != nil {
		return "", err
	}
	if err := brandgen.ValidatePromptConfig(config); err != nil {
		return "", err
	}
	if config == nil {
		config = brandgen.DefaultPromptConfig()
	}

	userMessage, err := spec.UserMessage()
	if err != nil {
		return "", err
	}

	modelName := resolveModel(config.Model, APIModelGemini3Pro)
	if info, ok := LookupModel(modelName); ok {
		if err := info.CheckPromptConfig(config); err != nil {
			return "", err
		}
	}

	p.logger.Debug("sending prompt request", "model", modelName, "user_message_length", len(userMessage))

	contents := []*genai.Content{
		genai.NewContentFromText(userMessage, genai.RoleUser),
	}

	result, err := p.models.GenerateContent(ctx, modelName, contents, buildPromptConfig(instructions, config))
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return "", rlErr
		}
		return "", fmt.Errorf("prompt generation failed: %w", err)
	}

	prompt := strings.TrimSpace(responseText(result))
	if prompt == "" {
		return "", fmt.Errorf("model %s: %w", modelName, brandgen.ErrEmptyPrompt)
	}
	return prompt, nil
}

// Synthesize renders images from prompt and the reference images, requesting
// image-only output at the configured resolution and aspect ratio.
func (p *Provider) Synthesize(ctx context.Context, prompt string, refs []brandgen.ReferenceImage, config *brandgen.SynthesisConfig) (*brandgen.SynthesisResult, error) {
	if err := brandgen.ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if err := brandgen.ValidateSynthesisConfig(config); err != nil {
		return nil, err
	}
	for i, ref := range refs {
		if err := brandgen.ValidateReferenceImage(ref); err != nil {
			return nil, fmt.Errorf("reference %d: %w", i, err)
		}
	}
	if config == nil {
		config = brandgen.DefaultSynthesisConfig()
	}

	modelName := resolveModel(config.Model, APIModelNanoBananaPro)
	if info, ok := LookupModel(modelName); ok {
		if err := info.CheckSynthesisConfig(config, len(refs)); err != nil {
			return nil, err
		}
	}

	// Prompt first, then the references in order
	parts := make([]*genai.Part, 0, len(refs)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, ref := range refs {
		parts = append(parts, genai.NewPartFromBytes(ref.Data, ref.MIMEType))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	p.logger.Debug("sending image request",
		"model", modelName,
		"reference_count", len(refs),
		"resolution", config.Size.String(),
		"aspect_ratio", config.AspectRatio.String(),
	)

	result, err := p.models.GenerateContent(ctx, modelName, contents, buildSynthesisConfig(config))
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	genResult, err := parseResult(result)
	if err != nil {
		return nil, err
	}
	if len(genResult.Images) == 0 {
		p.logger.Error("no image returned in response parts", "model", modelName)
		return nil, brandgen.ErrNoImage
	}
	return genResult, nil
}

// Models returns the model definitions supported by this provider.
func (p *Provider) Models() []brandgen.ModelInfo {
	return Models()
}

// Close releases any resources held by the provider.
func (p *Provider) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// resolveModel maps a public or API model name to the API name, falling back to def.
func resolveModel(model brandgen.Model, def string) string {
	if model == "" {
		return def
	}
	if info, ok := LookupModel(string(model)); ok {
		return info.APIModelName
	}
	return string(model)
}

func buildPromptConfig(instructions string, config *brandgen.PromptConfig) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
	}

	if config.ThinkingLevel != "" {
		genConfig.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingLevel: genai.ThinkingLevel(strings.ToUpper(string(config.ThinkingLevel))),
		}
	}

	if config.EnableSearch {
		genConfig.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	return genConfig
}

func buildSynthesisConfig(config *brandgen.SynthesisConfig) *genai.GenerateContentConfig {
	imageConfig := &genai.ImageConfig{}
	if config.Size != "" {
		imageConfig.ImageSize = config.Size.String()
	}
	if config.AspectRatio != "" {
		imageConfig.AspectRatio = config.AspectRatio.String()
	}

	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig:        imageConfig,
	}
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0] == nil || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

// parseResult decodes every inline image across candidates in response order.
func parseResult(result *genai.GenerateContentResponse) (*brandgen.SynthesisResult, error) {
	if result == nil {
		return nil, errors.New("empty response from model")
	}

	genResult := &brandgen.SynthesisResult{
		Images: make([]brandgen.GeneratedImage, 0),
	}

	imageIndex := 0
	for _, candidate := range result.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}

			if part.Text != "" && !part.Thought {
				genResult.Text += part.Text
			}

			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}

			img, err := imaging.Decode(bytes.NewReader(part.InlineData.Data))
			if err != nil {
				return nil, fmt.Errorf("%w: part %d (%s): %v", brandgen.ErrDecodeImage, imageIndex, part.InlineData.MIMEType, err)
			}
			genResult.Images = append(genResult.Images, brandgen.GeneratedImage{
				Image:    img,
				MIMEType: part.InlineData.MIMEType,
				Index:    imageIndex,
			})
			imageIndex++
		}
	}

	if result.UsageMetadata != nil {
		genResult.UsageMetadata = &brandgen.UsageMetadata{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CandidatesTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
			ImageCount:       len(genResult.Images),
		}
	}

	return genResult, nil
}

// checkRateLimitError checks if an error from the Gemini API is a rate limit error.
// If so, it wraps it in a RateLimitError carrying the retry delay and quota
// reported in the error details; otherwise it returns nil.
func checkRateLimitError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	if apiErr.Code != 429 && apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}

	rlErr := &brandgen.RateLimitError{Model: model, Err: err}
	for _, detail := range apiErr.Details {
		kind, _ := detail["@type"].(string)
		switch {
		case strings.HasSuffix(kind, "google.rpc.RetryInfo"):
			if delay, ok := detail["retryDelay"].(string); ok {
				if d, err := time.ParseDuration(delay); err == nil {
					rlErr.RetryAfter = d
				}
			}
		case strings.HasSuffix(kind, "google.rpc.QuotaFailure"):
			rlErr.LimitType = quotaID(detail)
		}
	}
	return rlErr
}

// quotaID returns the first violated quota named in a QuotaFailure detail.
func quotaID(detail map[string]any) string {
	violations, _ := detail["violations"].([]any)
	for _, v := range violations {
		violation, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := violation["quotaId"].(string); ok && id != "" {
			return id
		}
		if metric, ok := violation["quotaMetric"].(string); ok && metric != "" {
			return metric
		}
	}
	return ""
}
