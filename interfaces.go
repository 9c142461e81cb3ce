package brandgen

import "context"

// PromptBuilder turns a brand spec into an image-generation prompt using a text model.
type PromptBuilder interface {
	// BuildPrompt sends the instructions and the serialized spec to the model
	// and returns the trimmed text response.
	BuildPrompt(ctx context.Context, spec Spec, instructions string, cfg *PromptConfig) (string, error)
}

// ImageSynthesizer renders images from a prompt and reference images.
type ImageSynthesizer interface {
	// Synthesize issues one generation request and returns every image in
	// response order. An empty response is reported as ErrNoImage.
	Synthesize(ctx context.Context, prompt string, refs []ReferenceImage, cfg *SynthesisConfig) (*SynthesisResult, error)
}

// Provider bundles both model capabilities behind a single client handle.
type Provider interface {
	PromptBuilder
	ImageSynthesizer

	// Close releases any resources held by the provider.
	Close() error
}
