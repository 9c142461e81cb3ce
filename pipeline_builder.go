package brandgen

import (
	"log/slog"
)

// PipelineOption configures the Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets a structured logger for the pipeline.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStorage sets the backend that receives the prompt and image artifacts.
func WithStorage(storage Storage) PipelineOption {
	return func(p *Pipeline) {
		p.storage = storage
	}
}

// WithBasePrefix sets the stem used when allocating batch names.
func WithBasePrefix(prefix string) PipelineOption {
	return func(p *Pipeline) {
		if prefix != "" {
			p.basePrefix = prefix
		}
	}
}

// NewPipeline creates a Pipeline backed by a single provider and options.
//
// Example:
//
//	provider, err := gemini.NewWithAPIKey(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//	pipeline := brandgen.NewPipeline(provider,
//	    brandgen.WithLogger(slog.Default()),
//	)
func NewPipeline(provider Provider, opts ...PipelineOption) *Pipeline {
	var p *Pipeline
	if provider == nil {
		p = New(nil, nil)
	} else {
		p = New(provider, provider)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}
