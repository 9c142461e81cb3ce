package brandgen

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// MockPromptBuilder is a mock implementation of PromptBuilder.
type MockPromptBuilder struct {
	BuildPromptFunc func(ctx context.Context, spec Spec, instructions string, cfg *PromptConfig) (string, error)
	Calls           int
}

func (m *MockPromptBuilder) BuildPrompt(ctx context.Context, spec Spec, instructions string, cfg *PromptConfig) (string, error) {
	m.Calls++
	if m.BuildPromptFunc != nil {
		return m.BuildPromptFunc(ctx, spec, instructions, cfg)
	}
	return "mock prompt", nil
}

// MockImageSynthesizer is a mock implementation of ImageSynthesizer.
type MockImageSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, prompt string, refs []ReferenceImage, cfg *SynthesisConfig) (*SynthesisResult, error)
	Calls          int
}

func (m *MockImageSynthesizer) Synthesize(ctx context.Context, prompt string, refs []ReferenceImage, cfg *SynthesisConfig) (*SynthesisResult, error) {
	m.Calls++
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, prompt, refs, cfg)
	}
	return &SynthesisResult{Images: fakeImages(1)}, nil
}

// fakeImages returns n decoded images whose widths are 1..n, so order can be checked after a round trip.
func fakeImages(n int) []GeneratedImage {
	images := make([]GeneratedImage, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, GeneratedImage{
			Image:    imaging.New(i+1, 1, color.NRGBA{R: 0xff, A: 0xff}),
			MIMEType: "image/png",
			Index:    i,
		})
	}
	return images
}

// writeImage encodes img to path, creating parent directories.
func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// touch creates an empty file at dir/name.
func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

// pngNames lists the *.png entries of dir.
func pngNames(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	return matches
}
