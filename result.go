package brandgen

import "image"

// GeneratedImage represents a single decoded image from a synthesis response.
type GeneratedImage struct {
	// Image is the decoded pixel data
	Image image.Image

	// MIMEType the model reported for the inline data
	MIMEType string

	// Index is the position in the response (0-indexed)
	Index int
}

// SynthesisResult holds the complete result of an image generation request.
//
// By contract the last image is the final render and every preceding image
// is an interim image produced while the model was thinking.
type SynthesisResult struct {
	// Images in response order
	Images []GeneratedImage

	// Text contains any text response from the model
	Text string

	// UsageMetadata contains token/billing information
	UsageMetadata *UsageMetadata
}

// Final returns the last image, or false when the result is empty.
func (r *SynthesisResult) Final() (GeneratedImage, bool) {
	if r == nil || len(r.Images) == 0 {
		return GeneratedImage{}, false
	}
	return r.Images[len(r.Images)-1], true
}

// Interim returns every image except the last.
func (r *SynthesisResult) Interim() []GeneratedImage {
	if r == nil || len(r.Images) < 2 {
		return nil
	}
	return r.Images[:len(r.Images)-1]
}

// UsageMetadata contains usage information for billing and monitoring.
type UsageMetadata struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
	ImageCount       int
}

// Report summarizes a pipeline run.
type Report struct {
	// Prompt is the prompt the images were generated from
	Prompt string

	// PromptPath is where the prompt was saved, empty if it was not saved
	PromptPath string

	// BaseName shared by every artifact of the batch
	BaseName string

	// Paths of the written images, interim first, final last
	Paths []string

	Usage *UsageMetadata
}
