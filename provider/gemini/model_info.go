package gemini

import "github.com/mhpenta/brandgen"

// Model name constants - the actual API model names.
const (
	// APIModelGemini3Pro is the text model used to write image prompts.
	APIModelGemini3Pro = "gemini-3-pro-preview"

	// APIModelNanoBananaPro is the actual API name for Gemini 3 Pro Image.
	APIModelNanoBananaPro = "gemini-3-pro-image-preview"

	// APIModelNanoBanana is the actual API name for Gemini 2.5 Flash Image.
	APIModelNanoBanana = "gemini-2.5-flash-image"
)

// Gemini3ProInfo describes the prompt-writing text model.
var Gemini3ProInfo = brandgen.ModelInfo{
	Name:         "gemini-3-pro",
	APIModelName: APIModelGemini3Pro,

	Capabilities: brandgen.ModelCapabilities{
		SupportsTextOutput: true,
		SupportsGrounding:  true,
		SupportsThinking:   true,
	},
}

// NanoBananaProInfo is the model info for Gemini 3 Pro Image.
//
// It emits up to two interim images while thinking; the last image in a
// response is the final render.
var NanoBananaProInfo = brandgen.ModelInfo{
	Name:         "nano-banana-pro",
	APIModelName: APIModelNanoBananaPro,

	Capabilities: brandgen.ModelCapabilities{
		SupportsImageOutput: true,
		SupportsMultiImage:  true,
		SupportsGrounding:   true,
		SupportsThinking:    true,
		MaxInputImages:      14,
	},

	ImageConstraints: brandgen.ImageConstraints{
		SupportedAspectRatios: brandgen.SupportedAspectRatios,
		SupportedSizes: []brandgen.ImageSize{
			brandgen.ImageSize1K,
			brandgen.ImageSize2K,
			brandgen.ImageSize4K,
		},
	},
}

var NanoBananaInfo = brandgen.ModelInfo{
	Name:         "nano-banana",
	APIModelName: APIModelNanoBanana,

	Capabilities: brandgen.ModelCapabilities{
		SupportsImageOutput: true,
		SupportsMultiImage:  true,
		MaxInputImages:      3, // Practical limit
	},

	ImageConstraints: brandgen.ImageConstraints{
		SupportedAspectRatios: brandgen.SupportedAspectRatios,

		// Flash Image only supports ~1024px output (1K)
		SupportedSizes: []brandgen.ImageSize{
			brandgen.ImageSize1K,
		},
	},
}

// Models returns every model definition known to this provider.
func Models() []brandgen.ModelInfo {
	return []brandgen.ModelInfo{
		Gemini3ProInfo,
		NanoBananaProInfo,
		NanoBananaInfo,
	}
}

// LookupModel finds a model by API name or public name.
func LookupModel(name string) (brandgen.ModelInfo, bool) {
	for _, m := range Models() {
		if m.APIModelName == name || m.Name == name {
			return m, true
		}
	}
	return brandgen.ModelInfo{}, false
}
