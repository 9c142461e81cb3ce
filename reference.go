package brandgen

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// LoadReferenceImage decodes an image file, normalizes it to NRGBA and
// re-encodes it as PNG so the model always receives a 4-channel image.
func LoadReferenceImage(path string) (ReferenceImage, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return ReferenceImage{}, fmt.Errorf("open reference image: %w", err)
	}

	nrgba := imaging.Clone(src)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, nrgba, imaging.PNG); err != nil {
		return ReferenceImage{}, fmt.Errorf("encode reference image %s: %w", path, err)
	}

	bounds := nrgba.Bounds()
	return ReferenceImage{
		Path:     path,
		Data:     buf.Bytes(),
		MIMEType: "image/png",
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// LoadReferenceImages loads every path in order, stopping at the first failure.
func LoadReferenceImages(paths []string) ([]ReferenceImage, error) {
	refs := make([]ReferenceImage, 0, len(paths))
	for _, p := range paths {
		ref, err := LoadReferenceImage(p)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
