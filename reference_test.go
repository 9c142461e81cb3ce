package brandgen

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceImage_NormalizesToNRGBA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	writeImage(t, path, gray)

	ref, err := LoadReferenceImage(path)
	require.NoError(t, err)
	assert.Equal(t, path, ref.Path)
	assert.Equal(t, "image/png", ref.MIMEType)
	assert.Equal(t, 3, ref.Width)
	assert.Equal(t, 2, ref.Height)

	decoded, err := imaging.Decode(bytes.NewReader(ref.Data))
	require.NoError(t, err)
	r, g, b, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestLoadReferenceImage_PreservesAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo_dark.png")
	writeImage(t, path, imaging.New(2, 2, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}))

	ref, err := LoadReferenceImage(path)
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(ref.Data))
	require.NoError(t, err)
	got := color.NRGBAModel.Convert(decoded.At(0, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, got)
}

func TestLoadReferenceImage_JPEGInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.jpg")
	require.NoError(t, imaging.Save(imaging.New(4, 4, color.NRGBA{G: 0xff, A: 0xff}), path))

	ref, err := LoadReferenceImage(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ref.MIMEType)
	assert.NoError(t, ValidateReferenceImage(ref))
}

func TestLoadReferenceImage_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReferenceImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	notImage := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(notImage, []byte("not an image"), 0o644))
	_, err = LoadReferenceImage(notImage)
	assert.Error(t, err)
}

func TestLoadReferenceImages_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writeImage(t, good, imaging.New(1, 1, color.NRGBA{A: 0xff}))

	refs, err := LoadReferenceImages([]string{good, filepath.Join(dir, "missing.png")})
	assert.Error(t, err)
	assert.Nil(t, refs)

	refs, err = LoadReferenceImages([]string{good, good})
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}
