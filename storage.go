package brandgen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

// Storage persists generated artifacts. Implementations can wrap local
// disk or a cloud bucket client.
type Storage interface {
	// SaveFile saves data at path and returns the location it was written to.
	// The contentType is the artifact's MIME type (e.g., "image/png").
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// LocalStorage writes artifacts to the local filesystem.
type LocalStorage struct {
	// FileMode for written files; zero means 0644
	FileMode os.FileMode
}

// NewLocalStorage returns a Storage backed by the local filesystem.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{FileMode: 0o644}
}

// SaveFile creates any missing parent directories and writes data to path.
func (s *LocalStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	mode := s.FileMode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// InterimPath returns the path of the i-th interim image (1-indexed).
func InterimPath(dir, base string, i int) string {
	return filepath.Join(dir, base+"_interim_"+strconv.Itoa(i)+".png")
}

// FinalPath returns the path of the final image.
func FinalPath(dir, base string) string {
	return filepath.Join(dir, base+"_final.png")
}

// Persist writes every image of one batch under base in dir. All images but
// the last are saved as {base}_interim_{i}.png, the last as {base}_final.png.
// It returns the written locations in that order.
//
// Files written before a failure are left in place.
func Persist(
	ctx context.Context,
	storage Storage,
	images []GeneratedImage,
	dir string,
	base string) ([]string, error) {

	if storage == nil {
		return nil, ErrStorageNotConfigured
	}
	if len(images) == 0 {
		return nil, ErrNoImage
	}

	paths := make([]string, 0, len(images))
	last := len(images) - 1
	for i, img := range images {
		path := FinalPath(dir, base)
		if i < last {
			path = InterimPath(dir, base, i+1)
		}

		data, err := encodePNG(img)
		if err != nil {
			return paths, err
		}

		saved, err := storage.SaveFile(ctx, data, path, "image/png")
		if err != nil {
			return paths, err
		}
		paths = append(paths, saved)
	}

	return paths, nil
}

// SavePrompt writes the generated prompt text to path.
func SavePrompt(ctx context.Context, storage Storage, path string, prompt string) (string, error) {
	if storage == nil {
		return "", ErrStorageNotConfigured
	}
	return storage.SaveFile(ctx, []byte(prompt), path, "text/plain; charset=utf-8")
}

func encodePNG(img GeneratedImage) ([]byte, error) {
	if img.Image == nil {
		return nil, fmt.Errorf("image %d: %w", img.Index, ErrEmptyImageData)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.Image, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image %d: %w", img.Index, err)
	}
	return buf.Bytes(), nil
}
