package brandgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBaseName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name: "empty directory",
			want: "gemini_image_0001",
		},
		{
			name:     "final image taken",
			existing: []string{"gemini_image_0001_final.png"},
			want:     "gemini_image_0002",
		},
		{
			name:     "interim only still reserves the name",
			existing: []string{"gemini_image_0001_interim_1.png"},
			want:     "gemini_image_0002",
		},
		{
			name:     "lowest gap is reused",
			existing: []string{"gemini_image_0001_final.png", "gemini_image_0003_final.png"},
			want:     "gemini_image_0002",
		},
		{
			name:     "non-png files are ignored",
			existing: []string{"gemini_image_0001_final.jpg", "gemini_image_0001.png"},
			want:     "gemini_image_0001",
		},
		{
			name:     "other prefixes are ignored",
			existing: []string{"other_0001_final.png"},
			want:     "gemini_image_0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.existing {
				touch(t, dir, name)
			}

			got, err := NextBaseName(dir, DefaultBasePrefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, globBatch(t, dir, got))
		})
	}
}

func TestNextBaseName_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not", "yet", "created")

	got, err := NextBaseName(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "gemini_image_0001", got)
	assert.NoDirExists(t, dir)
}

func TestNextBaseName_EmptyDirIsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	touch(t, dir, "gemini_image_0001_final.png")

	got, err := NextBaseName("", DefaultBasePrefix)
	require.NoError(t, err)
	assert.Equal(t, "gemini_image_0002", got)

	paths, err := Persist(context.Background(), NewLocalStorage(), fakeImages(1), "", got)
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini_image_0002_final.png"}, paths)

	existing, err := os.ReadFile(filepath.Join(dir, "gemini_image_0001_final.png"))
	require.NoError(t, err)
	assert.Empty(t, existing, "earlier batch must not be overwritten")
}

func TestNextBaseName_CustomPrefix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "adidas_0001_final.png")

	got, err := NextBaseName(dir, "adidas")
	require.NoError(t, err)
	assert.Equal(t, "adidas_0002", got)
}

func TestNextBaseName_GlobCharactersInPrefix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "brand[1]_0001_final.png")

	got, err := NextBaseName(dir, "brand[1]")
	require.NoError(t, err)
	assert.Equal(t, "brand[1]_0002", got)
}

func TestFormatBaseName(t *testing.T) {
	assert.Equal(t, "gemini_image_0001", FormatBaseName("gemini_image", 1))
	assert.Equal(t, "gemini_image_9999", FormatBaseName("gemini_image", 9999))
	assert.Equal(t, "gemini_image_10000", FormatBaseName("gemini_image", 10000))
}

func globBatch(t *testing.T, dir, base string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, base+"_*.png"))
	require.NoError(t, err)
	return matches
}
