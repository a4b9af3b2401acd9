package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAsset creates dir/sub/name under a base directory.
func writeAsset(t *testing.T, base, sub, name, content string) {
	t.Helper()

	dir := filepath.Join(base, sub)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		require.NoError(t, err)
		assert.NotEmpty(t, loader.BasePath())
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		assert.ErrorIs(t, err, ErrInvalidBasePath)
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, ErrInvalidBasePath)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(filePath, []byte("test"), 0o644))

		_, err := NewFilesystemLoader(filePath)
		assert.ErrorIs(t, err, ErrInvalidBasePath)
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "custom.css", "body { color: red; }")
	writeAsset(t, base, "templates", "docs.html", "<main>{{ Content }}</main>")

	loader, err := NewFilesystemLoader(base)
	require.NoError(t, err)

	style, err := loader.LoadStyle("custom")
	require.NoError(t, err)
	assert.Equal(t, "body { color: red; }", style)

	tmpl, err := loader.LoadTemplate("docs")
	require.NoError(t, err)
	assert.Equal(t, "<main>{{ Content }}</main>", tmpl)

	_, err = loader.LoadStyle("missing")
	assert.ErrorIs(t, err, ErrStyleNotFound)

	_, err = loader.LoadTemplate("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = loader.LoadTemplate("../docs")
	assert.ErrorIs(t, err, ErrInvalidAssetName)
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "styles"), 0o755))

	secretFile := filepath.Join(t.TempDir(), "secret.css")
	require.NoError(t, os.WriteFile(secretFile, []byte("secret content"), 0o644))

	if err := os.Symlink(secretFile, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	require.NoError(t, err)

	_, err = loader.LoadStyle("evil")
	assert.ErrorIs(t, err, ErrPathTraversal)
}
