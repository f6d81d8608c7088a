package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("documents", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	files := form.File["documents"]
	require.Len(t, files, 1)
	return files[0]
}

// The public URL always starts with the fixed prefix, whatever directory the
// store writes to, and Delete maps it back to that directory.
func TestLocalSaveAndDelete(t *testing.T) {
	baseDir := t.TempDir()
	store := NewLocal(baseDir)

	header := uploadHeader(t, "carte-grise.pdf", "contenu")
	result, err := store.Save(header, "vehicles")
	require.NoError(t, err)

	assert.Equal(t, "carte-grise.pdf", result.Name)
	assert.Equal(t, int64(len("contenu")), result.Size)
	require.True(t, strings.HasPrefix(result.URL, PublicPrefix+"/vehicles/"), result.URL)

	rel := strings.TrimPrefix(result.URL, PublicPrefix+"/")
	stored := filepath.Join(baseDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "contenu", string(data))

	require.NoError(t, store.Delete(result.URL))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(result.URL))
	require.NoError(t, store.Delete("/elsewhere/file.pdf"))
}
