package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Result describes a stored file; URL is the path recorded in the owning
// entity's document list.
type Result struct {
	Name string
	Type string
	Size int64
	URL  string
}

// PublicPrefix is the URL path uploads are served under, regardless of the
// directory they are written to.
const PublicPrefix = "/uploads"

// Local stores uploads under a base directory on the local filesystem.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir}
}

// Save writes the uploaded file under baseDir/<entity>/<uuid><ext>.
func (l *Local) Save(file *multipart.FileHeader, entity string) (*Result, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := filepath.Join(entity, uuid.NewString()+ext)
	fullPath := filepath.Join(l.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Result{
		Name: file.Filename,
		Type: contentType,
		Size: written,
		URL:  PublicPrefix + "/" + filepath.ToSlash(key),
	}, nil
}

// Delete removes a previously stored file by the URL recorded in a document
// entry. URLs outside the public prefix and missing files are not an error.
func (l *Local) Delete(url string) error {
	rel := strings.TrimPrefix(url, PublicPrefix+"/")
	if rel == url || rel == "" {
		return nil
	}
	path := filepath.Join(l.baseDir, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
