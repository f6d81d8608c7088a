package http

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"rental-service/internal/config"
	"rental-service/internal/model"
	"rental-service/internal/storage"
)

const uploadFieldName = "documents"

var errNoMultipart = errors.New("request is not multipart")

// Intake collects uploaded attachments for one entity type. Every entity
// gets its own instance so files land in per-entity subdirectories.
type Intake struct {
	store      *storage.Local
	entity     string
	field      string
	maxSize    int64
	allowedExt map[string]bool
}

func NewIntake(store *storage.Local, files config.FilesConfig, entity string) *Intake {
	allowed := make(map[string]bool, len(files.AllowedExtensions))
	for _, ext := range files.AllowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &Intake{
		store:      store,
		entity:     entity,
		field:      uploadFieldName,
		maxSize:    files.MaxUploadSize,
		allowedExt: allowed,
	}
}

// Collect validates and stores every file sent under the intake's form field
// and returns the resulting document entries. A non-multipart request yields
// an empty list.
func (i *Intake) Collect(c *gin.Context) ([]model.Document, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errNoMultipart
	}

	files := form.File[i.field]
	documents := make([]model.Document, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !i.allowedExt[ext] {
			return nil, fmt.Errorf("file type %q is not allowed", ext)
		}
		if file.Size > i.maxSize {
			return nil, fmt.Errorf("file %q exceeds the size limit", file.Filename)
		}

		result, err := i.store.Save(file, i.entity)
		if err != nil {
			return nil, fmt.Errorf("store upload: %w", err)
		}
		documents = append(documents, model.Document{
			Name: result.Name,
			Type: result.Type,
			Size: result.Size,
			URL:  result.URL,
		})
	}
	return documents, nil
}

// collectUploads tolerates plain JSON requests; only genuine intake failures
// are surfaced.
func collectUploads(c *gin.Context, intake *Intake) ([]model.Document, error) {
	documents, err := intake.Collect(c)
	if err != nil {
		if errors.Is(err, errNoMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return documents, nil
}
