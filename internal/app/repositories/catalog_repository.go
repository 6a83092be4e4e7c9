package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/edulab/coursecatalog/internal/app/models"
	"github.com/edulab/coursecatalog/internal/pkg/apperrors"
)

// CatalogRepository persists the whole course catalog as a single
// pretty-printed JSON file. There is no partial update: every write reloads
// the collection, appends, and rewrites the file. Concurrent writers may race
// and the last write wins; the application accepts this for its single-process
// low-concurrency use.
type CatalogRepository struct {
	filePath string
}

// NewCatalogRepository creates a repository backed by the given file path.
func NewCatalogRepository(filePath string) *CatalogRepository {
	return &CatalogRepository{filePath: filePath}
}

// FilePath returns the path of the backing catalog file.
func (r *CatalogRepository) FilePath() string {
	return r.filePath
}

// LoadAll reads the persisted catalog. A missing file is an empty catalog,
// not an error. Malformed content wraps apperrors.ErrCatalogCorrupted.
func (r *CatalogRepository) LoadAll(ctx context.Context) ([]models.Course, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Course{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", r.filePath, err)
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCatalogCorrupted, r.filePath, err)
	}

	return courses, nil
}

// Append loads the current catalog, appends the course and rewrites the
// whole file. The file is created on the first append.
func (r *CatalogRepository) Append(ctx context.Context, course models.Course) error {
	courses, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	courses = append(courses, course)

	data, err := json.MarshalIndent(courses, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(r.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", r.filePath, err)
	}

	return nil
}
