package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursecatalog/internal/app/models"
	"github.com/edulab/coursecatalog/internal/pkg/apperrors"
)

func testCourse(code string) models.Course {
	return models.Course{
		Code:          code,
		Name:          "Intro to Testing",
		Instructor:    "A. Turing",
		Semester:      "F24",
		Schedule:      "MWF 10:00",
		Classroom:     "101",
		Prerequisites: "None",
		Grading:       "Letter",
		Description:   "A course about tests",
	}
}

func TestLoadAllMissingFileIsEmptyCatalog(t *testing.T) {
	repo := NewCatalogRepository(filepath.Join(t.TempDir(), "course_catalog.json"))

	courses, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestAppendCreatesFileAndPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_catalog.json")
	repo := NewCatalogRepository(path)
	ctx := context.Background()

	var want []models.Course
	for i := 0; i < 5; i++ {
		course := testCourse(fmt.Sprintf("CS10%d", i))
		want = append(want, course)
		require.NoError(t, repo.Append(ctx, course))
	}

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadAllMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewCatalogRepository(path)
	_, err := repo.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogCorrupted)
}

func TestAppendFormatsFileForHumans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_catalog.json")
	repo := NewCatalogRepository(path)

	require.NoError(t, repo.Append(context.Background(), testCourse("CS101")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    ")
	assert.Contains(t, string(data), `"code": "CS101"`)
}
