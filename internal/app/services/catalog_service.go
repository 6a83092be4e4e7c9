package services

import (
	"context"
	"fmt"

	"github.com/edulab/coursecatalog/internal/app/models"
	"github.com/edulab/coursecatalog/internal/app/repositories"
	"github.com/edulab/coursecatalog/internal/pkg/apperrors"
)

// CatalogService handles course catalog operations
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListCourses retrieves all courses in insertion order
func (s *CatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.catalogRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByCode retrieves the first course whose code matches. Codes are
// only conventionally unique, so first match wins.
func (s *CatalogService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Code == code {
			return &courses[i], nil
		}
	}

	return nil, apperrors.ErrCourseNotFound
}

// AddCourse validates the submitted form and persists a new course. Every one
// of the nine fields must be a non-empty string, and the code must not already
// exist in the catalog. Validation and duplicate failures leave the catalog
// untouched.
func (s *CatalogService) AddCourse(ctx context.Context, form models.CourseForm) error {
	if missing := form.MissingFields(); len(missing) > 0 {
		return apperrors.NewValidationError(missing...)
	}

	courses, err := s.catalogRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing courses: %w", err)
	}

	for i := range courses {
		if courses[i].Code == form.Code {
			return apperrors.ErrCourseCodeExists
		}
	}

	if err := s.catalogRepo.Append(ctx, form.ToCourse()); err != nil {
		return fmt.Errorf("error saving course: %w", err)
	}

	return nil
}
