package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulab/coursecatalog/internal/app/models"
	"github.com/edulab/coursecatalog/internal/app/services"
	"github.com/edulab/coursecatalog/internal/middleware"
	"github.com/edulab/coursecatalog/internal/pkg/apperrors"
	"github.com/edulab/coursecatalog/internal/pkg/flash"
	"github.com/edulab/coursecatalog/internal/pkg/logger"
)

// CatalogController handles the course catalog pages
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Index renders the landing page
func (c *CatalogController) Index(ctx *gin.Context) {
	render(ctx, http.StatusOK, "index.html", gin.H{
		"Title": "Course Catalog",
	})
}

// ShowCatalog renders the list of all courses
func (c *CatalogController) ShowCatalog(ctx *gin.Context) {
	span := middleware.SpanFromContext(ctx)

	courses, err := c.catalogService.ListCourses(ctx)
	if err != nil {
		renderServerError(ctx, err)
		return
	}

	span.SetAttribute("course_count", len(courses))
	render(ctx, http.StatusOK, "course_catalog.html", gin.H{
		"Title":   "Course Catalog",
		"Courses": courses,
		"Count":   len(courses),
	})
}

// ShowAddCourseForm renders an empty course submission form
func (c *CatalogController) ShowAddCourseForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "add_course.html", gin.H{
		"Title": "Add Course",
		"Form":  models.CourseForm{},
	})
}

// SubmitCourse validates and stores a submitted course. Validation and
// duplicate-code failures re-render the form with the submitted values; the
// catalog is only touched on success.
func (c *CatalogController) SubmitCourse(ctx *gin.Context) {
	span := middleware.SpanFromContext(ctx)

	var form models.CourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderServerError(ctx, err)
		return
	}

	err := c.catalogService.AddCourse(ctx, form)
	switch {
	case err == nil:
		span.SetAttribute("course_added", true)
		flash.Set(ctx, flash.SeveritySuccess, "Course added successfully!")
		ctx.Redirect(http.StatusSeeOther, "/catalog")

	case errors.Is(err, apperrors.ErrMissingFields):
		span.SetAttribute("all_fields_required", true)
		render(ctx, http.StatusOK, "add_course.html", gin.H{
			"Title": "Add Course",
			"Form":  form,
		}, flash.Message{Severity: flash.SeverityDanger, Message: "All fields are required!"})

	case errors.Is(err, apperrors.ErrCourseCodeExists):
		span.SetAttribute("course_code_exists", true)
		render(ctx, http.StatusOK, "add_course.html", gin.H{
			"Title": "Add Course",
			"Form":  form,
		}, flash.Message{Severity: flash.SeverityDanger, Message: "A course with this code already exists!"})

	default:
		renderServerError(ctx, err)
	}
}

// ShowCourseDetails renders one course, or redirects to the catalog with a
// notification when the code is unknown
func (c *CatalogController) ShowCourseDetails(ctx *gin.Context) {
	span := middleware.SpanFromContext(ctx)

	code := ctx.Param("code")
	span.SetAttribute("course_code", code)

	course, err := c.catalogService.GetCourseByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			span.SetAttribute("course_found", false)
			flash.Set(ctx, flash.SeverityError, fmt.Sprintf("No course found with code '%s'.", code))
			ctx.Redirect(http.StatusFound, "/catalog")
			return
		}
		renderServerError(ctx, err)
		return
	}

	span.SetAttribute("course_found", true)
	render(ctx, http.StatusOK, "course_details.html", gin.H{
		"Title":  course.Code,
		"Course": course,
	})
}

// render delivers a page together with its notifications: messages queued
// before a redirect plus any immediate ones from the current handler.
func render(ctx *gin.Context, status int, view string, data gin.H, immediate ...flash.Message) {
	data["Flashes"] = append(flash.Take(ctx), immediate...)
	ctx.HTML(status, view, data)
}

func renderServerError(ctx *gin.Context, err error) {
	logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")
	render(ctx, http.StatusInternalServerError, "error.html", gin.H{
		"Title": "Server Error",
	})
}
