package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edulab/coursecatalog/internal/app/controllers"
	"github.com/edulab/coursecatalog/internal/middleware"
)

// SetupRouter registers the catalog pages on the engine. Every handler is
// wrapped in a tracer span named after its route.
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	tracer *middleware.Tracer,
) {
	router.GET("/", tracer.Wrap("index", catalogController.Index))
	router.GET("/catalog", tracer.Wrap("course_catalog", catalogController.ShowCatalog))
	router.GET("/add_course", tracer.Wrap("add_course", catalogController.ShowAddCourseForm))
	router.POST("/add_course", tracer.Wrap("add_course", catalogController.SubmitCourse))
	router.GET("/course/:code", tracer.Wrap("course_details", catalogController.ShowCourseDetails))
}
