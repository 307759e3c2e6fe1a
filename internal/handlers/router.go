package handlers

import (
	"net/http"

	"github.com/acadegrade/result-service/internal/auth"
	"github.com/acadegrade/result-service/internal/services"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	sheetHandler   *SheetHandler
	courseHandler  *CourseHandler
	ownerHandler   *OwnerHandler
	contactHandler *ContactHandler
	verifier       auth.TokenVerifier
	logger         utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	verifier auth.TokenVerifier,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		sheetHandler:   NewSheetHandler(serviceManager.Sheet(), serviceManager.Export(), logger),
		courseHandler:  NewCourseHandler(serviceManager.Course(), logger),
		ownerHandler:   NewOwnerHandler(serviceManager.Owner(), logger),
		contactHandler: NewContactHandler(serviceManager.Contact(), logger),
		verifier:       verifier,
		logger:         logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/contact", hm.contactHandler.SubmitContact)

	// Authenticated routes
	authed := v1.Group("")
	authed.Use(AuthMiddleware(hm.verifier, hm.logger))
	{
		authed.POST("/identity/sync", hm.ownerHandler.SyncIdentity)

		sheets := authed.Group("/sheets")
		{
			sheets.POST("", hm.sheetHandler.CreateSheet)
			sheets.GET("", hm.sheetHandler.ListSheets)
			sheets.GET("/:id", hm.sheetHandler.GetSheet)
			sheets.PUT("/:id", hm.sheetHandler.UpdateSheet)
			sheets.DELETE("/:id", hm.sheetHandler.DeleteSheet)
			sheets.GET("/:id/export", hm.sheetHandler.ExportSheet)
		}

		courses := authed.Group("/courses")
		{
			courses.POST("", hm.courseHandler.CreateCourse)
			courses.POST("/batch", hm.courseHandler.CreateCoursesBatch)
			courses.GET("/:id", hm.courseHandler.GetCourse)
			courses.PUT("/:id", hm.courseHandler.UpdateCourse)
			courses.DELETE("/:id", hm.courseHandler.DeleteCourse)
		}

		authed.GET("/semesters/:id/courses", hm.courseHandler.GetSemesterCourses)
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "result-service",
	})
}
