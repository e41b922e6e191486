package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/controllers"
	"github.com/mams/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	placementController *controllers.PlacementController,
	documentController *controllers.DocumentController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Token enforcement is intentionally off on the routes below; mount
	// authMiddleware.JWTAuth() on a subgroup here once the frontend sends
	// the bearer token.
	_ = authMiddleware

	students := api.Group("/students")
	{
		students.POST("", studentController.AddStudent)
		students.GET("", studentController.GetAvailableForPlacement)
		students.GET("/all", studentController.GetAllStudents)
		students.GET("/available-for-documents", studentController.GetAvailableForDocuments)
	}

	api.POST("/placement-details", placementController.UploadPlacementDetails)
	api.POST("/documents/upload", documentController.UploadDocuments)

	api.GET("/test-db", healthController.TestDB)
}
