package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. Registration and login are public;
// everything else runs behind the auth middleware.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	reportService service.ReportService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	reportHandler := NewReportHandler(reportService)

	authMiddleware := AuthMiddleware(authService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	userGroup := router.Group("/api/user")
	{
		userGroup.POST("/register", authHandler.Register)
		userGroup.POST("/login", authHandler.Login)

		userGroup.GET("/profile", authMiddleware, profileHandler.GetProfile)
		userGroup.PUT("/update-profile", authMiddleware, profileHandler.UpdateProfile)
		userGroup.PUT("/email", authMiddleware, profileHandler.ChangeEmail)
		userGroup.PUT("/password", authMiddleware, profileHandler.ChangePassword)
	}

	workoutGroup := router.Group("/api/workout")
	workoutGroup.Use(authMiddleware)
	{
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)

		workoutGroup.POST("/:id/comments", workoutHandler.AddComment)
		workoutGroup.PUT("/:id/comments/:commentId", workoutHandler.UpdateComment)
		workoutGroup.DELETE("/:id/comments/:commentId", workoutHandler.DeleteComment)
	}

	router.GET("/api/report", authMiddleware, reportHandler.WorkoutReport)
}
