package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes registers the API routes on the given engine.
func SetupRoutes(
	router *gin.Engine,
	log *logrus.Logger,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService, log)
	exerciseHandler := NewExerciseHandler(exerciseService, log)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users/:id/exercises", exerciseHandler.LogExercise)
		apiGroup.GET("/users/:id/logs", exerciseHandler.GetUserLogs)
	}
}
