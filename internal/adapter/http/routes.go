package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/handlers"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, boardHandler *handlers.BoardHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/board", boardHandler.GetBoard)
		api.PUT("/board/order", boardHandler.ReorderBoard)
		api.POST("/board/reset", boardHandler.ResetBoard)

		api.POST("/tasks", boardHandler.CreateTask)
		api.PATCH("/tasks/:id", boardHandler.UpdateTask)
		api.DELETE("/tasks/:id", boardHandler.DeleteTask)
		api.POST("/tasks/:id/move", boardHandler.MoveTask)
		api.POST("/tasks/:id/cycle", boardHandler.CycleTask)
	}
}
