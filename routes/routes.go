package routes

import (
	"time"

	"screenline/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, webhook *handlers.WebhookHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/webhook")
	{
		api.POST("/fulfillment", webhook.HandleFulfillment)
	}

	r.GET("/health", handlers.HealthHandler)
}
