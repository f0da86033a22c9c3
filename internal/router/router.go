package router

import (
	"github.com/gin-gonic/gin"

	"ncrpintel/internal/handler"
	"ncrpintel/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(complaintH *handler.ComplaintHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	complaints := v1.Group("/complaints")
	complaints.POST("/upload", complaintH.Upload)
	complaints.GET("", complaintH.List)
	complaints.GET("/export", complaintH.Export)

	return r
}
