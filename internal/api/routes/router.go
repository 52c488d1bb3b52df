package routes

import (
	"net/http"

	"github.com/Techluminate-Academy/bsn-directory/internal/api/handlers"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/middleware"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OK(gin.H{"status": "ok"}))
	})
	r.GET("/metrics", monitoring.Handler())

	schemas := r.Group("/schemas")
	{
		schemas.GET("", h.Schema.ListVersions)
		schemas.GET("/latest", h.Schema.GetLatest)
		schemas.GET("/:version", h.Schema.GetVersion)
		schemas.POST("", middleware.AdminKey(), h.Schema.CreateVersion)
	}

	r.GET("/metadata/fields", h.Metadata.GetFields)

	r.POST("/forms/validate", h.Submission.Validate)
	r.POST("/uploads", h.Upload.Upload)

	members := r.Group("/members")
	{
		members.GET("", h.Member.List)
		members.GET("/search", h.Member.Search)
		members.GET("/by-email", h.Member.GetByEmail)
		members.GET("/:id", h.Member.GetByID)
		members.POST("", h.Submission.Submit)
		members.PUT("/:id", h.Submission.Update)
	}
}
