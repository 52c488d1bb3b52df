package testutils

import (
	"github.com/Techluminate-Academy/bsn-directory/internal/api/handlers"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/routes"

	"github.com/gin-gonic/gin"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}
