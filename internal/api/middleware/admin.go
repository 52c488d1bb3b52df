package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Techluminate-Academy/bsn-directory/internal/config"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

// AdminKey gates the schema-builder endpoints behind a shared admin key.
// The member-facing flows stay open; only schema writes need it.
func AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if config.AdminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(config.AdminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("Unauthorized"))
			return
		}
		c.Next()
	}
}
