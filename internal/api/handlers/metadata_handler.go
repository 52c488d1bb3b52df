package handlers

import (
	"net/http"

	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

type MetadataHandler struct {
	service *application.MetadataService
}

func NewMetadataHandler(service *application.MetadataService) *MetadataHandler {
	return &MetadataHandler{service: service}
}

// GetFields returns the external system's normalized column metadata. A
// fetch failure maps to 502; clients reload manually rather than retry.
func (h *MetadataHandler) GetFields(c *gin.Context) {
	fields, err := h.service.FetchFieldMetadata(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Err("Failed to fetch field metadata"))
		return
	}
	c.JSON(http.StatusOK, response.OK(fields))
}
