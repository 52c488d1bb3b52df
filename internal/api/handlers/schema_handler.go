package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

type SchemaHandler struct {
	service *application.SchemaService
}

func NewSchemaHandler(service *application.SchemaService) *SchemaHandler {
	return &SchemaHandler{service: service}
}

func (h *SchemaHandler) ListVersions(c *gin.Context) {
	summaries, err := h.service.ListVersions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to list schema versions"))
		return
	}
	c.JSON(http.StatusOK, response.OK(summaries))
}

func (h *SchemaHandler) GetVersion(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, response.Err("Invalid version"))
		return
	}

	view, err := h.service.GetVersion(c.Request.Context(), version)
	if errors.Is(err, application.ErrVersionNotFound) {
		c.JSON(http.StatusNotFound, response.Err("Schema version not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to load schema version"))
		return
	}
	c.JSON(http.StatusOK, response.OK(view))
}

func (h *SchemaHandler) GetLatest(c *gin.Context) {
	view, err := h.service.GetLatest(c.Request.Context())
	if errors.Is(err, application.ErrVersionNotFound) {
		c.JSON(http.StatusNotFound, response.Err("No schema versions exist"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to load schema version"))
		return
	}
	c.JSON(http.StatusOK, response.OK(view))
}

func (h *SchemaHandler) CreateVersion(c *gin.Context) {
	var input schema.CreateVersionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	view, err := h.service.CreateVersion(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to create schema version"))
		return
	}
	c.JSON(http.StatusCreated, response.OK(view))
}
