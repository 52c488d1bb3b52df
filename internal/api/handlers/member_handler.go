package handlers

import (
	"net/http"
	"strconv"

	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/member"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	service *application.MemberService
}

func NewMemberHandler(service *application.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List serves the paginated directory with optional equality filters.
func (h *MemberHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := member.ListQuery{
		Page:            page,
		Limit:           limit,
		IndustryHouse:   c.Query("industry_house"),
		MembershipLevel: c.Query("membership_level"),
		Country:         c.Query("country"),
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to list members"))
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}

// Search serves free-text lookups across the directory's text fields.
func (h *MemberHandler) Search(c *gin.Context) {
	text := c.Query("q")
	if text == "" {
		c.JSON(http.StatusBadRequest, response.Err("Missing query parameter q"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.Search(c.Request.Context(), text, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Search failed"))
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	rec, err := h.service.GetByAirtableID(c.Request.Context(), c.Param("id"))
	if application.IsNotFound(err) {
		c.JSON(http.StatusNotFound, response.Err("Member not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to load member"))
		return
	}
	c.JSON(http.StatusOK, response.OK(rec))
}

// GetByEmail backs the edit flow. 404 lets the client offer signup instead.
func (h *MemberHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.Err("Missing query parameter email"))
		return
	}

	rec, err := h.service.GetByEmail(c.Request.Context(), email)
	if application.IsNotFound(err) {
		c.JSON(http.StatusNotFound, response.Err("Member not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to load member"))
		return
	}
	c.JSON(http.StatusOK, response.OK(rec))
}
