package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/config"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/mapping"
	"github.com/Techluminate-Academy/bsn-directory/internal/runtime"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

// SubmissionRequest is the submit/update/validate body: which schema version
// the client rendered, the raw form state, and the phone region.
type SubmissionRequest struct {
	Version int            `json:"version" binding:"required,min=1"`
	Values  map[string]any `json:"values" binding:"required"`
	Region  string         `json:"region"`
}

type SubmissionHandler struct {
	schemas    *application.SchemaService
	metadata   *application.MetadataService
	submission *application.SubmissionService
}

func NewSubmissionHandler(schemas *application.SchemaService, metadata *application.MetadataService, submission *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{schemas: schemas, metadata: metadata, submission: submission}
}

// Submit validates the whole form against its schema version and, when
// clean, runs the write pipeline to create a new record.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	h.handle(c, "")
}

// Update is Submit against an existing record id.
func (h *SubmissionHandler) Update(c *gin.Context) {
	h.handle(c, c.Param("id"))
}

// Validate runs full-form validation without touching the write pipeline.
func (h *SubmissionHandler) Validate(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	rt, _, _, ok := h.buildRuntime(c, &req)
	if !ok {
		return
	}
	if !rt.ValidateAll() {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationResponse{
			Error:  "Validation failed",
			Fields: rt.Errors(),
		})
		return
	}
	c.JSON(http.StatusOK, response.OK(nil))
}

func (h *SubmissionHandler) handle(c *gin.Context, recordID string) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	rt, fields, m, ok := h.buildRuntime(c, &req)
	if !ok {
		return
	}

	// Submission re-validates every step, not just the last; a user who
	// back-navigated may have invalidated an earlier one.
	if !rt.ValidateAll() {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationResponse{
			Error:  "Validation failed",
			Fields: rt.Errors(),
		})
		return
	}

	var id string
	var err error
	if recordID == "" {
		id, err = h.submission.Submit(c.Request.Context(), rt.Values(), fields, m)
	} else {
		id, err = h.submission.Update(c.Request.Context(), recordID, rt.Values(), fields, m)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Err("Submission failed"))
		return
	}

	status := http.StatusCreated
	if recordID != "" {
		status = http.StatusOK
	}
	c.JSON(status, response.OK(gin.H{"id": id}))
}

// buildRuntime loads the schema version and field metadata, binds the
// mapping, and seeds a runtime with the request's normalized values. On
// failure it writes the response and returns ok=false.
func (h *SubmissionHandler) buildRuntime(c *gin.Context, req *SubmissionRequest) (*runtime.Runtime, []schema.FieldDefinition, mapping.FieldMapping, bool) {
	ctx := c.Request.Context()

	fields, ok := h.loadFields(ctx, c, req.Version)
	if !ok {
		return nil, nil, mapping.FieldMapping{}, false
	}

	meta, err := h.metadata.FetchFieldMetadata(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Err("Failed to fetch field metadata"))
		return nil, nil, mapping.FieldMapping{}, false
	}

	m := mapping.Build(fields, meta)

	region := req.Region
	if region == "" {
		region = config.DefaultPhoneRegion
	}
	rt := runtime.New(fields, m, runtime.WithRegion(region))
	for name, val := range req.Values {
		rt.Set(name, normalizeValue(val))
	}
	return rt, fields, m, true
}

func (h *SubmissionHandler) loadFields(ctx context.Context, c *gin.Context, version int) ([]schema.FieldDefinition, bool) {
	view, err := h.schemas.GetVersion(ctx, version)
	if errors.Is(err, application.ErrVersionNotFound) {
		c.JSON(http.StatusNotFound, response.Err("Schema version not found"))
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("Failed to load schema version"))
		return nil, false
	}
	return view.Fields, true
}

// normalizeValue reshapes decoded JSON into the runtime's value set: string
// arrays arrive as []any and collapse to []string.
func normalizeValue(val any) any {
	if items, ok := val.([]any); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return val
}
