package handlers

import (
	"net/http"

	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/pkg/response"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single attachment at 10 MiB.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader blob.Uploader
}

func NewUploadHandler(uploader blob.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload accepts one multipart file and returns its public URL. Clients
// upload attachments here before submitting the form; abandoned sessions
// leave orphaned objects behind, which is accepted.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Missing file"))
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.Err("File too large"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Unreadable file"))
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), blob.Pending{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Err("Upload failed"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"url": url}))
}
