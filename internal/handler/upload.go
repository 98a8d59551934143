package handler

import (
	"io"
	"net/http"

	"github.com/gyeongmo89/samsip/internal/apierror"
	"github.com/gyeongmo89/samsip/internal/service"

	"github.com/gin-gonic/gin"
)

// Uploads larger than this are rejected before parsing.
const maxUploadBytes = 10 << 20 // 10 MiB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UploadHandler serves the spreadsheet import endpoint and the matching
// entry-template download.
type UploadHandler struct{ svc service.ImportService }

func NewUploadHandler(svc service.ImportService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Import accepts a multipart form with a single "file" field holding the
// filled-in .xlsx entry sheet.
func (h *UploadHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing file field"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("file too large"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unreadable upload"))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unreadable upload"))
		return
	}

	resp, err := h.svc.Import(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Template serves the blank order entry sheet.
func (h *UploadHandler) Template(c *gin.Context) {
	data, err := h.svc.Template()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build template"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="order_template.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
