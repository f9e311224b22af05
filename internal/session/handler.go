package session

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/evaluation"
	"skillsync-backend/internal/extract"
	"skillsync-backend/internal/interview"
	"skillsync-backend/internal/shared/server/middleware"
	"skillsync-backend/internal/shared/server/respond"
	"skillsync-backend/internal/shared/util"
)

const (
	maxUploadSize = 5 << 20 // per file
	maxBatchFiles = 20
)

// Handler wires HTTP handlers to the session service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.evaluate)
	rg.GET("/evaluations", h.current)
	rg.GET("/evaluations/export", h.exportCSV)
	rg.PUT("/evaluations/selection", h.setSelection)
	rg.POST("/evaluations/interview-qa", h.interviewQA)
}

func (h *Handler) evaluate(c *gin.Context) {
	userEmail := middleware.UserEmailFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxBatchFiles)*maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart form", nil)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one resume file is required", nil)
		return
	}
	if len(files) > maxBatchFiles {
		respond.Error(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("too many files (max %d)", maxBatchFiles), nil)
		return
	}

	uploads := make([]Upload, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > maxUploadSize {
			respond.Error(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("%s exceeds the 5MB limit", fileHeader.Filename), nil)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read uploaded file", nil)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read uploaded file", nil)
			return
		}
		name, err := util.SanitizeFileName(fileHeader.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
			return
		}
		uploads = append(uploads, Upload{
			FileName:  name,
			MediaType: mediaTypeFor(name, fileHeader.Header.Get("Content-Type")),
			Data:      data,
		})
	}

	batch, err := h.Svc.EvaluateBatch(c.Request.Context(), userEmail, jobDescription, uploads)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate batch", nil)
		return
	}
	c.Set("batchId", batch.ID)

	respond.JSON(c, http.StatusCreated, batch)
}

func (h *Handler) current(c *gin.Context) {
	userEmail := middleware.UserEmailFromContext(c)
	batch, err := h.Svc.Current(userEmail)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no evaluation batch", nil)
		return
	}
	respond.OK(c, batch)
}

func (h *Handler) exportCSV(c *gin.Context) {
	userEmail := middleware.UserEmailFromContext(c)
	batch, err := h.Svc.Current(userEmail)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no evaluation batch", nil)
		return
	}

	data, err := evaluation.CSVBytes(batch.Records)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render csv", nil)
		return
	}

	filename := fmt.Sprintf("evaluation_results_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

type selectionRequest struct {
	SelectedIndex int `json:"selectedIndex"`
}

func (h *Handler) setSelection(c *gin.Context) {
	userEmail := middleware.UserEmailFromContext(c)

	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	batch, err := h.Svc.SetSelection(userEmail, req.SelectedIndex)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoBatch):
			respond.Error(c, http.StatusNotFound, "not_found", "no evaluation batch", nil)
		case errors.Is(err, ErrSelectionOutOfRange):
			respond.Error(c, http.StatusBadRequest, "validation_error", "selectedIndex out of range", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update selection", nil)
		}
		return
	}

	respond.OK(c, batch)
}

func (h *Handler) interviewQA(c *gin.Context) {
	userEmail := middleware.UserEmailFromContext(c)

	record, pairs, err := h.Svc.GenerateQA(c.Request.Context(), userEmail)
	if err != nil {
		var genErr *interview.GenerationError
		switch {
		case errors.Is(err, ErrNoBatch):
			respond.Error(c, http.StatusNotFound, "not_found", "no evaluation batch", nil)
		case errors.As(err, &genErr):
			respond.Error(c, http.StatusBadGateway, "generation_failed", "failed to generate interview questions", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate interview questions", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"candidateName": record.CandidateName,
		"questions":     pairs,
		"markdown":      interview.FormatMarkdown(pairs),
	})
}

// mediaTypeFor resolves the media type from the multipart header, falling
// back to the file extension when the browser sent a generic type.
func mediaTypeFor(fileName, headerType string) string {
	headerType = strings.ToLower(strings.TrimSpace(strings.Split(headerType, ";")[0]))
	switch headerType {
	case extract.MimePDF, extract.MimeDOCX, extract.MimeDOC, extract.MimeTXT:
		return headerType
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extract.MimePDF
	case ".docx":
		return extract.MimeDOCX
	case ".doc":
		return extract.MimeDOC
	case ".txt":
		return extract.MimeTXT
	}
	if headerType != "" {
		return headerType
	}
	return "application/octet-stream"
}
