package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/kdduha/foto2latex/internal/imaging"
	"github.com/kdduha/foto2latex/internal/latex"
	"github.com/kdduha/foto2latex/internal/metrics"
	"github.com/kdduha/foto2latex/internal/models"
	"github.com/kdduha/foto2latex/internal/service"
	"github.com/kdduha/foto2latex/internal/session"
)

const (
	imageField = "image"

	previewWarning = "could not preview the image, will still try to process it"
	noResultError  = "no LaTeX result yet"
)

type extractService interface {
	Extract(ctx context.Context, data []byte, format string) (string, error)
}

type ExtractHandler struct {
	logger   *log.Logger
	service  extractService
	store    *session.Store
	maxBytes int64
}

func NewExtractHandler(logger *log.Logger, service extractService, store *session.Store, maxBytes int64) *ExtractHandler {
	return &ExtractHandler{
		logger:   logger,
		service:  service,
		store:    store,
		maxBytes: maxBytes,
	}
}

// Register mounts the page, extraction, result and download routes on r.
func (h *ExtractHandler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/extract", h.Extract)
	r.Get("/result", h.Result)
	r.Get("/download/snippet", h.DownloadSnippet)
	r.Get("/download/document", h.DownloadDocument)
}

// Extract godoc
// @Summary Extract LaTeX from an equation image
// @Description Uploads one image (png, jpg, jpeg or pdf) and replaces the session's current snippet when the model returns one.
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Equation image"
// @Success 200 {object} models.ExtractResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /extract [post]
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	id := h.store.ID(w, r)
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	data, format, err := readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.UploadsTotal(format)

	done, err := h.store.Begin(id)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	defer done()

	var warnings []string
	if !imaging.CanPreview(data, format) {
		warnings = append(warnings, previewWarning)
	}

	snippet, err := h.service.Extract(r.Context(), data, format)
	if err != nil {
		h.logger.Printf("extraction failed: %v\n", err)
		status := http.StatusBadGateway
		if service.KindOf(err) == service.KindDecode {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, fmt.Sprintf("Error processing image: %v", err))
		return
	}

	h.store.Save(id, h.store.Load(id).Apply(snippet))

	resp := view(snippet)
	resp.Warnings = warnings
	writeJSON(w, http.StatusOK, resp)
}

// Result godoc
// @Summary Current snippet
// @Description Returns the session's current snippet with its preview form.
// @Tags extract
// @Produce json
// @Success 200 {object} models.ExtractResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /result [get]
func (h *ExtractHandler) Result(w http.ResponseWriter, r *http.Request) {
	state := h.store.Load(h.store.ID(w, r))
	if !state.HasResult() {
		writeError(w, http.StatusNotFound, noResultError)
		return
	}
	writeJSON(w, http.StatusOK, view(state.Snippet))
}

func readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("missing %q file: %w", imageField, err)
	}
	defer file.Close()

	format, err := imaging.FormatFromFilename(header.Filename)
	if err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	return data, format, nil
}

func view(snippet string) *models.ExtractResponse {
	resp := &models.ExtractResponse{Snippet: snippet}
	if snippet == "" {
		return resp
	}
	resp.Display = latex.ForDisplay(snippet)
	if err := latex.CheckRenderable(resp.Display); err != nil {
		resp.PreviewError = err.Error()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
