package handler

import (
	"fmt"
	"net/http"

	"github.com/kdduha/foto2latex/internal/latex"
)

const (
	SnippetFilename  = "ecuaciones_snippet.tex"
	DocumentFilename = "ecuaciones_documento.tex"
)

// DownloadSnippet godoc
// @Summary Download the raw snippet
// @Tags download
// @Produce plain
// @Success 200 {string} string "LaTeX snippet"
// @Failure 404 {object} models.ErrorResponse
// @Router /download/snippet [get]
func (h *ExtractHandler) DownloadSnippet(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, SnippetFilename, func(snippet string) string { return snippet })
}

// DownloadDocument godoc
// @Summary Download a compilable LaTeX document
// @Description The current snippet wrapped in a standalone article document.
// @Tags download
// @Produce plain
// @Success 200 {string} string "LaTeX document"
// @Failure 404 {object} models.ErrorResponse
// @Router /download/document [get]
func (h *ExtractHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, DocumentFilename, latex.WrapDocument)
}

func (h *ExtractHandler) download(w http.ResponseWriter, r *http.Request, filename string, render func(string) string) {
	state := h.store.Load(h.store.ID(w, r))
	if !state.HasResult() {
		writeError(w, http.StatusNotFound, noResultError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(render(state.Snippet)))
}
