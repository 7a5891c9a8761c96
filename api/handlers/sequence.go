// Package handlers provides HTTP handlers for the analyser API.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/seqanalyser-go/internal/chart"
	"github.com/aria-lang/seqanalyser-go/internal/parser"
	"github.com/aria-lang/seqanalyser-go/internal/session"
	"github.com/aria-lang/seqanalyser-go/internal/stats"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// DefaultMaxUploadBytes bounds upload bodies when no limit is configured.
const DefaultMaxUploadBytes = 32 << 20

// SessionHandler serves the per-session endpoints.
type SessionHandler struct {
	store    *session.Store
	logger   *log.Logger
	maxBytes int64
}

// NewSessionHandler creates a handler backed by store.
func NewSessionHandler(store *session.Store, logger *log.Logger, maxBytes int64) *SessionHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SessionHandler{store: store, logger: logger, maxBytes: maxBytes}
}

// Routes returns the router to mount under /api/sessions.
func (h *SessionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.View)
		r.Delete("/", h.Delete)
		r.Post("/upload", h.Upload)
		r.Put("/selection", h.Select)
		r.Delete("/selection", h.Deselect)
		r.Post("/search", h.Search)
		r.Get("/options", h.Options)
		r.Get("/summary", h.Summary)
		r.Get("/composition.svg", h.CompositionChart)
	})
	return r
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	id := chi.URLParam(r, "id")
	s, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("session %q not found", id))
		return nil, false
	}
	return s, true
}

// CreateResponse carries the id of a new session.
type CreateResponse struct {
	ID string `json:"id"`
}

// Create starts a new session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := h.store.Create()
	h.logger.Debug("session created", "id", id)
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id})
}

// Delete ends a session.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.Delete(id) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("session %q not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// View returns every derived output of the session.
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeView(w, s)
}

func (h *SessionHandler) writeView(w http.ResponseWriter, s *session.State) {
	v, err := s.View()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// UploadRequest is the JSON form of an upload. Contents is a base64 data URL.
type UploadRequest struct {
	Filename string `json:"filename"`
	Contents string `json:"contents"`
}

// Upload replaces the session dataset with a parsed file. Both multipart
// (field "file") and JSON bodies are accepted.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	data, filename, err := h.readUpload(r)
	if err != nil {
		s.Clear()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Upload(data, filename); err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeView(w, s)
}

func (h *SessionHandler) readUpload(r *http.Request) ([]byte, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			return nil, "", fmt.Errorf("invalid multipart body: %w", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("missing file field: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fmt.Errorf("reading upload: %w", err)
		}
		return data, header.Filename, nil
	}

	var req UploadRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, "", errors.New("invalid request body")
	}
	if req.Filename == "" {
		return nil, "", errors.New("filename is required")
	}
	data, err := parser.DecodeDataURL(req.Contents)
	if err != nil {
		return nil, "", err
	}
	return data, req.Filename, nil
}

// SelectRequest sets the selected value.
type SelectRequest struct {
	Value string `json:"value"`
}

// Select changes the selected sequence.
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.Select(req.Value); err != nil {
		switch {
		case errors.Is(err, session.ErrNoDataset):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, table.ErrNotFound):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeView(w, s)
}

// Deselect clears the selected sequence.
func (h *SessionHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Deselect()
	h.writeView(w, s)
}

// SearchRequest is an explicit search against the selected value.
type SearchRequest struct {
	Query string `json:"query"`
}

// Search reports whether the query occurs in the selected sequence.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, s.Search(req.Query))
}

// Options returns the selection list for the loaded dataset.
func (h *SessionHandler) Options(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	opts := []table.Option{}
	if tbl := s.Table(); tbl != nil {
		opts = tbl.Options()
	}
	writeJSON(w, http.StatusOK, opts)
}

// Summary returns dataset statistics.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	tbl := s.Table()
	if tbl == nil {
		writeError(w, http.StatusConflict, session.ErrNoDataset.Error())
		return
	}

	summary, err := stats.FromTable(tbl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// CompositionChart renders the composition of the selected value as SVG.
func (h *SessionHandler) CompositionChart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	comp, err := s.Composition()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	svg, err := chart.CompositionSVG(comp)
	if err != nil {
		h.logger.Error("rendering composition chart", "err", err)
		writeError(w, http.StatusInternalServerError, "rendering chart failed")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}
