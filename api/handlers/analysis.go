package handlers

import (
	"net/http"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/stats"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// CompositionHandler handles nucleotide composition requests.
func CompositionHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, sequence.Analyze(req.Sequence))
}

// GCWindowRequest represents a GC window scan request. Width defaults to
// sequence.DefaultWindowWidth.
type GCWindowRequest struct {
	Sequence string `json:"sequence"`
	Width    int    `json:"width"`
}

// GCWindowHandler handles highest-GC window requests.
func GCWindowHandler(w http.ResponseWriter, r *http.Request) {
	var req GCWindowRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Width == 0 {
		req.Width = sequence.DefaultWindowWidth
	}

	res, err := sequence.MaxGCWindow(req.Sequence, req.Width)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ContainsRequest represents a substring search request.
type ContainsRequest struct {
	Target string `json:"target"`
	Query  string `json:"query"`
}

// ContainsResponse represents the response for a substring search.
type ContainsResponse struct {
	Found     bool  `json:"found"`
	Positions []int `json:"positions"`
}

// ContainsHandler handles substring search requests.
func ContainsHandler(w http.ResponseWriter, r *http.Request) {
	var req ContainsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, ContainsResponse{
		Found:     sequence.Contains(req.Target, req.Query),
		Positions: sequence.FindAll(req.Target, req.Query),
	})
}

// SequenceStatsHandler handles single-sequence statistics requests.
func SequenceStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, stats.FromSequence(req.Sequence))
}
