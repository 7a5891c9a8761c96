package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
)

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h(rec, req)
	return rec
}

func TestCompositionHandler(t *testing.T) {
	rec := post(CompositionHandler, `{"sequence": "ATGCATGCAT"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var comp sequence.Composition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comp))
	assert.InDelta(t, 0.3, comp.Frequencies["A"], 1e-9)
	assert.InDelta(t, 0.2, comp.Frequencies["C"], 1e-9)
	assert.Equal(t, 3, comp.Counts.A)
}

func TestGCWindowHandler(t *testing.T) {
	rec := post(GCWindowHandler, `{"sequence": "AAAAAGGGGGCCCCCAAAAA"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res sequence.WindowResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Found)
	assert.Equal(t, "GGGGGCCCCC", res.Subsequence)

	rec = post(GCWindowHandler, `{"sequence": "GGGGCCCCAA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Found)

	rec = post(GCWindowHandler, `{"sequence": "ATGC", "width": -1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContainsHandler(t *testing.T) {
	rec := post(ContainsHandler, `{"target": "ATGCATGCAT", "query": "GCAT"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res ContainsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Found)
	assert.Equal(t, []int{2, 6}, res.Positions)
}

func TestSequenceStatsHandler(t *testing.T) {
	rec := post(SequenceStatsHandler, `{"sequence": "GGCCAT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"length":6`)
}

func TestAnalysisHandlersRejectBadBody(t *testing.T) {
	for _, h := range []http.HandlerFunc{CompositionHandler, GCWindowHandler, ContainsHandler, SequenceStatsHandler} {
		rec := post(h, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}
