package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqanalyser-go/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	return cfg
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig(t), log.New(io.Discard)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestRouterSessionFlow(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig(t), log.New(io.Discard)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// "ID,Sequence\nseq1,ATGC\n"
	upload := `{"filename": "seqs.csv", "contents": "data:text/csv;base64,SUQsU2VxdWVuY2UKc2VxMSxBVEdDCg=="}`
	resp, err = http.Post(srv.URL+"/api/sessions/"+created.ID+"/upload", "application/json", strings.NewReader(upload))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/sessions/" + created.ID + "/options")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `[{"label": "seq1 - ATGC", "value": "ATGC"}]`, string(body))
}

func TestStatelessAnalysis(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig(t), log.New(io.Discard)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/analysis/contains", "application/json",
		strings.NewReader(`{"target": "ATGC", "query": ""}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Found bool `json:"found"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Found)
}

func TestServerCmdFlags(t *testing.T) {
	cmd := newServerCmd()
	require.NoError(t, cmd.Flags().Set("port", "9191"))

	assert.Equal(t, "9191", cmd.Flags().Lookup("port").Value.String())
}

func TestRouterSessionLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Session.MaxSessions = 1
	srv := httptest.NewServer(newRouter(cfg, log.New(io.Discard)))
	defer srv.Close()

	create := func() string {
		resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		return created.ID
	}

	first := create()
	second := create()

	resp, err := http.Get(srv.URL + "/api/sessions/" + first + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/sessions/" + second + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
