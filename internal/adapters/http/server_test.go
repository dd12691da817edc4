package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automatalab/automata"
	httpAdapter "github.com/automatalab/automata/internal/adapters/http"
	"github.com/automatalab/automata/internal/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := httpAdapter.NewHandler(automata.New(), logging.NewNop())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestListDefinitions(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definitions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Definitions []string `json:"definitions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"01", "ab"}, body.Definitions)
}

func TestGetDefinition(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definitions/ab")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var def struct {
		Name   string   `json:"name"`
		Start  string   `json:"start"`
		Accept []string `json:"accept"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&def))
	assert.Equal(t, "ab", def.Name)
	assert.Equal(t, "0", def.Start)
	assert.Equal(t, []string{"19", "22"}, def.Accept)
}

func TestGetDefinition_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definitions/pda")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetGraph(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definitions/ab/graph")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "graph LR"))

	resp, err = http.Get(srv.URL + "/definitions/ab/graph?format=dot")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "digraph automaton")

	resp, err = http.Get(srv.URL + "/definitions/ab/graph?format=svg")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func postSimulate(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/simulate", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSimulate(t *testing.T) {
	srv := newTestServer(t)

	resp := postSimulate(t, srv, `{"definition": "ab", "input": "ba"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpAdapter.SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.RunID)
	assert.Equal(t, "ab", body.Definition)
	assert.False(t, body.Accepted)
	assert.Nil(t, body.Error)
	require.Len(t, body.Trace, 3)
	assert.Equal(t, "0", body.Trace[0].State)
}

func TestSimulate_InvalidSymbol(t *testing.T) {
	srv := newTestServer(t)

	resp := postSimulate(t, srv, `{"definition": "ab", "input": "bca"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpAdapter.SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "invalid_symbol", string(body.Error.Kind))
	assert.Equal(t, 1, body.Error.Position)
	assert.False(t, body.Accepted)
	assert.Len(t, body.Trace, 2)
}

func TestSimulate_UnknownDefinition(t *testing.T) {
	srv := newTestServer(t)

	resp := postSimulate(t, srv, `{"definition": "pda", "input": "ab"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSimulate_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := postSimulate(t, srv, `{"definition": ""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postSimulate(t, srv, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Drive one run so the counter appears in the exposition.
	postSimulate(t, srv, `{"definition": "01", "input": "0011000000111"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "automata_simulations_total")
	assert.Contains(t, string(body), `verdict="accepted"`)
}
