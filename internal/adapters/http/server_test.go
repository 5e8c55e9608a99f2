package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/typeguard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	eng, err := typeguard.New()
	require.NoError(t, err)
	return NewHandler(eng, nil)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "typeguard-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
}

func TestPostCheckValid(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/check", `{
		"schema": {"name": "string", "tags": ["string"]},
		"value":  {"name": "Ada", "tags": ["a", "b"]}
	}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
}

func TestPostCheckInvalid(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/check", `{
		"schema": {"name": "string"},
		"value":  {"name": 42}
	}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], `key "name"`)
}

func TestPostCheckStrict(t *testing.T) {
	handler := newTestHandler(t)

	body := `{
		"schema": {"name": "string"},
		"value":  {"name": "a", "extra": 1},
		"strict": true
	}`
	rr := postJSON(t, handler, "/v1/check", body)

	var resp struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors[0], "unexpected key")
}

func TestPostCheckNullValue(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/check", `{"schema": {}, "value": null}`)

	var resp struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors[0], "got null")
}

func TestPostCheckBadBody(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/check", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostMatch(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/match", `{"value": 42, "types": "string|number"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp["match"])

	// A list of type names works the same way.
	rr = postJSON(t, handler, "/v1/match", `{"value": true, "types": ["string", "number"]}`)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp["match"])
}

func TestPostMatchUnknownType(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/match", `{"value": 1, "types": "ghost"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostValidate(t *testing.T) {
	handler := newTestHandler(t)

	// json-string narrows: the response carries the decoded document.
	rr := postJSON(t, handler, "/v1/validate", `{"value": "[1, 2]", "types": "json-string"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []any{float64(1), float64(2)}, resp["value"])
}

func TestPostValidateMismatch(t *testing.T) {
	handler := newTestHandler(t)

	rr := postJSON(t, handler, "/v1/validate", `{"value": true, "types": "string|number"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Error   string   `json:"error"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Reasons, 2)
}

func TestTypesEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/types", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var listResp map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listResp))
	assert.Contains(t, listResp["types"], "string")

	req = httptest.NewRequest(http.MethodGet, "/v1/types/export", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// The export payload imports cleanly.
	rr2 := postJSON(t, handler, "/v1/types/import", rr.Body.String())
	assert.Equal(t, http.StatusOK, rr2.Code)

	rr2 = postJSON(t, handler, "/v1/types/import", `{"not": "a list"}`)
	assert.Equal(t, http.StatusBadRequest, rr2.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	postJSON(t, handler, "/v1/check", `{"schema": {"a": "string"}, "value": {"a": "x"}}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "typeguard_checks_total")
}
