package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorace/app"
)

func newTestServer() *Server {
	return NewServer(app.NewAnalysisService(app.NewMemoryStore()))
}

func postAnalysis(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyses", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"a":  [244, 249, 257, 260, 264, 268, 271, 274, 277, 291],
	"b":  [245, 246, 248, 250, 251, 252, 253, 254, 255, 259, 263, 265, 279, 282, 284, 319],
	"ab": [234, 238, 240, 240, 243, 243, 245, 251, 254, 256, 259, 270, 280]
}`

func TestCreateAnalysis(t *testing.T) {
	s := newTestServer()
	rec := postAnalysis(t, s, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var analysis app.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.NotEmpty(t, analysis.ID)
	require.NotNil(t, analysis.Table)
	assert.Equal(t, []string{"A", "B", "AB", "Sum"}, analysis.Table.Names)
	assert.Equal(t, 10, analysis.Table.NumRows())
	assert.Len(t, analysis.Profiles, 3)
}

func TestCreateAnalysis_BadInput(t *testing.T) {
	s := newTestServer()

	rec := postAnalysis(t, s, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAnalysis(t, s, `{"a": [], "b": [100], "ab": [100]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAnalysis(t, s, `{"a": [100], "b": [100], "ab": [100], "names": ["only", "two"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis(t *testing.T) {
	s := newTestServer()
	rec := postAnalysis(t, s, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created app.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)
	getRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched app.Analysis
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Table, fetched.Table)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses/no-such-id", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAnalyses(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	postAnalysis(t, s, validBody)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyses", nil))
	var analyses []app.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analyses))
	assert.Len(t, analyses, 1)
}

func TestAnalysisReport(t *testing.T) {
	s := newTestServer()
	rec := postAnalysis(t, s, validBody)
	var created app.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID+"/report", nil)
	repRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(repRec, req)

	require.Equal(t, http.StatusOK, repRec.Code)
	assert.Contains(t, repRec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, repRec.Body.String(), "Race model analysis")
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
