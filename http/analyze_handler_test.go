package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lease-agent/domain"
	"lease-agent/repository"
	"lease-agent/service"
)

func newTestHandler() (*AnalyzeHandler, *repository.AnalysisRepositoryMemory) {
	repo := repository.NewAnalysisRepositoryMemory()
	svc := service.NewLeaseService(repo, repository.NewMockCache(), nil)
	return NewAnalyzeHandler(svc), repo
}

func analyzeRequest(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/lease/analyze", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAnalyzeHandler_OK(t *testing.T) {
	handler, repo := newTestHandler()

	body := []byte(`{
		"msrp": 50000,
		"selling_price": 46000,
		"payment_frequency": "monthly",
		"payment_amount": 650,
		"lease_term_months": 36,
		"residual_value": 27500
	}`)

	w := httptest.NewRecorder()
	handler.Analyze(w, analyzeRequest(body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var analysis domain.LeaseAnalysis
	require.NoError(t, json.NewDecoder(w.Body).Decode(&analysis))
	assert.InDelta(t, 4.4444, analysis.APR, 0.001)
	assert.Equal(t, "A", analysis.SellingPriceGrade.Letter)
	assert.NotEmpty(t, analysis.Tips)

	records, err := repo.ListRecent(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAnalyzeHandler_UnsupportedMediaType(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/lease/analyze", bytes.NewBufferString("msrp=50000"))
	w := httptest.NewRecorder()
	handler.Analyze(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestAnalyzeHandler_BadJSON(t *testing.T) {
	handler, _ := newTestHandler()

	w := httptest.NewRecorder()
	handler.Analyze(w, analyzeRequest([]byte(`{invalid-json}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeHandler_ValidationError(t *testing.T) {
	handler, _ := newTestHandler()

	body := []byte(`{
		"msrp": 0,
		"selling_price": 46000,
		"payment_frequency": "monthly",
		"payment_amount": 650,
		"lease_term_months": 36,
		"residual_value": 27500
	}`)

	w := httptest.NewRecorder()
	handler.Analyze(w, analyzeRequest(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "msrp")
}
