package studwall

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/halledega/StudWalls/internal/wood"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{Engine: NewCalculator(wood.DefaultLibrary())}
}

func TestCalcHandler(t *testing.T) {
	h := newTestHandler()

	body := `{
		"units": "imperial",
		"wall_heights": [10],
		"roof_dead": 22,
		"roof_snow": 69,
		"wall_sw": 12,
		"roof_trib": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Stories, 1)
	require.Equal(t, StatusOK, res.Stories[0].Status)
	require.NotNil(t, res.Stories[0].OptimalResult())
}

func TestCalcHandlerBadPayload(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalcHandlerConfigError(t *testing.T) {
	h := newTestHandler()
	// Zero-height story must come back as a 400, not a 500.
	body := `{"wall_heights": [0], "roof_dead": 1, "roof_trib": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "height")
}

func TestBatchHandler(t *testing.T) {
	h := newTestHandler()

	body := `{"items": [
		{"units": "imperial", "wall_heights": [10], "roof_dead": 22, "roof_snow": 69, "wall_sw": 12, "roof_trib": 2},
		{"units": "imperial", "wall_heights": [10, 10], "roof_dead": 22, "roof_snow": 69, "floor_dead": 35, "floor_live": 40, "partitions": 20, "wall_sw": 12, "roof_trib": 2, "floor_trib": 11}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Batch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res BatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Results, 2)
	require.Len(t, res.Results[1].Stories, 2)
}

func TestBatchHandlerEmpty(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/batch", strings.NewReader(`{"items": []}`))
	rec := httptest.NewRecorder()
	h.Batch(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
