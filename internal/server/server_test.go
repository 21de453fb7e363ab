package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/mechviz/internal/figure"
	"github.com/san-kum/mechviz/internal/logging"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, NewHandler(nil, logging.NewNop()), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestFigureJSON(t *testing.T) {
	h := NewHandler(nil, logging.NewNop())

	rec := get(t, h, "/figure?limit=6")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var fig figure.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Equal(t, 6.0, fig.Limit)
	assert.Len(t, fig.Positive.Series.X, 500)
	assert.Len(t, fig.Negative.Series.X, 500)
	assert.Len(t, fig.Resultant.Series.X, 500)
}

func TestFigureJSON_DefaultLimit(t *testing.T) {
	rec := get(t, NewHandler(nil, logging.NewNop()), "/figure")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig figure.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Equal(t, 1.0, fig.Limit)
}

func TestFigureJSON_BadLimit(t *testing.T) {
	h := NewHandler(nil, logging.NewNop())

	for _, target := range []string{"/figure?limit=7", "/figure?limit=-1", "/figure?limit=abc"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestFigureSVG(t *testing.T) {
	rec := get(t, NewHandler(nil, logging.NewNop()), "/figure.svg?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "<svg"))
}

func TestMetrics(t *testing.T) {
	h := NewHandler(nil, logging.NewNop())
	get(t, h, "/figure?limit=2")
	get(t, h, "/figure.svg?limit=2")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `mechviz_figures_total{format="json"} 1`)
	assert.Contains(t, body, `mechviz_figures_total{format="svg"} 1`)
	assert.Contains(t, body, "mechviz_compose_seconds_count 2")
}
