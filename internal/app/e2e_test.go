package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/bahr-checker/internal/app"
	"github.com/heartmarshall/bahr-checker/internal/config"
	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/transport/rest"
)

// mutaqarib musamman salim: 122 122 122 122
const mutaqaribLine = "ka kaa kaa ka kaa kaa ka kaa kaa ka kaa kaa"

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Content-Type"},
		Analysis: config.AnalysisConfig{
			MaxTextLength:      2000,
			MaxLines:           20,
			Workers:            2,
			RateLimitPerMinute: 1000,
			RecordRuns:         true,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler, cleanup := app.NewHTTPHandler(cfg, pool, logger)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postAnalyze(t *testing.T, srv *httptest.Server, text string) domain.CompositionResult {
	t.Helper()

	body, err := json.Marshal(rest.AnalyzeRequest{Text: text})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/v1/analyze", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var res domain.CompositionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func romanizedRuns(t *testing.T, srv *httptest.Server) int {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/v1/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats rest.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	for _, s := range stats.Scripts {
		if s.Script == domain.ScriptRomanized {
			return s.Runs
		}
	}
	return 0
}

func TestE2E_AnalyzeNamesCataloguedMeter(t *testing.T) {
	srv := setupServer(t)
	before := romanizedRuns(t, srv)

	res := postAnalyze(t, srv, mutaqaribLine+"\n"+mutaqaribLine)

	assert.False(t, res.HasErrors)
	require.NotNil(t, res.Meter)
	require.NotNil(t, res.Meter.Bahr, "dominant signature should be found in the seeded catalog")
	assert.Equal(t, "mutaqarib-musamman-salim", res.Meter.Bahr.Slug)
	assert.Equal(t, "122122122122", res.Dominant.WeightSignature)

	assert.Equal(t, before+1, romanizedRuns(t, srv))
}

func TestE2E_AnalyzeWithErrorsHasNoMeter(t *testing.T) {
	srv := setupServer(t)

	res := postAnalyze(t, srv, strings.Join([]string{mutaqaribLine, mutaqaribLine, "ka kaa kaa ka"}, "\n"))

	assert.True(t, res.HasErrors)
	assert.Nil(t, res.Meter)
	assert.Equal(t, domain.ErrorKindTooShort, res.Lines[2].ErrorKind)
}

func TestE2E_CatalogLookup(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/bahrs/122-122-122-122")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var b domain.Bahr
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	assert.Equal(t, "mutaqarib-musamman-salim", b.Slug)

	resp, err = http.Get(srv.URL + "/api/v1/bahrs/1x2")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestE2E_Probes(t *testing.T) {
	srv := setupServer(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
