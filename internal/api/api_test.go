package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/advanced"
	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/pipeline"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

func formBody() map[string]any {
	return map[string]any{
		"lead": map[string]any{"name": "Dana Ruiz", "email": "dana@example.com", "business_name": "Crumb & Co"},
		"answers": map[string]any{
			"country":                   "India",
			"industry":                  "Food & Beverage",
			"business_type":             "B2C (Business to Consumer)",
			"business_age":              "New business (6 months - 2 years)",
			"team_size":                 "Just me (solo)",
			"monthly_budget":            0,
			"time_capacity":             5,
			"primary_goals":             []string{"Increase brand awareness"},
			"current_platforms":         []string{"Instagram"},
			"content_types":             []string{"Photos", "Videos"},
			"brand_voice":               "Fun & Playful",
			"competitor_analysis":       "Moderately active",
			"previous_experience":       "Some basic knowledge",
			"content_creation_capacity": "Basic - can create simple content",
			"automation_preference":     "Open to automation for basic tasks",
			"measurable_goals":          "Sales conversions",
			"seasonality":               "Somewhat seasonal",
			"geographic_focus":          "National",
			"brand_stage":               "Building brand awareness",
		},
	}
}

func newTestServer(t *testing.T, st store.Store) http.Handler {
	t.Helper()
	return NewRouter(Deps{
		Pipeline: pipeline.New(advanced.Default(), st),
		Renderer: render.NewRenderer(nil),
		Store:    st,
		Server:   config.ServerConfig{CORSOrigins: []string{"*"}},
	})
}

func newSQLiteStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), config.StoreConfig{
		Driver:      "sqlite",
		DatabaseURL: filepath.Join(t.TempDir(), "api.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	return st
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestQuestions(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/v1/questions?country=India", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var qs []model.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qs))
	assert.Len(t, qs, 23)
	for _, q := range qs {
		if q.ID == "current_platforms" {
			assert.NotContains(t, q.Options, model.PlatformTikTok)
		}
	}

	rec = do(t, h, http.MethodGet, "/v1/questions/advanced", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qs))
	assert.Len(t, qs, 18)
}

func TestBasicStrategy(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodPost, "/v1/strategy", formBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get(runIDHeader))

	var res model.StrategyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.HasPlatform("Instagram"))
	assert.False(t, res.HasPlatform(model.PlatformTikTok))
	assert.Equal(t, "Crumb & Co", res.BusinessName)
}

func TestAdvancedStrategyMarkdown(t *testing.T) {
	body := formBody()
	body["advanced"] = map[string]any{"monthly_ad_budget": 900, "aov": 100}

	rec := do(t, newTestServer(t, nil), http.MethodPost, "/v1/strategy/advanced?format=md", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# 30-Day Action Plan for Crumb & Co"))
}

func TestStrategyXLSXAttachment(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodPost, "/v1/strategy?format=xlsx", formBody())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="strategy.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.NotZero(t, rec.Body.Len())
}

func TestStrategyErrors(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/strategy", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/strategy?format=docx", formBody())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing field", func(t *testing.T) {
		body := formBody()
		delete(body["answers"].(map[string]any), "industry")
		rec := do(t, h, http.MethodPost, "/v1/strategy", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "industry", resp["field"])
		assert.Equal(t, "missing", resp["kind"])
	})

	t.Run("tiktok in india", func(t *testing.T) {
		body := formBody()
		body["answers"].(map[string]any)["current_platforms"] = []string{"TikTok"}
		rec := do(t, h, http.MethodPost, "/v1/strategy", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"invalid_option"`)
	})

	t.Run("pdf without printer", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/strategy?format=pdf", formBody())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRenderFailureStoresNothing(t *testing.T) {
	st := newSQLiteStore(t)
	h := newTestServer(t, st)

	rec := do(t, h, http.MethodPost, "/v1/strategy?format=pdf", formBody())
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"render failed"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get(runIDHeader))

	rec = do(t, h, http.MethodGet, "/v1/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRunsDisabled(t *testing.T) {
	h := newTestServer(t, nil)
	assert.Equal(t, http.StatusNotImplemented, do(t, h, http.MethodGet, "/v1/runs", nil).Code)
	assert.Equal(t, http.StatusNotImplemented, do(t, h, http.MethodGet, "/v1/runs/abc", nil).Code)
}

func TestRunsHistory(t *testing.T) {
	st := newSQLiteStore(t)
	h := newTestServer(t, st)

	rec := do(t, h, http.MethodPost, "/v1/strategy", formBody())
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(runIDHeader)
	require.NotEmpty(t, id)

	rec = do(t, h, http.MethodPost, "/v1/strategy/advanced", formBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []model.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Len(t, runs, 2)

	rec = do(t, h, http.MethodGet, "/v1/runs?kind=advanced&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.True(t, runs[0].WasEstimated)

	rec = do(t, h, http.MethodGet, "/v1/runs/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var run model.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, model.RunKindBasic, run.Kind)
	assert.Equal(t, "Crumb & Co", run.BusinessName)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/runs/nope", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/runs?limit=-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/runs?kind=pro", nil).Code)

	rec = do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := NewRouter(Deps{
		Pipeline: pipeline.New(advanced.Default(), nil),
		Renderer: render.NewRenderer(nil),
		Server:   config.ServerConfig{RateLimitRPS: 0.001, RateLimitBurst: 2},
	})

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil).Code)
	rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimiterPerClient(t *testing.T) {
	l := newRateLimiter(0.001, 1)
	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))

	var disabled *rateLimiter
	assert.True(t, disabled.allow("anyone"))
	assert.Nil(t, newRateLimiter(0, 5))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/v1/strategy", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
