package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/pipeline"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

const runIDHeader = "X-Run-Id"

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	if s.Store != nil {
		if err := s.Store.Ping(r.Context()); err != nil {
			zap.L().Warn("api: store ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) basicQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questionnaire.Basic().ForCountry(r.URL.Query().Get("country")))
}

func (s *server) advancedQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questionnaire.AdvancedCatalog())
}

func (s *server) basicStrategy(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, false)
}

func (s *server) advancedStrategy(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, true)
}

func (s *server) generate(w http.ResponseWriter, r *http.Request, advanced bool) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var form questionnaire.Form
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, doc, err := s.Pipeline.Run(r.Context(), &form, advanced, s.Renderer, format)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	if out.Run.ID != "" {
		w.Header().Set(runIDHeader, out.Run.ID)
	}
	if format == render.FormatPDF || format == render.FormatXLSX {
		w.Header().Set("Content-Disposition", `attachment; filename="strategy.`+format.Extension()+`"`)
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(doc) //nolint:errcheck
}

func (s *server) listRuns(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, "run history is disabled")
		return
	}

	q := r.URL.Query()
	filter := store.RunFilter{
		Kind:         model.RunKind(q.Get("kind")),
		BusinessName: q.Get("business"),
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &filter.Limit}, {"offset", &filter.Offset}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, p.name+" must be a non-negative integer")
			return
		}
		*p.dst = n
	}
	switch filter.Kind {
	case "", model.RunKindBasic, model.RunKindAdvanced:
	default:
		writeError(w, http.StatusBadRequest, "kind must be basic or advanced")
		return
	}

	runs, err := s.Store.ListRuns(r.Context(), filter)
	if err != nil {
		zap.L().Error("api: list runs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list runs failed")
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *server) getRun(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, "run history is disabled")
		return
	}

	run, err := s.Store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		zap.L().Error("api: get run", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get run failed")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeGenerateError(w http.ResponseWriter, err error) {
	if fe, ok := model.AsFieldError(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": fe.Error(),
			"field": fe.Field,
			"kind":  string(fe.Kind),
		})
		return
	}
	if errors.Is(err, pipeline.ErrRender) {
		zap.L().Error("api: render failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	zap.L().Error("api: generate failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "generation failed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
