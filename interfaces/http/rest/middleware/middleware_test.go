package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zookeepr/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	router := chi.NewRouter()
	router.Use(Logger(zap.New(core)))
	router.Get("/api/animals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/animals/3?verbose=1", nil))

	entries := logs.FilterMessage("HTTP request rejected").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
		assert.Equal(t, "/api/animals/{id}", fields["route"])
		assert.Equal(t, "/api/animals/3", fields["path"])
		assert.Equal(t, "verbose=1", fields["query"])
		assert.Equal(t, int64(2), fields["bytes"])
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel zapcore.Level
	}{
		{"success", "/api/animals", http.StatusOK, zap.InfoLevel},
		{"implicit success", "/api/animals", 0, zap.InfoLevel},
		{"server error", "/api/animals", http.StatusInternalServerError, zap.ErrorLevel},
		{"probe", "/health", http.StatusOK, zap.DebugLevel},
		{"failing probe", "/ready", http.StatusServiceUnavailable, zap.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.wantLevel, entries[0].Level)
				assert.Equal(t, "unmatched", entries[0].ContextMap()["route"])
				_, hasQuery := entries[0].ContextMap()["query"]
				assert.False(t, hasQuery)
			}
		})
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	collector := observability.NewCollector("test")
	router := chi.NewRouter()
	router.Use(Metrics(collector))
	router.Get("/api/animals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/animals/"+id, nil))
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(
		collector.HTTPRequests.WithLabelValues(http.MethodGet, "/api/animals/{id}", "404"),
	))
}
