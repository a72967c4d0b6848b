package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func TestLogging(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	tests := []struct {
		name          string
		handlerStatus int
		path          string
		method        string
	}{
		{"ok status", http.StatusOK, "/board", http.MethodGet},
		{"created", http.StatusCreated, "/board/events", http.MethodPost},
		{"bad gateway", http.StatusBadGateway, "/board/events", http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte("ok"))
			})
			handler := alice.New(RequestID, Logging(logger)).Then(next)
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, "request", cap.record.Message)
			attrs := make(map[string]slog.Value)
			cap.record.Attrs(func(a slog.Attr) bool {
				attrs[a.Key] = a.Value
				return true
			})
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, int64(tt.handlerStatus), attrs["status"].Int64())
			require.Equal(t, int64(2), attrs["bytes"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, "req-1", attrs["request_id"].String())
			require.Equal(t, tt.handlerStatus, rr.Code)
		})
	}
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 36)
	require.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})
	handler := CORS([]string{"http://localhost:5173/ ", ""})(next)

	t.Run("preflight allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/board", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("preflight other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/board", nil)
		req.Header.Set("Origin", "http://evil.test")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request exposes location", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/board", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, corsExposeHeaders, rr.Header().Get("Access-Control-Expose-Headers"))
	})
}
