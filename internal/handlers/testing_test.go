package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mistore/storefront/internal/config"
)

const testSessionHeader = "X-Session-Id"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Session:  config.SessionConfig{Header: testSessionHeader},
		AppEnv:   "test",
		LogLevel: "error",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewDeps(cfg, log))
}

// do sends a request as the given session and returns the recorder
func do(t *testing.T, h http.Handler, sessionID, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		req.Header.Set(testSessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func newSessionID() string {
	return uuid.NewString()
}
