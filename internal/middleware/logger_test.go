package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(log, testHeader)(Session(testHeader)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/2", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}

	if entry["method"] != http.MethodDelete {
		t.Errorf("method = %v, want DELETE", entry["method"])
	}
	if entry["path"] != "/api/cart/items/2" {
		t.Errorf("path = %v", entry["path"])
	}
	if status, _ := entry["status"].(float64); int(status) != http.StatusTeapot {
		t.Errorf("status = %v, want %d", entry["status"], http.StatusTeapot)
	}
	if entry["session_id"] != w.Header().Get(testHeader) {
		t.Errorf("session_id = %v, want %s", entry["session_id"], w.Header().Get(testHeader))
	}
}
