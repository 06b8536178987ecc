package handlers

import (
	"net/http"
	"testing"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/session"
)

func TestSessionHandler_GetSession(t *testing.T) {
	r := newTestRouter(t)
	sid := newSessionID()

	do(t, r, sid, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 3})
	do(t, r, sid, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 3})
	do(t, r, sid, http.MethodPost, "/api/notifications/1/read", nil)

	w := do(t, r, sid, http.MethodGet, "/api/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var snap session.Snapshot
	decode(t, w, &snap)

	want := session.Snapshot{
		ID:          sid,
		Tab:         session.TabCatalog,
		CartCount:   1,
		CartTotal:   2 * 15990,
		UnreadCount: 1,
	}
	if snap != want {
		t.Errorf("snapshot = %+v, want %+v", snap, want)
	}
}

func TestSessionHandler_UpdateSession(t *testing.T) {
	r := newTestRouter(t)
	sid := newSessionID()

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		wantTab        session.Tab
		wantQuery      string
	}{
		{
			name:           "switch tab",
			body:           map[string]string{"tab": "orders"},
			expectedStatus: http.StatusOK,
			wantTab:        session.TabOrders,
		},
		{
			name:           "set query keeps tab",
			body:           map[string]string{"query": "часы"},
			expectedStatus: http.StatusOK,
			wantTab:        session.TabOrders,
			wantQuery:      "часы",
		},
		{
			name:           "unknown tab",
			body:           map[string]string{"tab": "checkout", "query": "ignored"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "[]",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "both fields",
			body:           map[string]string{"tab": "profile", "query": ""},
			expectedStatus: http.StatusOK,
			wantTab:        session.TabProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, sid, http.MethodPut, "/api/session", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var snap session.Snapshot
			decode(t, w, &snap)
			if snap.Tab != tt.wantTab || snap.Query != tt.wantQuery {
				t.Errorf("snapshot = %+v, want tab %s query %q", snap, tt.wantTab, tt.wantQuery)
			}
		})
	}
}

func TestSessionHandler_QueryFiltersCatalog(t *testing.T) {
	r := newTestRouter(t)
	sid := newSessionID()

	do(t, r, sid, http.MethodPut, "/api/session", map[string]string{"query": "ФОТО"})

	var products []models.Product
	decode(t, do(t, r, sid, http.MethodGet, "/api/product", nil), &products)
	if len(products) != 1 || products[0].ID != 5 {
		t.Errorf("products = %+v, want only product 5", products)
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "", http.MethodGet, "/api/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var profile models.Profile
	decode(t, w, &profile)
	if profile.Name != "Иван Петров" || profile.Phone != "+7 (999) 123-45-67" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, newSessionID(), http.MethodGet, "/api/cart", nil)

	w := do(t, r, "", http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var health HealthResponse
	decode(t, w, &health)
	if health.Status != "healthy" || health.Env != "test" || health.Version != Version {
		t.Errorf("health = %+v", health)
	}
	if health.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", health.Sessions)
	}
}
