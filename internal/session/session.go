// Package session owns the per-visitor view state: search query, active tab,
// cart and notification panel. Every operation on a session runs under its
// lock, so requests for one visitor never interleave.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/mistore/storefront/internal/cart"
	"github.com/mistore/storefront/internal/notification"
)

var (
	ErrUnknownTab = errors.New("unknown tab")
)

// Tab is the storefront section the visitor is looking at
type Tab string

const (
	TabCatalog   Tab = "catalog"
	TabOrders    Tab = "orders"
	TabProfile   Tab = "profile"
	TabFavorites Tab = "favorites"
)

// ParseTab validates a tab name
func ParseTab(name string) (Tab, error) {
	switch t := Tab(name); t {
	case TabCatalog, TabOrders, TabProfile, TabFavorites:
		return t, nil
	}
	return "", ErrUnknownTab
}

// Session is the explicit view state of one visitor
type Session struct {
	ID            string
	Query         string
	Tab           Tab
	Cart          *cart.Cart
	Notifications *notification.Store

	confirmations *cart.Recorder
	mu            sync.Mutex
	lastSeen      time.Time // guarded by Manager.mu
}

// Snapshot is the read-only summary rendered in the header badges
type Snapshot struct {
	ID          string `json:"id"`
	Query       string `json:"query"`
	Tab         Tab    `json:"tab"`
	CartCount   int    `json:"cartCount"`
	CartTotal   int64  `json:"cartTotal"`
	UnreadCount int    `json:"unreadCount"`
}

// SetTab switches the active tab
func (s *Session) SetTab(name string) error {
	tab, err := ParseTab(name)
	if err != nil {
		return err
	}
	s.Tab = tab
	return nil
}

// Confirmations returns cart confirmations emitted since the last call
func (s *Session) Confirmations() []string {
	return s.confirmations.Drain()
}

// Snapshot computes the current summary
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.ID,
		Query:       s.Query,
		Tab:         s.Tab,
		CartCount:   s.Cart.Count(),
		CartTotal:   s.Cart.Total(),
		UnreadCount: s.Notifications.UnreadCount(),
	}
}
