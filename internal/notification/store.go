// Package notification holds the notification panel state for one session.
package notification

import "github.com/mistore/storefront/internal/models"

// Store is an ordered list of notifications with mutable read flags.
// It is not safe for concurrent use.
type Store struct {
	items []models.Notification
}

// NewStore creates a store over a copy of seed
func NewStore(seed []models.Notification) *Store {
	items := make([]models.Notification, len(seed))
	copy(items, seed)
	return &Store{items: items}
}

// MarkRead flags the notification as read. Unknown or already read ids are ignored.
func (s *Store) MarkRead(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return
		}
	}
}

// UnreadCount is the number of notifications not yet read
func (s *Store) UnreadCount() int {
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// List returns a copy of all notifications in seed order
func (s *Store) List() []models.Notification {
	items := make([]models.Notification, len(s.items))
	copy(items, s.items)
	return items
}
