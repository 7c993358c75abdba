// Package cache persists the last good copy of list pages and locally-created
// notifications so the TUI can paint immediately on startup while fresh data
// is fetched. Everything in here is disposable; the crate server remains the
// source of truth.
package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"stylus/internal/crate"
)

var (
	bucketPages         = []byte("pages")
	bucketReadState     = []byte("read_state")
	bucketNotifications = []byte("local_notifications")
)

// ErrLocked reports that another stylus instance owns the cache directory.
var ErrLocked = fmt.Errorf("cache directory is locked by another stylus instance")

// Cache is a bbolt-backed local store scoped to one cache directory.
type Cache struct {
	db   *bolt.DB
	lock *flock.Flock
}

// Open acquires the cache directory lock and opens the database, creating
// both as needed.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "stylus.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := bolt.Open(filepath.Join(dir, "stylus.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPages, bucketReadState, bucketNotifications} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init cache buckets: %w", err)
	}

	return &Cache{db: db, lock: lock}, nil
}

// Close releases the database and the directory lock.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.db != nil {
		firstErr = c.db.Close()
	}
	if c.lock != nil {
		if err := c.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PageKey derives a stable cache key for a view and its query parameters.
func PageKey(view string, query crate.ListQuery) string {
	return view + "?" + query.Values().Encode()
}

type cachedPage struct {
	Items      json.RawMessage  `json:"items"`
	Pagination crate.Pagination `json:"pagination"`
	SavedAt    time.Time        `json:"savedAt"`
}

// PutPage stores one page of results under the given key.
func PutPage[T any](c *Cache, key string, page crate.Page[T]) error {
	items, err := json.Marshal(page.Items)
	if err != nil {
		return fmt.Errorf("encode cached page: %w", err)
	}
	entry := cachedPage{Items: items, Pagination: page.Pagination, SavedAt: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPages).Put([]byte(key), data)
	})
}

// GetPage loads one page of results. The second return is false on a miss.
func GetPage[T any](c *Cache, key string) (crate.Page[T], bool) {
	var data []byte
	_ = c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketPages).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return crate.Page[T]{}, false
	}

	var entry cachedPage
	if err := json.Unmarshal(data, &entry); err != nil {
		return crate.Page[T]{}, false
	}
	var items []T
	if err := json.Unmarshal(entry.Items, &items); err != nil {
		return crate.Page[T]{}, false
	}
	return crate.Page[T]{Items: items, Pagination: entry.Pagination}, true
}

// InvalidateView drops every cached page belonging to a view.
func (c *Cache) InvalidateView(view string) {
	prefix := []byte(view + "?")
	_ = c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPages)
		cur := b.Cursor()
		for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkRead records that a notification has been read locally.
func (c *Cache) MarkRead(id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReadState).Put([]byte(id), []byte("1"))
	})
}

// IsRead reports whether a notification was read locally.
func (c *Cache) IsRead(id string) bool {
	read := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		read = tx.Bucket(bucketReadState).Get([]byte(id)) != nil
		return nil
	})
	return read
}

// AddLocalNotification stores a notification created by the client itself
// (for example a completed backup export) and returns it with a fresh ID.
func (c *Cache) AddLocalNotification(kind crate.NotificationType, title, message string) (crate.Notification, error) {
	notification := crate.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	data, err := json.Marshal(notification)
	if err != nil {
		return crate.Notification{}, fmt.Errorf("encode notification: %w", err)
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketNotifications).Put([]byte(notification.ID), data)
	})
	if err != nil {
		return crate.Notification{}, err
	}
	return notification, nil
}

// LocalNotifications returns every locally-created notification, read state
// applied.
func (c *Cache) LocalNotifications() []crate.Notification {
	var notifications []crate.Notification
	_ = c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketNotifications).ForEach(func(_, v []byte) error {
			var n crate.Notification
			if err := json.Unmarshal(v, &n); err != nil {
				return nil
			}
			notifications = append(notifications, n)
			return nil
		})
	})
	for i := range notifications {
		if c.IsRead(notifications[i].ID) {
			notifications[i].Read = true
		}
	}
	return notifications
}

// IsLocalNotification reports whether an ID belongs to a locally-created
// notification rather than the server feed.
func (c *Cache) IsLocalNotification(id string) bool {
	local := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		local = tx.Bucket(bucketNotifications).Get([]byte(id)) != nil
		return nil
	})
	return local
}

// DismissLocalNotification removes one locally-created notification.
func (c *Cache) DismissLocalNotification(id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketNotifications).Delete([]byte(id))
	})
}
