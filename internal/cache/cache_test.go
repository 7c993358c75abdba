package cache

import (
	"testing"

	"stylus/internal/crate"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPageRoundTrip(t *testing.T) {
	c := openTestCache(t)

	key := PageKey("collection", crate.ListQuery{Page: 2, PerPage: 50, SortBy: "artist"})
	page := crate.Page[crate.Album]{
		Items:      []crate.Album{{ID: 7, Artist: "Can", Title: "Future Days"}},
		Pagination: crate.Pagination{Page: 2, Pages: 5, Total: 230, PerPage: 50},
	}
	if err := PutPage(c, key, page); err != nil {
		t.Fatalf("PutPage returned error: %v", err)
	}

	got, ok := GetPage[crate.Album](c, key)
	if !ok {
		t.Fatalf("GetPage missed a key that was just stored")
	}
	if len(got.Items) != 1 || got.Items[0].Artist != "Can" {
		t.Fatalf("items = %#v, want stored album", got.Items)
	}
	if got.Pagination.Total != 230 {
		t.Fatalf("Total = %d, want 230", got.Pagination.Total)
	}
}

func TestGetPage_Miss(t *testing.T) {
	c := openTestCache(t)
	if _, ok := GetPage[crate.Album](c, "collection?page=9"); ok {
		t.Fatalf("GetPage reported a hit for an empty cache")
	}
}

func TestPageKey_DistinguishesQueries(t *testing.T) {
	a := PageKey("collection", crate.ListQuery{Page: 1, Search: "miles"})
	b := PageKey("collection", crate.ListQuery{Page: 1, Search: "mingus"})
	if a == b {
		t.Fatalf("different searches produced identical keys: %q", a)
	}
}

func TestInvalidateView(t *testing.T) {
	c := openTestCache(t)

	collectionKey := PageKey("collection", crate.ListQuery{Page: 1})
	historyKey := PageKey("history", crate.ListQuery{Page: 1})
	page := crate.Page[crate.Album]{Items: []crate.Album{{ID: 1}}}
	if err := PutPage(c, collectionKey, page); err != nil {
		t.Fatalf("PutPage: %v", err)
	}
	if err := PutPage(c, historyKey, page); err != nil {
		t.Fatalf("PutPage: %v", err)
	}

	c.InvalidateView("collection")

	if _, ok := GetPage[crate.Album](c, collectionKey); ok {
		t.Fatalf("collection page survived invalidation")
	}
	if _, ok := GetPage[crate.Album](c, historyKey); !ok {
		t.Fatalf("history page was dropped by a collection invalidation")
	}
}

func TestReadState(t *testing.T) {
	c := openTestCache(t)

	if c.IsRead("n-1") {
		t.Fatalf("fresh cache reported n-1 as read")
	}
	if err := c.MarkRead("n-1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !c.IsRead("n-1") {
		t.Fatalf("IsRead = false after MarkRead")
	}
}

func TestLocalNotifications(t *testing.T) {
	c := openTestCache(t)

	n, err := c.AddLocalNotification(crate.NotifySuccess, "Backup complete", "Exported 230 albums")
	if err != nil {
		t.Fatalf("AddLocalNotification: %v", err)
	}
	if n.ID == "" {
		t.Fatalf("notification missing generated ID")
	}
	if !c.IsLocalNotification(n.ID) {
		t.Fatalf("IsLocalNotification = false for a stored local entry")
	}
	if c.IsLocalNotification("srv-1") {
		t.Fatalf("IsLocalNotification = true for a server ID")
	}

	list := c.LocalNotifications()
	if len(list) != 1 || list[0].Title != "Backup complete" {
		t.Fatalf("LocalNotifications = %#v, want the stored entry", list)
	}
	if list[0].Read {
		t.Fatalf("new notification already marked read")
	}

	if err := c.MarkRead(n.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	list = c.LocalNotifications()
	if !list[0].Read {
		t.Fatalf("read state not applied to local notifications")
	}

	if err := c.DismissLocalNotification(n.ID); err != nil {
		t.Fatalf("DismissLocalNotification: %v", err)
	}
	if remaining := c.LocalNotifications(); len(remaining) != 0 {
		t.Fatalf("notification survived dismissal: %#v", remaining)
	}
}

func TestOpen_SecondInstanceLocked(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer first.Close()

	if _, err := Open(dir); err != ErrLocked {
		t.Fatalf("second Open error = %v, want ErrLocked", err)
	}
}
