package app

import (
	"context"
	"log"
	"sort"
	"time"

	"stylus/internal/cache"
	"stylus/internal/crate"
	"stylus/internal/state"
)

const defaultPollInterval = 2 * time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, starting with an immediate refresh. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client *crate.Client, localCache *cache.Cache, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, store, client, localCache)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refresh performs one poll cycle. The history sync status is the anchor: if
// it cannot be fetched the whole cycle is recorded as a failure and the store
// keeps its previous data. The remaining fetches are best effort.
func refresh(ctx context.Context, store *state.Store, client *crate.Client, localCache *cache.Cache) {
	historySync, err := client.FetchHistorySyncStatus(ctx)
	if err != nil {
		store.Update(state.Refresh{}, err)
		log.Printf("status poll failed: %v", err)
		return
	}

	update := state.Refresh{HistorySync: historySync}

	if collectionSync, err := client.FetchCollectionSyncStatus(ctx); err == nil {
		update.CollectionSync = collectionSync
	} else {
		log.Printf("collection sync poll failed: %v", err)
	}

	if releaseCheck, err := client.FetchReleaseCheckStatus(ctx); err == nil {
		update.ReleaseCheck = releaseCheck
	} else {
		log.Printf("release check poll failed: %v", err)
	}

	if sellers, err := client.FetchSellers(ctx); err == nil {
		update.Sellers = sellers
		update.SellerScans = fetchScans(ctx, client, sellers)
	} else {
		log.Printf("sellers poll failed: %v", err)
	}

	if notifications, err := client.FetchNotifications(ctx, false); err == nil {
		update.Notifications = notifications
	} else {
		log.Printf("notifications poll failed: %v", err)
	}
	update.Notifications = mergeNotifications(localCache, update.Notifications)

	store.Update(update, nil)
}

// mergeNotifications folds locally-created notifications into the server
// feed, newest first.
func mergeNotifications(localCache *cache.Cache, server []crate.Notification) []crate.Notification {
	if localCache == nil {
		return server
	}
	local := localCache.LocalNotifications()
	if len(local) == 0 {
		return server
	}
	merged := make([]crate.Notification, 0, len(local)+len(server))
	merged = append(merged, local...)
	merged = append(merged, server...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ParsedTimestamp().After(merged[j].ParsedTimestamp())
	})
	return merged
}

func fetchScans(ctx context.Context, client *crate.Client, sellers []crate.Seller) map[string]crate.SellerScanStatus {
	scans := make(map[string]crate.SellerScanStatus, len(sellers))
	for _, seller := range sellers {
		scan, err := client.FetchSellerScanStatus(ctx, seller.Username)
		if err != nil {
			continue
		}
		scans[seller.Username] = *scan
	}
	if len(scans) == 0 {
		return nil
	}
	return scans
}
