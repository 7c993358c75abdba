package crate

import (
	"strings"
	"time"
)

// Pagination mirrors the pagination block carried by list endpoints.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// Page bundles one page of results with its pagination metadata.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// JobStatus is the lifecycle state of a pollable server job.
type JobStatus string

const (
	JobIdle      JobStatus = "idle"
	JobSyncing   JobStatus = "syncing"
	JobPaused    JobStatus = "paused"
	JobScanning  JobStatus = "scanning"
	JobMatching  JobStatus = "matching"
	JobCompleted JobStatus = "completed"
	JobError     JobStatus = "error"
)

// InProgress reports whether the job is still running and should keep being
// polled. Paused counts as in progress: the server may resume on its own.
func (s JobStatus) InProgress() bool {
	switch s {
	case JobSyncing, JobPaused, JobScanning, JobMatching:
		return true
	}
	return false
}

// Terminal reports whether the job has finished, successfully or not.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobError
}

// SyncStatus mirrors the scrobble/collection sync job status payloads.
type SyncStatus struct {
	Status                 JobStatus `json:"status"`
	Progress               float64   `json:"progress"`
	ScrobblesFetched       int       `json:"scrobblesFetched"`
	TotalScrobbles         int       `json:"totalScrobbles"`
	EstimatedTimeRemaining int       `json:"estimatedTimeRemaining"` // seconds
	Error                  string    `json:"error"`
}

// ETA returns the estimated time remaining as a duration, zero when unknown.
func (s SyncStatus) ETA() time.Duration {
	if s.EstimatedTimeRemaining <= 0 {
		return 0
	}
	return time.Duration(s.EstimatedTimeRemaining) * time.Second
}

// HealthStatus mirrors GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"`
}

// Album is one record in the Discogs collection.
type Album struct {
	ID          int64    `json:"id"`
	ReleaseID   int64    `json:"releaseId"`
	Artist      string   `json:"artist"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Format      string   `json:"format"`
	Folder      string   `json:"folder"`
	Genres      []string `json:"genres"`
	PlayCount   int      `json:"playCount"`
	LastPlayed  string   `json:"lastPlayed"`
	AddedAt     string   `json:"addedAt"`
	CoverURL    string   `json:"coverUrl"`
	DiscogsURL  string   `json:"discogsUrl"`
	MatchStatus string   `json:"matchStatus"`
}

// ParsedLastPlayed returns the last play timestamp when present.
func (a Album) ParsedLastPlayed() time.Time {
	return parseTime(a.LastPlayed)
}

// ParsedAddedAt returns the collection-add timestamp when present.
func (a Album) ParsedAddedAt() time.Time {
	return parseTime(a.AddedAt)
}

// Folder is a Discogs collection folder.
type Folder struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PlayEntry is one scrobbled album play in the listening history.
type PlayEntry struct {
	ID         int64  `json:"id"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	Track      string `json:"track"`
	PlayedAt   string `json:"playedAt"`
	AlbumID    int64  `json:"albumId"`
	InCrate    bool   `json:"inCollection"`
	TrackCount int    `json:"trackCount"`
}

// ParsedPlayedAt returns the scrobble timestamp when present.
func (p PlayEntry) ParsedPlayedAt() time.Time {
	return parseTime(p.PlayedAt)
}

// Mapping links a name as it appears in listening history to its Discogs
// collection entry (a "discovery mapping").
type Mapping struct {
	ID           int64  `json:"id"`
	HistoryName  string `json:"historyName"`
	CollectionID int64  `json:"collectionId"`
	Artist       string `json:"artist"`
	CreatedAt    string `json:"createdAt"`
}

// Suggestion is one listening suggestion produced by the server.
type Suggestion struct {
	AlbumID    int64   `json:"albumId"`
	Artist     string  `json:"artist"`
	Title      string  `json:"title"`
	Reason     string  `json:"reason"`
	Score      float64 `json:"score"`
	LastPlayed string  `json:"lastPlayed"`
}

// Release is a tracked upcoming or recent vinyl release.
type Release struct {
	ID          int64  `json:"id"`
	Artist      string `json:"artist"`
	Title       string `json:"title"`
	ReleaseDate string `json:"releaseDate"`
	Format      string `json:"format"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	Seen        bool   `json:"seen"`
	FoundAt     string `json:"foundAt"`
}

// ParsedReleaseDate returns the release date when present.
func (r Release) ParsedReleaseDate() time.Time {
	return parseTime(r.ReleaseDate)
}

// Seller is a monitored marketplace seller.
type Seller struct {
	Username      string `json:"username"`
	DisplayName   string `json:"displayName"`
	InventorySize int    `json:"inventorySize"`
	MatchCount    int    `json:"matchCount"`
	LastScanned   string `json:"lastScanned"`
}

// ParsedLastScanned returns the last scan timestamp when present.
func (s Seller) ParsedLastScanned() time.Time {
	return parseTime(s.LastScanned)
}

// SellerScanStatus mirrors a seller scan job status payload.
type SellerScanStatus struct {
	Username     string    `json:"username"`
	Status       JobStatus `json:"status"`
	Progress     float64   `json:"progress"`
	ItemsScanned int       `json:"itemsScanned"`
	TotalItems   int       `json:"totalItems"`
	Error        string    `json:"error"`
}

// SellerMatch is a collection want matched in a seller's inventory.
type SellerMatch struct {
	AlbumID    int64   `json:"albumId"`
	Artist     string  `json:"artist"`
	Title      string  `json:"title"`
	Condition  string  `json:"condition"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	ListingURL string  `json:"listingUrl"`
}

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyAlert   NotificationType = "alert"
)

// Notification is one entry in the server's notification feed.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
	Action    string           `json:"action,omitempty"`
}

// ParsedTimestamp returns the notification timestamp when present.
func (n Notification) ParsedTimestamp() time.Time {
	return parseTime(n.Timestamp)
}

// Settings mirrors the server settings document. Credentials are write-only:
// the server reports whether each integration is configured, never the secret.
type Settings struct {
	DiscogsUsername   string `json:"discogsUsername"`
	DiscogsConfigured bool   `json:"discogsConfigured"`
	LastfmUsername    string `json:"lastfmUsername"`
	LastfmConfigured  bool   `json:"lastfmConfigured"`
	SuggestionModel   string `json:"suggestionModel"`
}

// ConnectionTest is the result of a Discogs or Last.fm connectivity check.
type ConnectionTest struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	Detail   string `json:"detail"`
}

// BackupMode selects how an imported backup is applied.
type BackupMode string

const (
	BackupMerge   BackupMode = "merge"
	BackupReplace BackupMode = "replace"
)

const crateTimestampLayout = "2006-01-02 15:04:05"

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(crateTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
