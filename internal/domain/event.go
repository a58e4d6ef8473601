package domain

import (
	"time"

	"github.com/opencontainers/go-digest"
)

// EventType defines the type of event that occurred.
type EventType string

const (
	EventManifestPushed  EventType = "manifest.pushed"
	EventManifestDeleted EventType = "manifest.deleted"
	EventBlobReclaimed   EventType = "blob.reclaimed"
	EventProxyFetched    EventType = "proxy.fetched"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID         string
	Type       EventType
	Timestamp  time.Time
	Repository string
	Reference  string
	Data       any
}

// ManifestPushedPayload contains data for manifest.pushed events.
type ManifestPushedPayload struct {
	Name        string
	Reference   string
	Digest      digest.Digest
	Annotations map[string]string
}

// ManifestDeletedPayload contains data for manifest.deleted events.
type ManifestDeletedPayload struct {
	Name      string
	Reference string
}

// BlobReclaimedPayload contains data for blob.reclaimed events.
type BlobReclaimedPayload struct {
	Digest digest.Digest
	Size   int64
}

// ProxyFetchedPayload contains data for proxy.fetched events.
type ProxyFetchedPayload struct {
	Alias      string
	Repository string
	Reference  string
	Digest     digest.Digest
}
