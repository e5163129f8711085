// Package domain defines the core business types for resell-sync.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies a marketplace.
type Platform string

// Marketplace constants.
const (
	PlatformEbay     Platform = "ebay"
	PlatformDepop    Platform = "depop"
	PlatformPoshmark Platform = "poshmark"
)

// AllPlatforms lists every marketplace the system knows about.
// Cleanup targets are computed by subtracting the sale origin from this set.
func AllPlatforms() []Platform {
	return []Platform{PlatformEbay, PlatformDepop, PlatformPoshmark}
}

// ParsePlatform normalizes a raw platform string (case-insensitive, trimmed).
func ParsePlatform(raw string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(raw))); p {
	case PlatformEbay, PlatformDepop, PlatformPoshmark:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", raw)
	}
}

// Status represents the sale state of an inventory item.
type Status string

// Status constants.
const (
	StatusActive Status = "ACTIVE"
	StatusSold   Status = "SOLD"
)

// Mode records whether a dispatch performed real cleanup actions or
// only simulated them.
type Mode string

// Mode constants.
const (
	ModeSimulated Mode = "SIMULATED"
	ModeReal      Mode = "REAL"
)

// InventoryRecord tracks the sale status and per-platform cleanup
// progress for one item.
type InventoryRecord struct {
	Status Status     `json:"status"            db:"status"`
	SoldOn Platform   `json:"sold_on,omitempty" db:"sold_on"`
	SoldAt *time.Time `json:"sold_at,omitempty" db:"sold_at"`

	// Cleanup maps platform -> whether a delist attempt has been
	// confirmed successful there. The origin platform is never set
	// true by the cleanup step; the sale itself removed that listing.
	Cleanup map[Platform]bool `json:"platforms" db:"platforms"`
}

// NewInventoryRecord returns a record with all cleanup flags false.
func NewInventoryRecord() *InventoryRecord {
	cleanup := make(map[Platform]bool, 3)
	for _, p := range AllPlatforms() {
		cleanup[p] = false
	}
	return &InventoryRecord{
		Status:  StatusActive,
		Cleanup: cleanup,
	}
}

// AuditEntry is one append-only record of a processed dispatch.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp" db:"occurred_at"`
	Event     string    `json:"event"     db:"event"`
	ItemID    string    `json:"item_id"   db:"item_id"`
	Platform  Platform  `json:"platform"  db:"platform"`
	Mode      Mode      `json:"mode"      db:"mode"`
}
