// Package dispatch implements the event-to-action core of resell-sync:
// it normalizes heterogeneous "item sold" signals into canonical sale
// events, decides which platforms need cleanup, applies the idempotent
// state transition, invokes the platform adapters, and records every
// outcome for audit.
package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// EventItemSold is the only actionable event kind.
const EventItemSold = "ITEM_SOLD"

// RejectionReason classifies why a raw signal could not become a
// SaleEvent. Each transport maps these onto its own surface (HTTP
// status, CLI exit, skipped CSV row).
type RejectionReason string

// Rejection reasons.
const (
	// ReasonInvalidShape means required fields are missing or empty.
	ReasonInvalidShape RejectionReason = "invalid_shape"
	// ReasonUnsupportedEvent means the signal is well-formed but not an
	// item-sold event. Ignored, not an error.
	ReasonUnsupportedEvent RejectionReason = "unsupported_event"
	// ReasonUnknownPlatform means the platform is not one of the three
	// marketplaces.
	ReasonUnknownPlatform RejectionReason = "unknown_platform"
)

// RejectionError is returned by the normalizer constructors. No state
// is mutated and nothing is logged for a rejected signal.
type RejectionError struct {
	Reason RejectionReason
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("event rejected (%s): %s", e.Reason, e.Detail)
}

// ReasonOf extracts the rejection reason from err, or "" if err is not
// a rejection.
func ReasonOf(err error) RejectionReason {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return ""
}

// SaleEvent is the canonical normalized input to Dispatch. Immutable
// once constructed; only the normalizer constructors build one.
type SaleEvent struct {
	itemID string
	soldOn domain.Platform
	raw    json.RawMessage
}

// ItemID returns the sold item's identifier.
func (e SaleEvent) ItemID() string { return e.itemID }

// SoldOn returns the platform the sale happened on.
func (e SaleEvent) SoldOn() domain.Platform { return e.soldOn }

// Raw returns the original payload, kept for audit only.
func (e SaleEvent) Raw() json.RawMessage { return e.raw }

// webhookPayload accepts both notification shapes: the queue format
// {event, platform, sku} and the legacy seller-tool format
// {status: "SOLD", ebay_item_id}.
type webhookPayload struct {
	Event    string `json:"event"`
	Platform string `json:"platform"`
	SKU      string `json:"sku"`

	Status     string `json:"status"`
	EbayItemID string `json:"ebay_item_id"`
}

// FromWebhook normalizes a webhook JSON body.
//
// Validation order: required fields present, event kind recognized,
// platform known.
func FromWebhook(body []byte) (SaleEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return SaleEvent{}, &RejectionError{
			Reason: ReasonInvalidShape,
			Detail: "body is not a JSON object",
		}
	}

	// Legacy shape: {"status": "SOLD", "ebay_item_id": "..."}.
	if p.Event == "" && p.Status != "" {
		if !strings.EqualFold(strings.TrimSpace(p.Status), "SOLD") {
			return SaleEvent{}, &RejectionError{
				Reason: ReasonUnsupportedEvent,
				Detail: fmt.Sprintf("status %q is not actionable", p.Status),
			}
		}
		if strings.TrimSpace(p.EbayItemID) == "" {
			return SaleEvent{}, &RejectionError{
				Reason: ReasonInvalidShape,
				Detail: "missing ebay_item_id",
			}
		}
		return newEvent(p.EbayItemID, string(domain.PlatformEbay), body)
	}

	if p.Event == "" || p.Platform == "" || strings.TrimSpace(p.SKU) == "" {
		return SaleEvent{}, &RejectionError{
			Reason: ReasonInvalidShape,
			Detail: "event, platform and sku are required",
		}
	}
	if !strings.EqualFold(strings.TrimSpace(p.Event), EventItemSold) {
		return SaleEvent{}, &RejectionError{
			Reason: ReasonUnsupportedEvent,
			Detail: fmt.Sprintf("event %q is not actionable", p.Event),
		}
	}

	return newEvent(p.SKU, p.Platform, body)
}

// FromArgs normalizes CLI positional arguments (item_id, platform).
func FromArgs(itemID, platform string) (SaleEvent, error) {
	raw, _ := json.Marshal(map[string]string{
		"source":   "cli",
		"item_id":  itemID,
		"platform": platform,
	})
	return newEvent(itemID, platform, raw)
}

// FromCSVRow normalizes one queue row (sku, platform).
func FromCSVRow(sku, platform string) (SaleEvent, error) {
	raw, _ := json.Marshal(map[string]string{
		"source":   "csv",
		"sku":      sku,
		"platform": platform,
	})
	return newEvent(sku, platform, raw)
}

func newEvent(itemID, platform string, raw json.RawMessage) (SaleEvent, error) {
	id := strings.TrimSpace(itemID)
	if id == "" {
		return SaleEvent{}, &RejectionError{
			Reason: ReasonInvalidShape,
			Detail: "item id is empty",
		}
	}

	p, err := domain.ParsePlatform(platform)
	if err != nil {
		return SaleEvent{}, &RejectionError{
			Reason: ReasonUnknownPlatform,
			Detail: err.Error(),
		}
	}

	return SaleEvent{itemID: id, soldOn: p, raw: raw}, nil
}
