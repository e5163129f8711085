package ebay

import (
	"errors"
	"fmt"
)

// ErrDailyLimitReached is returned when the daily Trading API call
// limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// Trading API error codes the adapter layer cares about. The API
// reports hundreds of codes; these are the ones that change behavior.
const (
	codeInvalidItemID    = "17"   // item does not exist or is not accessible
	codeAuctionEnded     = "1047" // listing already closed
	codeInvalidToken     = "931"  // auth token invalid
	codeTokenHardExpired = "932"  // auth token expired
)

// APIError is a failed Trading API call (Ack=Failure). It preserves
// the eBay error code so callers can classify without seeing XML.
type APIError struct {
	Call    string // GetItem, EndItem
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eBay %s failed (code %s): %s", e.Call, e.Code, e.Message)
}

// IsNotFound reports whether err means the item no longer exists or
// the listing has already ended. Callers treat this as
// success-equivalent when delisting: there is nothing left to remove.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == codeInvalidItemID || apiErr.Code == codeAuctionEnded
}

// IsAuthFailure reports whether err is an invalid or expired token.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == codeInvalidToken || apiErr.Code == codeTokenHardExpired
}
