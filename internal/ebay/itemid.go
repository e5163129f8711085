package ebay

import (
	"fmt"
	"regexp"
	"strings"
)

// Item IDs are 8-20 digit numbers, but operators usually paste full
// listing URLs. Accept both, plus the legacy item=/hash=item query
// forms.
var (
	reBareItemID = regexp.MustCompile(`^\d{8,20}$`)
	reItmPath    = regexp.MustCompile(`/itm/(?:[^/]+/)?(\d{8,20})`)
	reItemParam  = regexp.MustCompile(`(?:item=|hash=item)(\d{8,20})`)
)

// ExtractItemID pulls an eBay item ID out of a bare ID or listing URL.
func ExtractItemID(value string) (string, error) {
	s := strings.TrimSpace(value)

	if reBareItemID.MatchString(s) {
		return s, nil
	}
	if m := reItmPath.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if m := reItemParam.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("no eBay item ID found in %q; paste the full listing URL or the numeric ItemID", value)
}
