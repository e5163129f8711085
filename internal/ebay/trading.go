package ebay

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resellops/resell-sync/internal/metrics"
)

const (
	defaultTradingURL  = "https://api.ebay.com/ws/api.dll"
	defaultSiteID      = "0" // US
	compatibilityLevel = "967"
)

// Client implements TradingClient against the eBay Trading API.
type Client struct {
	token       string
	tradingURL  string
	siteID      string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the Client.
type Option func(*Client)

// WithTradingURL overrides the default Trading API endpoint.
func WithTradingURL(u string) Option {
	return func(c *Client) {
		c.tradingURL = u
	}
}

// WithSiteID overrides the default eBay site ID.
func WithSiteID(id string) Option {
	return func(c *Client) {
		c.siteID = id
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and
// daily API call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a Trading API client authenticating with the given
// user token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		tradingURL: defaultTradingURL,
		siteID:     defaultSiteID,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetItem implements TradingClient.GetItem.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Item, error) {
	req := getItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.token},
		ItemID:               itemID,
		DetailLevel:          "ReturnAll",
		IncludeItemSpecifics: true,
	}

	var resp getItemResponse
	if err := c.call(ctx, "GetItem", req, &resp); err != nil {
		return nil, err
	}
	if err := ackError("GetItem", resp.Ack, resp.Errors); err != nil {
		return nil, err
	}

	return convertItem(itemID, &resp.Item), nil
}

// EndItem implements TradingClient.EndItem.
func (c *Client) EndItem(ctx context.Context, itemID string, reason EndReason) error {
	req := endItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.token},
		ItemID:               itemID,
		EndingReason:         string(reason),
	}

	var resp endItemResponse
	if err := c.call(ctx, "EndItem", req, &resp); err != nil {
		return err
	}
	return ackError("EndItem", resp.Ack, resp.Errors)
}

// call executes one Trading API request. The call name goes in a
// header; the token rides inside the XML body.
func (c *Client) call(ctx context.Context, callName string, reqBody, respBody any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayAPICallsTotal.Inc()
	}

	payload, err := xml.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", callName, err)
	}
	payload = append([]byte(xml.Header), payload...)

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.tradingURL, bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", callName, err)
	}

	httpReq.Header.Set("X-EBAY-API-CALL-NAME", callName)
	httpReq.Header.Set("X-EBAY-API-SITEID", c.siteID)
	httpReq.Header.Set("X-EBAY-API-COMPATIBILITY-LEVEL", compatibilityLevel)
	httpReq.Header.Set("Content-Type", "text/xml")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", callName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", callName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eBay API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := xml.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("parsing %s response: %w", callName, err)
	}
	return nil
}

// ackError converts a Failure Ack into an *APIError. Warning acks are
// treated as success, matching eBay's own guidance.
func ackError(call, ack string, errs []apiError) error {
	if ack == "Success" || ack == "Warning" {
		return nil
	}

	apiErr := &APIError{Call: call, Code: "unknown", Message: "no message"}
	if len(errs) > 0 {
		apiErr.Code = errs[0].ErrorCode
		if msg := stripHTML(errs[0].LongMessage); msg != "" {
			apiErr.Message = msg
		} else if msg := stripHTML(errs[0].ShortMessage); msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

func convertItem(itemID string, w *wireItem) *Item {
	item := &Item{
		ItemID:          itemID,
		Title:           oneLine(w.Title),
		DescriptionHTML: w.Description,
		Description:     stripHTML(w.Description),
		Price:           strings.TrimSpace(w.SellingStatus.CurrentPrice.Value),
		Currency:        w.SellingStatus.CurrentPrice.CurrencyID,
		Category:        strings.TrimSpace(w.PrimaryCategory.CategoryName),
		Condition:       strings.TrimSpace(w.ConditionDisplayName),
		Specifics:       make(map[string]string),
	}
	if w.ItemID != "" {
		item.ItemID = w.ItemID
	}

	for _, nv := range w.ItemSpecifics.NameValueLists {
		name := strings.TrimSpace(nv.Name)
		if name == "" || len(nv.Values) == 0 {
			continue
		}
		val := strings.TrimSpace(nv.Values[0])
		item.Specifics[name] = val
		if strings.EqualFold(name, "brand") {
			item.Brand = val
		}
	}

	for _, p := range w.PictureDetails.PictureURLs {
		if u := strings.TrimSpace(p); u != "" {
			item.PictureURLs = append(item.PictureURLs, u)
		}
	}

	return item
}
