// Package main implements a mock eBay Trading API server for local
// development. It serves GetItem responses from a JSON fixture and
// tracks EndItem state in memory, so delist flows can be exercised
// without real eBay credentials.
package main

import (
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

type fixtureItem struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Currency    string            `json:"currency"`
	Category    string            `json:"category"`
	Condition   string            `json:"condition"`
	Specifics   map[string]string `json:"specifics"`
	Pictures    []string          `json:"pictures"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/items.json", "path to item fixture")
	token := flag.String("token", "mock-token", "auth token the server accepts")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(items))

	api := newTradingAPI(items, *token, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/api.dll", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		api.handle(w, r)
	})

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay Trading API server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (map[string]fixtureItem, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var items map[string]fixtureItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return items, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"call", r.Header.Get("X-EBAY-API-CALL-NAME"),
		)
		next.ServeHTTP(w, r)
	})
}

// tradingAPI holds the mock item catalog and the set of items already
// ended by EndItem calls.
type tradingAPI struct {
	mu    sync.Mutex
	items map[string]fixtureItem
	ended map[string]bool

	token  string
	logger *slog.Logger
}

func newTradingAPI(items map[string]fixtureItem, token string, logger *slog.Logger) *tradingAPI {
	return &tradingAPI{
		items:  items,
		ended:  make(map[string]bool),
		token:  token,
		logger: logger,
	}
}

// tradingRequest captures the fields shared by GetItem and EndItem
// request bodies.
type tradingRequest struct {
	RequesterCredentials struct {
		EBayAuthToken string `xml:"eBayAuthToken"`
	} `xml:"RequesterCredentials"`
	ItemID string `xml:"ItemID"`
}

func (a *tradingAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading request body", http.StatusBadRequest)
		return
	}

	var req tradingRequest
	if err := xml.Unmarshal(body, &req); err != nil {
		http.Error(w, "parsing request XML", http.StatusBadRequest)
		return
	}

	call := r.Header.Get("X-EBAY-API-CALL-NAME")

	if req.RequesterCredentials.EBayAuthToken != a.token {
		a.logger.Warn("rejected call with bad token", "call", call)
		writeFailure(w, call, "931", "Validation of the authentication token in API request failed.")
		return
	}

	switch call {
	case "GetItem":
		a.getItem(w, req.ItemID)
	case "EndItem":
		a.endItem(w, req.ItemID)
	default:
		writeFailure(w, call, "2", fmt.Sprintf("Unsupported API call %q.", call))
	}
}

func (a *tradingAPI) getItem(w http.ResponseWriter, itemID string) {
	a.mu.Lock()
	item, ok := a.items[itemID]
	a.mu.Unlock()

	if !ok {
		writeFailure(w, "GetItem", "17", "Item cannot be accessed. The item ID is invalid or the item is no longer available.")
		return
	}

	resp := getItemResponse{
		Ack:  "Success",
		Item: toWireItem(itemID, item),
	}
	writeXML(w, resp)
	a.logger.Info("served item", "item_id", itemID)
}

func (a *tradingAPI) endItem(w http.ResponseWriter, itemID string) {
	a.mu.Lock()
	_, exists := a.items[itemID]
	alreadyEnded := a.ended[itemID]
	if exists && !alreadyEnded {
		a.ended[itemID] = true
	}
	a.mu.Unlock()

	switch {
	case !exists:
		writeFailure(w, "EndItem", "17", "Item cannot be accessed. The item ID is invalid or the item is no longer available.")
	case alreadyEnded:
		writeFailure(w, "EndItem", "1047", "The auction has already been closed.")
	default:
		writeXML(w, endItemResponse{Ack: "Success"})
		a.logger.Info("ended item", "item_id", itemID)
	}
}

// Response wire types matching the Trading API XML shapes.

type apiError struct {
	ShortMessage string `xml:"ShortMessage"`
	LongMessage  string `xml:"LongMessage"`
	ErrorCode    string `xml:"ErrorCode"`
	SeverityCode string `xml:"SeverityCode"`
}

type nameValueList struct {
	Name   string   `xml:"Name"`
	Values []string `xml:"Value"`
}

type wireItem struct {
	ItemID        string `xml:"ItemID"`
	Title         string `xml:"Title"`
	Description   string `xml:"Description"`
	SellingStatus struct {
		CurrentPrice struct {
			CurrencyID string `xml:"currencyID,attr"`
			Value      string `xml:",chardata"`
		} `xml:"CurrentPrice"`
	} `xml:"SellingStatus"`
	PrimaryCategory struct {
		CategoryName string `xml:"CategoryName"`
	} `xml:"PrimaryCategory"`
	ConditionDisplayName string `xml:"ConditionDisplayName"`
	ItemSpecifics        struct {
		NameValueLists []nameValueList `xml:"NameValueList"`
	} `xml:"ItemSpecifics"`
	PictureDetails struct {
		PictureURLs []string `xml:"PictureURL"`
	} `xml:"PictureDetails"`
}

type getItemResponse struct {
	XMLName xml.Name   `xml:"GetItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors,omitempty"`
	Item    wireItem   `xml:"Item"`
}

type endItemResponse struct {
	XMLName xml.Name   `xml:"EndItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors,omitempty"`
}

func toWireItem(itemID string, f fixtureItem) wireItem {
	var item wireItem
	item.ItemID = itemID
	item.Title = f.Title
	item.Description = f.Description
	item.SellingStatus.CurrentPrice.CurrencyID = f.Currency
	item.SellingStatus.CurrentPrice.Value = f.Price
	item.PrimaryCategory.CategoryName = f.Category
	item.ConditionDisplayName = f.Condition
	for name, value := range f.Specifics {
		item.ItemSpecifics.NameValueLists = append(item.ItemSpecifics.NameValueLists, nameValueList{
			Name:   name,
			Values: []string{value},
		})
	}
	item.PictureDetails.PictureURLs = f.Pictures
	return item
}

func writeFailure(w http.ResponseWriter, call, code, message string) {
	err := apiError{
		ShortMessage: message,
		LongMessage:  message,
		ErrorCode:    code,
		SeverityCode: "Error",
	}
	if call == "GetItem" {
		writeXML(w, getItemResponse{Ack: "Failure", Errors: []apiError{err}})
		return
	}
	writeXML(w, endItemResponse{Ack: "Failure", Errors: []apiError{err}})
}

func writeXML(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "text/xml")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write([]byte(xml.Header))
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	xml.NewEncoder(w).Encode(v)
}
