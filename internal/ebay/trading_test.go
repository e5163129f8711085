package ebay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getItemSuccessXML = `<?xml version="1.0" encoding="UTF-8"?>
<GetItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <Item>
    <ItemID>166123456789</ItemID>
    <Title>Vintage  Levi&#39;s 501 Jeans</Title>
    <Description>&lt;p&gt;Great condition.&lt;/p&gt;&lt;br&gt;No stains.</Description>
    <SellingStatus>
      <CurrentPrice currencyID="USD">45.00</CurrentPrice>
    </SellingStatus>
    <PrimaryCategory>
      <CategoryName>Jeans</CategoryName>
    </PrimaryCategory>
    <ConditionDisplayName>Pre-owned</ConditionDisplayName>
    <ItemSpecifics>
      <NameValueList><Name>Brand</Name><Value>Levi's</Value></NameValueList>
      <NameValueList><Name>Size</Name><Value>32x30</Value></NameValueList>
      <NameValueList><Name>Color</Name><Value>Blue</Value><Value>Indigo</Value></NameValueList>
    </ItemSpecifics>
    <PictureDetails>
      <PictureURL>https://i.ebayimg.com/1.jpg</PictureURL>
      <PictureURL>https://i.ebayimg.com/2.jpg</PictureURL>
    </PictureDetails>
  </Item>
</GetItemResponse>`

const endItemSuccessXML = `<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
</EndItemResponse>`

const endItemAlreadyEndedXML = `<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Failure</Ack>
  <Errors>
    <ShortMessage>Auction ended.</ShortMessage>
    <LongMessage>This auction has already been ended.</LongMessage>
    <ErrorCode>1047</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
</EndItemResponse>`

const endItemBadTokenXML = `<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Failure</Ack>
  <Errors>
    <ShortMessage>Invalid token.</ShortMessage>
    <LongMessage>Auth token is invalid.</LongMessage>
    <ErrorCode>931</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
</EndItemResponse>`

// tradingServer returns a test server that captures the request and
// responds with the given XML.
func tradingServer(t *testing.T, respXML string, captured *http.Request, capturedBody *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = *r
		}
		if capturedBody != nil {
			body, _ := io.ReadAll(r.Body)
			*capturedBody = string(body)
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(respXML))
	}))
}

func TestClient_GetItem(t *testing.T) {
	t.Parallel()

	var req http.Request
	var body string
	srv := tradingServer(t, getItemSuccessXML, &req, &body)
	defer srv.Close()

	c := NewClient("user-token", WithTradingURL(srv.URL), WithSiteID("0"))

	item, err := c.GetItem(context.Background(), "166123456789")
	require.NoError(t, err)

	assert.Equal(t, "GetItem", req.Header.Get("X-EBAY-API-CALL-NAME"))
	assert.Equal(t, "0", req.Header.Get("X-EBAY-API-SITEID"))
	assert.Equal(t, "967", req.Header.Get("X-EBAY-API-COMPATIBILITY-LEVEL"))
	assert.Contains(t, body, "<eBayAuthToken>user-token</eBayAuthToken>")
	assert.Contains(t, body, "<ItemID>166123456789</ItemID>")

	assert.Equal(t, "166123456789", item.ItemID)
	assert.Equal(t, "Vintage Levi's 501 Jeans", item.Title)
	assert.Equal(t, "45.00", item.Price)
	assert.Equal(t, "USD", item.Currency)
	assert.Equal(t, "Jeans", item.Category)
	assert.Equal(t, "Pre-owned", item.Condition)
	assert.Equal(t, "Levi's", item.Brand)
	assert.Equal(t, "32x30", item.Specifics["Size"])
	assert.Equal(t, "Blue", item.Specifics["Color"])
	assert.Equal(t, []string{"https://i.ebayimg.com/1.jpg", "https://i.ebayimg.com/2.jpg"}, item.PictureURLs)
	assert.Contains(t, item.Description, "Great condition.")
	assert.NotContains(t, item.Description, "<p>")
	assert.Contains(t, item.DescriptionHTML, "<p>")
}

func TestClient_EndItem(t *testing.T) {
	t.Parallel()

	var req http.Request
	var body string
	srv := tradingServer(t, endItemSuccessXML, &req, &body)
	defer srv.Close()

	c := NewClient("user-token", WithTradingURL(srv.URL))

	err := c.EndItem(context.Background(), "166123456789", EndReasonNotAvailable)
	require.NoError(t, err)

	assert.Equal(t, "EndItem", req.Header.Get("X-EBAY-API-CALL-NAME"))
	assert.Contains(t, body, "<EndingReason>NotAvailable</EndingReason>")
}

func TestClient_EndItem_AlreadyEnded(t *testing.T) {
	t.Parallel()

	srv := tradingServer(t, endItemAlreadyEndedXML, nil, nil)
	defer srv.Close()

	c := NewClient("user-token", WithTradingURL(srv.URL))

	err := c.EndItem(context.Background(), "166123456789", EndReasonNotAvailable)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAuthFailure(err))
	assert.Contains(t, err.Error(), "1047")
}

func TestClient_EndItem_AuthFailure(t *testing.T) {
	t.Parallel()

	srv := tradingServer(t, endItemBadTokenXML, nil, nil)
	defer srv.Close()

	c := NewClient("expired-token", WithTradingURL(srv.URL))

	err := c.EndItem(context.Background(), "166123456789", EndReasonNotAvailable)
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("user-token", WithTradingURL(srv.URL))

	err := c.EndItem(context.Background(), "166123456789", EndReasonNotAvailable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_WarningAckIsSuccess(t *testing.T) {
	t.Parallel()

	warning := `<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Warning</Ack>
  <Errors>
    <ShortMessage>Minor issue.</ShortMessage>
    <ErrorCode>21917091</ErrorCode>
    <SeverityCode>Warning</SeverityCode>
  </Errors>
</EndItemResponse>`

	srv := tradingServer(t, warning, nil, nil)
	defer srv.Close()

	c := NewClient("user-token", WithTradingURL(srv.URL))

	require.NoError(t, c.EndItem(context.Background(), "166123456789", EndReasonNotAvailable))
}

func TestIsNotFound_PlainError(t *testing.T) {
	t.Parallel()

	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsAuthFailure(assert.AnError))
}
