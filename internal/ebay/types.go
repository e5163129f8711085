package ebay

import "encoding/xml"

// Trading API request/response wire types. The Trading API carries the
// auth token inside the XML body, not in a header.

type requesterCredentials struct {
	EBayAuthToken string `xml:"eBayAuthToken"`
}

type getItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents GetItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ItemID               string               `xml:"ItemID"`
	DetailLevel          string               `xml:"DetailLevel"`
	IncludeItemSpecifics bool                 `xml:"IncludeItemSpecifics"`
}

type endItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents EndItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ItemID               string               `xml:"ItemID"`
	EndingReason         string               `xml:"EndingReason"`
}

type apiError struct {
	ShortMessage       string `xml:"ShortMessage"`
	LongMessage        string `xml:"LongMessage"`
	ErrorCode          string `xml:"ErrorCode"`
	SeverityCode       string `xml:"SeverityCode"`
	ClassificationCode string `xml:"ErrorClassification"`
}

type nameValueList struct {
	Name   string   `xml:"Name"`
	Values []string `xml:"Value"`
}

type sellingStatus struct {
	CurrentPrice currentPrice `xml:"CurrentPrice"`
}

type currentPrice struct {
	CurrencyID string `xml:"currencyID,attr"`
	Value      string `xml:",chardata"`
}

type primaryCategory struct {
	CategoryName string `xml:"CategoryName"`
}

type pictureDetails struct {
	PictureURLs []string `xml:"PictureURL"`
}

type itemSpecifics struct {
	NameValueLists []nameValueList `xml:"NameValueList"`
}

type wireItem struct {
	ItemID               string          `xml:"ItemID"`
	Title                string          `xml:"Title"`
	Description          string          `xml:"Description"`
	SellingStatus        sellingStatus   `xml:"SellingStatus"`
	PrimaryCategory      primaryCategory `xml:"PrimaryCategory"`
	ConditionDisplayName string          `xml:"ConditionDisplayName"`
	ItemSpecifics        itemSpecifics   `xml:"ItemSpecifics"`
	PictureDetails       pictureDetails  `xml:"PictureDetails"`
}

type getItemResponse struct {
	XMLName xml.Name   `xml:"GetItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
	Item    wireItem   `xml:"Item"`
}

type endItemResponse struct {
	XMLName xml.Name   `xml:"EndItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
}
