package offer

import (
	"fmt"
	"strconv"

	"github.com/Ramsey-B/fern/pkg/affiliate"
	"github.com/Ramsey-B/fern/pkg/reward"
)

// Fallback display strings for records without usable reward data.
const (
	UnknownTitle      = "Unknown"
	UnknownID         = "unknown"
	NoRewardInfoLabel = "No reward info"
)

// Offer is the canonical storefront shape derived from a search record.
// RewardLabel is always a non-empty human string. Href is present only when
// both a tracking id and a device id were available.
type Offer struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	RewardLabel string   `json:"reward_label"`
	TrackingID  string   `json:"tracking_id,omitempty"`
	Href        string   `json:"href,omitempty"`
	AllRates    []Rate   `json:"all_rates"`
	Domain      string   `json:"domain,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Color       string   `json:"color,omitempty"`
	Size        string   `json:"size,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Transform converts a raw search record into an Offer, dispatching on the
// record type. Malformed or unknown records degrade to a placeholder offer;
// one bad hit must never fail a page of valid ones.
func Transform(record UnifiedRecord, deviceID string) Offer {
	switch {
	case record.IsMerchant():
		return transformMerchant(record, deviceID)
	case record.IsProduct():
		return transformProduct(record, deviceID)
	case record.IsCollection():
		return transformCollection(record)
	default:
		return transformUnknown(record)
	}
}

func transformMerchant(record UnifiedRecord, deviceID string) Offer {
	trackingID := ""
	if record.ActiveDomainID > 0 {
		trackingID = strconv.FormatInt(record.ActiveDomainID, 10)
	} else if record.WildfireMerchantID > 0 {
		trackingID = strconv.FormatInt(record.WildfireMerchantID, 10)
	}

	o := Offer{
		ID:          record.ObjectID,
		Type:        RecordTypeMerchant,
		Title:       record.MerchantName,
		RewardLabel: reward.BuildLabel(record.MaxRateType, record.MaxRateAmount.Ptr(), ""),
		TrackingID:  trackingID,
		AllRates:    NormalizeRates(record.AllRates),
		Domain:      record.Domain,
		SourceURL:   record.SourceURL,
	}

	o.Href = buildHref(trackingID, deviceID, record.SourceURL)
	return o
}

func transformProduct(record UnifiedRecord, deviceID string) Offer {
	trackingID := ""
	if record.WildfireMerchantID > 0 {
		trackingID = strconv.FormatInt(record.WildfireMerchantID, 10)
	} else if record.MerchantID != "" {
		trackingID = record.MerchantID
	}

	o := Offer{
		ID:          record.ObjectID,
		Type:        RecordTypeProduct,
		Title:       record.ProductTitle,
		RewardLabel: reward.BuildLabel(record.MaxRateType, record.MaxRateAmount.Ptr(), ""),
		TrackingID:  trackingID,
		AllRates:    NormalizeRates(record.AllRates),
		SourceURL:   record.SourceURL,
		Brand:       record.Brand,
		Color:       record.Color,
		Size:        record.Size,
	}

	if record.Price.Valid {
		price := record.Price.Value
		o.Price = &price
	}
	if record.Rating.Valid {
		rating := record.Rating.Value
		o.Rating = &rating
	}

	o.Href = buildHref(trackingID, deviceID, record.SourceURL)
	return o
}

func transformCollection(record UnifiedRecord) Offer {
	count := 0
	if record.ProductCount != nil {
		count = *record.ProductCount
	}

	title := record.CollectionName
	if title == "" {
		title = record.ObjectID
	}

	// Collections structurally cannot carry a reward rate. AllRates is an
	// empty slice, not nil, so it serializes as [].
	return Offer{
		ID:          record.ObjectID,
		Type:        RecordTypeCollection,
		Title:       title,
		RewardLabel: fmt.Sprintf("%d products", count),
		AllRates:    []Rate{},
		SourceURL:   record.SourceURL,
	}
}

func transformUnknown(record UnifiedRecord) Offer {
	id := record.ObjectID
	title := record.ObjectID
	if id == "" {
		id = UnknownID
	}
	if title == "" {
		title = UnknownTitle
	}

	return Offer{
		ID:          id,
		Type:        record.Type,
		Title:       title,
		RewardLabel: NoRewardInfoLabel,
	}
}

// buildHref attaches the tracking link when both required inputs are present.
// Absence of either is silently treated as "link not yet available".
func buildHref(trackingID, deviceID, destination string) string {
	if !affiliate.CanGenerateLink(trackingID, deviceID) {
		return ""
	}

	href, err := affiliate.GenerateLink(affiliate.LinkParams{
		Provider:       affiliate.ProviderWildfire,
		TrackingID:     trackingID,
		DeviceID:       deviceID,
		DestinationURL: destination,
	})
	if err != nil {
		return ""
	}
	return href
}
