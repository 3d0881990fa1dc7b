// Package offer transforms raw search records into the unified Offer shape
// consumed by the storefront.
package offer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record type discriminants as they appear in the search index.
const (
	RecordTypeMerchant   = "merchant"
	RecordTypeProduct    = "product"
	RecordTypeCollection = "collection"
)

// FlexFloat decodes a JSON value that upstream feeds encode as either a
// number or a numeric string. Null, malformed strings, and NaN all decode to
// an invalid (missing) value rather than an error so that one bad field never
// fails a whole search response.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Value = 0
	f.Valid = false

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		f.Value = parsed
		f.Valid = true
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	f.Value = n
	f.Valid = true
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the amount as an any for the reward coercion helpers, or nil
// when missing.
func (f FlexFloat) Ptr() any {
	if !f.Valid {
		return nil
	}
	return f.Value
}

// RawRate is a named sub-rate as it appears on a merchant record, before
// normalization. Kind, Type, and the display name prefix are alternative
// encodings of the same fact; see reward.ResolveKind.
type RawRate struct {
	Kind   string    `json:"kind,omitempty"`
	Type   string    `json:"type,omitempty"`
	Name   string    `json:"name,omitempty"`
	Amount FlexFloat `json:"amount"`
}

// UnifiedRecord is the raw shape returned by the search backend. The Type
// discriminant determines which fields are meaningful; fields outside the
// active variant are never read. Unknown types are tolerated.
type UnifiedRecord struct {
	ObjectID string `json:"objectID"`
	Type     string `json:"type"`

	// Merchant fields
	WildfireMerchantID int64     `json:"wildfireMerchantId,omitempty"`
	MerchantName       string    `json:"merchantName,omitempty"`
	Domain             string    `json:"domain,omitempty"`
	ActiveDomainID     int64     `json:"activeDomainId,omitempty"`
	MaxRateAmount      FlexFloat `json:"maxRateAmount"`
	MaxRateType        string    `json:"maxRateType,omitempty"`
	AllRates           []RawRate `json:"allRates,omitempty"`

	// Product fields
	MerchantID   string    `json:"merchantId,omitempty"`
	ProductTitle string    `json:"productTitle,omitempty"`
	Price        FlexFloat `json:"price"`
	Brand        string    `json:"brand,omitempty"`
	Color        string    `json:"color,omitempty"`
	Size         string    `json:"size,omitempty"`
	Rating       FlexFloat `json:"rating"`

	// Collection fields
	CollectionID   string `json:"collectionId,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	ProductCount   *int   `json:"productCount,omitempty"`

	SourceURL string `json:"sourceUrl,omitempty"`
}

// IsMerchant reports whether the record is a merchant record.
func (r *UnifiedRecord) IsMerchant() bool { return r.Type == RecordTypeMerchant }

// IsProduct reports whether the record is a product record.
func (r *UnifiedRecord) IsProduct() bool { return r.Type == RecordTypeProduct }

// IsCollection reports whether the record is a collection record.
func (r *UnifiedRecord) IsCollection() bool { return r.Type == RecordTypeCollection }
