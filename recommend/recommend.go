// Package recommend derives personalised product recommendations from a
// customer's order history. It is pure computation: callers fetch orders
// and the catalog, the package scores and ranks. Nothing here touches the
// network and nothing is cached between calls.
package recommend

import "github.com/darkwizard3801/nexus-gateway/models"

// Price buckets applied to a line total (price * quantity) when
// analysing history, and to the bare price when scoring the catalog.
const (
	BucketBudget   = "budget"    // (0, 1000]
	BucketMidRange = "mid-range" // (1000, 5000]
	BucketPremium  = "premium"   // > 5000
	BucketUnknown  = "unknown"   // zero or missing price
)

// PreferenceProfile is the weighted profile derived from one pass over a
// customer's non-cancelled orders. It is rebuilt from scratch on every
// analysis call and never merged across calls.
//
// TotalOrders counts counted line items, not distinct orders. The name is
// kept for compatibility with the upstream payload shape.
type PreferenceProfile struct {
	CategoryPreferences map[string]int `json:"categoryPreferences"`
	PriceRanges         map[string]int `json:"priceRanges"`
	VendorPreferences   map[string]int `json:"vendorPreferences"`
	TotalOrders         int            `json:"totalOrders"`
}

// HasHistory reports whether any line item was counted. Callers skip
// scoring entirely for customers with no qualifying purchase history.
func (p PreferenceProfile) HasHistory() bool {
	return p.TotalOrders > 0
}

// ScoredProduct is a catalog product annotated with its recommendation
// score and the human-readable reasons behind it. Created during scoring,
// discarded after the response is rendered.
type ScoredProduct struct {
	models.Product
	Score        float64  `json:"score"`
	MatchReasons []string `json:"matchReasons"`
}

// PriceBucket maps an amount to its price bucket.
func PriceBucket(amount float64) string {
	switch {
	case amount <= 0:
		return BucketUnknown
	case amount <= 1000:
		return BucketBudget
	case amount <= 5000:
		return BucketMidRange
	default:
		return BucketPremium
	}
}
