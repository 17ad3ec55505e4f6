package recommend

import (
	"strings"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// RentCategory is the synthetic category credited for every rental line
// item, in addition to the item's own category.
const RentCategory = "rent"

// AnalyzePreferences builds a PreferenceProfile from a customer's order
// history. Orders with status "Cancelled" are skipped in full; the check
// is case-sensitive. Missing fields on a line item are skipped field by
// field rather than rejecting the item.
func AnalyzePreferences(orders []models.Order) PreferenceProfile {
	profile := PreferenceProfile{
		CategoryPreferences: make(map[string]int),
		PriceRanges:         make(map[string]int),
		VendorPreferences:   make(map[string]int),
	}

	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		for _, item := range order.Products {
			if category := strings.ToLower(item.Category); category != "" {
				profile.CategoryPreferences[category]++
			}

			profile.PriceRanges[PriceBucket(item.LineTotal())]++

			if item.Vendor != "" {
				profile.VendorPreferences[item.Vendor]++
			}

			// A rental item counts toward both its own category and "rent".
			if item.AdditionalDetails != nil && item.AdditionalDetails.Rental {
				profile.CategoryPreferences[RentCategory]++
			}

			profile.TotalOrders++
		}
	}

	return profile
}
