package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// Scoring weights. The rental boost multiplies the running score once,
// after the additive matches.
const (
	categoryWeight = 5.0
	priceWeight    = 3.0
	vendorWeight   = 2.0
	rentalBoost    = 1.2

	maxMatched   = 4
	maxDiscovery = 2
)

const (
	reasonPriceRange = "Within your preferred price range"
	reasonVendor     = "From a seller you've purchased from"
	reasonRental     = "Similar to your rental purchases"
	reasonDiscovery  = "Discover something new"
)

// Recommend ranks the catalog against a preference profile. The result is
// at most four matched products (score > 0, descending score, ties keep
// catalog order) followed by at most two discovery products (categories
// the customer has never ordered from, descending rating). The
// concatenated list is not re-sorted.
func Recommend(catalog []models.Product, prefs PreferenceProfile) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(catalog))
	for _, product := range catalog {
		scored = append(scored, scoreProduct(product, prefs))
	}

	matched := make([]ScoredProduct, 0, maxMatched)
	for _, sp := range scored {
		if sp.Score > 0 {
			matched = append(matched, sp)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	if len(matched) > maxMatched {
		matched = matched[:maxMatched]
	}

	taken := make(map[string]bool, len(matched))
	for _, sp := range matched {
		taken[sp.ID] = true
	}

	discovery := make([]ScoredProduct, 0, maxDiscovery)
	for _, sp := range scored {
		if prefs.CategoryPreferences[strings.ToLower(sp.Category)] > 0 {
			continue
		}
		if taken[sp.ID] {
			continue
		}
		sp.MatchReasons = []string{reasonDiscovery}
		discovery = append(discovery, sp)
	}
	sort.SliceStable(discovery, func(i, j int) bool {
		return discovery[i].Rating > discovery[j].Rating
	})
	if len(discovery) > maxDiscovery {
		discovery = discovery[:maxDiscovery]
	}

	return append(matched, discovery...)
}

func scoreProduct(product models.Product, prefs PreferenceProfile) ScoredProduct {
	var (
		score   float64
		reasons []string
	)
	category := strings.ToLower(product.Category)

	if category != "" && prefs.CategoryPreferences[category] > 0 {
		score += categoryWeight
		reasons = append(reasons, fmt.Sprintf("Similar to your %s purchases", product.Category))
	}

	if prefs.PriceRanges[PriceBucket(product.Price)] > 0 {
		score += priceWeight
		reasons = append(reasons, reasonPriceRange)
	}

	if product.VendorEmail != "" && prefs.VendorPreferences[product.VendorEmail] > 0 {
		score += vendorWeight
		reasons = append(reasons, reasonVendor)
	}

	if prefs.CategoryPreferences[RentCategory] > 0 && category == RentCategory {
		score *= rentalBoost
		if !containsReason(reasons, reasonRental) {
			reasons = append(reasons, reasonRental)
		}
	}

	return ScoredProduct{Product: product, Score: score, MatchReasons: reasons}
}

func containsReason(reasons []string, reason string) bool {
	for _, r := range reasons {
		if r == reason {
			return true
		}
	}
	return false
}
