package recommend

import (
	"reflect"
	"testing"

	"github.com/darkwizard3801/nexus-gateway/models"
)

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero is unknown", 0, BucketUnknown},
		{"negative is unknown", -50, BucketUnknown},
		{"low value is budget", 1, BucketBudget},
		{"boundary 1000 is budget", 1000, BucketBudget},
		{"just above 1000 is mid-range", 1000.01, BucketMidRange},
		{"boundary 5000 is mid-range", 5000, BucketMidRange},
		{"just above 5000 is premium", 5000.01, BucketPremium},
		{"large value is premium", 250000, BucketPremium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceBucket(tt.amount); got != tt.want {
				t.Errorf("PriceBucket(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAnalyzePreferences_CancelledOrdersExcluded(t *testing.T) {
	orders := []models.Order{
		{
			Status: models.OrderStatusCancelled,
			Products: []models.OrderLineItem{
				{Category: "catering", Price: 2000, Quantity: 1, Vendor: "v1@x.com"},
			},
		},
		{
			Status: models.OrderStatusDelivered,
			Products: []models.OrderLineItem{
				{Category: "decor", Price: 500, Quantity: 1, Vendor: "v2@x.com"},
			},
		},
	}

	profile := AnalyzePreferences(orders)

	if profile.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", profile.TotalOrders)
	}
	if profile.CategoryPreferences["catering"] != 0 {
		t.Errorf("cancelled order contributed category weight: %v", profile.CategoryPreferences)
	}
	if profile.VendorPreferences["v1@x.com"] != 0 {
		t.Errorf("cancelled order contributed vendor weight: %v", profile.VendorPreferences)
	}
	if profile.CategoryPreferences["decor"] != 1 {
		t.Errorf("CategoryPreferences[decor] = %d, want 1", profile.CategoryPreferences["decor"])
	}
}

func TestAnalyzePreferences_BucketsLineTotal(t *testing.T) {
	// 2000 * 2 = 4000, so the line lands in mid-range even though the
	// unit price alone would too; 400 * 3 = 1200 crosses budget into
	// mid-range on quantity alone.
	orders := []models.Order{
		{Status: models.OrderStatusOrdered, Products: []models.OrderLineItem{
			{Category: "catering", Price: 2000, Quantity: 2},
			{Category: "decor", Price: 400, Quantity: 3},
			{Category: "sound", Price: 4000, Quantity: 2},
		}},
	}

	profile := AnalyzePreferences(orders)

	want := map[string]int{BucketMidRange: 2, BucketPremium: 1}
	if !reflect.DeepEqual(profile.PriceRanges, want) {
		t.Errorf("PriceRanges = %v, want %v", profile.PriceRanges, want)
	}
}

func TestAnalyzePreferences_RentalIsAdditive(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusOrdered, Products: []models.OrderLineItem{
			{
				Category:          "catering",
				Price:             100,
				Quantity:          1,
				AdditionalDetails: &models.AdditionalDetails{Rental: true},
			},
		}},
	}

	profile := AnalyzePreferences(orders)

	if profile.CategoryPreferences["catering"] != 1 {
		t.Errorf("CategoryPreferences[catering] = %d, want 1", profile.CategoryPreferences["catering"])
	}
	if profile.CategoryPreferences[RentCategory] != 1 {
		t.Errorf("CategoryPreferences[rent] = %d, want 1", profile.CategoryPreferences[RentCategory])
	}
	if profile.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1 (one line item)", profile.TotalOrders)
	}
}

func TestAnalyzePreferences_MissingFieldsSkippedPerField(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusOrdered, Products: []models.OrderLineItem{
			{Price: 0, Quantity: 0}, // no category, no vendor, no price
		}},
	}

	profile := AnalyzePreferences(orders)

	if len(profile.CategoryPreferences) != 0 {
		t.Errorf("CategoryPreferences = %v, want empty", profile.CategoryPreferences)
	}
	if len(profile.VendorPreferences) != 0 {
		t.Errorf("VendorPreferences = %v, want empty", profile.VendorPreferences)
	}
	if profile.PriceRanges[BucketUnknown] != 1 {
		t.Errorf("PriceRanges[unknown] = %d, want 1", profile.PriceRanges[BucketUnknown])
	}
	// The bare line item still counts.
	if profile.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", profile.TotalOrders)
	}
}

func TestAnalyzePreferences_CategoryCaseFolded(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusOrdered, Products: []models.OrderLineItem{
			{Category: "Catering", Price: 100, Quantity: 1},
			{Category: "CATERING", Price: 100, Quantity: 1},
		}},
	}

	profile := AnalyzePreferences(orders)

	if profile.CategoryPreferences["catering"] != 2 {
		t.Errorf("CategoryPreferences[catering] = %d, want 2", profile.CategoryPreferences["catering"])
	}
}

func TestAnalyzePreferences_Idempotent(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusOrdered, Products: []models.OrderLineItem{
			{Category: "catering", Price: 2000, Quantity: 2, Vendor: "v1@x.com",
				AdditionalDetails: &models.AdditionalDetails{Rental: true}},
		}},
		{Status: models.OrderStatusCancelled, Products: []models.OrderLineItem{
			{Category: "decor", Price: 500, Quantity: 1},
		}},
	}

	first := AnalyzePreferences(orders)
	second := AnalyzePreferences(orders)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAnalyzePreferences_EmptyInput(t *testing.T) {
	profile := AnalyzePreferences(nil)

	if profile.HasHistory() {
		t.Error("HasHistory() = true for empty order list")
	}
	if len(profile.CategoryPreferences) != 0 || len(profile.PriceRanges) != 0 || len(profile.VendorPreferences) != 0 {
		t.Errorf("expected empty maps, got %+v", profile)
	}
}
