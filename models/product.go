package models

// Product is a read-only catalog snapshot. Field names follow the
// upstream API and must not be renamed.
type Product struct {
	ID           string   `json:"_id"`
	ProductName  string   `json:"productName"`
	BrandName    string   `json:"brandName,omitempty"`
	Category     string   `json:"category,omitempty"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price,omitempty"`
	VendorEmail  string   `json:"vendorEmail,omitempty"`
	ProductImage []string `json:"productImage,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Approved     bool     `json:"approved,omitempty"`
	Disabled     bool     `json:"disabled,omitempty"`
}
