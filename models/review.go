package models

type Rating struct {
	ProductID string  `json:"productId"`
	UserEmail string  `json:"userEmail"`
	Stars     float64 `json:"stars"`
	Comment   string  `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type Testimonial struct {
	ID        string  `json:"_id"`
	UserEmail string  `json:"userEmail"`
	Message   string  `json:"message"`
	Rating    float64 `json:"rating,omitempty"`
	Approved  bool    `json:"approved,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// Portfolio is a vendor's gallery of past event work.
type Portfolio struct {
	ID          string   `json:"_id"`
	VendorEmail string   `json:"vendorEmail"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type Banner struct {
	ID       string `json:"_id"`
	ImageURL string `json:"imageUrl"`
	Position string `json:"position,omitempty"`
	Active   bool   `json:"active,omitempty"`
}
