package models

type OrderStatus string

const (
	// Order statuses (marketplace order flow)
	OrderStatusPending    OrderStatus = "Pending"    // Order placed, awaiting vendor action
	OrderStatusOrdered    OrderStatus = "Ordered"    // Confirmed by the customer
	OrderStatusAccepted   OrderStatus = "Accepted"   // Accepted by the vendor
	OrderStatusProcessing OrderStatus = "Processing" // Being prepared
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the service/goods
	OrderStatusDeclined   OrderStatus = "Declined"   // Rejected by the vendor
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled by the customer
)

// Order is a read-only snapshot received from the order source.
// Status comparison is case-sensitive: "Cancelled" is the literal
// sentinel that excludes an order from preference analysis.
type Order struct {
	ID        string          `json:"_id"`
	UserEmail string          `json:"userEmail"`
	Status    OrderStatus     `json:"status"`
	Products  []OrderLineItem `json:"products"`
	CreatedAt string          `json:"createdAt"`
}

type OrderLineItem struct {
	ProductID         string             `json:"productId"`
	ProductName       string             `json:"productName,omitempty"`
	Category          string             `json:"category,omitempty"`
	Price             float64            `json:"price,omitempty"`
	Quantity          int                `json:"quantity,omitempty"`
	Vendor            string             `json:"vendor,omitempty"`
	Image             string             `json:"image,omitempty"`
	AdditionalDetails *AdditionalDetails `json:"additionalDetails,omitempty"`
}

// AdditionalDetails carries per-line configuration chosen at purchase
// time. Rental is the flag that feeds the synthetic "rent" category.
type AdditionalDetails struct {
	Rental bool `json:"rental,omitempty"`
}

// LineTotal is price * quantity, the amount used for price bucketing.
func (li OrderLineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}
