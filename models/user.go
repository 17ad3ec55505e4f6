package models

type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"` // "customer", "vendor" or "admin"
	ProfilePic string `json:"profilePic,omitempty"`
}

type CartItem struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	Quantity  int    `json:"quantity"`
}
