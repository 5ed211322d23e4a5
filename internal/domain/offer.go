package domain

// Offer is a promotional banner shown to clients. Per-client view
// counts live in User.SeenOffers, not here.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ShowLimit   int    `json:"showLimit"`
	IsActive    bool   `json:"isActive"`
}
