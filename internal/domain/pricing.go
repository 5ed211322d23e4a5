package domain

// PricingPackage is a coaching subscription tier. Deleting a package
// does not touch users who already purchased it.
type PricingPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	DurationMonths int      `json:"durationMonths"`
	Features       []string `json:"features"`
}
