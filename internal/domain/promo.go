package domain

// PromoType distinguishes price discounts from wallet credits.
type PromoType string

const (
	PromoTypeDiscount PromoType = "DISCOUNT" // reduces a purchase price
	PromoTypeCredit   PromoType = "CREDIT"   // adds value to the wallet
)

// PromoCode is an admin-issued redemption code. The code string is the
// lookup key; the store does not enforce its uniqueness. Type, MaxUsage
// and CurrentUsage were added after the first release, so the engine
// backfills them on save for records that predate the fields.
type PromoCode struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"`
	Type     PromoType `json:"type"`
	Discount string    `json:"discount"` // percentage or fixed amount, depending on type
	Deadline string    `json:"deadline"`

	// ApplicablePackageIDs restricts the code to certain packages when
	// non-empty.
	ApplicablePackageIDs []string `json:"applicablePackageIds,omitempty"`

	MaxUsage     int `json:"maxUsage"`
	CurrentUsage int `json:"currentUsage"`
}
