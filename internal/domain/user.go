package domain

// Gender enumerates supported client genders.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// PaymentMethod enumerates how a subscription was paid for.
type PaymentMethod string

const (
	PaymentMethodInstapay PaymentMethod = "INSTAPAY"
	PaymentMethodWallet   PaymentMethod = "WALLET"
)

// PaymentDetails records the last confirmed payment on an account.
type PaymentDetails struct {
	TransactionID string        `json:"transactionId"`
	Method        PaymentMethod `json:"method"`
	Date          string        `json:"date"`
	SenderPhone   string        `json:"senderPhone,omitempty"`
}

// PendingRequest is a client-initiated subscription purchase waiting for
// the coach's confirmation. Approval itself happens outside this core.
type PendingRequest struct {
	PackageID       string  `json:"packageId"`
	PackageName     string  `json:"packageName"`
	RequestedPrice  string  `json:"requestedPrice"`
	PromoCodeUsed   string  `json:"promoCodeUsed,omitempty"`
	RequestDate     string  `json:"requestDate"`
	WalletUsed      float64 `json:"walletUsed"`
	RemainingAmount float64 `json:"remainingAmount"`
}

// WeightEntry is one point in a client's weight history.
type WeightEntry struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// User is one coached client. The id doubles as the login identifier.
// Passwords are stored and compared in plaintext; adopters who want
// hashing must keep the resolver's tier ordering intact.
type User struct {
	ID        string `json:"id"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    Gender `json:"gender"`
	DOB       string `json:"dob"` // YYYY-MM-DD
	CreatedAt string `json:"createdAt"`

	WalletBalance float64 `json:"walletBalance"`

	Height        *float64      `json:"height,omitempty"`        // cm
	CurrentWeight *float64      `json:"currentWeight,omitempty"` // kg
	WeightHistory []WeightEntry `json:"weightHistory"`

	SubscriptionStart string `json:"subscriptionStart,omitempty"`
	SubscriptionEnd   string `json:"subscriptionEnd,omitempty"`
	IsActive          bool   `json:"isActive"`

	Payment        *PaymentDetails `json:"payment,omitempty"`
	PendingRequest *PendingRequest `json:"pendingRequest,omitempty"`

	WorkoutPlan string `json:"workoutPlan"`
	DietPlan    string `json:"dietPlan"`
	Notes       string `json:"notes"`

	// SeenOffers counts how often each offer was shown to this client,
	// keyed by offer id.
	SeenOffers map[string]int `json:"seenOffers"`
}
