package store

import "dreambody/internal/domain"

// DefaultPackages returns the two packages seeded on first run. Other
// deployments of the app expect these records verbatim, so the values
// are part of the interface, not placeholders.
func DefaultPackages() []domain.PricingPackage {
	return []domain.PricingPackage{
		{
			ID:             "1",
			Name:           "Monthly Transformation",
			Price:          "500",
			DurationMonths: 1,
			Features:       []string{"Custom Diet Plan", "Workout Routine", "Weekly Check-ins", "24/7 Support"},
		},
		{
			ID:             "2",
			Name:           "Quarterly Beast Mode",
			Price:          "900",
			DurationMonths: 3,
			Features:       []string{"All Monthly Features", "Advanced Supplement Guide", "Priority Support", "Video Form Analysis"},
		},
	}
}

// DefaultAdmin returns the fixed seed profile. It is a first-run
// bootstrap identity, not a security boundary; the coach replaces it
// from the profile screen.
func DefaultAdmin() domain.AdminProfile {
	return domain.AdminProfile{
		ID:       "SO3DA2007",
		Email:    "admin@dreambody.com",
		Phone:    "0000000000",
		Password: "Ahly2007.com",
	}
}
