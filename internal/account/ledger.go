package account

import (
	"time"

	"dreambody/internal/domain"
)

// UpdateWalletBalance adds delta (possibly negative) to the user's
// wallet balance. Unknown ids are a silent no-op.
func (m *Manager) UpdateWalletBalance(userID string, delta float64) error {
	users, version, err := m.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].WalletBalance += delta
			return m.store.ReplaceUsers(users, version)
		}
	}
	return nil
}

// AddWeightEntry appends a dated entry to the weight history and makes
// the value the current weight. History is append-only and ordered by
// call sequence, not by date value. Unknown ids are a silent no-op.
func (m *Manager) AddWeightEntry(userID string, weight float64) error {
	users, version, err := m.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].WeightHistory = append(users[i].WeightHistory, domain.WeightEntry{
				Date:   time.Now().Format(dateLayout),
				Weight: weight,
			})
			w := weight
			users[i].CurrentWeight = &w
			return m.store.ReplaceUsers(users, version)
		}
	}
	return nil
}
