// Package account owns the client account lifecycle and the wallet and
// weight ledgers. All writes are full read-modify-write cycles against
// the record store.
package account

import (
	"strings"
	"time"

	"dreambody/internal/code"
	"dreambody/internal/domain"
	"dreambody/internal/store"
)

const dateLayout = "2006-01-02"

// Plan placeholders shown until the coach assigns real content.
const (
	placeholderWorkoutPlan = "No workout plan assigned yet. Contact coach to activate."
	placeholderDietPlan    = "No diet plan assigned yet. Contact coach to activate."
)

// Manager implements account creation, mutation and deletion.
type Manager struct {
	store *store.Store
}

// NewManager returns a manager backed by the given store.
func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// CreateInput is the caller-supplied subset of a new account. Every
// omitted field gets a documented default.
type CreateInput struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Password      string        `json:"password"`
	Gender        domain.Gender `json:"gender"`
	DOB           string        `json:"dob"`
	Height        *float64      `json:"height"`
	CurrentWeight *float64      `json:"currentWeight"`
}

// Create validates uniqueness, materializes defaults and appends the
// new user. Email comparison is case-insensitive. New accounts always
// start inactive with an empty wallet, whatever the input claims.
func (m *Manager) Create(in CreateInput) (*domain.User, error) {
	users, version, err := m.store.Users()
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		for i := range users {
			if strings.EqualFold(users[i].Email, in.Email) {
				return nil, &domain.DuplicateFieldError{Field: "email"}
			}
		}
	}
	if in.Phone != "" {
		for i := range users {
			if users[i].Phone == in.Phone {
				return nil, &domain.DuplicateFieldError{Field: "phone"}
			}
		}
	}

	id := code.New()
	for hasID(users, id) {
		id = code.New()
	}

	now := time.Now()
	u := domain.User{
		ID:            id,
		Name:          orDefault(in.Name, "New User"),
		Email:         in.Email,
		Phone:         in.Phone,
		Gender:        in.Gender,
		Password:      orDefault(in.Password, code.New()),
		DOB:           orDefault(in.DOB, now.Format(dateLayout)),
		CreatedAt:     now.UTC().Format(time.RFC3339),
		IsActive:      false,
		WalletBalance: 0,
		Height:        in.Height,
		CurrentWeight: in.CurrentWeight,
		WeightHistory: []domain.WeightEntry{},
		WorkoutPlan:   placeholderWorkoutPlan,
		DietPlan:      placeholderDietPlan,
		Notes:         "",
		SeenOffers:    map[string]int{},
	}
	if u.Gender == "" {
		u.Gender = domain.GenderMale
	}

	users = append(users, u)
	if err := m.store.ReplaceUsers(users, version); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users.
func (m *Manager) List() ([]domain.User, error) {
	users, _, err := m.store.Users()
	return users, err
}

// Get returns the user with the given id, or domain.ErrNotFound.
func (m *Manager) Get(id string) (*domain.User, error) {
	users, _, err := m.store.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update fully replaces the stored record matching u.ID. A missing id
// is a silent no-op: callers that need confirmation re-read.
func (m *Manager) Update(u domain.User) error {
	return m.replaceByID(u.ID, u)
}

// UpdateWithIDChange replaces the record found under oldID with u,
// whose id may differ. This backs admin-initiated id reassignment.
func (m *Manager) UpdateWithIDChange(oldID string, u domain.User) error {
	return m.replaceByID(oldID, u)
}

func (m *Manager) replaceByID(lookupID string, u domain.User) error {
	users, version, err := m.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == lookupID {
			users[i] = u
			return m.store.ReplaceUsers(users, version)
		}
	}
	return nil
}

// Delete removes the record matching id. Hard delete, no tombstone;
// absent ids are a no-op.
func (m *Manager) Delete(id string) error {
	users, version, err := m.store.Users()
	if err != nil {
		return err
	}
	out := make([]domain.User, 0, len(users))
	removed := false
	for _, u := range users {
		if u.ID == id {
			removed = true
			continue
		}
		out = append(out, u)
	}
	if !removed {
		return nil
	}
	return m.store.ReplaceUsers(out, version)
}

// MarkOfferSeen bumps the per-user view counter for an offer, starting
// at zero when the offer has never been shown.
func (m *Manager) MarkOfferSeen(userID, offerID string) error {
	users, version, err := m.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			if users[i].SeenOffers == nil {
				users[i].SeenOffers = map[string]int{}
			}
			users[i].SeenOffers[offerID]++
			return m.store.ReplaceUsers(users, version)
		}
	}
	return nil
}

func hasID(users []domain.User, id string) bool {
	for i := range users {
		if users[i].ID == id {
			return true
		}
	}
	return false
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
