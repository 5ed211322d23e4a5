// Package store is the record store: five independently persisted
// collections plus the session singleton, kept as whole JSON documents
// in a key-addressable medium. There is no partial-update primitive;
// callers read a full collection, mutate their copy, and replace it.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"dreambody/internal/domain"
)

// Logical keys of the persisted documents.
const (
	KeyUsers    = "users"
	KeyPackages = "packages"
	KeyPromos   = "promos"
	KeyOffers   = "offers"
	KeyConfig   = "config"
	KeySession  = "session"
)

// envelope wraps every collection with a monotonic version stamp.
// Replace operations compare stamps so that a writer working from a
// stale read fails with ErrConflict instead of silently dropping the
// other writer's update.
type envelope struct {
	Version uint64          `json:"version"`
	Items   json.RawMessage `json:"items"`
}

// Store exposes get/replace-whole-collection operations over a KV
// medium. The mutex serializes same-process access; the version stamps
// cover independent processes sharing the same files.
type Store struct {
	mu sync.Mutex
	kv KV
}

// New wraps the given medium. Collections are seeded lazily on first
// access, never overwriting existing data.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Init touches every collection so first-run seeding happens at startup
// rather than on the first request.
func (s *Store) Init() error {
	if _, _, err := s.Users(); err != nil {
		return err
	}
	if _, _, err := s.Packages(); err != nil {
		return err
	}
	if _, _, err := s.PromoCodes(); err != nil {
		return err
	}
	if _, _, err := s.Offers(); err != nil {
		return err
	}
	if _, _, err := s.Config(); err != nil {
		return err
	}
	return nil
}

// Users returns the user collection and its version stamp.
func (s *Store) Users() ([]domain.User, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, KeyUsers, func() []domain.User { return []domain.User{} })
}

// ReplaceUsers writes the whole user collection. version must be the
// stamp returned by the preceding Users call.
func (s *Store) ReplaceUsers(users []domain.User, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replace(s, KeyUsers, users, version, func() []domain.User { return []domain.User{} })
}

// Packages returns the pricing packages and their version stamp.
func (s *Store) Packages() ([]domain.PricingPackage, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, KeyPackages, DefaultPackages)
}

// ReplacePackages writes the whole package collection.
func (s *Store) ReplacePackages(packages []domain.PricingPackage, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replace(s, KeyPackages, packages, version, DefaultPackages)
}

// PromoCodes returns the promo code collection and its version stamp.
func (s *Store) PromoCodes() ([]domain.PromoCode, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, KeyPromos, func() []domain.PromoCode { return []domain.PromoCode{} })
}

// ReplacePromoCodes writes the whole promo code collection.
func (s *Store) ReplacePromoCodes(codes []domain.PromoCode, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replace(s, KeyPromos, codes, version, func() []domain.PromoCode { return []domain.PromoCode{} })
}

// Offers returns the offer collection and its version stamp.
func (s *Store) Offers() ([]domain.Offer, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, KeyOffers, func() []domain.Offer { return []domain.Offer{} })
}

// ReplaceOffers writes the whole offer collection.
func (s *Store) ReplaceOffers(offers []domain.Offer, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replace(s, KeyOffers, offers, version, func() []domain.Offer { return []domain.Offer{} })
}

// Config returns the singleton app config and its version stamp.
func (s *Store) Config() (domain.AppConfig, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, KeyConfig, func() domain.AppConfig { return domain.AppConfig{Admin: DefaultAdmin()} })
}

// ReplaceConfig writes the singleton app config wholesale.
func (s *Store) ReplaceConfig(cfg domain.AppConfig, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replace(s, KeyConfig, cfg, version, func() domain.AppConfig { return domain.AppConfig{Admin: DefaultAdmin()} })
}

// Session returns the current session, or nil when nobody is logged in.
// The session is unversioned: last write wins, which is fine for a
// record that only ever moves between "set" and "absent".
func (s *Store) Session() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.kv.Get(KeySession)
	if err != nil || !ok {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", KeySession, err)
	}
	return &sess, nil
}

// SetSession stores the current session.
func (s *Store) SetSession(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", KeySession, err)
	}
	return s.kv.Set(KeySession, raw)
}

// ClearSession removes the current session, if any.
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(KeySession)
}

// load reads a collection, seeding it on first access. Callers hold
// s.mu.
func load[T any](s *Store, key string, seed func() T) (T, uint64, error) {
	var zero T
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return zero, 0, err
	}
	if !ok {
		items := seed()
		if err := save(s, key, items, 1); err != nil {
			return zero, 0, err
		}
		return items, 1, nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, 0, fmt.Errorf("store: decode %s: %w", key, err)
	}
	var items T
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return zero, 0, fmt.Errorf("store: decode %s items: %w", key, err)
	}
	return items, env.Version, nil
}

// replace writes a collection after verifying the caller read the
// latest stamp. Callers hold s.mu.
func replace[T any](s *Store, key string, items T, expected uint64, seed func() T) error {
	_, current, err := load(s, key, seed)
	if err != nil {
		return err
	}
	if current != expected {
		return domain.ErrConflict
	}
	return save(s, key, items, current+1)
}

func save[T any](s *Store, key string, items T, version uint64) error {
	rawItems, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Version: version, Items: rawItems})
	if err != nil {
		return fmt.Errorf("store: encode %s envelope: %w", key, err)
	}
	return s.kv.Set(key, raw)
}
