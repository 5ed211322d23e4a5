// Package auth decides role and identity from a login identifier and an
// optional secret, and owns the session singleton.
package auth

import (
	"dreambody/internal/domain"
	"dreambody/internal/store"
)

// Result is a successful resolution. User is set for client logins.
type Result struct {
	Role domain.SessionType `json:"role"`
	User *domain.User       `json:"user,omitempty"`
}

// Resolver applies the two-tier match policy against the record store.
type Resolver struct {
	store *store.Store
}

// NewResolver returns a resolver backed by the given store.
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{store: st}
}

// Authenticate resolves identifier+secret to a role. The tiers are
// strictly ordered and the first match wins:
//
//  1. id-only: an identifier equal to the admin id or any user id
//     resolves immediately, secret ignored. The account code is itself
//     a bearer credential, so staff can sign a client in without the
//     password.
//  2. credentials: email or phone plus matching password, admin before
//     users.
//
// Anything else fails with domain.ErrUnauthorized, which carries no
// hint about which field was wrong.
func (r *Resolver) Authenticate(identifier, secret string) (*Result, error) {
	cfg, _, err := r.store.Config()
	if err != nil {
		return nil, err
	}
	users, _, err := r.store.Users()
	if err != nil {
		return nil, err
	}

	if cfg.Admin.ID == identifier {
		return &Result{Role: domain.SessionAdmin}, nil
	}
	for i := range users {
		if users[i].ID == identifier {
			return &Result{Role: domain.SessionClient, User: &users[i]}, nil
		}
	}

	if (cfg.Admin.Email == identifier || cfg.Admin.Phone == identifier) && cfg.Admin.Password == secret {
		return &Result{Role: domain.SessionAdmin}, nil
	}
	for i := range users {
		u := &users[i]
		if (u.Email == identifier || u.Phone == identifier) && u.Password == secret {
			return &Result{Role: domain.SessionClient, User: u}, nil
		}
	}

	return nil, domain.ErrUnauthorized
}

// Login authenticates and stores the resulting session.
func (r *Resolver) Login(identifier, secret string) (*Result, error) {
	res, err := r.Authenticate(identifier, secret)
	if err != nil {
		return nil, err
	}
	sess := domain.Session{Type: res.Role}
	if res.User != nil {
		sess.UserID = res.User.ID
	}
	if err := r.store.SetSession(sess); err != nil {
		return nil, err
	}
	return res, nil
}

// Logout clears the session. Logging out while logged out is a no-op.
func (r *Resolver) Logout() error {
	return r.store.ClearSession()
}

// CurrentSession returns the active session, or nil when absent. A
// client session whose user has since been deleted is cleared here,
// since this is the only session read path.
func (r *Resolver) CurrentSession() (*domain.Session, error) {
	sess, err := r.store.Session()
	if err != nil || sess == nil {
		return nil, err
	}
	if sess.Type == domain.SessionClient {
		users, _, err := r.store.Users()
		if err != nil {
			return nil, err
		}
		found := false
		for i := range users {
			if users[i].ID == sess.UserID {
				found = true
				break
			}
		}
		if !found {
			if err := r.store.ClearSession(); err != nil {
				return nil, err
			}
			return nil, nil
		}
	}
	return sess, nil
}
