package domain

// SessionType is the role attached to the active session.
type SessionType string

const (
	SessionAdmin  SessionType = "ADMIN"
	SessionClient SessionType = "CLIENT"
)

// Session is the transient current-login record. Its lifecycle is
// independent of the persisted collections: it is cleared on logout and
// lazily when it references a user that no longer exists.
type Session struct {
	Type   SessionType `json:"type"`
	UserID string      `json:"userId,omitempty"`
}
