package domain

// AdminProfile is the coach's own login identity. Exactly one exists,
// embedded in AppConfig, and profile updates replace it wholesale.
type AdminProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AppConfig is the singleton configuration record.
type AppConfig struct {
	Admin AdminProfile `json:"admin"`
}
