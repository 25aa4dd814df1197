package model

// Credentials is the single shared admin login. The password is stored as a
// bcrypt hash, never in plain text.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
