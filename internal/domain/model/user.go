package model

// User is operator account scaffolding. No HTTP route reads it today; the
// seed command creates one so the table is never empty in fresh deployments.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // argon2id hash, never serialized
}
