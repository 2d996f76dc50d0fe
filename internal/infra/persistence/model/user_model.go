package model

// CredentialModel is one entry of the persisted account registry.
type CredentialModel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash
	Role     string `json:"role"`
}

// SessionModel is the persisted active session. It has no password field.
type SessionModel struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
