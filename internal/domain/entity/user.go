// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is a registry record. It is the only shape that carries the password
// and never leaves the session store; use Public to obtain a shareable view.
type Credential struct {
	ID           int64  `json:"id"`           // Unique identifier of the account.
	Name         string `json:"name"`         // Display name.
	Email        string `json:"email"`        // Login identifier, unique and compared case-sensitively.
	PasswordHash string `json:"passwordHash"` // bcrypt hash of the password.
	Role         Role   `json:"role"`         // user or admin.
}

// Public projects the credential onto its password-free view.
func (c *Credential) Public() *User {
	if c == nil {
		return nil
	}

	return &User{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Role:  c.Role,
	}
}

// User is the public view of an account. It is what the active session holds
// and what any consumer outside the session store gets to see.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cloned := *u

	return &cloned
}
