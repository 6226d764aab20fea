package credential

import (
	"fmt"
	"time"
)

// Role is the single role held by a principal. The role hierarchy is
// expressed only as explicit unions in route rules, never as inheritance.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole validates a role string against the known roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Credential is a principal as known to the credential store: a unique
// username, its bcrypt password hash and the current role.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateCredentialInput struct {
	Username     string
	PasswordHash string
	Role         Role
}
