package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleStaff  Role = "STAFF"
	RoleAdmin  Role = "ADMIN"
)

func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", fmt.Errorf("unsupported role %q", raw)
	}

	return role, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

func (u User) EntityID() int64 { return u.UserID }

func (u User) Validate() error {
	if err := requirePositiveID("user", "userId", u.UserID); err != nil {
		return err
	}
	if strings.TrimSpace(u.Email) == "" {
		return invalid("user", "email is required")
	}
	if u.Role != "" && !u.Role.Valid() {
		return invalid("user", "unsupported role %q", u.Role)
	}

	return nil
}

// UserPatch carries the fields a profile or admin update changes; nil fields are left alone.
type UserPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Role    *Role   `json:"role,omitempty"`
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Company == nil && p.Role == nil
}

func (p UserPatch) ApplyTo(user *User) {
	if user == nil {
		return
	}
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Phone != nil {
		user.Phone = *p.Phone
	}
	if p.Company != nil {
		user.Company = *p.Company
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
}
