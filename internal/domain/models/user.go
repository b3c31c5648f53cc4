package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles. Authorization gates switch over
// these values exhaustively; anything else is rejected at parse time.
type Role string

const (
	RoleSuperuser Role = "SUPERUSER"
	RoleAdmin     Role = "ADMIN"
	RoleCustomer  Role = "CUSTOMER"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSuperuser:
		return RoleSuperuser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsStaff reports whether the role may use the admin surface.
func (r Role) IsStaff() bool {
	switch r {
	case RoleSuperuser, RoleAdmin:
		return true
	case RoleCustomer:
		return false
	default:
		return false
	}
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
