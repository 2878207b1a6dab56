package entity

import (
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	RoleDonor   UserRole = "donor"
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDonor:
		return RoleDonor, nil
	case RoleCreator:
		return RoleCreator, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: invalid role %q", ErrValidation, s)
}

type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
