package models

import (
	"strings"
	"time"
)

// Role is the kind of account a user holds.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleStudent   Role = "student"
	RoleParent    Role = "parent"
	RoleTeacher   Role = "teacher"
	RolePrincipal Role = "principal"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

var roles = map[Role]bool{
	RoleGuest: true, RoleStudent: true, RoleParent: true, RoleTeacher: true,
	RolePrincipal: true, RoleAdmin: true, RoleModerator: true,
}

// ParseRole normalizes s to a known role. It reports false for unknown values.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, roles[r]
}

// User represents an account. The ID is the lower-cased email.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Name         string    `json:"name" gorm:"type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // never serialized
	Role         Role      `json:"role" gorm:"type:varchar(32)"`
	Verified     bool      `json:"verified"`
	SchoolName   string    `json:"schoolName" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the sanitized view of a user returned to clients.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	SchoolName string `json:"schoolName"`
}

// Profile returns the user without credentials. An unset role reads as student.
func (u *User) Profile() Profile {
	role := u.Role
	if role == "" {
		role = RoleStudent
	}
	return Profile{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       role,
		SchoolName: u.SchoolName,
	}
}
