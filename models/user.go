package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleCustomer UserRole = "customer"
)

type User struct {
	Base
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"not null;default:'customer'"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
