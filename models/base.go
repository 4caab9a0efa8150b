package models

import "time"

// Status is the soft-delete lifecycle flag shared by every entity.
// Inactive rows stay in the database but are excluded from active queries.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Base holds the fields common to all persisted entities.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Status    Status    `json:"status" gorm:"not null;default:'Active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
