// Package services holds the domain service layer: the only place where
// business rules live. Each service validates its input, persists through
// gorm, and performs any dependent recomputation (cart totals, cascading
// status changes) as an explicit sequence.
package services

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	// Letters and spaces, 2-100 chars. Shared by hotel/food names,
	// address update fields and area filters.
	namePattern = regexp.MustCompile(`^[A-Za-z ]{2,100}$`)

	// User display names need at least 3 chars.
	userNamePattern = regexp.MustCompile(`^[A-Za-z ]{3,100}$`)

	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// isUniqueViolation reports whether err is a unique-constraint failure.
// The sqlite driver surfaces these as plain errors, so the message text
// is checked alongside gorm's translated sentinel.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
