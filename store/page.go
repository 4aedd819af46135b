package store

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	// DefaultLimit applies when the caller does not ask for one.
	DefaultLimit = 50
	// MaxLimit caps a single listing page.
	MaxLimit = 200
)

// Page bounds a listing. Out-of-range values are rejected, never
// silently clamped.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

func (p Page) validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return &ValidationError{Msg: fmt.Sprintf("limit must be between 1 and %d", MaxLimit)}
	}
	if p.Offset < 0 {
		return &ValidationError{Msg: "offset must not be negative"}
	}
	return nil
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Limit)
}
