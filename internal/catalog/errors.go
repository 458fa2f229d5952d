package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrTabNotFound is returned for a tab index the catalog does not have.
	ErrTabNotFound = errors.New("tab not found")

	// ErrItemNotFound is returned for an item index the tab does not have.
	ErrItemNotFound = errors.New("item not found")
)

// SourceError records which lookup failed.
type SourceError struct {
	Op   string
	Tab  int
	Item int // -1 for tab level lookups
	Err  error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Item < 0 {
		return fmt.Sprintf("catalog %s (tab %d): %v", e.Op, e.Tab, e.Err)
	}
	return fmt.Sprintf("catalog %s (tab %d, item %d): %v", e.Op, e.Tab, e.Item, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing tab or item.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTabNotFound) || errors.Is(err, ErrItemNotFound)
}
