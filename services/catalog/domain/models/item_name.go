package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid item name. Names are
// trimmed on construction and limited to 500 characters; uniqueness is
// case-insensitive and enforced by the store.
type ItemName string

const maxItemNameLength = 500

// NewItemName trims s and validates it, returning the canonical ItemName.
func NewItemName(s string) (ItemName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("item name must not be blank")
	}
	if len(trimmed) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(trimmed), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
