// Package id generates prefixed string identifiers for users and tokens.
//
// Resource rows use integer primary keys from the database; only records
// that leave the database boundary (users, token ids) carry nanoid strings.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Known prefixes.
const (
	PrefixUser  = "usr"
	PrefixToken = "tok"
)

// Generate returns prefix + "-" + a 21 character nanoid.
func Generate(prefix string) (string, error) {
	n, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + n, nil
}

// NewUserID returns a fresh user identifier.
func NewUserID() (string, error) { return Generate(PrefixUser) }

// NewTokenID returns a fresh token identifier.
func NewTokenID() (string, error) { return Generate(PrefixToken) }
