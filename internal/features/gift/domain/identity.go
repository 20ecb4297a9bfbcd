package domain

import (
	"errors"
	"strings"
	"unicode"
)

// ErrMissingFields is returned when last name or postcode is empty after trimming.
var ErrMissingFields = errors.New("last name and postcode are required")

// Identity is the normalized customer identity used for order matching.
// Both fields are already normalized; normalizing again is a no-op.
type Identity struct {
	// LastName is the lowercased, trimmed last name.
	LastName string
	// Postcode is the uppercased postcode with whitespace and hyphens removed.
	Postcode string
}

// NewIdentity validates and normalizes the raw customer input.
func NewIdentity(lastName, postcode string) (Identity, error) {
	last := NormalizeLastName(lastName)
	pc := NormalizePostcode(postcode)

	if last == "" || pc == "" {
		return Identity{}, ErrMissingFields
	}

	return Identity{LastName: last, Postcode: pc}, nil
}

// Matches reports whether an order's shipping fields equal this identity
// once normalized the same way. Orders without shipping fields never match.
func (id Identity) Matches(o Order) bool {
	if o.ShippingLastName == "" || o.ShippingPostcode == "" {
		return false
	}
	return NormalizeLastName(o.ShippingLastName) == id.LastName &&
		NormalizePostcode(o.ShippingPostcode) == id.Postcode
}

// NormalizeLastName trims and lowercases a last name.
func NormalizeLastName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePostcode uppercases a postcode and strips whitespace and hyphens,
// so "SW1A 1-AA" and "sw1a1aa" compare equal.
func NormalizePostcode(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
