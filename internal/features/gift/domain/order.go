package domain

import (
	"time"
)

// Order is a read-only view over a single upstream order record.
// It lives for the duration of one lookup and is never written back.
type Order struct {
	// Name is the order identifier as displayed by the store (e.g., #1001).
	Name string `json:"name"`
	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time `json:"created_at"`
	// Note is the free-text note attached to the order at checkout.
	Note string `json:"note"`
	// ShippingLastName is the last name on the shipping address, if any.
	ShippingLastName string `json:"shipping_last_name"`
	// ShippingPostcode is the postal code on the shipping address, if any.
	ShippingPostcode string `json:"shipping_postcode"`
	// GiftMetafield is the structured gift message value, if the order has one.
	GiftMetafield string `json:"gift_metafield"`
}

// GiftMessage picks the gift message for a matched order.
// The structured metafield wins over the free-text note; empty values are
// treated as absent at every step, so a blank message is never surfaced.
func GiftMessage(o Order) (string, bool) {
	if o.GiftMetafield != "" {
		return o.GiftMetafield, true
	}
	if o.Note != "" {
		return o.Note, true
	}
	return "", false
}
