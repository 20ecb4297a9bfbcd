package domain

// Status categorizes the outcome of a lookup. Exactly one status is
// produced per request; the values double as the wire-level status strings.
type Status string

const (
	// StatusBadRequest means the caller input was invalid; no fetch was issued.
	StatusBadRequest Status = "bad_request"
	// StatusFoundWithMessage means an order matched and carries a message.
	StatusFoundWithMessage Status = "found_with_message"
	// StatusFoundNoMessage means an order matched but has no message text.
	StatusFoundNoMessage Status = "found_no_message"
	// StatusNotFound means no qualifying order matched.
	StatusNotFound Status = "not_found"
	// StatusUpstreamError means the order provider returned a failure status.
	StatusUpstreamError Status = "api_error"
	// StatusInternalError means the provider was unreachable or its response unusable.
	StatusInternalError Status = "server_error"
)

// Result is the terminal outcome of one lookup.
type Result struct {
	// Status is the outcome category.
	Status Status
	// Message is the gift message text; empty unless Status is StatusFoundWithMessage.
	Message string
	// UpstreamCode is the provider's HTTP status; set only for StatusUpstreamError.
	UpstreamCode int
}
