package ports

import (
	"context"
	"fmt"

	"gift-lookup/internal/features/gift/domain"
)

// OrderProvider defines the interface for fetching recent orders from the
// upstream store. This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// RecentOrders returns up to limit orders sorted by creation time
	// descending. Implementations issue exactly one upstream query;
	// there is no pagination past the first page.
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// UpstreamStatusError reports a non-success HTTP status from the order
// provider. Transport-level failures are plain errors instead, since no
// status code exists for them.
type UpstreamStatusError struct {
	// Code is the provider's HTTP status code, surfaced unchanged.
	Code int
}

// Error implements the error interface.
func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("order provider returned status %d", e.Code)
}
