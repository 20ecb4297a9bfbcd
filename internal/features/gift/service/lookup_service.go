package service

import (
	"context"
	"errors"
	"time"

	"gift-lookup/internal/core/logger"
	"gift-lookup/internal/features/gift/domain"
	"gift-lookup/internal/features/gift/ports"

	"go.uber.org/zap"
)

// LookupService resolves a customer identity to the gift message of their
// most recent matching order.
type LookupService struct {
	// provider is the interface for fetching recent orders.
	provider ports.OrderProvider
	// fetchLimit bounds how many recent orders a single lookup scans.
	fetchLimit int
	// window is the maximum age an order may have to be eligible.
	window time.Duration
	// now is injectable for tests.
	now func() time.Time
}

// NewLookupService creates a new LookupService.
func NewLookupService(provider ports.OrderProvider, fetchLimit, windowDays int) *LookupService {
	return &LookupService{
		provider:   provider,
		fetchLimit: fetchLimit,
		window:     time.Duration(windowDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// Lookup runs the full pipeline: normalize, fetch, resolve, select.
// Every failure is converted into a terminal Result; nothing propagates
// to the caller as an error.
func (s *LookupService) Lookup(ctx context.Context, lastName, postcode string) domain.Result {
	identity, err := domain.NewIdentity(lastName, postcode)
	if err != nil {
		return domain.Result{Status: domain.StatusBadRequest}
	}

	orders, err := s.provider.RecentOrders(ctx, s.fetchLimit)
	if err != nil {
		var statusErr *ports.UpstreamStatusError
		if errors.As(err, &statusErr) {
			logger.Get().Warn("Order provider returned failure status",
				zap.Int("status_code", statusErr.Code),
			)
			return domain.Result{Status: domain.StatusUpstreamError, UpstreamCode: statusErr.Code}
		}

		logger.Get().Error("Order fetch failed", zap.Error(err))
		return domain.Result{Status: domain.StatusInternalError}
	}

	order, found := s.resolve(orders, identity)
	if !found {
		return domain.Result{Status: domain.StatusNotFound}
	}

	message, present := domain.GiftMessage(order)
	if !present {
		return domain.Result{Status: domain.StatusFoundNoMessage}
	}

	return domain.Result{Status: domain.StatusFoundWithMessage, Message: message}
}

// resolve scans the fetched orders and returns the first eligible match.
// The provider order is newest-first, so the first match is the most
// recent one. Stale orders are skipped rather than treated as a cutoff,
// which keeps the scan correct even if the upstream ordering is violated.
func (s *LookupService) resolve(orders []domain.Order, identity domain.Identity) (domain.Order, bool) {
	cutoff := s.now().Add(-s.window)

	for _, order := range orders {
		if order.CreatedAt.Before(cutoff) {
			continue
		}
		if identity.Matches(order) {
			return order, true
		}
	}

	return domain.Order{}, false
}
