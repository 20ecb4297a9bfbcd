package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift-lookup/internal/features/gift/domain"
	"gift-lookup/internal/features/gift/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderProvider is a mock implementation of OrderProvider for testing.
type mockOrderProvider struct {
	returnOrders []domain.Order
	returnError  error
	calls        int
	gotLimit     int
}

// RecentOrders implements OrderProvider.
func (m *mockOrderProvider) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	m.calls++
	m.gotLimit = limit
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnOrders, nil
}

// fixedNow is the reference clock used across the tests.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(provider ports.OrderProvider) *LookupService {
	svc := NewLookupService(provider, 250, 90)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

// TestLookup_FoundWithMessage verifies the happy path with a metafield message.
func TestLookup_FoundWithMessage(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1001",
				CreatedAt:        daysAgo(5),
				ShippingLastName: "Smith",
				ShippingPostcode: "AB1 2CD",
				GiftMetafield:    "Happy Birthday!",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusFoundWithMessage, res.Status)
	assert.Equal(t, "Happy Birthday!", res.Message)
	assert.Equal(t, 250, provider.gotLimit)
}

// TestLookup_FoundNoMessage verifies a match without any message text.
func TestLookup_FoundNoMessage(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1002",
				CreatedAt:        daysAgo(3),
				ShippingLastName: "Smith",
				ShippingPostcode: "AB1 2CD",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusFoundNoMessage, res.Status)
	assert.Empty(t, res.Message)
}

// TestLookup_StaleOrderOutsideWindow verifies a 120-day-old match yields not_found.
func TestLookup_StaleOrderOutsideWindow(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1003",
				CreatedAt:        daysAgo(120),
				ShippingLastName: "Smith",
				ShippingPostcode: "AB1 2CD",
				GiftMetafield:    "Happy Birthday!",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusNotFound, res.Status)
}

// TestLookup_StaleRecordsDoNotAffectOutcome verifies removing stale records
// never changes the result, even when they sit between fresh ones.
func TestLookup_StaleRecordsDoNotAffectOutcome(t *testing.T) {
	fresh := domain.Order{
		Name:             "#1004",
		CreatedAt:        daysAgo(10),
		ShippingLastName: "Smith",
		ShippingPostcode: "AB1 2CD",
		GiftMetafield:    "Fresh",
	}
	stale := domain.Order{
		Name:             "#0900",
		CreatedAt:        daysAgo(200),
		ShippingLastName: "Smith",
		ShippingPostcode: "AB1 2CD",
		GiftMetafield:    "Stale",
	}

	withStale := &mockOrderProvider{returnOrders: []domain.Order{stale, fresh, stale}}
	withoutStale := &mockOrderProvider{returnOrders: []domain.Order{fresh}}

	resWith := newTestService(withStale).Lookup(context.Background(), "Smith", "AB1 2CD")
	resWithout := newTestService(withoutStale).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, resWithout, resWith)
	assert.Equal(t, "Fresh", resWith.Message)
}

// TestLookup_FirstMatchWins verifies the most recent matching order is selected.
func TestLookup_FirstMatchWins(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1006",
				CreatedAt:        daysAgo(2),
				ShippingLastName: "Smith",
				ShippingPostcode: "AB1 2CD",
				GiftMetafield:    "Newer message",
			},
			{
				Name:             "#1005",
				CreatedAt:        daysAgo(20),
				ShippingLastName: "Smith",
				ShippingPostcode: "AB1 2CD",
				GiftMetafield:    "Older message",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusFoundWithMessage, res.Status)
	assert.Equal(t, "Newer message", res.Message)
}

// TestLookup_BothFieldsMustMatch verifies partial identity matches are rejected.
func TestLookup_BothFieldsMustMatch(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1007",
				CreatedAt:        daysAgo(1),
				ShippingLastName: "Smith",
				ShippingPostcode: "ZZ9 9ZZ",
			},
			{
				Name:             "#1008",
				CreatedAt:        daysAgo(1),
				ShippingLastName: "Jones",
				ShippingPostcode: "AB1 2CD",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusNotFound, res.Status)
}

// TestLookup_BadRequestSkipsFetch verifies invalid input never reaches the provider.
func TestLookup_BadRequestSkipsFetch(t *testing.T) {
	provider := &mockOrderProvider{}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "")

	assert.Equal(t, domain.StatusBadRequest, res.Status)
	assert.Equal(t, 0, provider.calls)
}

// TestLookup_UpstreamStatusError verifies the provider status code is surfaced unchanged.
func TestLookup_UpstreamStatusError(t *testing.T) {
	provider := &mockOrderProvider{
		returnError: &ports.UpstreamStatusError{Code: 503},
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusUpstreamError, res.Status)
	assert.Equal(t, 503, res.UpstreamCode)
	assert.Empty(t, res.Message)
}

// TestLookup_TransportErrorIsInternal verifies plain errors map to server_error.
func TestLookup_TransportErrorIsInternal(t *testing.T) {
	provider := &mockOrderProvider{
		returnError: errors.New("connection refused"),
	}

	res := newTestService(provider).Lookup(context.Background(), "Smith", "AB1 2CD")

	assert.Equal(t, domain.StatusInternalError, res.Status)
	assert.Zero(t, res.UpstreamCode)
}

// TestLookup_NormalizedComparison verifies matching ignores case, spacing and hyphens.
func TestLookup_NormalizedComparison(t *testing.T) {
	provider := &mockOrderProvider{
		returnOrders: []domain.Order{
			{
				Name:             "#1009",
				CreatedAt:        daysAgo(7),
				ShippingLastName: "O'BRIEN ",
				ShippingPostcode: "sw1a 1aa",
				Note:             "Congrats!",
			},
		},
	}

	res := newTestService(provider).Lookup(context.Background(), " o'brien", "SW1A-1AA")

	require.Equal(t, domain.StatusFoundWithMessage, res.Status)
	assert.Equal(t, "Congrats!", res.Message)
}
