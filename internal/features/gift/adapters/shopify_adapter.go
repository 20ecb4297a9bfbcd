package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gift-lookup/internal/core/config"
	"gift-lookup/internal/core/httpclient"
	"gift-lookup/internal/core/logger"
	"gift-lookup/internal/features/gift/domain"
	"gift-lookup/internal/features/gift/ports"

	"go.uber.org/zap"
)

// recentOrdersQuery fetches the newest orders first, together with every
// field the matcher and message selector need. The gift message lives in
// the gift/message metafield; the checkout note is the fallback source.
const recentOrdersQuery = `query RecentOrders($first: Int!) {
  orders(first: $first, sortKey: CREATED_AT, reverse: true) {
    edges {
      node {
        name
        createdAt
        note
        shippingAddress {
          lastName
          zip
        }
        metafield(namespace: "gift", key: "message") {
          value
        }
      }
    }
  }
}`

// ShopifyAdapter implements the OrderProvider interface using the Shopify
// Admin GraphQL API.
type ShopifyAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Shopify connection details.
	config config.ShopifyConfig
}

// NewShopifyAdapter creates a new instance of ShopifyAdapter.
func NewShopifyAdapter(cfg config.ShopifyConfig) *ShopifyAdapter {
	return &ShopifyAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// RecentOrders fetches up to limit orders, newest first, and maps them to
// domain entities. A non-success status becomes an UpstreamStatusError;
// transport and decoding failures are returned as plain errors.
func (a *ShopifyAdapter) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	resp, err := a.query(ctx, recentOrdersQuery, map[string]interface{}{"first": limit})
	if err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("graphql response has no data")
	}

	orders := make([]domain.Order, 0, len(resp.Data.Orders.Edges))
	for _, edge := range resp.Data.Orders.Edges {
		orders = append(orders, mapToDomain(edge.Node))
	}

	return orders, nil
}

// HealthCheck verifies that the Admin API is reachable and the token is valid.
func (a *ShopifyAdapter) HealthCheck(ctx context.Context) error {
	if _, err := a.query(ctx, recentOrdersQuery, map[string]interface{}{"first": 1}); err != nil {
		return fmt.Errorf("shopify health check failed: %w", err)
	}
	return nil
}

// query issues a single GraphQL request and decodes the envelope.
func (a *ShopifyAdapter) query(ctx context.Context, query string, variables map[string]interface{}) (*gqlResponse, error) {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", a.config.AdminToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ports.UpstreamStatusError{Code: resp.StatusCode}
	}

	var envelope gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	return &envelope, nil
}

// endpoint builds the Admin API URL. The configured domain normally has no
// scheme; one with a scheme is used as-is so tests can point at a local server.
func (a *ShopifyAdapter) endpoint() string {
	base := a.config.StoreDomain
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", base, a.config.APIVersion)
}

// mapToDomain converts a raw order node into a domain Order entity.
// Null shipping addresses and metafields collapse to empty fields, which
// the matcher treats as non-matching rather than as errors.
func mapToDomain(node gqlOrderNode) domain.Order {
	order := domain.Order{
		Name:      node.Name,
		CreatedAt: time.Time(node.CreatedAt),
		Note:      node.Note,
	}

	if node.ShippingAddress != nil {
		order.ShippingLastName = node.ShippingAddress.LastName
		order.ShippingPostcode = node.ShippingAddress.Zip
	}

	if node.Metafield != nil {
		order.GiftMetafield = node.Metafield.Value
	}

	return order
}

// internal structs for mapping

// gqlRequest is the GraphQL request envelope.
type gqlRequest struct {
	// Query is the GraphQL document.
	Query string `json:"query"`
	// Variables holds the query variables.
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// gqlResponse is the GraphQL response envelope.
type gqlResponse struct {
	// Data is the query result; nil when the request failed outright.
	Data *gqlData `json:"data"`
	// Errors holds GraphQL-level errors returned alongside a 200 status.
	Errors []gqlError `json:"errors"`
}

// gqlError is a single GraphQL-level error.
type gqlError struct {
	// Message is the error description.
	Message string `json:"message"`
}

// gqlData is the data portion of the orders query response.
type gqlData struct {
	// Orders is the order connection.
	Orders gqlOrderConnection `json:"orders"`
}

// gqlOrderConnection wraps the edges list.
type gqlOrderConnection struct {
	// Edges holds one entry per order.
	Edges []gqlOrderEdge `json:"edges"`
}

// gqlOrderEdge wraps a single order node.
type gqlOrderEdge struct {
	// Node is the order record.
	Node gqlOrderNode `json:"node"`
}

// gqlOrderNode represents one order as returned by the Admin API.
type gqlOrderNode struct {
	// Name is the order display identifier (e.g., #1001).
	Name string `json:"name"`
	// CreatedAt is the order creation timestamp.
	CreatedAt shopifyTime `json:"createdAt"`
	// Note is the free-text order note; null becomes the empty string.
	Note string `json:"note"`
	// ShippingAddress holds the shipping identity fields; may be null.
	ShippingAddress *gqlShippingAddress `json:"shippingAddress"`
	// Metafield holds the gift message value; null when the order has none.
	Metafield *gqlMetafield `json:"metafield"`
}

// gqlShippingAddress holds the identity fields used for matching.
type gqlShippingAddress struct {
	// LastName is the last name on the shipping address.
	LastName string `json:"lastName"`
	// Zip is the postal code on the shipping address.
	Zip string `json:"zip"`
}

// gqlMetafield holds a namespaced metafield value.
type gqlMetafield struct {
	// Value is the raw metafield value.
	Value string `json:"value"`
}

// shopifyTime is a custom helper struct to handle the API's date format.
type shopifyTime time.Time

// UnmarshalJSON parses the ISO8601 timestamps used by the Admin API.
func (t *shopifyTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*t = shopifyTime(time.Time{})
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Some API versions omit the zone offset
		parsed, err = time.Parse("2006-01-02T15:04:05", s)
	}
	if err != nil {
		logger.Get().Warn("Failed to parse order date", zap.String("date", s), zap.Error(err))
		return nil
	}
	*t = shopifyTime(parsed)
	return nil
}
