package ports

import "context"

// VendorGateway is the outbound port to the vendor cloud API. All calls
// are stateless request/response transactions: the bearer token travels
// with each call and is never retained, and no call is retried internally.
type VendorGateway interface {
	// GetList issues a paginated GET, following "next" link relations
	// until the listing is drained, and returns the concatenated items.
	GetList(ctx context.Context, path, bearerToken string) ([]map[string]any, error)

	// GetObject issues a single GET and decodes the JSON object body.
	GetObject(ctx context.Context, path, bearerToken string) (map[string]any, error)

	// Post issues an action POST. The response body is logged, not parsed.
	Post(ctx context.Context, path string, payload map[string]any, bearerToken string) error
}
