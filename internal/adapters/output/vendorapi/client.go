// Package vendorapi is the outbound HTTP adapter for the vendor cloud
// API. It is a thin, stateless wrapper: one directive may drive a handful
// of sequential calls, none of which are retried or cached here.
package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/logging"
)

// originMarker is stamped on every action payload so the vendor can
// attribute the action to the voice-assistant integration. Earlier bridge
// revisions sent unstamped payloads; stamping is the behavior kept.
const originMarker = "alexa"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

func NewClient(baseURL string, logger *logging.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.With("component", "vendorapi"),
	}
}

// GetList issues a paginated GET, following the Link rel="next" relation
// until the listing is drained, and returns the concatenated items.
// Pagination is sequential and fully drained before return; the first
// failing page's error surfaces as the result of the whole call.
func (c *Client) GetList(ctx context.Context, path, bearerToken string) ([]map[string]any, error) {
	items := make([]map[string]any, 0)

	next := c.baseURL + path
	for next != "" {
		body, nextLink, err := c.doGet(ctx, next, bearerToken)
		if err != nil {
			return nil, err
		}
		var page []map[string]any
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decoding vendor listing: %w", err)
		}
		items = append(items, page...)
		next = c.resolveLink(nextLink)
	}
	return items, nil
}

// GetObject issues a single GET and decodes the JSON object body.
func (c *Client) GetObject(ctx context.Context, path, bearerToken string) (map[string]any, error) {
	body, _, err := c.doGet(ctx, c.baseURL+path, bearerToken)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("decoding vendor object: %w", err)
	}
	return obj, nil
}

// Post sends an action payload, stamped with the origin marker. The
// response body is logged but never parsed.
func (c *Client) Post(ctx context.Context, path string, payload map[string]any, bearerToken string) error {
	stamped := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		stamped[k] = v
	}
	stamped["origin"] = originMarker

	body, err := json.Marshal(stamped)
	if err != nil {
		return fmt.Errorf("encoding action payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("vendor POST", "path", path, "type", stamped["type"])

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if err := classifyStatus(resp.StatusCode); err != nil {
		return err
	}
	c.logger.Debug("vendor POST response", "status", resp.StatusCode, "body", string(respBody))
	return nil
}

func (c *Client) doGet(ctx context.Context, url, bearerToken string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	c.logger.Debug("vendor GET", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, "", err
	}
	return body, nextLink(resp.Header.Get("Link")), nil
}

// resolveLink makes a pagination link absolute against the client base.
func (c *Client) resolveLink(link string) string {
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return c.baseURL + link
}

// classifyStatus maps vendor status codes onto domain error kinds:
// 401/403 are credential failures, 400/404 mean the endpoint does not
// exist for this caller. Any other non-success status is surfaced as a
// plain transport error, unclassified.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return model.WrapError(model.ErrAuth, "Auth error",
			fmt.Errorf("vendor API returned %d", status))
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		return model.WrapError(model.ErrNotFound, "Device or Space not found",
			fmt.Errorf("vendor API returned %d", status))
	case status < 200 || status >= 300:
		return fmt.Errorf("vendor API error: %d", status)
	default:
		return nil
	}
}

// nextLink extracts the rel="next" target from an RFC 5988 Link header.
// Returns "" when the header carries no next relation.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(sections[0]), "<>")
		for _, param := range sections[1:] {
			param = strings.TrimSpace(param)
			if param == `rel="next"` || param == "rel=next" {
				return target
			}
		}
	}
	return ""
}
