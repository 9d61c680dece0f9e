package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// userAgent identifies the client, as the API guidelines request.
const userAgent = "bookdex/1.0 (+https://github.com/custodia-labs/bookdex-cli)"

// getJSON performs a rate-limited GET against the API and decodes the
// response body into v.
func (c *Connector) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.config.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		c.limiter.RecordRateLimitError(connectors.RetryAfter(resp))
		return fmt.Errorf("%w: open library", domain.ErrRateLimited)
	default:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("open library error (status %d): failed to read response", resp.StatusCode)
		}
		return fmt.Errorf("open library error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
