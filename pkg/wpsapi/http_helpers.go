package wpsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/campuslink/wpsgate/pkg/wpssign"
)

// getJSON performs a GET against pathAndQuery, applies the shared error
// normalization (HTTPError for non-2xx, PlatformError for failure envelopes)
// and returns the raw success body for the caller to decode.
func (c *Client) getJSON(
	ctx context.Context,
	pathAndQuery string,
	headers map[string]string,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("wpsapi: failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wpsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wpsapi: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := checkEnvelope(body); err != nil {
		return nil, err
	}

	return body, nil
}

// getSignedJSON is getJSON with the WPS-3 signature headers attached. The
// canonical request covers pathAndQuery exactly as sent, so callers must
// pass the final path including any query string.
func (c *Client) getSignedJSON(ctx context.Context, pathAndQuery string) ([]byte, error) {
	canonical := wpssign.NewCanonicalRequest(pathAndQuery, c.now())

	return c.getJSON(ctx, pathAndQuery, map[string]string{
		"Content-Type": canonical.ContentType,
		"Date":         canonical.Date,
		"Content-Md5":  canonical.ContentMD5,
		"X-Auth":       wpssign.AuthHeader(c.AppID, canonical.Sign(c.AppSecret)),
	})
}
