package wpsapi

import (
	"net/http"
	"strings"
	"time"
)

// Platform endpoint paths. The JSAPI endpoints require WPS-3 signed requests;
// the OAuth endpoints are unsigned.
const (
	pathToken       = "/oauthapi/v2/token"
	pathUserInfo    = "/oauthapi/v3/user"
	pathJSAPIToken  = "/oauthapi/v1/auth/jsapi_token"
	pathJSAPITicket = "/oauthapi/v1/auth/jsapi_ticket"
)

// Client is a client for the WPS open platform. All configuration is fixed
// at construction; the client itself is stateless and safe for concurrent
// use.
type Client struct {
	BaseURL    string
	AppID      string
	AppSecret  string
	HTTPClient *http.Client

	// Now overrides the clock used for signed request dates. Nil means
	// time.Now; tests set this to pin Date headers.
	Now func() time.Time
}

// NewClient creates a platform client with a bounded request timeout so a
// stalled platform call cannot suspend a login indefinitely.
func NewClient(baseURL, appID, appSecret string) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		AppID:     appID,
		AppSecret: appSecret,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
