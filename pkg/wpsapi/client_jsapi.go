package wpsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ServerToken obtains a short-lived server-to-server credential via a WPS-3
// signed GET with an empty body. Every call hits the platform; nothing is
// cached, so concurrent callers each get their own credential.
func (c *Client) ServerToken(ctx context.Context) (ServerCredential, error) {
	body, err := c.getSignedJSON(ctx, pathJSAPIToken)
	if err != nil {
		return ServerCredential{}, err
	}

	var payload struct {
		JSAPIToken string `json:"jsapi_token"`
		ExpiresIn  int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ServerCredential{}, fmt.Errorf("wpsapi: failed to decode jsapi_token response: %w", err)
	}

	if payload.JSAPIToken == "" {
		return ServerCredential{}, fmt.Errorf("wpsapi: empty jsapi_token in response")
	}

	return ServerCredential{Value: payload.JSAPIToken, ExpiresIn: payload.ExpiresIn}, nil
}

// Ticket exchanges a server credential for a JSAPI ticket. The credential
// travels as a query parameter and the signature covers the full
// path-with-query exactly as sent.
func (c *Client) Ticket(ctx context.Context, serverToken string) (TicketCredential, error) {
	query := url.Values{"jsapi_token": {serverToken}}

	body, err := c.getSignedJSON(ctx, pathJSAPITicket+"?"+query.Encode())
	if err != nil {
		return TicketCredential{}, err
	}

	var payload struct {
		JSAPITicket string `json:"jsapi_ticket"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return TicketCredential{}, fmt.Errorf("wpsapi: failed to decode jsapi_ticket response: %w", err)
	}

	if payload.JSAPITicket == "" {
		return TicketCredential{}, fmt.Errorf("wpsapi: empty jsapi_ticket in response")
	}

	return TicketCredential{Value: payload.JSAPITicket, ExpiresIn: payload.ExpiresIn}, nil
}
