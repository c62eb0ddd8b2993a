package wpsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ExchangeCode exchanges an OAuth authorization code for a platform access
// token. The call is unsigned; the app credentials travel as query
// parameters.
func (c *Client) ExchangeCode(ctx context.Context, code string) (TokenResponse, error) {
	query := url.Values{
		"appid":  {c.AppID},
		"appkey": {c.AppSecret},
		"code":   {code},
	}

	body, err := c.getJSON(ctx, pathToken+"?"+query.Encode(), nil)
	if err != nil {
		return TokenResponse{}, err
	}

	var payload struct {
		Token struct {
			AppID        string `json:"appid"`
			ExpiresIn    int    `json:"expires_in"`
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			OpenID       string `json:"openid"`
		} `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return TokenResponse{}, fmt.Errorf("wpsapi: failed to decode token response: %w", err)
	}

	if payload.Token.AccessToken == "" {
		return TokenResponse{}, fmt.Errorf("wpsapi: empty access token in response")
	}

	return TokenResponse{
		AccessToken:  payload.Token.AccessToken,
		RefreshToken: payload.Token.RefreshToken,
		OpenID:       payload.Token.OpenID,
		ExpiresIn:    payload.Token.ExpiresIn,
	}, nil
}
