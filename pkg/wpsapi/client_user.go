package wpsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// FetchUserInfo retrieves the external user profile for an access token.
// The profile is returned as-is; in particular an absent third_union_id is
// not an error at this layer.
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (UserProfile, error) {
	query := url.Values{
		"access_token": {accessToken},
		"appid":        {c.AppID},
	}

	body, err := c.getJSON(ctx, pathUserInfo+"?"+query.Encode(), nil)
	if err != nil {
		return UserProfile{}, err
	}

	var payload struct {
		User UserProfile `json:"user"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserProfile{}, fmt.Errorf("wpsapi: failed to decode user info response: %w", err)
	}

	return payload.User, nil
}
