package wpsapi

import "encoding/json"

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is the payload of a successful authorization-code exchange.
type TokenResponse struct {
	// AccessToken authenticates subsequent user-info requests.
	AccessToken string

	// RefreshToken can be exchanged for a fresh access token. The gateway
	// itself never uses it; it is surfaced for callers that do.
	RefreshToken string

	// OpenID is the platform-scoped user identifier.
	OpenID string

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int
}

// ============================================================================
// User Profile
// ============================================================================

// UserProfile is the external user profile returned by the user-info
// endpoint. ExternalUnionID carries the platform's third_union_id field,
// the join key that maps an external identity onto an internal record.
// This layer maps the field 1:1 and applies no validation; checking its
// presence is the identity resolver's job.
type UserProfile struct {
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Sex        string `json:"sex"`
	OpenID     string `json:"openid"`
	UnionID    string `json:"unionid"`
	CompanyID  string `json:"company_id"`
	CompanyUID string `json:"company_uid"`

	ExternalUnionID string `json:"third_union_id"`

	// Extensions collects any fields the platform returns beyond the ones
	// modelled above, so tenant-specific profile attributes are not lost.
	Extensions map[string]any `json:"-"`
}

// profileFields lists the JSON keys decoded into named UserProfile fields;
// everything else lands in Extensions.
var profileFields = []string{
	"nickname", "avatar", "sex", "openid", "unionid",
	"company_id", "company_uid", "third_union_id",
}

// UnmarshalJSON decodes the named fields and captures unknown keys into
// Extensions.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range profileFields {
		delete(raw, key)
	}

	if len(raw) > 0 {
		decoded.Extensions = make(map[string]any, len(raw))
		for key, value := range raw {
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return err
			}
			decoded.Extensions[key] = v
		}
	}

	*p = UserProfile(decoded)
	return nil
}

// ============================================================================
// JSAPI Credentials
// ============================================================================

// ServerCredential is the short-lived server-to-server credential used to
// request a JSAPI ticket. It is ephemeral and never persisted by this
// package.
type ServerCredential struct {
	Value     string
	ExpiresIn int
}

// TicketCredential is the short-lived ticket derived from a valid server
// credential, used to compute client-facing JSAPI signatures.
type TicketCredential struct {
	Value     string
	ExpiresIn int
}
