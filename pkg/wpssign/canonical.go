package wpssign

import (
	"fmt"
	"strings"
	"time"
)

// Scheme is the fixed literal identifying this signing version in the
// X-Auth header.
const Scheme = "WPS-3"

// CanonicalRequest is the exact tuple a request signature is computed over.
// It is constructed once per outbound call so the signed fields cannot
// drift out of sync with what is actually sent on the wire. The shared
// secret is supplied separately at signing time and never stored here.
type CanonicalRequest struct {
	// PathAndQuery is the request path exactly as sent, including any query
	// string (e.g. "/oauthapi/v1/auth/jsapi_ticket?jsapi_token=abc").
	PathAndQuery string

	// ContentType is the Content-Type header value of the request.
	ContentType string

	// ContentMD5 is the lowercase hex MD5 of the request body
	// (MD5Hex(nil) for bodyless GETs).
	ContentMD5 string

	// Date is the RFC1123 GMT date sent in the Date header.
	Date string
}

// NewCanonicalRequest builds the canonical tuple for a bodyless JSON GET
// issued at time t, which is the only request shape the platform's signed
// endpoints accept.
func NewCanonicalRequest(pathAndQuery string, t time.Time) CanonicalRequest {
	return CanonicalRequest{
		PathAndQuery: pathAndQuery,
		ContentType:  "application/json",
		ContentMD5:   MD5Hex(nil),
		Date:         HTTPDate(t),
	}
}

// Sign computes the request signature as lowercase hex SHA1 over the
// concatenation
//
//	lower(secret) + ContentMD5 + PathAndQuery + ContentType + Date
//
// The order is fixed by the platform; reordering any field produces an
// incompatible signature.
func (c CanonicalRequest) Sign(secret string) string {
	return SHA1Hex(strings.ToLower(secret) + c.ContentMD5 + c.PathAndQuery + c.ContentType + c.Date)
}

// AuthHeader formats the X-Auth header value: "WPS-3:<appID>:<signature>".
func AuthHeader(appID, signature string) string {
	return fmt.Sprintf("%s:%s:%s", Scheme, appID, signature)
}
