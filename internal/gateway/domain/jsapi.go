package domain

// JSAPIConfig is the one-time authorization config consumed by the
// platform's embedded client SDK to self-verify on a specific page.
// Timestamp and nonce change on every call, so two configs are never
// interchangeable and must not be cached or reused across page loads.
type JSAPIConfig struct {
	AppID     string `json:"appId"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Nonce     string `json:"nonceStr"`
	Signature string `json:"signature"`
	URL       string `json:"url"`
}
