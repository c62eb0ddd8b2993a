package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	"github.com/campuslink/wpsgate/pkg/wpsapi"
	"github.com/campuslink/wpsgate/pkg/wpssign"
)

// PlatformCredentials is the subset of the platform client used to mint
// JSAPI credentials.
type PlatformCredentials interface {
	ServerToken(ctx context.Context) (wpsapi.ServerCredential, error)
	Ticket(ctx context.Context, serverToken string) (wpsapi.TicketCredential, error)
}

// JSAPIService builds one-time authorization configs for embedding the
// platform's client SDK in a page. Every call re-acquires the server
// credential and the ticket from scratch; nothing is cached, which keeps
// expiry behaviour identical under concurrent requests.
type JSAPIService struct {
	Platform PlatformCredentials
	AppID    string

	// Now and Nonce override the clock and nonce source for tests.
	Now   func() time.Time
	Nonce func(length int) string
}

// BuildConfig returns a fresh authorization config for pageURL. The config
// is valid only for that exact URL and only once; callers must request a
// new one per page load. Fails fast on the first upstream error with no
// partial config.
func (s *JSAPIService) BuildConfig(ctx context.Context, pageURL string) (domain.JSAPIConfig, error) {
	credential, err := s.Platform.ServerToken(ctx)
	if err != nil {
		return domain.JSAPIConfig{}, fmt.Errorf("failed to obtain server credential: %w", err)
	}

	ticket, err := s.Platform.Ticket(ctx, credential.Value)
	if err != nil {
		return domain.JSAPIConfig{}, fmt.Errorf("failed to obtain ticket: %w", err)
	}

	timestamp := s.now().UnixMilli()
	nonce := s.nonce(wpssign.DefaultNonceLength)

	return domain.JSAPIConfig{
		AppID:     s.AppID,
		Timestamp: timestamp,
		Nonce:     nonce,
		Signature: JSAPISignature(ticket.Value, nonce, timestamp, pageURL),
		URL:       pageURL,
	}, nil
}

// JSAPISignature computes the client-facing signature the embedded SDK
// verifies. Field order is fixed by the platform: ticket, nonce, timestamp,
// url. The page URL is hashed exactly as supplied, with no re-encoding.
func JSAPISignature(ticket, nonce string, timestampMillis int64, pageURL string) string {
	return wpssign.SHA1Hex(
		"jsapi_ticket=" + ticket +
			"&noncestr=" + nonce +
			"&timestamp=" + strconv.FormatInt(timestampMillis, 10) +
			"&url=" + pageURL,
	)
}

func (s *JSAPIService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *JSAPIService) nonce(length int) string {
	if s.Nonce != nil {
		return s.Nonce(length)
	}
	return wpssign.Nonce(length)
}
