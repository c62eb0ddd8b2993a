package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	"github.com/campuslink/wpsgate/internal/gateway/metrics"
	"github.com/campuslink/wpsgate/internal/gateway/service"
	"github.com/campuslink/wpsgate/pkg/httpx"
	"github.com/campuslink/wpsgate/pkg/slogx"
	"github.com/campuslink/wpsgate/pkg/wpsapi"
)

// PlatformAuthenticator is the subset of the platform client the login
// flow needs. *wpsapi.Client satisfies it.
type PlatformAuthenticator interface {
	ExchangeCode(ctx context.Context, code string) (wpsapi.TokenResponse, error)
	FetchUserInfo(ctx context.Context, accessToken string) (wpsapi.UserProfile, error)
}

// LoginResponse is returned on a successful login callback.
type LoginResponse struct {
	Token     string                   `json:"token"`
	TokenType string                   `json:"token_type"`
	ExpiresAt int64                    `json:"expires_at"`
	User      domain.AuthenticatedUser `json:"user"`
}

// LoginHandler completes the platform authorization-code flow: it exchanges
// the one-time code for an access token, fetches the platform profile,
// resolves it against the internal roster and issues a session token.
type LoginHandler struct {
	Platform PlatformAuthenticator
	Identity *service.IdentityService
	Sessions *service.SessionService
	Metrics  *metrics.Collector
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Metrics.RecordLogin("bad_request")
		ErrInvalidRequest.WithDescription("Missing required parameter: code.").WriteError(w)
		return
	}

	// Every login performs the full exchange. Codes are single-use and
	// tokens are never cached, so there is nothing to short-circuit.
	start := time.Now()
	token, err := h.Platform.ExchangeCode(ctx, code)
	if err != nil {
		h.Metrics.RecordPlatformLatency(time.Since(start))
		h.writeUpstreamError(w, log, "code exchange failed", err)
		return
	}

	profile, err := h.Platform.FetchUserInfo(ctx, token.AccessToken)
	h.Metrics.RecordPlatformLatency(time.Since(start))
	if err != nil {
		h.writeUpstreamError(w, log, "user info fetch failed", err)
		return
	}

	result := h.Identity.Resolve(ctx, profile)
	if !result.Matched {
		h.Metrics.RecordResolve(string(result.Reason))

		if result.Reason == domain.MatchReasonInternalError {
			h.Metrics.RecordLogin("internal_error")
			log.Error("identity resolution failed", "detail", result.Detail)
			ErrServerError.WriteError(w)
			return
		}

		h.Metrics.RecordLogin("denied")
		log.Info("login denied",
			"reason", result.Reason,
			"detail", result.Detail,
		)
		ErrAccessDenied.WithDescription(result.Detail).WriteError(w)
		return
	}
	h.Metrics.RecordResolve("matched")

	sessionToken, expiresAt, err := h.Sessions.Issue(result.User)
	if err != nil {
		h.Metrics.RecordLogin("internal_error")
		log.Error("session issuance failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	h.Metrics.RecordLogin("matched")
	log.Info("login succeeded",
		"user_id", result.User.ID,
		"user_type", result.User.UserType,
		"matched_fields", result.MatchedFields,
	)

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     sessionToken,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.Unix(),
		User:      result.User,
	})
}

// writeUpstreamError maps platform client failures onto a 502 response.
// Platform rejections and transport failures look the same to the caller;
// the distinction only matters in the logs.
func (h *LoginHandler) writeUpstreamError(w http.ResponseWriter, log *slog.Logger, msg string, err error) {
	h.Metrics.RecordLogin("upstream_error")

	var platformErr *wpsapi.PlatformError
	var httpErr *wpsapi.HTTPError
	switch {
	case errors.As(err, &platformErr):
		log.Warn(msg, "platform_code", platformErr.Code, "err", err)
	case errors.As(err, &httpErr):
		log.Warn(msg, "status", httpErr.Status, "err", err)
	default:
		log.Warn(msg, "err", err)
	}

	ErrUpstream.WriteError(w)
}
