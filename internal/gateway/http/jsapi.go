package http

import (
	"net/http"

	"github.com/campuslink/wpsgate/internal/gateway/metrics"
	"github.com/campuslink/wpsgate/internal/gateway/service"
	"github.com/campuslink/wpsgate/pkg/httpx"
	"github.com/campuslink/wpsgate/pkg/slogx"
)

// JSAPIConfigHandler builds the JSAPI authorization config for a page URL.
// Each request walks the full credential chain against the platform, so the
// returned config is always signed with a freshly issued ticket.
type JSAPIConfigHandler struct {
	JSAPI   *service.JSAPIService
	Metrics *metrics.Collector
}

func (h *JSAPIConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		h.Metrics.RecordJSAPIConfig("bad_request")
		ErrInvalidRequest.WithDescription("Missing required parameter: url.").WriteError(w)
		return
	}

	config, err := h.JSAPI.BuildConfig(ctx, pageURL)
	if err != nil {
		h.Metrics.RecordJSAPIConfig("upstream_error")
		log.Warn("jsapi config build failed", "url", pageURL, "err", err)
		ErrUpstream.WriteError(w)
		return
	}

	h.Metrics.RecordJSAPIConfig("ok")
	httpx.WriteJSON(w, http.StatusOK, config)
}
