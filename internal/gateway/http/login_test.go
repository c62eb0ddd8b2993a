package http_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	gatewayhttp "github.com/campuslink/wpsgate/internal/gateway/http"
	"github.com/campuslink/wpsgate/internal/gateway/metrics"
	"github.com/campuslink/wpsgate/internal/gateway/service"
	"github.com/campuslink/wpsgate/internal/gateway/store"
	"github.com/campuslink/wpsgate/internal/gateway/store/drivers/sqlite"
	"github.com/campuslink/wpsgate/pkg/idx"
	"github.com/campuslink/wpsgate/pkg/wpsapi"
)

// fakePlatform serves the platform endpoints the login flow hits.
type fakePlatform struct {
	srv *httptest.Server

	validCode   string
	accessToken string
	profile     map[string]any
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	p := &fakePlatform{
		validCode:   "CODE1",
		accessToken: "AT1",
		profile: map[string]any{
			"nickname":       "Alex Zhang",
			"openid":         "OPENID1",
			"third_union_id": "S12345",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauthapi/v2/token", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("code") != p.validCode {
			fmt.Fprint(w, `{"error":"invalid_grant","error_description":"code expired"}`)
			return
		}
		resp := map[string]any{
			"token": map[string]any{
				"access_token": p.accessToken,
				"openid":       "OPENID1",
				"expires_in":   7200,
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("GET /oauthapi/v3/user", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != p.accessToken {
			fmt.Fprint(w, `{"result":40002,"msg":"invalid token"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": p.profile})
	})
	mux.HandleFunc("GET /oauthapi/v1/auth/jsapi_token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth") == "" {
			fmt.Fprint(w, `{"result":40004,"msg":"missing signature"}`)
			return
		}
		fmt.Fprint(w, `{"jsapi_token":"ST1","expires_in":7200}`)
	})
	mux.HandleFunc("GET /oauthapi/v1/auth/jsapi_ticket", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("jsapi_token") != "ST1" {
			fmt.Fprint(w, `{"result":40005,"msg":"invalid jsapi_token"}`)
			return
		}
		fmt.Fprint(w, `{"jsapi_ticket":"TICKET1","expires_in":7200}`)
	})

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

type testGateway struct {
	router   *gatewayhttp.Router
	store    store.Store
	platform *fakePlatform
}

func newTestGateway(t *testing.T) *testGateway {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	platform := newFakePlatform(t)
	client := wpsapi.NewClient(platform.srv.URL, "APPID1", "AppSecret1")

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	router := gatewayhttp.NewRouter("test", st, registry, collector, slog.Default())
	router.Platform = client
	router.IdentityService = &service.IdentityService{Store: st}
	router.JSAPIService = &service.JSAPIService{Platform: client, AppID: "APPID1"}
	router.SessionService = &service.SessionService{
		SigningKey: []byte("test-signing-key"),
		Issuer:     "wpsgate-test",
		TTL:        time.Hour,
	}
	router.ApplyRoutes()

	return &testGateway{router: router, store: st, platform: platform}
}

func (g *testGateway) seedContact(t *testing.T, c domain.Contact) {
	t.Helper()
	if c.ID == "" {
		c.ID = idx.New().String()
	}
	require.NoError(t, g.store.Contacts().CreateContact(t.Context(), c))
}

func (g *testGateway) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "198.51.100.7:40000"
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)
	return rec
}

func TestLoginCallbackMatchedStudent(t *testing.T) {
	g := newTestGateway(t)
	g.seedContact(t, domain.Contact{
		DisplayName:     "Alex Zhang",
		Role:            "student",
		ExternalNumber:  "20230012345",
		ExternalUnionID: "S12345",
		OrgUnitName:     "School of Computing",
		MajorName:       "Software Engineering",
		ClassName:       "SE-2023-1",
	})

	rec := g.get(t, "/v1/login/callback?code=CODE1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp gatewayhttp.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, "Alex Zhang", resp.User.DisplayName)
	require.Equal(t, domain.UserTypeStudent, resp.User.UserType)
	require.Equal(t, "20230012345", resp.User.ExternalNumber)
	require.Equal(t, "School of Computing", resp.User.OrgUnitName)

	// The issued token must verify against the same session service.
	claims, err := g.router.SessionService.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "Alex Zhang", claims.DisplayName)
	require.Equal(t, domain.UserTypeStudent, claims.UserType)
}

func TestLoginCallbackMatchedTeacher(t *testing.T) {
	g := newTestGateway(t)
	g.platform.profile["third_union_id"] = "T001"
	g.seedContact(t, domain.Contact{
		DisplayName:     "Dr. Wei Chen",
		Role:            "teacher",
		ExternalNumber:  "EMP-0042",
		ExternalUnionID: "T001",
	})

	rec := g.get(t, "/v1/login/callback?code=CODE1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp gatewayhttp.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, domain.UserTypeTeacher, resp.User.UserType)
}

func TestLoginCallbackMissingCode(t *testing.T) {
	g := newTestGateway(t)

	rec := g.get(t, "/v1/login/callback")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid_request")
}

func TestLoginCallbackUnknownUser(t *testing.T) {
	g := newTestGateway(t)
	// Roster holds a different person; S12345 must not fuzzy-match.
	g.seedContact(t, domain.Contact{
		DisplayName:     "Someone Else",
		Role:            "student",
		ExternalNumber:  "20230099999",
		ExternalUnionID: "S99999",
	})

	rec := g.get(t, "/v1/login/callback?code=CODE1")
	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp gatewayhttp.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "access_denied", resp.Code)
	require.Contains(t, resp.Description, "S12345")
}

func TestLoginCallbackMissingJoinKey(t *testing.T) {
	g := newTestGateway(t)
	delete(g.platform.profile, "third_union_id")

	rec := g.get(t, "/v1/login/callback?code=CODE1")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "access_denied")
}

func TestLoginCallbackInvalidCode(t *testing.T) {
	g := newTestGateway(t)

	rec := g.get(t, "/v1/login/callback?code=WRONG")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "upstream_error")
}

func TestLoginCallbackPlatformDown(t *testing.T) {
	g := newTestGateway(t)
	g.platform.srv.Close()

	rec := g.get(t, "/v1/login/callback?code=CODE1")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "upstream_error")
}

func TestHealthEndpoints(t *testing.T) {
	g := newTestGateway(t)

	live := g.get(t, "/livez")
	require.Equal(t, http.StatusOK, live.Code)
	require.Contains(t, live.Body.String(), `"status":"ok"`)

	ready := g.get(t, "/readyz")
	require.Equal(t, http.StatusOK, ready.Code)
	require.Contains(t, ready.Body.String(), `"database":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	g := newTestGateway(t)

	// Generate a couple of responses first so counters exist.
	g.get(t, "/livez")

	rec := g.get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "wpsgate_http_status_total")
}
