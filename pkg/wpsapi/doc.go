/*
Package wpsapi provides a client for the WPS open-platform OAuth and JSAPI
credential endpoints.

# Overview

The package is organised around a single Client that issues four kinds of
outbound GET requests:

  - ExchangeCode: authorization-code -> access-token exchange (unsigned)
  - FetchUserInfo: external user profile for an access token (unsigned)
  - ServerToken: short-lived server-to-server credential (WPS-3 signed)
  - Ticket: short-lived JSAPI ticket derived from a server token (WPS-3 signed)

Create a Client with its application credentials:

	client := wpsapi.NewClient("https://openapi.wps.cn", appID, appSecret)

	token, err := client.ExchangeCode(ctx, code)
	profile, err := client.FetchUserInfo(ctx, token.AccessToken)

Signed requests carry Content-Type, Date, Content-Md5 and X-Auth headers
computed by pkg/wpssign over the request path exactly as sent, including any
query string.

# Error Handling

Every method fails fast on the first error and returns one of two typed
errors for remote failures:

  - HTTPError: transport succeeded but the status was not 2xx
  - PlatformError: HTTP 2xx but the response envelope signals failure,
    either an {error, error_description} pair or a non-zero result code

The client holds no state beyond its immutable configuration, performs no
retries and caches no credentials; concurrent calls are independent.
*/
package wpsapi
