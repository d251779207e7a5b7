//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/pkg/cookie"
	"compute-market/tests/common/builder"
	"compute-market/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// LoginWallet runs the nonce and signature flow for the builder's key and
// returns the session token from the cookie.
func LoginWallet(t *testing.T, router http.Handler, wallet *builder.AuthBuilder) string {
	t.Helper()

	w := httptest.Do(t, router, http.MethodPost, "/api/auth/nonce", wallet.BuildNonceDTO())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var challenge resdto.NonceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &challenge)

	w = httptest.Do(t, router, http.MethodPost, "/api/auth/login", wallet.BuildLoginDTO(challenge.Message))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}
