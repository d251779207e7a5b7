package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"compute-market/internal/handler/httperr"
	"compute-market/internal/pkg/cookie"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxWalletKey    = "wallet"
	ctxJWTClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		wallet, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}

		setWallet(c, wallet)
		c.Next()
	}
}

// OptionalAuth attaches the wallet when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		wallet, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setWallet(c, wallet)
		c.Next()
	}
}

// GetWallet returns the checksummed wallet address of the authenticated caller.
func GetWallet(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxWalletKey)
	if !exists {
		return "", false
	}

	wallet, ok := v.(string)
	return wallet, ok && wallet != ""
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setWallet(c *gin.Context, wallet string) {
	c.Set(ctxWalletKey, wallet)
	c.Set(ctxJWTClaimsKey, map[string]any{
		"sub": wallet,
	})
}
