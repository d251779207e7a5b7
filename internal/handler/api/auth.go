package api

import (
	"net/http"
	"time"

	reqdto "compute-market/internal/handler/dto/request"
	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/handler/middleware"
	"compute-market/internal/pkg/config"
	"compute-market/internal/pkg/cookie"
	"compute-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds          commands.AuthCommands
	cookieCfg     config.CookieConfig
	tokenDuration time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:          cmds,
		cookieCfg:     cfg.Cookie,
		tokenDuration: cfg.JWT.Duration,
	}
}

// @Summary Request login challenge
// @Description Issue a one-time nonce for the wallet to sign
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.NonceRequest true "Nonce request"
// @Success 200 {object} resdto.NonceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/nonce [post]
func (h *AuthHandler) Nonce(c *gin.Context) {
	var req reqdto.NonceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	challenge, err := h.cmds.IssueNonce(c.Request.Context(), req.WalletAddress)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NonceResponse{
		WalletAddress: challenge.WalletAddress,
		Nonce:         challenge.Nonce,
		Message:       challenge.Message,
		ExpiresAt:     challenge.ExpiresAt,
	})
}

// @Summary Wallet login
// @Description Exchange a signed challenge for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.WalletAddress, req.Signature)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.tokenDuration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:   result.AccessToken,
		WalletAddress: result.WalletAddress,
		ExpiresAt:     result.ExpiresAt,
	})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current wallet
// @Description Return the wallet the session token was issued to
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{WalletAddress: wallet})
}
