//go:build unit

package api_test

import (
	"compute-market/internal/handler/middleware"
	"compute-market/internal/pkg/jwt"
	"compute-market/tests/common/builder"
	usecasemock "compute-market/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	supplierToken = "supplier-token"
	buyerToken    = "buyer-token"
)

// newTestEngine returns an engine with the production error handler so error
// envelopes match what clients see.
func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}

// newTestAuth wires the real middleware to a validator that knows two tokens.
func newTestAuth(ctrl *gomock.Controller) gin.HandlerFunc {
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (string, error) {
		switch token {
		case supplierToken:
			return builder.SupplierWallet, nil
		case buyerToken:
			return builder.BuyerWallet, nil
		default:
			return "", jwt.ErrInvalidToken
		}
	}).AnyTimes()
	return middleware.NewAuthMiddleware(validator).RequireAuth()
}
