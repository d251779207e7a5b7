package api

import (
	"net/http"

	"compute-market/internal/domain/auth"
	"compute-market/internal/domain/market"
	"compute-market/internal/domain/settlement"
	"compute-market/internal/handler/httperr"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
}

// errorMappings is checked in order; the first sentinel found in the chain decides the status.
var errorMappings = []errorMapping{
	// request validation
	{market.ErrInvalidCPUCores, http.StatusBadRequest},
	{market.ErrInvalidGPUCount, http.StatusBadRequest},
	{market.ErrInvalidRAM, http.StatusBadRequest},
	{market.ErrInvalidStorage, http.StatusBadRequest},
	{market.ErrInvalidPrice, http.StatusBadRequest},
	{market.ErrInvalidDuration, http.StatusBadRequest},
	{market.ErrJobDescriptionTooLong, http.StatusBadRequest},
	{market.ErrInvalidDemandStatus, http.StatusBadRequest},
	{market.ErrInvalidMatchStatus, http.StatusBadRequest},
	{market.ErrInvalidTxStatus, http.StatusBadRequest},
	{market.ErrInvalidAmount, http.StatusBadRequest},
	{settlement.ErrInvalidWalletAddress, http.StatusBadRequest},
	{settlement.ErrInvalidTxHash, http.StatusBadRequest},
	{errs.ErrDuplicateTransaction, http.StatusBadRequest},

	// authentication
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized},
	{auth.ErrInvalidSignature, http.StatusUnauthorized},
	{auth.ErrSignatureMismatch, http.StatusUnauthorized},
	{auth.ErrNonceExpired, http.StatusUnauthorized},
	{auth.ErrNonceNotFound, http.StatusUnauthorized},
	{errs.ErrUnauthenticated, http.StatusUnauthorized},

	// authorization
	{errs.ErrNotOwner, http.StatusForbidden},
	{errs.ErrNotMatchParty, http.StatusForbidden},

	// lookup
	{errs.ErrSupplyOfferNotFound, http.StatusNotFound},
	{errs.ErrDemandRequestNotFound, http.StatusNotFound},
	{errs.ErrMatchNotFound, http.StatusNotFound},
	{errs.ErrTransactionNotFound, http.StatusNotFound},
	{errs.ErrNoCompatibleOffer, http.StatusNotFound},

	// state conflicts
	{errs.ErrSupplyOfferInUse, http.StatusConflict},
	{errs.ErrDemandRequestInUse, http.StatusConflict},
	{errs.ErrMatchHasTransactions, http.StatusConflict},
	{errs.ErrGPUTypeMismatch, http.StatusConflict},
	{errs.ErrMatchCancelled, http.StatusConflict},
	{errs.ErrSettlementFailed, http.StatusConflict},
	{market.ErrIllegalTransition, http.StatusConflict},
	{market.ErrSelfMatch, http.StatusConflict},
	{market.ErrOfferUnavailable, http.StatusConflict},
	{market.ErrDemandNotActive, http.StatusConflict},

	{errs.ErrChainUnavailable, http.StatusServiceUnavailable},
}

// statusFor returns the HTTP status for err and the message shown to clients.
// Unknown errors become a 500 with a generic message.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
}

func errInvalidQuery(name, value string) error {
	return errs.New("invalid query parameter " + name + "=" + value)
}
