package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Every failure kind is distinguishable by the caller; nothing collapses
// into a generic failure except genuinely unexpected errors.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrInvalidAuctionState):
		return http.StatusBadRequest, "product is not open for bidding"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid price too low"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusBadRequest, "no bids found for product"
	case errors.Is(err, auctionerrors.ErrAlreadySold):
		return http.StatusBadRequest, "product already sold"
	case errors.Is(err, auctionerrors.ErrHasBids):
		return http.StatusConflict, "product has standing bids"
	case errors.Is(err, auctionerrors.ErrSellerMissing):
		return http.StatusInternalServerError, "seller account missing"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
