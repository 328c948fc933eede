package utils

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction/internal/auctionerrors"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	// checked first: a rolled-back operation may wrap another kind
	case errors.Is(err, auctionerrors.ErrInternal):
		return http.StatusInternalServerError, "internal failure"
	case errors.Is(err, auctionerrors.ErrCarNotFound):
		return http.StatusNotFound, "car not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrCarNotAvailable):
		return http.StatusConflict, "car is not available"
	case errors.Is(err, auctionerrors.ErrCarNotOnAuction):
		return http.StatusConflict, "car is not on auction"
	case errors.Is(err, auctionerrors.ErrAuctionAlreadyExists):
		return http.StatusConflict, "an active auction already exists for this car"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusBadRequest, "cannot bid on your own auction"
	case errors.Is(err, auctionerrors.ErrInvalidCar):
		return http.StatusBadRequest, "invalid car details"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "user is not authorized for this operation"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	Info(handlerName+": "+message, ctx)
}
