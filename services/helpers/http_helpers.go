package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"student-exchange/internal/exchangeerrors"
	"student-exchange/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key under which the auth middleware stores
// the verified caller identity.
const IdentityKey = "username"

// CurrentUser returns the verified identity of the caller, or "" when the
// request did not pass through the auth middleware.
func CurrentUser(c *gin.Context) string {
	return c.GetString(IdentityKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Authorization failures deliberately share the 404 shape so the existence
// of other users' rows is not leaked.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, exchangeerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, exchangeerrors.ErrRequestNotFound):
		return http.StatusNotFound, "buy request not found"
	case errors.Is(err, exchangeerrors.ErrForbidden):
		return http.StatusNotFound, "not found or unauthorized"
	case errors.Is(err, exchangeerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, exchangeerrors.ErrInvalidStatus):
		return http.StatusBadRequest, "unknown status value"
	case errors.Is(err, exchangeerrors.ErrEmptyCart):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, exchangeerrors.ErrDuplicateCartEntry):
		return http.StatusConflict, "item already in cart"
	case errors.Is(err, exchangeerrors.ErrDuplicateRequest):
		return http.StatusConflict, "pending request already exists for item"
	case errors.Is(err, exchangeerrors.ErrConflict):
		return http.StatusConflict, "item already taken"
	case errors.Is(err, exchangeerrors.ErrInvalidTransition):
		return http.StatusConflict, "status transition not permitted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
