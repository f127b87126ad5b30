package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/logger"
	"herdshare/internal/middleware"
	"herdshare/internal/models"
)

// getActor extracts the acting user resolved by the identity middleware.
// Returns ErrUnknownUser if not present.
func getActor(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(middleware.ActorKey)
	if !exists {
		return nil, apperrors.ErrUnknownUser
	}
	actor, ok := value.(*models.User)
	if !ok {
		return nil, apperrors.ErrUnknownUser
	}
	return actor, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
