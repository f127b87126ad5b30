package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
)

// ActorKey is the gin context key under which the resolved acting user is stored.
const ActorKey = "actor"

// HeaderUserID names the header carrying the acting user's ID. This is
// identification, not authentication: the marketplace has no credentials,
// and the header plays the role the hardcoded current-user ID played in
// the original single-user design.
const HeaderUserID = "X-User-ID"

// Identity returns middleware that resolves the X-User-ID header to a user
// record and stores it in the request context. Requests without a
// resolvable user are rejected.
func Identity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			abortWithAppError(c, apperrors.ErrUnknownUser)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortWithAppError(c, apperrors.ErrUnknownUser)
				return
			}
			abortWithAppError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}

		c.Set(ActorKey, &user)
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}
