package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"atgs/internal/application/user/usecases"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/utils"
)

// UserIDKey is the gin context key holding the resolved caller ID.
const UserIDKey = "user_id"

// HeaderUserID carries the caller's identity. The portal trusts the header
// as-is; session hardening is out of scope.
const HeaderUserID = "X-User-ID"

// Identity resolves the X-User-ID header to a known user and stores the ID in
// the request context. Requests without a resolvable identity are rejected.
func Identity(getUserUC usecases.GetUserExecutor) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			utils.ErrorResponseWithError(c, errors.NewPreconditionError("X-User-ID header is required"))
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			utils.ErrorResponseWithError(c, errors.NewPreconditionError("invalid X-User-ID header"))
			c.Abort()
			return
		}

		_, err = getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: uint(id)})
		if err != nil {
			if errors.IsNotFoundError(err) {
				err = errors.NewPreconditionError("unknown user")
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, uint(id))
		c.Next()
	}
}
