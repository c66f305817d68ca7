package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

const identityKey = "identity"

// Authenticator resolves a bearer token to an identity
type Authenticator interface {
	Authenticate(token string) (*entity.Identity, error)
}

var _ Authenticator = (usecase.AuthUseCase)(nil)

// Authenticate requires a valid bearer token. With allowQuery the token may
// also come from the token query parameter, for EventSource clients that
// cannot set headers.
func Authenticate(auth Authenticator, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("token")
		}
		if token == "" {
			_ = c.Error(errs.ErrMissingToken)
			c.Abort()
			return
		}

		identity, err := auth.Authenticate(token)
		if err != nil {
			_ = c.Error(errs.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser returns the identity set by Authenticate, or nil
func CurrentUser(c *gin.Context) *entity.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*entity.Identity)
	return identity
}
