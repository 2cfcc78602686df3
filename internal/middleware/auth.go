package middleware

import (
	"strings"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	TokenKey       = "token"
	UserIDKey      = "user_id"
	ImpersonateKey = "impersonate_user_id"

	// ImpersonateHeader names the user an admin acts on behalf of.
	ImpersonateHeader = "X-Impersonate-User"
)

// Authorizer resolves a bearer token to its user.
type Authorizer interface {
	Authorize(token string, allowed ...models.Persona) (*models.User, error)
}

func Auth(authorizer Authorizer) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		user, err := authorizer.Authorize(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(TokenKey, parts[1])
		c.Set(UserIDKey, user.ID)
		if target := strings.TrimSpace(c.GetHeader(ImpersonateHeader)); target != "" {
			c.Set(ImpersonateKey, target)
		}

		c.Next()
	}
}

func getString(c *drift.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func GetUserID(c *drift.Context) string {
	return getString(c, UserIDKey)
}

// GetCredentials returns what the caller presented: the bearer token and the
// optional impersonation target.
func GetCredentials(c *drift.Context) authz.Credentials {
	return authz.Credentials{
		Token:             getString(c, TokenKey),
		ImpersonateUserID: getString(c, ImpersonateKey),
	}
}
