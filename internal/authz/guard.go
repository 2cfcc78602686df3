// Package authz resolves bearer tokens to acting users and holds the
// persona and ownership rules the API enforces before mutating anything.
package authz

import (
	"slices"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/store"
	"github.com/cypherskull/hyperconnect/internal/token"
)

// Credentials are what a caller presents with each request.
type Credentials struct {
	Token             string
	ImpersonateUserID string
}

// ActingContext separates who authenticated from whom the action is
// performed as. They differ only while an Admin impersonates a user.
type ActingContext struct {
	Authenticated *models.User
	Effective     *models.User
}

func (a *ActingContext) Impersonating() bool {
	return a.Authenticated.ID != a.Effective.ID
}

type Guard struct {
	users store.Collection[*models.User]
	codec token.Codec
}

func NewGuard(users store.Collection[*models.User], codec token.Codec) *Guard {
	return &Guard{users: users, codec: codec}
}

// Authorize resolves the token to a user. With a non-empty allow-list the
// user's persona must be in it.
func (g *Guard) Authorize(tok string, allowed ...models.Persona) (*models.User, error) {
	if tok == "" {
		return nil, apierr.Unauthorized("missing token")
	}
	userID, err := g.codec.Parse(tok)
	if err != nil {
		return nil, apierr.Unauthorized("invalid token")
	}
	user, ok := g.users.Get(userID)
	if !ok {
		return nil, apierr.Unauthorized("invalid token")
	}
	if len(allowed) > 0 && !slices.Contains(allowed, user.Persona) {
		return nil, apierr.Forbidden("persona %s may not perform this action", user.Persona)
	}
	return user, nil
}

// Resolve authorizes the credentials and applies impersonation. The
// allow-list is checked against the authenticated user.
func (g *Guard) Resolve(creds Credentials, allowed ...models.Persona) (*ActingContext, error) {
	user, err := g.Authorize(creds.Token, allowed...)
	if err != nil {
		return nil, err
	}
	acting := &ActingContext{Authenticated: user, Effective: user}

	if creds.ImpersonateUserID == "" || creds.ImpersonateUserID == user.ID {
		return acting, nil
	}
	if !user.IsAdmin() {
		return nil, apierr.Forbidden("only admins can act on behalf of another user")
	}
	target, ok := g.users.Get(creds.ImpersonateUserID)
	if !ok {
		return nil, apierr.NotFound("user %s not found", creds.ImpersonateUserID)
	}
	acting.Effective = target
	return acting, nil
}
