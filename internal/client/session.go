package client

import (
	"context"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/models"
)

// Login authenticates, persists the token and loads the marketplace.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	session, err := c.backend.Login(ctx, email, password)
	if err != nil {
		c.log.Error().Err(err).Msg("login failed")
		return err
	}
	c.keeper.Persist(session.Token)

	c.mu.Lock()
	c.token = session.Token
	c.impersonateID = ""
	c.mu.Unlock()

	return c.reload(ctx, nil)
}

// Restore resumes the session from the persisted token. It reports false
// when there is no usable token; a rejected token is cleared.
func (c *Controller) Restore(ctx context.Context) (bool, error) {
	tok := c.keeper.Read()
	if tok == "" {
		return false, nil
	}

	c.mu.Lock()
	c.token = tok
	c.impersonateID = ""
	c.mu.Unlock()

	err := c.reload(ctx, nil)
	if apierr.KindOf(err) == apierr.KindUnauthorized {
		c.log.Warn().Err(err).Msg("stored token rejected")
		c.Logout()
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Controller) Logout() {
	c.keeper.Clear()
	c.mu.Lock()
	c.token = ""
	c.impersonateID = ""
	clear(c.seq)
	clear(c.settled)
	c.mu.Unlock()
	c.update(func(s *State) { *s = State{} })
}

// Impersonate makes every following action run as userID. Only an admin
// may impersonate.
func (c *Controller) Impersonate(ctx context.Context, userID string) error {
	c.mu.Lock()
	current := c.state.CurrentUser.Clone()
	previous := c.impersonateID
	if !current.IsAdmin() {
		c.mu.Unlock()
		return apierr.Forbidden("only admins can impersonate")
	}
	c.impersonateID = userID
	c.mu.Unlock()

	if err := c.reload(ctx, current); err != nil {
		c.mu.Lock()
		c.impersonateID = previous
		c.mu.Unlock()
		c.fail("impersonate", err)
		return err
	}
	return nil
}

func (c *Controller) StopImpersonating(ctx context.Context) error {
	c.mu.Lock()
	if c.impersonateID == "" {
		c.mu.Unlock()
		return nil
	}
	c.impersonateID = ""
	c.mu.Unlock()
	return c.reload(ctx, nil)
}

// Refresh reloads everything from the backend.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	var authenticated *models.User
	if c.impersonateID != "" {
		authenticated = c.state.CurrentUser.Clone()
	}
	c.mu.Unlock()
	return c.reload(ctx, authenticated)
}

// reload fetches the initial data set. authenticated is the logged-in user
// when it differs from the user the data is loaded for.
func (c *Controller) reload(ctx context.Context, authenticated *models.User) error {
	c.mu.Lock()
	creds := c.credsLocked()
	c.mu.Unlock()

	data, err := c.backend.GetInitialData(ctx, creds)
	if err != nil {
		return err
	}
	if authenticated == nil || creds.ImpersonateUserID == "" {
		authenticated = data.CurrentUser
	}
	c.update(func(s *State) { s.load(data, authenticated) })
	return nil
}
