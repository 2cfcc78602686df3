// Package client keeps a local copy of the marketplace and drives the
// backend on behalf of a user, applying social actions optimistically.
package client

import (
	"context"
	"sync"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/token"
	"github.com/rs/zerolog"
)

// GenericAlert is shown to the user when a non-optimistic action fails.
const GenericAlert = "Something went wrong. Please try again."

// Backend is the part of the marketplace API the controller calls.
type Backend interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	GetInitialData(ctx context.Context, creds authz.Credentials) (*services.InitialData, error)

	ToggleLikePost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error)
	ToggleBookmarkPost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error)
	AddComment(ctx context.Context, creds authz.Credentials, postID, text string) (*models.Post, error)
	SavePost(ctx context.Context, creds authz.Credentials, in services.PostInput) (*models.Post, error)

	UpdateUser(ctx context.Context, creds authz.Credentials, patch services.UserPatch) (*models.User, error)

	ToggleFollowSeller(ctx context.Context, creds authz.Credentials, sellerID string) (*services.FollowResult, error)
	ToggleInvestmentStatus(ctx context.Context, creds authz.Credentials, sellerID string) (*models.Seller, error)
	UpdateDueDiligence(ctx context.Context, creds authz.Credentials, sellerID string, dd models.DueDiligence) (*models.Seller, error)
	AddTestimonial(ctx context.Context, creds authz.Credentials, sellerID, solutionID string, in services.TestimonialInput) (*models.Seller, error)
	UpdateSellerTier(ctx context.Context, creds authz.Credentials, sellerID, tier string) (*services.TierResult, error)

	SendConnectionRequest(ctx context.Context, creds authz.Credentials, recipientID, message string) (*models.InboxItem, error)
	RespondToConnectionRequest(ctx context.Context, creds authz.Credentials, itemID string, accept bool) (*services.ConnectionResult, error)
}

// AlertFunc shows a blocking message to the user.
type AlertFunc func(message string)

type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func WithAlerter(fn AlertFunc) Option {
	return func(c *Controller) { c.alert = fn }
}

type Controller struct {
	backend Backend
	keeper  *token.Keeper
	log     zerolog.Logger
	alert   AlertFunc

	mu            sync.Mutex
	token         string
	impersonateID string
	state         State
	// seq counts optimistic requests per entity key. Only the response to
	// the latest request for a key may overwrite local state. settled is the
	// seq of the last response that did.
	seq       map[string]uint64
	settled   map[string]uint64
	listeners []func(State)
}

func New(backend Backend, keeper *token.Keeper, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		keeper:  keeper,
		log:     zerolog.Nop(),
		alert:   func(string) {},
		seq:     make(map[string]uint64),
		settled: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to be called with a copy of the state after every
// change.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a copy of the current local state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) credsLocked() authz.Credentials {
	return authz.Credentials{Token: c.token, ImpersonateUserID: c.impersonateID}
}

// update runs fn on the state and notifies listeners outside the lock.
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snap := c.state.clone()
	listeners := append([]func(State){}, c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (c *Controller) fail(action string, err error) {
	c.log.Error().Err(err).Str("action", action).Msg("action failed")
	c.alert(GenericAlert)
}

// runOptimistic applies a local mutation before the backend confirms it.
// apply returns the exact inverse of what it did; that inverse is applied
// if the call fails, unless a newer response for the same key has already
// replaced local state. On success the response replaces local state
// unless a newer call for the same key was issued meanwhile.
func runOptimistic[T any](
	ctx context.Context,
	c *Controller,
	action, key string,
	apply func(*State) (undo func(*State)),
	remote func(context.Context, authz.Credentials) (T, error),
	reconcile func(*State, T),
) (T, error) {
	var undo func(*State)
	var mine uint64
	var creds authz.Credentials
	c.update(func(s *State) {
		undo = apply(s)
		c.seq[key]++
		mine = c.seq[key]
		creds = c.credsLocked()
	})

	res, err := remote(ctx, creds)

	c.update(func(s *State) {
		switch {
		case err != nil && c.settled[key] < mine:
			undo(s)
		case err == nil && c.seq[key] == mine:
			reconcile(s, res)
			c.settled[key] = mine
		}
	})
	if err != nil {
		c.log.Error().Err(err).Str("action", action).Str("key", key).Msg("optimistic update rolled back")
		var zero T
		return zero, err
	}
	return res, nil
}

// perform calls the backend and applies the response. Failures are logged
// and reported through the alert hook.
func perform[T any](
	ctx context.Context,
	c *Controller,
	action string,
	remote func(context.Context, authz.Credentials) (T, error),
	apply func(*State, T),
) (T, error) {
	c.mu.Lock()
	creds := c.credsLocked()
	c.mu.Unlock()

	res, err := remote(ctx, creds)
	if err != nil {
		c.fail(action, err)
		var zero T
		return zero, err
	}
	c.update(func(s *State) { apply(s, res) })
	return res, nil
}

func (c *Controller) requireActing() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.ActingAs == nil {
		return apierr.Unauthorized("not logged in")
	}
	return nil
}
