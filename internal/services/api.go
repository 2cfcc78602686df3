package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/cypherskull/hyperconnect/internal/store"
	"github.com/cypherskull/hyperconnect/internal/token"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Publisher receives entity-change events after each mutation.
type Publisher interface {
	Publish(evt sse.Event) bool
}

// Mailer delivers out-of-band notifications.
type Mailer interface {
	SendConnectionRequest(to, senderName, message string) error
}

// API is the marketplace backend. Every operation authorizes the caller,
// mutates copies of stored entities and answers after a simulated network
// delay with fresh copies.
type API struct {
	repo  store.Repository
	guard *authz.Guard
	codec token.Codec

	// mu serializes read-modify-write steps across collections.
	mu sync.Mutex

	latency    time.Duration
	now        func() time.Time
	newID      func() string
	bcryptCost int
	events     Publisher
	mailer     Mailer
	log        zerolog.Logger
}

type Option func(*API)

func WithLatency(d time.Duration) Option {
	return func(a *API) { a.latency = d }
}

func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(a *API) { a.newID = newID }
}

func WithBcryptCost(cost int) Option {
	return func(a *API) { a.bcryptCost = cost }
}

func WithPublisher(p Publisher) Option {
	return func(a *API) { a.events = p }
}

func WithMailer(m Mailer) Option {
	return func(a *API) { a.mailer = m }
}

func WithLogger(log zerolog.Logger) Option {
	return func(a *API) { a.log = log }
}

func NewAPI(repo store.Repository, codec token.Codec, opts ...Option) *API {
	a := &API{
		repo:       repo,
		guard:      authz.NewGuard(repo.Users(), codec),
		codec:      codec,
		latency:    300 * time.Millisecond,
		now:        time.Now,
		newID:      uuid.NewString,
		bcryptCost: bcrypt.DefaultCost,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Guard() *authz.Guard {
	return a.guard
}

// exec runs fn as one atomic mutation step.
func (a *API) exec(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn()
}

// settle waits out the simulated latency and then answers with v or err.
func settle[T any](ctx context.Context, a *API, v T, err error) (T, error) {
	var zero T
	if a.latency > 0 {
		timer := time.NewTimer(a.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (a *API) publish(eventType, recipient string, data any) {
	a.send(sse.Event{Type: eventType, Data: data, Recipient: recipient})
}

// publishUser sends u in full to u's own clients and redacted to the rest.
func (a *API) publishUser(u *models.User) {
	a.send(sse.Event{Type: sse.EventUserUpdated, Data: u.ForViewer(nil), Exclude: u.ID})
	a.send(sse.Event{Type: sse.EventUserUpdated, Data: u.Public(), Recipient: u.ID})
}

func (a *API) send(evt sse.Event) {
	if a.events == nil {
		return
	}
	if !a.events.Publish(evt) {
		a.log.Warn().Str("event", evt.Type).Msg("change event dropped")
	}
}

// sellerForSolution finds the seller whose catalogue holds solutionID.
func (a *API) sellerForSolution(solutionID string) (*models.Seller, bool) {
	for _, s := range a.repo.Sellers().List() {
		if s.SolutionIndex(solutionID) >= 0 {
			return s, true
		}
	}
	return nil, false
}

func (a *API) userByEmail(email string) (*models.User, bool) {
	for _, u := range a.repo.Users().List() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return nil, false
}

// canManageSeller lets an authenticated admin act on any seller, and
// otherwise requires the effective user to own it.
func canManageSeller(acting *authz.ActingContext, seller *models.Seller) bool {
	return acting.Authenticated.IsAdmin() || authz.CanManageSeller(acting.Effective, seller)
}
