package services

import (
	"context"
	"errors"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
)

type NewUser struct {
	Name         string
	Email        string
	Password     string
	Persona      models.Persona
	Company      string
	Title        string
	ReferralCode string
	EnterpriseID string
}

// UserPatch changes only the non-nil fields.
type UserPatch struct {
	Name           *string
	Title          *string
	Bio            *string
	Company        *string
	AvatarURL      *string
	Persona        *models.Persona
	PaymentMethods *[]models.PaymentMethod
}

type Session struct {
	Token string
	User  *models.User
}

// InitialData is everything a client loads after its token is validated.
type InitialData struct {
	CurrentUser       *models.User
	Users             []*models.User
	Sellers           []*models.Seller
	Posts             []*models.Post
	Enterprises       []*models.Enterprise
	Inbox             []*models.InboxItem
	AccessConfig      []*models.AccessConfig
	MonetizationRules []*models.MonetizationRule
}

func (a *API) GetInitialData(ctx context.Context, creds authz.Credentials) (*InitialData, error) {
	var out *InitialData
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		users := a.repo.Users().List()
		for i, u := range users {
			users[i] = u.ForViewer(acting.Authenticated)
		}
		var inbox []*models.InboxItem
		for _, item := range a.repo.Inbox().List() {
			if item.RecipientID == acting.Effective.ID {
				inbox = append(inbox, item)
			}
		}
		out = &InitialData{
			CurrentUser:       acting.Effective.Public(),
			Users:             users,
			Sellers:           a.repo.Sellers().List(),
			Posts:             a.repo.Posts().List(),
			Enterprises:       a.repo.Enterprises().List(),
			Inbox:             inbox,
			AccessConfig:      a.repo.AccessConfig().List(),
			MonetizationRules: a.repo.MonetizationRules().List(),
		}
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) Login(ctx context.Context, email, password string) (*Session, error) {
	var out *Session
	err := a.exec(ctx, func() error {
		user, ok := a.userByEmail(strings.TrimSpace(email))
		if !ok || user.PasswordHash == "" {
			return apierr.Unauthorized("invalid email or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return apierr.Unauthorized("invalid email or password")
		}
		tok, err := a.codec.Issue(user.ID)
		if err != nil {
			return err
		}
		out = &Session{Token: tok, User: user.Public()}
		return nil
	})
	return settle(ctx, a, out, err)
}

// CreateUser signs up a new account. It needs no token.
func (a *API) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	hash, err := a.hashPassword(in.Password)
	if err != nil {
		return settle[*models.User](ctx, a, nil, err)
	}

	var out *models.User
	err = a.exec(ctx, func() error {
		user, err := a.buildUser(in, hash)
		if err != nil {
			return err
		}
		if in.EnterpriseID != "" {
			ent, ok := a.repo.Enterprises().Get(in.EnterpriseID)
			if !ok {
				return apierr.NotFound("enterprise %s not found", in.EnterpriseID)
			}
			ent.PendingMembers = append(ent.PendingMembers, user.ID)
			a.repo.Enterprises().Upsert(ent)
			a.publish(sse.EventEnterpriseUpdated, "", ent.Clone())
		}
		a.repo.Users().Upsert(user)
		a.publishUser(user)
		out = user.Public()
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) UpdateUser(ctx context.Context, creds authz.Credentials, patch UserPatch) (*models.User, error) {
	var out *models.User
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		user := acting.Effective

		if patch.Persona != nil && *patch.Persona != user.Persona {
			if !acting.Authenticated.IsAdmin() {
				return apierr.Forbidden("only admins can change a persona")
			}
			if !patch.Persona.Valid() {
				return apierr.InvalidArgument("unknown persona %q", *patch.Persona)
			}
			user.Persona = *patch.Persona
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return apierr.InvalidArgument("name is required")
			}
			user.Name = name
		}
		if patch.Title != nil {
			user.Title = *patch.Title
		}
		if patch.Bio != nil {
			user.Bio = *patch.Bio
		}
		if patch.Company != nil {
			company := strings.TrimSpace(*patch.Company)
			// A Seller's company decides which seller they manage.
			if company != user.Company && user.Persona == models.PersonaSeller && !acting.Authenticated.IsAdmin() {
				return apierr.Forbidden("only admins can change a seller's company")
			}
			user.Company = company
		}
		if patch.AvatarURL != nil {
			avatar := *patch.AvatarURL
			user.AvatarURL = &avatar
		}
		if patch.PaymentMethods != nil {
			user.PaymentMethods = append([]models.PaymentMethod{}, (*patch.PaymentMethods)...)
		}

		a.repo.Users().Upsert(user)
		a.publishUser(user)
		out = user.Public()
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", apierr.InvalidArgument("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apierr.InvalidArgument("password is too long")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// buildUser validates in and returns the new account. Callers hold a.mu.
func (a *API) buildUser(in NewUser, hash string) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return nil, apierr.InvalidArgument("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, apierr.InvalidArgument("a valid email is required")
	}
	if _, taken := a.userByEmail(email); taken {
		return nil, apierr.InvalidArgument("email %s is already registered", email)
	}

	persona := in.Persona
	switch {
	case persona == "":
		persona = models.PersonaBrowser
	case persona == models.PersonaAdmin:
		return nil, apierr.Forbidden("the admin persona cannot be self-assigned")
	case !persona.Valid():
		return nil, apierr.InvalidArgument("unknown persona %q", persona)
	}

	company := strings.TrimSpace(in.Company)
	if persona == models.PersonaSeller && a.companyClaimed(company) {
		return nil, apierr.Forbidden("company %s already has a seller account", company)
	}

	user := &models.User{
		ID:              a.newID(),
		Name:            name,
		Email:           email,
		PasswordHash:    hash,
		Persona:         persona,
		Role:            models.RoleMember,
		Company:         company,
		Title:           in.Title,
		Connections:     []string{},
		FollowedSellers: []string{},
		WalletBalance:   decimal.Zero,
		PaymentMethods:  []models.PaymentMethod{},
		ReferralCode:    a.newReferralCode(),
		CreatedAt:       a.now(),
	}
	if referrer, ok := a.findReferrer(in.ReferralCode); ok {
		user.ReferredBy = referrer.ID
	}
	return user, nil
}

// companyClaimed reports whether a seller listing or a Seller account
// already uses company.
func (a *API) companyClaimed(company string) bool {
	if company == "" {
		return false
	}
	for _, s := range a.repo.Sellers().List() {
		if strings.EqualFold(s.CompanyName, company) {
			return true
		}
	}
	for _, u := range a.repo.Users().List() {
		if u.Persona == models.PersonaSeller && strings.EqualFold(u.Company, company) {
			return true
		}
	}
	return false
}

// findReferrer matches code against every user's referral code, ignoring
// case. An unknown code is not an error.
func (a *API) findReferrer(code string) (*models.User, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}
	fold := cases.Fold()
	want := fold.String(code)
	for _, u := range a.repo.Users().List() {
		if u.ReferralCode != "" && fold.String(u.ReferralCode) == want {
			return u, true
		}
	}
	return nil, false
}

func (a *API) newReferralCode() string {
	for {
		raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		code := "HC" + raw[:8]
		if _, taken := a.findReferrer(code); !taken {
			return code
		}
	}
}
