package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Persona string

const (
	PersonaAdmin        Persona = "Admin"
	PersonaBuyer        Persona = "Buyer"
	PersonaSeller       Persona = "Seller"
	PersonaInvestor     Persona = "Investor"
	PersonaCollaborator Persona = "Collaborator"
	PersonaBrowser      Persona = "Browser"
)

// Personas lists every persona in display order.
var Personas = []Persona{
	PersonaAdmin,
	PersonaBuyer,
	PersonaSeller,
	PersonaInvestor,
	PersonaCollaborator,
	PersonaBrowser,
}

func (p Persona) Valid() bool {
	return slices.Contains(Personas, p)
}

// Enterprise roles
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

type PaymentMethod struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Last4    string `json:"last4"`
	Default  bool   `json:"default"`
	ExpMonth int    `json:"exp_month,omitempty"`
	ExpYear  int    `json:"exp_year,omitempty"`
}

type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"password_hash,omitempty"`
	Persona         Persona         `json:"persona"`
	Role            string          `json:"role"`
	Company         string          `json:"company"`
	Title           string          `json:"title,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	AvatarURL       *string         `json:"avatar_url,omitempty"`
	EnterpriseID    string          `json:"enterprise_id,omitempty"`
	Connections     []string        `json:"connections"`
	FollowedSellers []string        `json:"followed_sellers"`
	WalletBalance   decimal.Decimal `json:"wallet_balance"`
	PaymentMethods  []PaymentMethod `json:"payment_methods"`
	ReferralCode    string          `json:"referral_code"`
	ReferredBy      string          `json:"referred_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (u *User) GetID() string {
	return u.ID
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.AvatarURL != nil {
		avatar := *u.AvatarURL
		c.AvatarURL = &avatar
	}
	c.Connections = slices.Clone(u.Connections)
	c.FollowedSellers = slices.Clone(u.FollowedSellers)
	c.PaymentMethods = slices.Clone(u.PaymentMethods)
	return &c
}

// Public returns a copy without credentials.
func (u *User) Public() *User {
	c := u.Clone()
	if c != nil {
		c.PasswordHash = ""
	}
	return c
}

// ForViewer returns the copy viewer may see. Contact and payment details
// stay with the user and admins.
func (u *User) ForViewer(viewer *User) *User {
	c := u.Public()
	if c == nil || (viewer != nil && (viewer.ID == u.ID || viewer.IsAdmin())) {
		return c
	}
	c.Email = ""
	c.WalletBalance = decimal.Zero
	c.PaymentMethods = []PaymentMethod{}
	return c
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Persona == PersonaAdmin
}

func (u *User) Follows(sellerID string) bool {
	return slices.Contains(u.FollowedSellers, sellerID)
}

func (u *User) IsConnectedTo(userID string) bool {
	return slices.Contains(u.Connections, userID)
}
