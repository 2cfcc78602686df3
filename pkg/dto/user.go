package dto

import "github.com/cypherskull/hyperconnect/internal/models"

type CreateUserRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	Persona      models.Persona `json:"persona,omitempty"`
	Company      string         `json:"company,omitempty"`
	Title        string         `json:"title,omitempty"`
	ReferralCode string         `json:"referral_code,omitempty"`
	EnterpriseID string         `json:"enterprise_id,omitempty"`
}

type UpdateUserRequest struct {
	Name           *string                 `json:"name,omitempty"`
	Title          *string                 `json:"title,omitempty"`
	Bio            *string                 `json:"bio,omitempty"`
	Company        *string                 `json:"company,omitempty"`
	AvatarURL      *string                 `json:"avatar_url,omitempty"`
	Persona        *models.Persona         `json:"persona,omitempty"`
	PaymentMethods *[]models.PaymentMethod `json:"payment_methods,omitempty"`
}

type BootstrapResponse struct {
	CurrentUser       *models.User               `json:"current_user"`
	Users             []*models.User             `json:"users"`
	Sellers           []*models.Seller           `json:"sellers"`
	Posts             []*models.Post             `json:"posts"`
	Enterprises       []*models.Enterprise       `json:"enterprises"`
	Inbox             []*models.InboxItem        `json:"inbox"`
	AccessConfig      []*models.AccessConfig     `json:"access_config"`
	MonetizationRules []*models.MonetizationRule `json:"monetization_rules"`
}
