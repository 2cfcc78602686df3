package dto

import (
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/shopspring/decimal"
)

type FollowResponse struct {
	User   *models.User   `json:"user"`
	Seller *models.Seller `json:"seller"`
}

type UpdateTierRequest struct {
	Tier string `json:"tier"`
}

type TierResponse struct {
	User   *models.User    `json:"user"`
	Seller *models.Seller  `json:"seller"`
	Charge decimal.Decimal `json:"charge"`
}

type TestimonialRequest struct {
	Quote   string `json:"quote"`
	Company string `json:"company,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}
