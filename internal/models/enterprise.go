package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Enterprise struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AdminID        string    `json:"admin_id"`
	Subscription   string    `json:"subscription"`
	Members        []string  `json:"members"`
	PendingMembers []string  `json:"pending_members"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *Enterprise) GetID() string {
	return e.ID
}

func (e *Enterprise) Clone() *Enterprise {
	if e == nil {
		return nil
	}
	c := *e
	c.Members = slices.Clone(e.Members)
	c.PendingMembers = slices.Clone(e.PendingMembers)
	return &c
}

func (e *Enterprise) HasMember(userID string) bool {
	return slices.Contains(e.Members, userID)
}

type MonetizationRule struct {
	ID           string          `json:"id"`
	Tier         string          `json:"tier"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Description  string          `json:"description"`
}

func (r *MonetizationRule) GetID() string {
	return r.ID
}

func (r *MonetizationRule) Clone() *MonetizationRule {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
