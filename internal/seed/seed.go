// Package seed builds the demo marketplace loaded into an empty store.
package seed

import (
	"fmt"
	"time"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/store"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the login password of every seeded account.
const DemoPassword = "hyperconnect"

// Fixed ids of the seeded records.
const (
	AdminID        = "u-admin"
	SellerID       = "u-sam"
	GreenSellerID  = "u-nina"
	BuyerID        = "u-ben"
	InvestorID     = "u-ivy"
	CollaboratorID = "u-carlos"
	BrowserID      = "u-bea"

	QuantumLeapID = "s-quantumleap"
	GreenGridID   = "s-greengrid"

	LeapVisionID    = "sol-leapvision"
	LeapChatID      = "sol-leapchat"
	GridOptimizerID = "sol-gridoptimizer"

	LaunchPostID = "p-launch"
	GridPostID   = "p-grid"
	SharePostID  = "p-share"

	AcmeID = "e-acme"

	ConnectionRequestID = "i-ivy-sam"
	SalesEnquiryID      = "i-sam-ben"
)

var epoch = time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

func at(days int) time.Time {
	return epoch.AddDate(0, 0, days)
}

// Snapshot returns the demo data with passwords hashed at cost.
func Snapshot(cost int) (store.Snapshot, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to hash demo password: %w", err)
	}
	pw := string(hash)

	return store.Snapshot{
		Users:             users(pw),
		Sellers:           sellers(),
		Posts:             posts(),
		Enterprises:       enterprises(),
		Inbox:             inbox(),
		AccessConfig:      authz.DefaultAccessConfig(),
		MonetizationRules: MonetizationRules(),
	}, nil
}

// Load builds a MemoryStore holding the demo data.
func Load(cost int) (*store.MemoryStore, error) {
	snap, err := Snapshot(cost)
	if err != nil {
		return nil, err
	}
	return store.FromSnapshot(snap), nil
}

func MonetizationRules() []*models.MonetizationRule {
	return []*models.MonetizationRule{
		{ID: "Starter", Tier: "Starter", MonthlyPrice: decimal.Zero, Description: "Company profile and one solution listing"},
		{ID: "Growth", Tier: "Growth", MonthlyPrice: decimal.RequireFromString("99.00"), Description: "Unlimited solutions, analytics and featured posts"},
		{ID: "Enterprise", Tier: "Enterprise", MonthlyPrice: decimal.RequireFromString("499.00"), Description: "Dedicated success manager and lead routing"},
	}
}

func user(id, name, email string, persona models.Persona, company string) *models.User {
	return &models.User{
		ID:              id,
		Name:            name,
		Email:           email,
		Persona:         persona,
		Role:            models.RoleMember,
		Company:         company,
		Connections:     []string{},
		FollowedSellers: []string{},
		WalletBalance:   decimal.Zero,
		PaymentMethods:  []models.PaymentMethod{},
		CreatedAt:       epoch,
	}
}

func users(hash string) []*models.User {
	admin := user(AdminID, "Avery Admin", "admin@hyperconnect.io", models.PersonaAdmin, "HyperConnect")
	admin.Role = models.RoleAdmin
	admin.Title = "Platform Operations"
	admin.ReferralCode = "HCADMIN01"

	sam := user(SellerID, "Sam Patel", "sam@quantumleap.ai", models.PersonaSeller, "QuantumLeap AI")
	sam.Title = "Head of Partnerships"
	sam.WalletBalance = decimal.RequireFromString("250.00")
	sam.ReferralCode = "HCQLEAP01"
	sam.PaymentMethods = []models.PaymentMethod{
		{ID: "pm-sam-visa", Kind: "visa", Last4: "4242", Default: true, ExpMonth: 8, ExpYear: 2028},
	}

	nina := user(GreenSellerID, "Nina Novak", "nina@greengrid.io", models.PersonaSeller, "GreenGrid Energy")
	nina.Title = "Founder"
	nina.WalletBalance = decimal.RequireFromString("40.00")
	nina.ReferralCode = "HCGRID01"

	ben := user(BuyerID, "Ben Okafor", "ben@acmecorp.com", models.PersonaBuyer, "Acme Corp")
	ben.Title = "Procurement Lead"
	ben.Role = models.RoleAdmin
	ben.EnterpriseID = AcmeID
	ben.FollowedSellers = []string{QuantumLeapID}
	ben.Connections = []string{InvestorID}
	ben.ReferralCode = "HCACME01"
	ben.ReferredBy = SellerID

	ivy := user(InvestorID, "Ivy Chen", "ivy@northstar.vc", models.PersonaInvestor, "Northstar Ventures")
	ivy.Title = "Partner"
	ivy.Connections = []string{BuyerID}
	ivy.WalletBalance = decimal.RequireFromString("10000.00")
	ivy.ReferralCode = "HCNSTAR01"

	carlos := user(CollaboratorID, "Carlos Ruiz", "carlos@acmecorp.com", models.PersonaCollaborator, "Acme Corp")
	carlos.EnterpriseID = AcmeID
	carlos.ReferralCode = "HCCRUIZ01"

	bea := user(BrowserID, "Bea Lindqvist", "bea@example.com", models.PersonaBrowser, "")
	bea.ReferralCode = "HCBEA01"

	out := []*models.User{admin, sam, nina, ben, ivy, carlos, bea}
	for i, u := range out {
		u.PasswordHash = hash
		u.CreatedAt = at(i)
	}
	return out
}

func sellers() []*models.Seller {
	return []*models.Seller{
		{
			ID:                  QuantumLeapID,
			CompanyName:         "QuantumLeap AI",
			Description:         "Computer vision and conversational AI for manufacturing.",
			Industry:            "Artificial Intelligence",
			Tier:                "Growth",
			Followers:           1,
			IsOpenForInvestment: true,
			DueDiligence: models.DueDiligence{
				Financials:   "Audited FY2024 statements available on request.",
				Legal:        "Delaware C-corp, no pending litigation.",
				Team:         "42 FTE, founders from industrial robotics.",
				Documents:    []string{"pitch-deck.pdf", "fy2024-financials.pdf"},
				Completed:    true,
				LastReviewed: at(3),
			},
			Solutions: []models.Solution{
				{
					ID:          LeapVisionID,
					Name:        "LeapVision",
					Description: "Defect detection on the production line.",
					Status:      models.SolutionActive,
					Testimonials: []models.Testimonial{
						{
							ID:         "t-leapvision-1",
							AuthorID:   BuyerID,
							AuthorName: "Ben Okafor",
							Company:    "Acme Corp",
							Quote:      "Scrap rate down 18% in the first quarter.",
							Rating:     5,
							CreatedAt:  at(4),
						},
					},
					CaseStudies: []models.CaseStudy{
						{ID: "cs-leapvision-1", Title: "Acme Corp line 3", Summary: "Rolled out across three lines in six weeks."},
					},
					Collateral: []models.Collateral{
						{ID: "col-leapvision-1", Name: "LeapVision datasheet", Kind: "pdf", URL: "https://cdn.hyperconnect.io/quantumleap/leapvision.pdf"},
					},
				},
				{
					ID:           LeapChatID,
					Name:         "LeapChat",
					Description:  "Shop-floor assistant for maintenance crews.",
					Status:       models.SolutionOnHold,
					Testimonials: []models.Testimonial{},
					CaseStudies:  []models.CaseStudy{},
					Collateral:   []models.Collateral{},
				},
			},
		},
		{
			ID:          GreenGridID,
			CompanyName: "GreenGrid Energy",
			Description: "Grid balancing software for commercial solar.",
			Industry:    "Energy",
			Tier:        "Starter",
			Solutions: []models.Solution{
				{
					ID:           GridOptimizerID,
					Name:         "GridOptimizer",
					Description:  "Forecasts load and shifts storage dispatch.",
					Status:       models.SolutionActive,
					Testimonials: []models.Testimonial{},
					CaseStudies:  []models.CaseStudy{},
					Collateral:   []models.Collateral{},
				},
			},
		},
	}
}

func posts() []*models.Post {
	return []*models.Post{
		{
			ID:         LaunchPostID,
			SellerID:   QuantumLeapID,
			SolutionID: LeapVisionID,
			Content:    "LeapVision 2.0 is live: sub-millimetre defect detection at full line speed.",
			Likes:      5,
			Bookmarks:  1,
			Comments: []models.Comment{
				{ID: "c-launch-1", AuthorID: InvestorID, AuthorName: "Ivy Chen", Text: "Impressive numbers.", CreatedAt: at(5)},
			},
			CreatedAt: at(5),
		},
		{
			ID:         GridPostID,
			SellerID:   GreenGridID,
			SolutionID: GridOptimizerID,
			Content:    "GridOptimizer cut peak demand charges by 22% for a 4MW rooftop portfolio.",
			Likes:      2,
			Comments:   []models.Comment{},
			CreatedAt:  at(6),
		},
		{
			ID:         SharePostID,
			SellerID:   QuantumLeapID,
			SolutionID: LeapVisionID,
			Content:    "We've been piloting LeapVision at Acme. Happy to share notes with other plant managers.",
			Likes:      1,
			Comments:   []models.Comment{},
			Author: &models.Author{
				ID:      BuyerID,
				Name:    "Ben Okafor",
				Company: "Acme Corp",
			},
			CreatedAt: at(7),
		},
	}
}

func enterprises() []*models.Enterprise {
	return []*models.Enterprise{
		{
			ID:             AcmeID,
			Name:           "Acme Corp",
			AdminID:        BuyerID,
			Subscription:   "Business",
			Members:        []string{BuyerID, CollaboratorID},
			PendingMembers: []string{BrowserID},
			CreatedAt:      at(1),
		},
	}
}

func inbox() []*models.InboxItem {
	return []*models.InboxItem{
		{
			ID:          ConnectionRequestID,
			RecipientID: SellerID,
			SenderID:    InvestorID,
			SenderName:  "Ivy Chen",
			Category:    models.CategoryConnectionRequest,
			Status:      models.InboxPending,
			Subject:     "Connection request from Ivy Chen",
			Message:     "Following QuantumLeap's raise closely. Would love to connect.",
			CreatedAt:   at(8),
		},
		{
			ID:          SalesEnquiryID,
			RecipientID: BuyerID,
			SenderID:    SellerID,
			SenderName:  "Sam Patel",
			Category:    models.CategorySalesEnquiry,
			Status:      models.InboxPending,
			Subject:     "LeapVision for lines 4 and 5",
			Message:     "Want to scope the next rollout phase?",
			CreatedAt:   at(9),
		},
	}
}
