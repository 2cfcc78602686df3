package services

import (
	"context"
	"slices"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/shopspring/decimal"
)

type FollowResult struct {
	User   *models.User
	Seller *models.Seller
}

type TierResult struct {
	User   *models.User
	Seller *models.Seller
	Charge decimal.Decimal
}

type TestimonialInput struct {
	Quote   string
	Company string
	Rating  int
}

var sellerManagers = []models.Persona{models.PersonaSeller, models.PersonaAdmin}

// ToggleFollowSeller flips whether the effective user follows the seller and
// moves the seller's follower count with it.
func (a *API) ToggleFollowSeller(ctx context.Context, creds authz.Credentials, sellerID string) (*FollowResult, error) {
	var out *FollowResult
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		seller, ok := a.repo.Sellers().Get(sellerID)
		if !ok {
			return apierr.NotFound("seller %s not found", sellerID)
		}
		user := acting.Effective

		if user.Follows(sellerID) {
			user.FollowedSellers = slices.DeleteFunc(user.FollowedSellers, func(id string) bool {
				return id == sellerID
			})
			seller.Followers = max(seller.Followers-1, 0)
		} else {
			user.FollowedSellers = append(user.FollowedSellers, sellerID)
			seller.Followers++
		}

		a.repo.Users().Upsert(user)
		a.repo.Sellers().Upsert(seller)
		a.publishUser(user)
		a.publish(sse.EventSellerUpdated, "", seller.Clone())
		out = &FollowResult{User: user.Public(), Seller: seller.Clone()}
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) ToggleInvestmentStatus(ctx context.Context, creds authz.Credentials, sellerID string) (*models.Seller, error) {
	return a.mutateSeller(ctx, creds, sellerID, func(s *models.Seller) error {
		s.IsOpenForInvestment = !s.IsOpenForInvestment
		return nil
	})
}

func (a *API) UpdateDueDiligence(ctx context.Context, creds authz.Credentials, sellerID string, dd models.DueDiligence) (*models.Seller, error) {
	return a.mutateSeller(ctx, creds, sellerID, func(s *models.Seller) error {
		dd.Documents = slices.Clone(dd.Documents)
		if dd.LastReviewed.IsZero() {
			dd.LastReviewed = a.now()
		}
		s.DueDiligence = dd
		return nil
	})
}

// mutateSeller runs fn on a copy of the seller after checking that the
// caller may manage it.
func (a *API) mutateSeller(ctx context.Context, creds authz.Credentials, sellerID string, fn func(*models.Seller) error) (*models.Seller, error) {
	var out *models.Seller
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds, sellerManagers...)
		if err != nil {
			return err
		}
		seller, ok := a.repo.Sellers().Get(sellerID)
		if !ok {
			return apierr.NotFound("seller %s not found", sellerID)
		}
		if !canManageSeller(acting, seller) {
			return apierr.Forbidden("%s does not manage %s", acting.Effective.Name, seller.CompanyName)
		}
		if err := fn(seller); err != nil {
			return err
		}
		a.repo.Sellers().Upsert(seller)
		a.publish(sse.EventSellerUpdated, "", seller.Clone())
		out = seller.Clone()
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) AddTestimonial(ctx context.Context, creds authz.Credentials, sellerID, solutionID string, in TestimonialInput) (*models.Seller, error) {
	var out *models.Seller
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		quote := strings.TrimSpace(in.Quote)
		if quote == "" {
			return apierr.InvalidArgument("testimonial quote is required")
		}
		if in.Rating != 0 && (in.Rating < 1 || in.Rating > 5) {
			return apierr.InvalidArgument("rating must be between 1 and 5")
		}
		seller, ok := a.repo.Sellers().Get(sellerID)
		if !ok {
			return apierr.NotFound("seller %s not found", sellerID)
		}
		idx := seller.SolutionIndex(solutionID)
		if idx < 0 {
			return apierr.NotFound("solution %s not found", solutionID)
		}

		company := strings.TrimSpace(in.Company)
		if company == "" {
			company = acting.Effective.Company
		}
		seller.Solutions[idx].Testimonials = append(seller.Solutions[idx].Testimonials, models.Testimonial{
			ID:         a.newID(),
			AuthorID:   acting.Effective.ID,
			AuthorName: acting.Effective.Name,
			Company:    company,
			Quote:      quote,
			Rating:     in.Rating,
			CreatedAt:  a.now(),
		})

		a.repo.Sellers().Upsert(seller)
		a.publish(sse.EventSellerUpdated, "", seller.Clone())
		out = seller.Clone()
		return nil
	})
	return settle(ctx, a, out, err)
}

// UpdateSellerTier moves the seller to tier. A seller pays the tier's
// monthly price from the effective user's wallet; admins are not charged.
func (a *API) UpdateSellerTier(ctx context.Context, creds authz.Credentials, sellerID, tier string) (*TierResult, error) {
	var out *TierResult
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds, sellerManagers...)
		if err != nil {
			return err
		}
		seller, ok := a.repo.Sellers().Get(sellerID)
		if !ok {
			return apierr.NotFound("seller %s not found", sellerID)
		}
		if !canManageSeller(acting, seller) {
			return apierr.Forbidden("%s does not manage %s", acting.Effective.Name, seller.CompanyName)
		}
		rule, ok := a.ruleForTier(tier)
		if !ok {
			return apierr.InvalidArgument("unknown tier %q", tier)
		}

		user := acting.Effective
		charge := decimal.Zero
		if seller.Tier != rule.Tier && !acting.Authenticated.IsAdmin() {
			charge = rule.MonthlyPrice
			if user.WalletBalance.LessThan(charge) {
				return apierr.InvalidArgument("wallet balance %s is below the %s price of %s",
					user.WalletBalance.StringFixed(2), rule.Tier, charge.StringFixed(2))
			}
		}

		seller.Tier = rule.Tier
		a.repo.Sellers().Upsert(seller)
		a.publish(sse.EventSellerUpdated, "", seller.Clone())
		if charge.IsPositive() {
			user.WalletBalance = user.WalletBalance.Sub(charge)
			a.repo.Users().Upsert(user)
			a.publishUser(user)
		}
		out = &TierResult{User: user.Public(), Seller: seller.Clone(), Charge: charge}
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) ruleForTier(tier string) (*models.MonetizationRule, bool) {
	for _, r := range a.repo.MonetizationRules().List() {
		if strings.EqualFold(r.Tier, tier) || r.ID == tier {
			return r, true
		}
	}
	return nil, false
}
