package services

import (
	"context"
	"slices"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
)

const defaultSubscription = "Starter"

// NewEnterprise signs up an enterprise together with its admin account.
type NewEnterprise struct {
	Name         string
	Subscription string
	Admin        NewUser
}

type EnterpriseResult struct {
	Enterprise *models.Enterprise
	Admin      *models.User
}

func (a *API) CreateEnterprise(ctx context.Context, in NewEnterprise) (*EnterpriseResult, error) {
	hash, err := a.hashPassword(in.Admin.Password)
	if err != nil {
		return settle[*EnterpriseResult](ctx, a, nil, err)
	}

	var out *EnterpriseResult
	err = a.exec(ctx, func() error {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return apierr.InvalidArgument("enterprise name is required")
		}
		for _, e := range a.repo.Enterprises().List() {
			if strings.EqualFold(e.Name, name) {
				return apierr.InvalidArgument("enterprise %s already exists", name)
			}
		}

		admin := in.Admin
		admin.EnterpriseID = ""
		if admin.Company == "" {
			admin.Company = name
		}
		user, err := a.buildUser(admin, hash)
		if err != nil {
			return err
		}

		subscription := strings.TrimSpace(in.Subscription)
		if subscription == "" {
			subscription = defaultSubscription
		}
		ent := &models.Enterprise{
			ID:             a.newID(),
			Name:           name,
			AdminID:        user.ID,
			Subscription:   subscription,
			Members:        []string{user.ID},
			PendingMembers: []string{},
			CreatedAt:      a.now(),
		}
		user.Role = models.RoleAdmin
		user.EnterpriseID = ent.ID

		a.repo.Users().Upsert(user)
		a.repo.Enterprises().Upsert(ent)
		a.publishUser(user)
		a.publish(sse.EventEnterpriseUpdated, "", ent.Clone())
		out = &EnterpriseResult{Enterprise: ent.Clone(), Admin: user.Public()}
		return nil
	})
	return settle(ctx, a, out, err)
}

// ApproveEnterpriseMember moves userID from the enterprise's pending list to
// its members.
func (a *API) ApproveEnterpriseMember(ctx context.Context, creds authz.Credentials, enterpriseID, userID string) (*models.Enterprise, error) {
	var out *models.Enterprise
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		ent, ok := a.repo.Enterprises().Get(enterpriseID)
		if !ok {
			return apierr.NotFound("enterprise %s not found", enterpriseID)
		}
		if !acting.Authenticated.IsAdmin() && !authz.IsEnterpriseAdmin(acting.Effective, ent) {
			return apierr.Forbidden("only an admin of %s can approve members", ent.Name)
		}
		idx := slices.Index(ent.PendingMembers, userID)
		if idx < 0 {
			return apierr.NotFound("no pending request from user %s", userID)
		}
		user, ok := a.repo.Users().Get(userID)
		if !ok {
			return apierr.NotFound("user %s not found", userID)
		}

		ent.PendingMembers = slices.Delete(ent.PendingMembers, idx, idx+1)
		if !ent.HasMember(userID) {
			ent.Members = append(ent.Members, userID)
		}
		user.EnterpriseID = ent.ID
		if user.Role == "" {
			user.Role = models.RoleMember
		}

		a.repo.Enterprises().Upsert(ent)
		a.repo.Users().Upsert(user)
		a.publish(sse.EventEnterpriseUpdated, "", ent.Clone())
		a.publishUser(user)
		out = ent.Clone()
		return nil
	})
	return settle(ctx, a, out, err)
}
