package handlers

import (
	"context"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/sse"
)

// AuthServiceInterface defines the methods used by AuthHandler
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
}

// UserServiceInterface defines the methods used by UserHandler
type UserServiceInterface interface {
	CreateUser(ctx context.Context, in services.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, creds authz.Credentials, patch services.UserPatch) (*models.User, error)
	GetInitialData(ctx context.Context, creds authz.Credentials) (*services.InitialData, error)
}

// PostServiceInterface defines the methods used by PostHandler
type PostServiceInterface interface {
	SavePost(ctx context.Context, creds authz.Credentials, in services.PostInput) (*models.Post, error)
	ToggleLikePost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error)
	ToggleBookmarkPost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error)
	AddComment(ctx context.Context, creds authz.Credentials, postID, text string) (*models.Post, error)
}

// SellerServiceInterface defines the methods used by SellerHandler
type SellerServiceInterface interface {
	ToggleFollowSeller(ctx context.Context, creds authz.Credentials, sellerID string) (*services.FollowResult, error)
	ToggleInvestmentStatus(ctx context.Context, creds authz.Credentials, sellerID string) (*models.Seller, error)
	UpdateDueDiligence(ctx context.Context, creds authz.Credentials, sellerID string, dd models.DueDiligence) (*models.Seller, error)
	AddTestimonial(ctx context.Context, creds authz.Credentials, sellerID, solutionID string, in services.TestimonialInput) (*models.Seller, error)
	UpdateSellerTier(ctx context.Context, creds authz.Credentials, sellerID, tier string) (*services.TierResult, error)
}

// InboxServiceInterface defines the methods used by InboxHandler
type InboxServiceInterface interface {
	SendConnectionRequest(ctx context.Context, creds authz.Credentials, recipientID, message string) (*models.InboxItem, error)
	RespondToConnectionRequest(ctx context.Context, creds authz.Credentials, itemID string, accept bool) (*services.ConnectionResult, error)
	UpdateInboxStatus(ctx context.Context, creds authz.Credentials, itemID string, status models.InboxStatus) (*models.InboxItem, error)
}

// EnterpriseServiceInterface defines the methods used by EnterpriseHandler
type EnterpriseServiceInterface interface {
	CreateEnterprise(ctx context.Context, in services.NewEnterprise) (*services.EnterpriseResult, error)
	ApproveEnterpriseMember(ctx context.Context, creds authz.Credentials, enterpriseID, userID string) (*models.Enterprise, error)
}

// HubInterface defines the methods used by SSEHandler
type HubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
}
