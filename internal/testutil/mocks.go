package testutil

import (
	"context"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the login part of services.API
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Session), args.Error(1)
}

// MockUserService mocks the user operations of services.API
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, in services.NewUser) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, creds authz.Credentials, patch services.UserPatch) (*models.User, error) {
	args := m.Called(ctx, creds, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetInitialData(ctx context.Context, creds authz.Credentials) (*services.InitialData, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InitialData), args.Error(1)
}

// MockPostService mocks the post operations of services.API
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) SavePost(ctx context.Context, creds authz.Credentials, in services.PostInput) (*models.Post, error) {
	args := m.Called(ctx, creds, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ToggleLikePost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error) {
	args := m.Called(ctx, creds, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ToggleBookmarkPost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error) {
	args := m.Called(ctx, creds, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) AddComment(ctx context.Context, creds authz.Credentials, postID, text string) (*models.Post, error) {
	args := m.Called(ctx, creds, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// MockSellerService mocks the seller operations of services.API
type MockSellerService struct {
	mock.Mock
}

func (m *MockSellerService) ToggleFollowSeller(ctx context.Context, creds authz.Credentials, sellerID string) (*services.FollowResult, error) {
	args := m.Called(ctx, creds, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.FollowResult), args.Error(1)
}

func (m *MockSellerService) ToggleInvestmentStatus(ctx context.Context, creds authz.Credentials, sellerID string) (*models.Seller, error) {
	args := m.Called(ctx, creds, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) UpdateDueDiligence(ctx context.Context, creds authz.Credentials, sellerID string, dd models.DueDiligence) (*models.Seller, error) {
	args := m.Called(ctx, creds, sellerID, dd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) AddTestimonial(ctx context.Context, creds authz.Credentials, sellerID, solutionID string, in services.TestimonialInput) (*models.Seller, error) {
	args := m.Called(ctx, creds, sellerID, solutionID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) UpdateSellerTier(ctx context.Context, creds authz.Credentials, sellerID, tier string) (*services.TierResult, error) {
	args := m.Called(ctx, creds, sellerID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TierResult), args.Error(1)
}

// MockInboxService mocks the inbox operations of services.API
type MockInboxService struct {
	mock.Mock
}

func (m *MockInboxService) SendConnectionRequest(ctx context.Context, creds authz.Credentials, recipientID, message string) (*models.InboxItem, error) {
	args := m.Called(ctx, creds, recipientID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InboxItem), args.Error(1)
}

func (m *MockInboxService) RespondToConnectionRequest(ctx context.Context, creds authz.Credentials, itemID string, accept bool) (*services.ConnectionResult, error) {
	args := m.Called(ctx, creds, itemID, accept)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ConnectionResult), args.Error(1)
}

func (m *MockInboxService) UpdateInboxStatus(ctx context.Context, creds authz.Credentials, itemID string, status models.InboxStatus) (*models.InboxItem, error) {
	args := m.Called(ctx, creds, itemID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InboxItem), args.Error(1)
}

// MockEnterpriseService mocks the enterprise operations of services.API
type MockEnterpriseService struct {
	mock.Mock
}

func (m *MockEnterpriseService) CreateEnterprise(ctx context.Context, in services.NewEnterprise) (*services.EnterpriseResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.EnterpriseResult), args.Error(1)
}

func (m *MockEnterpriseService) ApproveEnterpriseMember(ctx context.Context, creds authz.Credentials, enterpriseID, userID string) (*models.Enterprise, error) {
	args := m.Called(ctx, creds, enterpriseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enterprise), args.Error(1)
}

// MockHub mocks the SSE hub
type MockHub struct {
	mock.Mock
}

func (m *MockHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockHub) Unregister(client *sse.Client) {
	m.Called(client)
}
