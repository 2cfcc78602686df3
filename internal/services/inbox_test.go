package services

import (
	"context"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/seed"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/cypherskull/hyperconnect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPI_SendConnectionRequest(t *testing.T) {
	mailer := new(mockMailer)
	mailer.On("SendConnectionRequest", "nina@greengrid.io", "Bea Lindqvist", "Keen to learn more").Return(nil)
	api, repo, pub := setupAPI(t, WithMailer(mailer))

	item, err := api.SendConnectionRequest(context.Background(), credsFor(seed.BrowserID), seed.GreenSellerID, " Keen to learn more ")

	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, seed.GreenSellerID, item.RecipientID)
	assert.Equal(t, seed.BrowserID, item.SenderID)
	assert.Equal(t, models.CategoryConnectionRequest, item.Category)
	assert.Equal(t, models.InboxPending, item.Status)
	assert.Equal(t, "Connection request from Bea Lindqvist", item.Subject)
	assert.Equal(t, testNow, item.CreatedAt)
	assert.Equal(t, 3, repo.Inbox().Len())

	require.Len(t, pub.events, 1)
	assert.Equal(t, sse.EventInboxItem, pub.events[0].Type)
	assert.Equal(t, seed.GreenSellerID, pub.events[0].Recipient)
	mailer.AssertExpectations(t)
}

func TestAPI_SendConnectionRequest_DefaultMessage(t *testing.T) {
	api, _, _ := setupAPI(t)

	item, err := api.SendConnectionRequest(context.Background(), credsFor(seed.BrowserID), seed.GreenSellerID, "")

	require.NoError(t, err)
	assert.Equal(t, "Bea Lindqvist would like to connect with you.", item.Message)
}

func TestAPI_SendConnectionRequest_MailFailureIsNotFatal(t *testing.T) {
	mailer := new(mockMailer)
	mailer.On("SendConnectionRequest", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	api, repo, _ := setupAPI(t, WithMailer(mailer))

	_, err := api.SendConnectionRequest(context.Background(), credsFor(seed.BrowserID), seed.GreenSellerID, "hi")

	require.NoError(t, err)
	assert.Equal(t, 3, repo.Inbox().Len())
	mailer.AssertExpectations(t)
}

func TestAPI_SendConnectionRequest_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		senderID    string
		recipientID string
		want        error
	}{
		{"unknown recipient", seed.BrowserID, "u-ghost", apierr.ErrNotFound},
		{"self", seed.BrowserID, seed.BrowserID, apierr.ErrInvalidArgument},
		{"already connected", seed.BuyerID, seed.InvestorID, apierr.ErrInvalidArgument},
		{"already pending", seed.InvestorID, seed.SellerID, apierr.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := new(mockMailer)
			api, repo, _ := setupAPI(t, WithMailer(mailer))
			before := store.Dump(repo)

			_, err := api.SendConnectionRequest(context.Background(), credsFor(tt.senderID), tt.recipientID, "hi")

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, store.Dump(repo))
			mailer.AssertNotCalled(t, "SendConnectionRequest", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAPI_RespondToConnectionRequest_Accept(t *testing.T) {
	api, repo, _ := setupAPI(t)

	res, err := api.RespondToConnectionRequest(context.Background(), credsFor(seed.SellerID), seed.ConnectionRequestID, true)

	require.NoError(t, err)
	assert.Equal(t, models.InboxActioned, res.Item.Status)
	assert.Contains(t, res.Recipient.Connections, seed.InvestorID)
	require.NotNil(t, res.Sender)
	assert.Contains(t, res.Sender.Connections, seed.SellerID)

	sam, _ := repo.Users().Get(seed.SellerID)
	ivy, _ := repo.Users().Get(seed.InvestorID)
	assert.True(t, sam.IsConnectedTo(seed.InvestorID))
	assert.True(t, ivy.IsConnectedTo(seed.SellerID))
}

func TestAPI_RespondToConnectionRequest_Decline(t *testing.T) {
	api, repo, _ := setupAPI(t)

	res, err := api.RespondToConnectionRequest(context.Background(), credsFor(seed.SellerID), seed.ConnectionRequestID, false)

	require.NoError(t, err)
	assert.Equal(t, models.InboxActioned, res.Item.Status)
	sam, _ := repo.Users().Get(seed.SellerID)
	assert.False(t, sam.IsConnectedTo(seed.InvestorID))
}

func TestAPI_RespondToConnectionRequest_Rejected(t *testing.T) {
	api, _, _ := setupAPI(t)
	ctx := context.Background()

	_, err := api.RespondToConnectionRequest(ctx, credsFor(seed.BuyerID), seed.ConnectionRequestID, true)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	_, err = api.RespondToConnectionRequest(ctx, credsFor(seed.BuyerID), seed.SalesEnquiryID, true)
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)

	_, err = api.RespondToConnectionRequest(ctx, credsFor(seed.SellerID), seed.ConnectionRequestID, true)
	require.NoError(t, err)
	_, err = api.RespondToConnectionRequest(ctx, credsFor(seed.SellerID), seed.ConnectionRequestID, true)
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

func TestAPI_UpdateInboxStatus(t *testing.T) {
	api, repo, _ := setupAPI(t)

	item, err := api.UpdateInboxStatus(context.Background(), credsFor(seed.BuyerID), seed.SalesEnquiryID, models.InboxArchived)

	require.NoError(t, err)
	assert.Equal(t, models.InboxArchived, item.Status)
	stored, _ := repo.Inbox().Get(seed.SalesEnquiryID)
	assert.Equal(t, models.InboxArchived, stored.Status)
}

func TestAPI_UpdateInboxStatus_Rejected(t *testing.T) {
	api, _, _ := setupAPI(t)
	ctx := context.Background()

	_, err := api.UpdateInboxStatus(ctx, credsFor(seed.BuyerID), seed.SalesEnquiryID, "Deleted")
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)

	_, err = api.UpdateInboxStatus(ctx, credsFor(seed.InvestorID), seed.SalesEnquiryID, models.InboxArchived)
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}
