package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
)

type ConnectionResult struct {
	Item      *models.InboxItem
	Recipient *models.User
	Sender    *models.User
}

// SendConnectionRequest drops a pending Connection Request into the
// recipient's inbox and e-mails them when a mailer is configured.
func (a *API) SendConnectionRequest(ctx context.Context, creds authz.Credentials, recipientID, message string) (*models.InboxItem, error) {
	var out *models.InboxItem
	var recipientEmail string
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		sender := acting.Effective
		recipient, ok := a.repo.Users().Get(recipientID)
		if !ok {
			return apierr.NotFound("user %s not found", recipientID)
		}
		if recipient.ID == sender.ID {
			return apierr.InvalidArgument("cannot connect with yourself")
		}
		if sender.IsConnectedTo(recipient.ID) {
			return apierr.InvalidArgument("already connected with %s", recipient.Name)
		}
		for _, item := range a.repo.Inbox().List() {
			if item.Category == models.CategoryConnectionRequest &&
				item.Status == models.InboxPending &&
				item.SenderID == sender.ID && item.RecipientID == recipient.ID {
				return apierr.InvalidArgument("a connection request to %s is already pending", recipient.Name)
			}
		}

		message = strings.TrimSpace(message)
		if message == "" {
			message = fmt.Sprintf("%s would like to connect with you.", sender.Name)
		}
		item := &models.InboxItem{
			ID:          a.newID(),
			RecipientID: recipient.ID,
			SenderID:    sender.ID,
			SenderName:  sender.Name,
			Category:    models.CategoryConnectionRequest,
			Status:      models.InboxPending,
			Subject:     fmt.Sprintf("Connection request from %s", sender.Name),
			Message:     message,
			CreatedAt:   a.now(),
		}
		a.repo.Inbox().Upsert(item)
		a.publish(sse.EventInboxItem, recipient.ID, item.Clone())
		out = item.Clone()
		recipientEmail = recipient.Email
		return nil
	})

	if err == nil && a.mailer != nil {
		if mailErr := a.mailer.SendConnectionRequest(recipientEmail, out.SenderName, out.Message); mailErr != nil {
			a.log.Warn().Err(mailErr).Str("recipient", out.RecipientID).Msg("failed to send connection request email")
		}
	}
	return settle(ctx, a, out, err)
}

// RespondToConnectionRequest accepts or declines a pending request addressed
// to the effective user. Accepting connects both users.
func (a *API) RespondToConnectionRequest(ctx context.Context, creds authz.Credentials, itemID string, accept bool) (*ConnectionResult, error) {
	var out *ConnectionResult
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		item, ok := a.repo.Inbox().Get(itemID)
		if !ok || item.RecipientID != acting.Effective.ID {
			return apierr.NotFound("inbox item %s not found", itemID)
		}
		if item.Category != models.CategoryConnectionRequest || item.Status != models.InboxPending {
			return apierr.InvalidArgument("inbox item %s is not a pending connection request", itemID)
		}

		recipient := acting.Effective
		sender, senderExists := a.repo.Users().Get(item.SenderID)
		if accept && !senderExists {
			return apierr.NotFound("user %s not found", item.SenderID)
		}

		item.Status = models.InboxActioned
		a.repo.Inbox().Upsert(item)
		a.publish(sse.EventInboxItem, recipient.ID, item.Clone())

		if accept {
			if !recipient.IsConnectedTo(sender.ID) {
				recipient.Connections = append(recipient.Connections, sender.ID)
			}
			if !sender.IsConnectedTo(recipient.ID) {
				sender.Connections = append(sender.Connections, recipient.ID)
			}
			a.repo.Users().Upsert(recipient)
			a.repo.Users().Upsert(sender)
			a.publishUser(recipient)
			a.publishUser(sender)
		}

		out = &ConnectionResult{Item: item.Clone(), Recipient: recipient.Public()}
		if senderExists {
			out.Sender = sender.ForViewer(acting.Authenticated)
		}
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) UpdateInboxStatus(ctx context.Context, creds authz.Credentials, itemID string, status models.InboxStatus) (*models.InboxItem, error) {
	var out *models.InboxItem
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		if !status.Valid() {
			return apierr.InvalidArgument("unknown inbox status %q", status)
		}
		item, ok := a.repo.Inbox().Get(itemID)
		if !ok || item.RecipientID != acting.Effective.ID {
			return apierr.NotFound("inbox item %s not found", itemID)
		}
		item.Status = status
		a.repo.Inbox().Upsert(item)
		a.publish(sse.EventInboxItem, item.RecipientID, item.Clone())
		out = item.Clone()
		return nil
	})
	return settle(ctx, a, out, err)
}
