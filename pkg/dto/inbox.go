package dto

import "github.com/cypherskull/hyperconnect/internal/models"

type ConnectionRequest struct {
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message,omitempty"`
}

type RespondConnectionRequest struct {
	Accept bool `json:"accept"`
}

type ConnectionResponse struct {
	Item      *models.InboxItem `json:"item"`
	Recipient *models.User      `json:"recipient"`
	Sender    *models.User      `json:"sender,omitempty"`
}

type UpdateInboxStatusRequest struct {
	Status models.InboxStatus `json:"status"`
}
