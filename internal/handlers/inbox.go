package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type InboxHandler struct {
	inboxService InboxServiceInterface
}

func NewInboxHandler(inboxService InboxServiceInterface) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

func (h *InboxHandler) SendConnectionRequest(c *drift.Context) {
	var req dto.ConnectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RecipientID == "" {
		c.BadRequest("recipient_id is required")
		return
	}

	item, err := h.inboxService.SendConnectionRequest(c.Request.Context(), middleware.GetCredentials(c), req.RecipientID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(201, item)
}

func (h *InboxHandler) Respond(c *drift.Context) {
	var req dto.RespondConnectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	res, err := h.inboxService.RespondToConnectionRequest(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, dto.ConnectionResponse{
		Item:      res.Item,
		Recipient: res.Recipient,
		Sender:    res.Sender,
	})
}

func (h *InboxHandler) UpdateStatus(c *drift.Context) {
	var req dto.UpdateInboxStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.inboxService.UpdateInboxStatus(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, item)
}
