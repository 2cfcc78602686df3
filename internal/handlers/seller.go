package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SellerHandler struct {
	sellerService SellerServiceInterface
}

func NewSellerHandler(sellerService SellerServiceInterface) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

func (h *SellerHandler) Follow(c *drift.Context) {
	res, err := h.sellerService.ToggleFollowSeller(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, dto.FollowResponse{User: res.User, Seller: res.Seller})
}

func (h *SellerHandler) ToggleInvestment(c *drift.Context) {
	seller, err := h.sellerService.ToggleInvestmentStatus(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	_ = c.JSON(200, seller)
}

func (h *SellerHandler) UpdateDueDiligence(c *drift.Context) {
	var req models.DueDiligence
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	seller, err := h.sellerService.UpdateDueDiligence(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, seller)
}

func (h *SellerHandler) UpdateTier(c *drift.Context) {
	var req dto.UpdateTierRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Tier == "" {
		c.BadRequest("tier is required")
		return
	}

	res, err := h.sellerService.UpdateSellerTier(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), req.Tier)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, dto.TierResponse{User: res.User, Seller: res.Seller, Charge: res.Charge})
}

func (h *SellerHandler) AddTestimonial(c *drift.Context) {
	var req dto.TestimonialRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	seller, err := h.sellerService.AddTestimonial(c.Request.Context(), middleware.GetCredentials(c),
		c.Param("id"), c.Param("solutionId"), services.TestimonialInput{
			Quote:   req.Quote,
			Company: req.Company,
			Rating:  req.Rating,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(201, seller)
}
