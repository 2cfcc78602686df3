package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type EnterpriseHandler struct {
	enterpriseService EnterpriseServiceInterface
}

func NewEnterpriseHandler(enterpriseService EnterpriseServiceInterface) *EnterpriseHandler {
	return &EnterpriseHandler{enterpriseService: enterpriseService}
}

// Create registers an enterprise together with its first admin.
func (h *EnterpriseHandler) Create(c *drift.Context) {
	var req dto.CreateEnterpriseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	res, err := h.enterpriseService.CreateEnterprise(c.Request.Context(), services.NewEnterprise{
		Name:         req.Name,
		Subscription: req.Subscription,
		Admin:        newUserInput(req.Admin),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(201, dto.EnterpriseResponse{Enterprise: res.Enterprise, Admin: res.Admin})
}

func (h *EnterpriseHandler) ApproveMember(c *drift.Context) {
	ent, err := h.enterpriseService.ApproveEnterpriseMember(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	_ = c.JSON(200, ent)
}
