package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type UserHandler struct {
	userService UserServiceInterface
}

func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

func newUserInput(req dto.CreateUserRequest) services.NewUser {
	return services.NewUser{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Persona:      req.Persona,
		Company:      req.Company,
		Title:        req.Title,
		ReferralCode: req.ReferralCode,
		EnterpriseID: req.EnterpriseID,
	}
}

func (h *UserHandler) Create(c *drift.Context) {
	var req dto.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), newUserInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(201, user)
}

func (h *UserHandler) UpdateMe(c *drift.Context) {
	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), middleware.GetCredentials(c), services.UserPatch{
		Name:           req.Name,
		Title:          req.Title,
		Bio:            req.Bio,
		Company:        req.Company,
		AvatarURL:      req.AvatarURL,
		Persona:        req.Persona,
		PaymentMethods: req.PaymentMethods,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, user)
}

// Bootstrap returns everything a freshly authenticated client needs.
func (h *UserHandler) Bootstrap(c *drift.Context) {
	data, err := h.userService.GetInitialData(c.Request.Context(), middleware.GetCredentials(c))
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(200, dto.BootstrapResponse{
		CurrentUser:       data.CurrentUser,
		Users:             data.Users,
		Sellers:           data.Sellers,
		Posts:             data.Posts,
		Enterprises:       data.Enterprises,
		Inbox:             data.Inbox,
		AccessConfig:      data.AccessConfig,
		MonetizationRules: data.MonetizationRules,
	})
}
