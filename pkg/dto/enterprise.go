package dto

import "github.com/cypherskull/hyperconnect/internal/models"

type CreateEnterpriseRequest struct {
	Name         string            `json:"name"`
	Subscription string            `json:"subscription,omitempty"`
	Admin        CreateUserRequest `json:"admin"`
}

type EnterpriseResponse struct {
	Enterprise *models.Enterprise `json:"enterprise"`
	Admin      *models.User       `json:"admin"`
}
