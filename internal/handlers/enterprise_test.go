package handlers

import (
	"net/http"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/testutil"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnterpriseHandler_Create_Success(t *testing.T) {
	mockEnterpriseService := new(testutil.MockEnterpriseService)
	handler := NewEnterpriseHandler(mockEnterpriseService)

	in := services.NewEnterprise{
		Name: "Globex",
		Admin: services.NewUser{
			Name:     "Hank",
			Email:    "hank@globex.com",
			Password: "supersecret",
			Persona:  models.PersonaBuyer,
		},
	}
	mockEnterpriseService.On("CreateEnterprise", mock.Anything, in).
		Return(&services.EnterpriseResult{
			Enterprise: &models.Enterprise{ID: "e-1", Name: "Globex", AdminID: "u-1", Subscription: "Starter"},
			Admin:      &models.User{ID: "u-1", Role: models.RoleAdmin, EnterpriseID: "e-1"},
		}, nil)

	client := newPublicClient(t, http.MethodPost, "/enterprises", handler.Create)
	rec := client.POST("/enterprises", dto.CreateEnterpriseRequest{
		Name: "Globex",
		Admin: dto.CreateUserRequest{
			Name:     "Hank",
			Email:    "hank@globex.com",
			Password: "supersecret",
			Persona:  models.PersonaBuyer,
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.EnterpriseResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, "e-1", resp.Enterprise.ID)
	assert.Equal(t, models.RoleAdmin, resp.Admin.Role)
}

func TestEnterpriseHandler_Create_DuplicateName(t *testing.T) {
	mockEnterpriseService := new(testutil.MockEnterpriseService)
	handler := NewEnterpriseHandler(mockEnterpriseService)

	mockEnterpriseService.On("CreateEnterprise", mock.Anything, mock.Anything).
		Return(nil, apierr.InvalidArgument("enterprise Acme already exists"))

	client := newPublicClient(t, http.MethodPost, "/enterprises", handler.Create)
	rec := client.POST("/enterprises", dto.CreateEnterpriseRequest{Name: "Acme"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnterpriseHandler_ApproveMember_Success(t *testing.T) {
	mockEnterpriseService := new(testutil.MockEnterpriseService)
	handler := NewEnterpriseHandler(mockEnterpriseService)

	mockEnterpriseService.On("ApproveEnterpriseMember", mock.Anything, credsFor(t, testAdmin), "e-1", "u-9").
		Return(&models.Enterprise{ID: "e-1", Members: []string{"u-9"}, PendingMembers: []string{}}, nil)

	client := newProtectedClient(t, testAdmin, http.MethodPost, "/enterprises/:id/members/:userId/approve", handler.ApproveMember, nil)
	rec := client.POST("/enterprises/e-1/members/u-9/approve", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var ent models.Enterprise
	testutil.ParseJSON(t, rec, &ent)
	assert.Equal(t, []string{"u-9"}, ent.Members)
	assert.Empty(t, ent.PendingMembers)
}

func TestEnterpriseHandler_ApproveMember_Forbidden(t *testing.T) {
	mockEnterpriseService := new(testutil.MockEnterpriseService)
	handler := NewEnterpriseHandler(mockEnterpriseService)

	mockEnterpriseService.On("ApproveEnterpriseMember", mock.Anything, mock.Anything, "e-1", "u-9").
		Return(nil, apierr.Forbidden("only enterprise admins can approve members"))

	client := newProtectedClient(t, testSeller, http.MethodPost, "/enterprises/:id/members/:userId/approve", handler.ApproveMember, nil)
	rec := client.POST("/enterprises/e-1/members/u-9/approve", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
