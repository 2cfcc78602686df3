package handlers

import (
	"net/http"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/cypherskull/hyperconnect/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSSEHandler_Connect_NotAuthenticated(t *testing.T) {
	mockHub := new(testutil.MockHub)
	handler := NewSSEHandler(mockHub)

	client := newPublicClient(t, http.MethodGet, "/events", handler.Connect)
	rec := client.GET("/events")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockHub.AssertNotCalled(t, "Register", mock.Anything)
}

func TestSSEHandler_Connect_RegistersUser(t *testing.T) {
	mockHub := new(testutil.MockHub)
	handler := NewSSEHandler(mockHub)

	isSeller := mock.MatchedBy(func(c *sse.Client) bool { return c.UserID == testSeller.ID && c.ID != "" })
	mockHub.On("Register", isSeller).Run(func(args mock.Arguments) {
		// The hub closes Send when it drops a client; end the stream at once.
		close(args.Get(0).(*sse.Client).Send)
	}).Return()
	mockHub.On("Unregister", isSeller).Return()

	client := newProtectedClient(t, testSeller, http.MethodGet, "/events", handler.Connect, nil)
	client.GET("/events")

	mockHub.AssertExpectations(t)
}
