package handlers

import (
	"net/http"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
)

var (
	testAdmin  = &models.User{ID: "u-admin", Name: "Ada Admin", Persona: models.PersonaAdmin}
	testSeller = &models.User{ID: "u-seller", Name: "Sam Seller", Persona: models.PersonaSeller}
)

func newApp(method, path string, h drift.HandlerFunc, mws ...drift.HandlerFunc) http.Handler {
	app := drift.New()
	app.Use(driftmw.BodyParser())
	for _, mw := range mws {
		app.Use(mw)
	}
	switch method {
	case http.MethodGet:
		app.Get(path, h)
	case http.MethodPost:
		app.Post(path, h)
	case http.MethodPut:
		app.Put(path, h)
	case http.MethodPatch:
		app.Patch(path, h)
	}
	return app
}

// newProtectedClient mounts h behind the bearer middleware and returns a
// client authenticated as user.
func newProtectedClient(t *testing.T, user *models.User, method, path string, h drift.HandlerFunc, extra map[string]string) *testutil.HTTPTestClient {
	t.Helper()

	app := newApp(method, path, h, middleware.Auth(testutil.TestGuard(testAdmin, testSeller)))

	headers := map[string]string{"Authorization": testutil.AuthHeader(testutil.TestToken(t, user.ID))}
	for k, v := range extra {
		headers[k] = v
	}
	return testutil.NewHTTPTestClient(t, app, headers)
}

func newPublicClient(t *testing.T, method, path string, h drift.HandlerFunc) *testutil.HTTPTestClient {
	t.Helper()
	return testutil.NewHTTPTestClient(t, newApp(method, path, h), nil)
}

func credsFor(t *testing.T, user *models.User) authz.Credentials {
	return authz.Credentials{Token: testutil.TestToken(t, user.ID)}
}
