package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/api/handlers"
	"github.com/hugh/orgspace/internal/api/middleware"
	"github.com/hugh/orgspace/internal/auth"
	"github.com/hugh/orgspace/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func setupUserTestRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	tc := testutil.NewTestContext(t)

	authService := auth.NewService(tc.DB, tc.JWTService)
	handler := handlers.NewUserHandler(authService)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tc.JWTService))
		r.Get("/api/users/{id}", handler.Get)
	})

	return r, tc
}

type userEnvelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func TestUserHandler_Get(t *testing.T) {
	router, tc := setupUserTestRouter(t)
	defer tc.Cleanup()

	other, _ := testutil.CreateTestUser(t, tc.DB, "Other")

	t.Run("self fetch succeeds", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/users/"+tc.User.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp userEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, tc.User.Email, resp.Data["email"])
	})

	t.Run("no shared organisation is unauthorized", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/users/"+other.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("shared organisation grants access", func(t *testing.T) {
		testutil.AddTestMember(t, tc.DB, other, tc.Org)

		req := testutil.AuthenticatedRequest(t, "GET", "/api/users/"+other.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp userEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, other.Email, resp.Data["email"])
		assert.NotContains(t, resp.Data, "password")
		assert.NotContains(t, resp.Data, "password_hash")
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/users/"+uuid.New().String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := testutil.UnauthenticatedRequest(t, "GET", "/api/users/"+tc.User.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})
}
