package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/api/handlers"
	"github.com/hugh/orgspace/internal/api/middleware"
	"github.com/hugh/orgspace/internal/org"
	"github.com/hugh/orgspace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrgTestRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	tc := testutil.NewTestContext(t)

	orgService := org.NewService(tc.DB)
	handler := handlers.NewOrganisationHandler(orgService)

	r := chi.NewRouter()
	r.Route("/api/organisations", func(r chi.Router) {
		r.Post("/{orgId}/users", handler.AddUser)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tc.JWTService))
			r.Get("/", handler.List)
			r.Post("/", handler.Create)
			r.Get("/{orgId}", handler.Get)
		})
	})

	return r, tc
}

type orgEnvelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func TestOrganisationHandler_Create(t *testing.T) {
	router, tc := setupOrgTestRouter(t)
	defer tc.Cleanup()

	t.Run("creates organisation", func(t *testing.T) {
		body := map[string]string{
			"name":        "Research",
			"description": "lab group",
		}

		req := testutil.AuthenticatedRequest(t, "POST", "/api/organisations", body, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusCreated)

		var resp orgEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, "Research", resp.Data["name"])
		assert.NotEmpty(t, resp.Data["orgId"])
	})

	t.Run("missing name is a client error", func(t *testing.T) {
		body := map[string]string{"description": "nameless"}

		req := testutil.AuthenticatedRequest(t, "POST", "/api/organisations", body, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		body := map[string]string{"name": "Nope"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/organisations", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})
}

func TestOrganisationHandler_Get(t *testing.T) {
	router, tc := setupOrgTestRouter(t)
	defer tc.Cleanup()

	stranger, strangerOrg := testutil.CreateTestUser(t, tc.DB, "Stranger")
	_ = stranger

	t.Run("owner reads own organisation", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/organisations/"+tc.Org.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp orgEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, tc.Org.Name, resp.Data["name"])
	})

	t.Run("non-owned organisation is unauthorized", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/organisations/"+strangerOrg.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("missing organisation reads as unauthorized too", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/organisations/"+uuid.New().String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})
}

func TestOrganisationHandler_List(t *testing.T) {
	router, tc := setupOrgTestRouter(t)
	defer tc.Cleanup()

	req := testutil.AuthenticatedRequest(t, "GET", "/api/organisations", nil, tc.Token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp orgEnvelope
	testutil.ParseJSONResponse(t, rr, &resp)
	orgs, ok := resp.Data["organisations"].([]interface{})
	require.True(t, ok)
	require.Len(t, orgs, 1)

	first, ok := orgs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, tc.Org.Name, first["name"])
}

func TestOrganisationHandler_AddUser(t *testing.T) {
	router, tc := setupOrgTestRouter(t)
	defer tc.Cleanup()

	guest, _ := testutil.CreateTestUser(t, tc.DB, "Guest")

	t.Run("adds member without authentication", func(t *testing.T) {
		body := map[string]string{"userId": guest.ID.String()}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/organisations/"+tc.Org.ID.String()+"/users", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("adding an existing member fails", func(t *testing.T) {
		body := map[string]string{"userId": guest.ID.String()}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/organisations/"+tc.Org.ID.String()+"/users", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		assert.Contains(t, rr.Body.String(), "already in organisation")
	})

	t.Run("unknown organisation is a bad request", func(t *testing.T) {
		body := map[string]string{"userId": guest.ID.String()}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/organisations/"+uuid.New().String()+"/users", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("missing payload is a bad request", func(t *testing.T) {
		req := testutil.UnauthenticatedRequest(t, "POST", "/api/organisations/"+tc.Org.ID.String()+"/users", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}
