package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

type ClientSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	session *Session
	client  *Client
}

func (s *ClientSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.session = NewSession()
	s.client = New(s.server.URL, s.session, WithHTTPClient(s.server.Client()))
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *ClientSuite) TestListInventoryDecodesVehicles() {
	s.mux.HandleFunc("/api/v1/store/inventory", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		reply(w, http.StatusOK, map[string]any{
			"message": "ok",
			"data": []map[string]any{
				{"id": "c1", "brand": "Toyota", "model": "Hilux", "category": map[string]any{"id": "p", "name": "Pickup"}, "year": 2021, "price": 32000},
				{"id": 7, "brand": "Ford", "model": "Ranger", "category": "Pickup", "year": 2020, "price": 29000},
			},
		})
	})

	vehicles, err := s.client.ListInventory(context.Background())
	s.Require().NoError(err)
	s.Require().Len(vehicles, 2)
	s.Equal(catalog.ID("c1"), vehicles[0].ID)
	s.Equal("Pickup", vehicles[0].Category.Name)
	s.Equal(catalog.ID("7"), vehicles[1].ID)
	s.Equal("Pickup", vehicles[1].Category.Name)
}

func (s *ClientSuite) TestStorefrontErrorsCarryTheMessage() {
	s.mux.HandleFunc("/api/v1/store/cars/missing", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusNotFound, map[string]any{"message": "Car not found", "error": true})
	})

	_, err := s.client.GetCar(context.Background(), "missing")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.Status)
	s.Equal("Car not found", apiErr.Message)
}

func (s *ClientSuite) TestLoginStoresTokenAndUsesIt() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	s.mux.HandleFunc("/api/v1/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.AdminLoginRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("ana@milagrecar.co.mz", req.Email)
		reply(w, http.StatusOK, map[string]any{"message": "Login successful", "data": map[string]any{
			"token": "jwt-1", "expires_at": expires, "admin": map[string]any{"email": req.Email, "role": "admin"},
		}})
	})
	s.mux.HandleFunc("/api/v1/admin/messages", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer jwt-1", r.Header.Get("Authorization"))
		s.Equal("new", r.URL.Query().Get("status"))
		s.Equal("2", r.URL.Query().Get("page"))
		reply(w, http.StatusOK, map[string]any{
			"message": "ok",
			"data":    []map[string]any{{"name": "Rui", "email": "rui@example.com", "message": "Still available?", "status": "new"}},
			"meta":    map[string]any{"page": 2, "limit": 20, "total": 21, "total_pages": 2},
		})
	})

	ctx := context.Background()
	res, err := s.client.Login(ctx, "ana@milagrecar.co.mz", "secret-pass")
	s.Require().NoError(err)
	s.Equal("jwt-1", res.Token)
	s.True(s.session.ExpiresAt().Equal(expires))
	isAdmin, known := s.session.IsAdmin()
	s.True(known)
	s.True(isAdmin)

	messages, meta, err := s.client.ListMessages(ctx, "new", 2, 0)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Equal("Rui", messages[0].Name)
	s.Equal(21, meta.Total)
}

func (s *ClientSuite) TestUnauthorizedInvalidatesSession() {
	s.session.Set("stale", time.Now().Add(time.Hour))
	s.session.SetAdmin(true)
	s.mux.HandleFunc("/api/v1/admin/me", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]any{"message": "Session revoked", "error": true})
	})

	_, err := s.client.Me(context.Background())
	s.ErrorIs(err, ErrUnauthorized)
	s.False(s.session.Valid())
	_, known := s.session.IsAdmin()
	s.False(known)

	_, _, err = s.client.ListMessages(context.Background(), "", 0, 0)
	s.ErrorIs(err, ErrNoSession)
}

func (s *ClientSuite) TestMeRefreshesAdminFlag() {
	s.session.Set("tok", time.Time{})
	s.mux.HandleFunc("/api/v1/admin/me", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"message": "ok", "data": map[string]any{"email": "x@y.z", "status": "suspended"}})
	})

	me, err := s.client.Me(context.Background())
	s.Require().NoError(err)
	s.Equal("suspended", me.Status)
	isAdmin, known := s.session.IsAdmin()
	s.True(known)
	s.False(isAdmin)
}

func (s *ClientSuite) TestBackOfficeCallsNeedASession() {
	c := New(s.server.URL, nil)
	_, err := c.Me(context.Background())
	s.True(errors.Is(err, ErrNoSession))
	_, err = c.Login(context.Background(), "a@b.c", "x")
	s.ErrorIs(err, ErrNoSession)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}
