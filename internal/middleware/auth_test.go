package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/handlers"
	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/repository"
)

type staticAdminStore struct {
	admin *models.Admin
}

func (s *staticAdminStore) Insert(context.Context, models.Admin) error { return nil }

func (s *staticAdminStore) UsernameOrEmailTaken(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *staticAdminStore) FindActiveByUsername(context.Context, string) (*models.Admin, error) {
	return nil, repository.ErrNotFound
}

func (s *staticAdminStore) FindActiveByID(_ context.Context, id string) (*models.Admin, error) {
	if s.admin != nil && s.admin.ID == id && s.admin.IsActive {
		return s.admin, nil
	}
	return nil, repository.ErrNotFound
}

func (s *staticAdminStore) TouchLastLogin(context.Context, string, time.Time) error { return nil }

func protectedRouter(store auth.AdminStore, tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := auth.NewService(store, tokens)
	r := gin.New()
	r.GET("/api/admin/me", RequireAdmin(service), func(c *gin.Context) {
		admin, _ := handlers.CurrentAdmin(c)
		c.JSON(http.StatusOK, admin)
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	admin := &models.Admin{ID: "admin-1", Username: "clara", IsActive: true}

	t.Run("ValidTokenResolvesAccount", func(t *testing.T) {
		r := protectedRouter(&staticAdminStore{admin: admin}, tokens)
		token, err := tokens.Issue("admin-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"username":"clara"`)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := protectedRouter(&staticAdminStore{admin: admin}, tokens)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		r := protectedRouter(&staticAdminStore{admin: admin}, tokens)
		token, _ := tokens.Issue("admin-1")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Basic "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("DeactivatedAccountGetsSameGeneric401", func(t *testing.T) {
		dead := &models.Admin{ID: "admin-1", Username: "clara", IsActive: false}
		r := protectedRouter(&staticAdminStore{admin: dead}, tokens)
		token, _ := tokens.Issue("admin-1")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"error":"invalid authentication credentials"}`, w.Body.String())
	})

	t.Run("TamperedToken", func(t *testing.T) {
		r := protectedRouter(&staticAdminStore{admin: admin}, tokens)
		token, _ := tokens.Issue("admin-1")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
