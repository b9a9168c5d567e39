package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/repository"
)

// fakeAdminStore implementa AdminStore en memoria.
type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.Admin)}
}

func (s *fakeAdminStore) Insert(_ context.Context, admin models.Admin) error {
	for _, a := range s.admins {
		if a.Username == admin.Username || a.Email == admin.Email {
			return repository.ErrConflict
		}
	}
	s.admins[admin.ID] = &admin
	return nil
}

func (s *fakeAdminStore) UsernameOrEmailTaken(_ context.Context, username, email string) (bool, error) {
	for _, a := range s.admins {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAdminStore) FindActiveByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, a := range s.admins {
		if a.Username == username && a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeAdminStore) FindActiveByID(_ context.Context, id string) (*models.Admin, error) {
	a, ok := s.admins[id]
	if !ok || !a.IsActive {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *fakeAdminStore) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	if a, ok := s.admins[id]; ok {
		a.LastLogin = &at
	}
	return nil
}

func newTestService(store AdminStore) *Service {
	tokens := NewTokenIssuer("test-secret", time.Hour)
	svc := NewService(store, tokens)
	svc.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func register(t *testing.T, svc *Service, username, password string) *models.Admin {
	t.Helper()
	admin, err := svc.Register(context.Background(), models.AdminCreate{
		Username: username,
		Email:    username + "@gcgeyewear.com",
		Password: password,
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)
	return admin
}

func TestServiceRegister(t *testing.T) {
	t.Run("StoresHashNeverPlaintext", func(t *testing.T) {
		store := newFakeAdminStore()
		svc := newTestService(store)

		admin := register(t, svc, "clara", "s3cret-pass")
		stored := store.admins[admin.ID]
		require.NotEmpty(t, stored.PasswordHash)
		require.NotEqual(t, "s3cret-pass", stored.PasswordHash)
		require.NotContains(t, stored.PasswordHash, "s3cret-pass")
	})

	t.Run("DefaultsToEditorRole", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		admin, err := svc.Register(context.Background(), models.AdminCreate{
			Username: "clara",
			Email:    "clara@gcgeyewear.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.Equal(t, models.RoleEditor, admin.Role)
		require.True(t, admin.IsActive)
	})

	t.Run("DuplicateUsernameConflicts", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		register(t, svc, "clara", "s3cret-pass")

		_, err := svc.Register(context.Background(), models.AdminCreate{
			Username: "clara",
			Email:    "other@gcgeyewear.com",
			Password: "s3cret-pass",
		})
		require.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		register(t, svc, "clara", "s3cret-pass")

		_, err := svc.Register(context.Background(), models.AdminCreate{
			Username: "other",
			Email:    "clara@gcgeyewear.com",
			Password: "s3cret-pass",
		})
		require.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("UnknownRoleRejected", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		_, err := svc.Register(context.Background(), models.AdminCreate{
			Username: "clara",
			Email:    "clara@gcgeyewear.com",
			Password: "s3cret-pass",
			Role:     "owner",
		})
		require.Error(t, err)
	})
}

func TestServiceAuthenticate(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		created := register(t, svc, "clara", "s3cret-pass")

		admin, err := svc.Authenticate(context.Background(), "clara", "s3cret-pass")
		require.NoError(t, err)
		require.Equal(t, created.ID, admin.ID)
		require.Equal(t, "clara", admin.Username)
		require.Equal(t, "clara@gcgeyewear.com", admin.Email)
		require.Equal(t, models.RoleEditor, admin.Role)
		require.NotNil(t, admin.LastLogin)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		register(t, svc, "clara", "s3cret-pass")

		_, err := svc.Authenticate(context.Background(), "clara", "wrong-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUserIndistinguishableFromWrongPassword", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		register(t, svc, "clara", "s3cret-pass")

		_, errUnknown := svc.Authenticate(context.Background(), "nobody", "s3cret-pass")
		_, errWrong := svc.Authenticate(context.Background(), "clara", "wrong-pass")
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.Equal(t, errWrong, errUnknown)
	})

	t.Run("DeactivatedAccountRejected", func(t *testing.T) {
		store := newFakeAdminStore()
		svc := newTestService(store)
		admin := register(t, svc, "clara", "s3cret-pass")

		store.admins[admin.ID].IsActive = false
		_, err := svc.Authenticate(context.Background(), "clara", "s3cret-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestServiceTokens(t *testing.T) {
	t.Run("LoginIssuesVerifiableToken", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		created := register(t, svc, "clara", "s3cret-pass")

		token, err := svc.Login(context.Background(), models.AdminLogin{
			Username: "clara",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.Equal(t, "bearer", token.TokenType)
		require.Equal(t, 3600, token.ExpiresIn)
		require.Equal(t, created.ID, token.UserInfo["id"])

		admin, err := svc.VerifyToken(context.Background(), token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, created.ID, admin.ID)
	})

	t.Run("TokenForDeactivatedAccountFails", func(t *testing.T) {
		store := newFakeAdminStore()
		svc := newTestService(store)
		created := register(t, svc, "clara", "s3cret-pass")

		token, err := svc.Login(context.Background(), models.AdminLogin{
			Username: "clara",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		store.admins[created.ID].IsActive = false
		_, err = svc.VerifyToken(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("GarbageTokenFails", func(t *testing.T) {
		svc := newTestService(newFakeAdminStore())
		_, err := svc.VerifyToken(context.Background(), "garbage")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}
