// Package auth gestiona el ciclo de vida de credenciales y la emisión
// y verificación de tokens sin estado.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/repository"
)

var (
	// ErrInvalidCredentials: usuario desconocido, inactivo o contraseña
	// incorrecta. Externamente son indistinguibles.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated: token inválido, expirado o identidad muerta.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// AdminStore es lo que el servicio necesita del almacenamiento de
// cuentas; lo implementa repository.AdminRepository.
type AdminStore interface {
	Insert(ctx context.Context, admin models.Admin) error
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
	FindActiveByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindActiveByID(ctx context.Context, id string) (*models.Admin, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type Service struct {
	store  AdminStore
	tokens *TokenIssuer

	Now   func() time.Time
	NewID func() string
}

func NewService(store AdminStore, tokens *TokenIssuer) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// Register da de alta una cuenta con la contraseña hasheada con bcrypt.
// El chequeo combinado username/email da un Conflict amable; el índice
// único de la base de datos es la guardia real contra carreras.
func (s *Service) Register(ctx context.Context, in models.AdminCreate) (*models.Admin, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.store.UsernameOrEmailTaken(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleEditor
	}

	admin := models.Admin{
		ID:           s.NewID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.store.Insert(ctx, admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Authenticate valida username/contraseña contra una cuenta activa y
// actualiza last_login. Nunca revela qué comprobación falló.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.store.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.Now().UTC()
	if err := s.store.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastLogin = &now
	return admin, nil
}

// Login autentica y emite el token de acceso con sus metadatos.
func (s *Service) Login(ctx context.Context, in models.AdminLogin) (*models.AdminToken, error) {
	admin, err := s.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return nil, err
	}

	return &models.AdminToken{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		UserInfo: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"role":     admin.Role,
		},
	}, nil
}

// VerifyToken resuelve la identidad embebida en un token. Un token
// válido de una cuenta borrada o desactivada también falla.
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.Admin, error) {
	adminID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	admin, err := s.store.FindActiveByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return admin, nil
}
