package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eyewear-catalog/internal/models"
)

type AdminRepository struct {
	collection *mongo.Collection

	Now   func() time.Time
	NewID func() string
}

func NewAdminRepository(collection *mongo.Collection) *AdminRepository {
	return &AdminRepository{
		collection: collection,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// Insert guarda una cuenta ya construida (el hash lo pone internal/auth).
func (r *AdminRepository) Insert(ctx context.Context, admin models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, admin)
	return mapErr(err)
}

// UsernameOrEmailTaken es el chequeo de existencia combinado previo al
// registro. No es transaccional: el índice único decide las carreras.
func (r *AdminRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.collection.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, mapErr(err)
}

// FindActiveByUsername busca una cuenta activa por username.
func (r *AdminRepository) FindActiveByUsername(ctx context.Context, username string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username, "is_active": true}).Decode(&admin)
	if err != nil {
		return nil, mapErr(err)
	}
	return &admin, nil
}

// FindActiveByID resuelve la identidad embebida en un token. Una
// cuenta desactivada cuenta como inexistente.
func (r *AdminRepository) FindActiveByID(ctx context.Context, id string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&admin)
	if err != nil {
		return nil, mapErr(err)
	}
	return &admin, nil
}

// TouchLastLogin marca el instante del último login correcto. Es la
// única mutación que sufre una cuenta después de crearse.
func (r *AdminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})
	return mapErr(err)
}

// RoleExists indica si hay alguna cuenta con el rol dado; lo usa el
// provisionado idempotente del admin por defecto.
func (r *AdminRepository) RoleExists(ctx context.Context, role string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.collection.FindOne(ctx, bson.M{"role": role}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, mapErr(err)
}
