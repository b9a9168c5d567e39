package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/query"
)

type CollectionRepository struct {
	collection *mongo.Collection

	Now   func() time.Time
	NewID func() string
}

func NewCollectionRepository(collection *mongo.Collection) *CollectionRepository {
	return &CollectionRepository{
		collection: collection,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// Create inserta una colección nueva. Si el cliente no manda slug se
// deriva del nombre; el índice único sobre slug resuelve duplicados.
func (r *CollectionRepository) Create(ctx context.Context, in models.CollectionCreate) (*models.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}

	err := r.collection.FindOne(ctx, bson.M{"slug": s}).Err()
	if err == nil {
		return nil, ErrConflict
	}
	if err != mongo.ErrNoDocuments {
		return nil, mapErr(err)
	}

	col := in.NewCollection(r.NewID(), s, r.Now().UTC())
	if _, err := r.collection.InsertOne(ctx, col); err != nil {
		return nil, mapErr(err)
	}
	return &col, nil
}

// FindByID obtiene una colección por id.
func (r *CollectionRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var col models.Collection
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&col); err != nil {
		return nil, mapErr(err)
	}
	return &col, nil
}

// FindBySlug obtiene una colección por su slug único.
func (r *CollectionRepository) FindBySlug(ctx context.Context, s string) (*models.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var col models.Collection
	if err := r.collection.FindOne(ctx, bson.M{"slug": s}).Decode(&col); err != nil {
		return nil, mapErr(err)
	}
	return &col, nil
}

// Find lista colecciones ordenadas por sort_order ascendente, con
// created_at como desempate (orden de inserción).
func (r *CollectionRepository) Find(ctx context.Context, isActive *bool, skip, limit int64) ([]models.Collection, error) {
	page := query.Page{Skip: skip, Limit: limit}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := bson.M{}
	if isActive != nil {
		q["is_active"] = *isActive
	}

	opts := options.Find().
		SetSkip(page.Skip).
		SetLimit(page.Limit).
		SetSort(bson.D{{Key: "sort_order", Value: query.SortAsc}, {Key: "created_at", Value: query.SortAsc}})

	cursor, err := r.collection.Find(ctx, q, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	defer cursor.Close(ctx)

	cols := make([]models.Collection, 0)
	if err := cursor.All(ctx, &cols); err != nil {
		return nil, mapErr(err)
	}
	return cols, nil
}

// Update aplica una actualización parcial y devuelve la colección.
func (r *CollectionRepository) Update(ctx context.Context, id string, update models.CollectionUpdate) (*models.Collection, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	set["updated_at"] = r.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, mapErr(err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete elimina una colección.
func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
