package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/query"
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// ProductStats es el resultado de la agregación del panel.
type ProductStats struct {
	TotalProducts    int64 `json:"total_products" bson:"total_products"`
	ActiveProducts   int64 `json:"active_products" bson:"active_products"`
	FeaturedProducts int64 `json:"featured_products" bson:"featured_products"`
	OnSaleProducts   int64 `json:"on_sale_products" bson:"on_sale_products"`
}

type ProductRepository struct {
	collection *mongo.Collection

	// Reloj y generador de ids inyectables para los tests.
	Now   func() time.Time
	NewID func() string
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// Create inserta un producto nuevo. El pre-chequeo de SKU da un error
// amable; el índice único es quien garantiza la unicidad real.
func (r *ProductRepository) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.collection.FindOne(ctx, bson.M{"sku": in.SKU}).Err()
	if err == nil {
		return nil, ErrConflict
	}
	if err != mongo.ErrNoDocuments {
		return nil, mapErr(err)
	}

	product := in.NewProduct(r.NewID(), r.Now().UTC())
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

// FindByID obtiene un producto por id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

// Find ejecuta el motor de consultas: valida el filtro, construye las
// cláusulas y devuelve una página ordenada junto con el total.
func (r *ProductRepository) Find(ctx context.Context, filter query.ProductFilter, page query.Page) ([]models.Product, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := filter.Build()

	// Contar total en paralelo mientras corre el find.
	totalCh := make(chan int64, 1)
	errCh := make(chan error, 1)
	go func() {
		total, err := r.collection.CountDocuments(ctx, q)
		if err != nil {
			errCh <- err
			return
		}
		totalCh <- total
	}()

	cursor, err := r.collection.Find(ctx, q, page.FindOptions())
	if err != nil {
		return nil, 0, mapErr(err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, mapErr(err)
	}

	var total int64
	select {
	case total = <-totalCh:
	case err := <-errCh:
		return nil, 0, mapErr(err)
	case <-ctx.Done():
		return nil, 0, mapErr(ctx.Err())
	}

	return products, total, nil
}

// Update aplica una actualización parcial; los campos ausentes no se
// tocan. Devuelve el producto actualizado.
func (r *ProductRepository) Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
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

// Delete elimina un producto de forma definitiva.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
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

// BulkUpdateStatus cambia el estado de varios productos de una vez y
// devuelve cuántos se modificaron.
func (r *ProductRepository) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status, "updated_at": r.Now().UTC()}},
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return result.ModifiedCount, nil
}

// Stats agrega los contadores del panel de administración.
func (r *ProductRepository) Stats(ctx context.Context) (*ProductStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_products": bson.M{"$sum": 1},
			"active_products": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.StatusActive}}, 1, 0},
			}},
			"featured_products": bson.M{"$sum": bson.M{
				"$cond": bson.A{"$is_featured", 1, 0},
			}},
			"on_sale_products": bson.M{"$sum": bson.M{
				"$cond": bson.A{"$is_on_sale", 1, 0},
			}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapErr(err)
	}
	defer cursor.Close(ctx)

	var results []ProductStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, mapErr(err)
	}
	if len(results) == 0 {
		return &ProductStats{}, nil
	}
	return &results[0], nil
}
