package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultLimit se aplica cuando el cliente no pide un tamaño.
	DefaultLimit = 50
	// MaxLimit acota cualquier petición de página.
	MaxLimit = 100
)

// Direcciones de ordenación en la convención de Mongo.
const (
	SortAsc  = 1
	SortDesc = -1
)

// Page describe paginación y ordenación de un listado.
type Page struct {
	Skip      int64
	Limit     int64
	SortBy    string
	SortOrder int
}

// Validate normaliza y acota la página: skip >= 0, limit en (0, MaxLimit].
func (p *Page) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0", ErrInvalidFilter)
	}
	if p.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0", ErrInvalidFilter)
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = SortDesc
	}
	return nil
}

// FindOptions traduce la página a opciones del driver.
func (p Page) FindOptions() *options.FindOptions {
	return options.Find().
		SetSkip(p.Skip).
		SetLimit(p.Limit).
		SetSort(bson.D{{Key: p.SortBy, Value: p.SortOrder}})
}
