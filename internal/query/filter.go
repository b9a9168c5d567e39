// Package query construye consultas Mongo filtradas, ordenadas y
// paginadas a partir de predicados opcionales. Cada predicado solo
// emite una cláusula cuando el campo correspondiente viene informado;
// los predicados se combinan con AND y la búsqueda libre con OR sobre
// un conjunto fijo de campos de texto.
package query

import (
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eyewear-catalog/internal/models"
)

// ErrInvalidFilter señala un filtro que no pasa la validación básica;
// se devuelve antes de lanzar la consulta.
var ErrInvalidFilter = errors.New("invalid filter")

// ProductFilter agrupa los predicados opcionales de listado de
// productos. Un puntero nil o cadena vacía no impone restricción.
type ProductFilter struct {
	Collection string
	Gender     string
	Type       string
	IsFeatured *bool
	IsOnSale   *bool
	Status     string
	PriceMin   *float64
	PriceMax   *float64
	Search     string
}

// Validate comprueba enumerados y rango de precios antes de construir
// la consulta.
func (f ProductFilter) Validate() error {
	if f.Gender != "" && !models.ValidGender(f.Gender) {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidFilter, f.Gender)
	}
	if f.Type != "" && !models.ValidProductType(f.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, f.Type)
	}
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return fmt.Errorf("%w: price_min must be >= 0", ErrInvalidFilter)
	}
	if f.PriceMax != nil && *f.PriceMax < 0 {
		return fmt.Errorf("%w: price_max must be >= 0", ErrInvalidFilter)
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return fmt.Errorf("%w: price_min greater than price_max", ErrInvalidFilter)
	}
	return nil
}

// Build emite el documento de consulta. Los predicados de igualdad se
// combinan con AND implícito; el rango de precios usa cotas inclusivas
// y la búsqueda libre es un OR de regex case-insensitive sobre
// name, short_description y tags.
func (f ProductFilter) Build() bson.M {
	q := bson.M{}

	if f.Collection != "" {
		q["collection"] = f.Collection
	}
	if f.Gender != "" {
		q["gender"] = f.Gender
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.IsFeatured != nil {
		q["is_featured"] = *f.IsFeatured
	}
	if f.IsOnSale != nil {
		q["is_on_sale"] = *f.IsOnSale
	}
	if f.Status != "" {
		q["status"] = f.Status
	}

	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		q["price"] = price
	}

	if f.Search != "" {
		// El término se escapa para que los metacaracteres del regex
		// se busquen de forma literal.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"short_description": pattern},
			bson.M{"tags": bson.M{"$in": bson.A{pattern}}},
		}
	}

	return q
}
