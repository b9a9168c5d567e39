package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Errores centinela del almacenamiento. El handler los traduce a un
// vocabulario externo fijo sin filtrar detalle interno.
var (
	// ErrNotFound: la entidad no existe.
	ErrNotFound = errors.New("not found")
	// ErrConflict: violación de unicidad (sku, slug, username, email).
	ErrConflict = errors.New("already exists")
	// ErrUnavailable: fallo de infraestructura en el viaje a la base
	// de datos. Nunca se reintenta aquí.
	ErrUnavailable = errors.New("storage unavailable")
)

// mapErr traduce errores del driver al vocabulario del repositorio.
// El índice único es la guardia autoritativa contra duplicados: una
// carrera en el pre-chequeo acaba aquí como ErrConflict.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
