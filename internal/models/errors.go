package models

import "fmt"

// ErrInvalidEnum señala un valor fuera del enumerado permitido;
// se detecta antes de tocar la base de datos.
type ErrInvalidEnum struct {
	Field string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

func errInvalidEnum(field, value string) error {
	return &ErrInvalidEnum{Field: field, Value: value}
}
