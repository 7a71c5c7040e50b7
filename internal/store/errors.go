package store

import "errors"

// Validation failures surfaced to callers. Handlers match on these with
// errors.Is and render the conflicting key from the wrapped message.
var (
	ErrDuplicateCategory  = errors.New("la categoría ya existe")
	ErrDuplicateStatement = errors.New("el resumen ya existe")
	ErrDefaultCategory    = errors.New("no se puede eliminar la categoría por defecto")
	ErrNotFound           = errors.New("registro no encontrado")
)
