package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// ValidationError agrupa todos los mensajes de validación de una petición.
// El contrato es reportarlos todos juntos, no solo el primero.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues, ", ")
}

// NewValidationError construye el error a partir de la lista de mensajes.
// Devuelve nil si la lista está vacía.
func NewValidationError(issues []string) error {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
