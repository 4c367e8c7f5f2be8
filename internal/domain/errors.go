package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
)

// FieldErrors agrupa errores de validación por campo, en el formato que viaja
// en las respuestas 400: {"<campo>": ["<mensaje>", ...]}. Se detectan antes de
// cualquier intento de persistencia.
type FieldErrors map[string][]string

// Add registra un mensaje de error para un campo.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error implementa la interfaz error.
func (e FieldErrors) Error() string {
	return "validación fallida"
}
