package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas). La capa HTTP decide el status
// a partir del tipo, nunca a partir del texto.
var (
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrBadRequest = errors.New("solicitud inválida")
	ErrDuplicate  = errors.New("recurso duplicado")
)

// Error es la señal de error esperada de un caso de uso: un tipo (ErrNotFound,
// ErrBadRequest) y el mensaje visible para el cliente.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrNotFound).
func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un error 404 con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest construye un error 400 con mensaje formateado.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}
