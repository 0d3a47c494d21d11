package graph

import (
	"errors"
	"fmt"

	"github.com/jhoicas/jobboard-api/internal/domain"
)

// Códigos en extensions.code.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadUserInput = "BAD_USER_INPUT"
)

// Error error GraphQL con código legible por máquina.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Extensions lo usa graphql-go para poblar "extensions" en la respuesta.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func notFound(format string, args ...interface{}) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// translate convierte errores de dominio; el resto pasa sin cambios.
// notFoundMsg se usa para domain.ErrNotFound.
func translate(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: notFoundMsg}
	case errors.Is(err, domain.ErrUnauthorized):
		return &Error{Code: CodeUnauthorized, Message: "falta autenticación"}
	case errors.Is(err, domain.ErrInvalidInput):
		return &Error{Code: CodeBadUserInput, Message: "el título es obligatorio"}
	default:
		return err
	}
}
