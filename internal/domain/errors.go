package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound entidad ausente, o empleo de otra empresa: no se distingue a propósito.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrUnauthorized operación que exige usuario autenticado sin él en el contexto.
	ErrUnauthorized = errors.New("no autorizado")
	// ErrInvalidCredentials email inexistente o password incorrecto en login.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrInvalidToken credencial Bearer presente pero malformada o no verificable.
	ErrInvalidToken = errors.New("token inválido")
	ErrInvalidInput = errors.New("entrada inválida")
)
