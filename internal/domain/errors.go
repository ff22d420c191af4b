package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol desconocido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
