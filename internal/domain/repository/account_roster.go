package repository

import "github.com/slooze/commodity-admin/internal/domain/entity"

// AccountRoster define el puerto de lectura del roster fijo de cuentas.
// Es configuración precargada, nunca se persiste desde este subsistema.
type AccountRoster interface {
	// FindByEmail busca una cuenta por email exacto (ya normalizado).
	// Devuelve nil sin error si no existe.
	FindByEmail(email string) (*entity.Account, error)
	// All devuelve todas las cuentas (solo lectura).
	All() []entity.Account
}
