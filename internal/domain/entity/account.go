package entity

// Role nivel de acceso de una cuenta.
type Role string

// Roles válidos para Account.
const (
	RoleManager     Role = "manager"     // acceso completo (dashboard incluido)
	RoleStorekeeper Role = "storekeeper" // acceso restringido (solo productos)
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleManager, RoleStorekeeper:
		return true
	}
	return false
}

// Account cuenta del roster fijo. El password es configuración de demo,
// se compara por igualdad exacta y nunca sale del roster.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Identity subconjunto autenticado de una Account (nunca retiene el password).
// Es lo único que se persiste de la sesión.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// HomeDestination destino inicial tras el login según el rol:
// manager aterriza en el dashboard, el resto en productos.
func (i Identity) HomeDestination() string {
	if i.Role == RoleManager {
		return "/dashboard"
	}
	return "/products"
}
