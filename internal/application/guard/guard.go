// Package guard contiene el RouteGuard: la decisión por navegación de
// renderizar un destino protegido o redirigir según la sesión actual.
package guard

import "github.com/slooze/commodity-admin/internal/domain/entity"

// Action resultado de una evaluación del guard.
type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
)

// Destinos de redirección del guard.
const (
	DestinationLogin    = "/login"
	DestinationProducts = "/products"
)

// Decision decisión de navegación. Target solo aplica cuando Action es redirect.
type Decision struct {
	Action Action
	Target string
}

// Evaluate decide el acceso a un destino protegido. requiredRole vacío
// significa "cualquier usuario autenticado". Sin estado: se recalcula en cada
// navegación desde la sesión vigente.
//
//   - Sin identidad          → redirect a /login.
//   - Rol insuficiente       → redirect a /products, nunca de vuelta al login:
//     un usuario autenticado no se devuelve a la pantalla de acceso.
//   - Autorizado             → render dentro del chrome compartido.
func Evaluate(identity *entity.Identity, requiredRole entity.Role) Decision {
	if identity == nil {
		return Decision{Action: ActionRedirect, Target: DestinationLogin}
	}
	if requiredRole != "" && identity.Role != requiredRole {
		return Decision{Action: ActionRedirect, Target: DestinationProducts}
	}
	return Decision{Action: ActionRender}
}
