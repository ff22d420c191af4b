package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// Cuentas builtin de demo. Se reemplazan completas si se configura ROSTER_PATH.
var builtinAccounts = []entity.Account{
	{Email: "manager@slooze.com", Password: "manager123", Role: entity.RoleManager},
	{Email: "keeper@slooze.com", Password: "keeper123", Role: entity.RoleStorekeeper},
}

// StaticRoster roster fijo en memoria: email -> cuenta. Implementa
// repository.AccountRoster. Solo lectura después de construido.
type StaticRoster struct {
	byEmail map[string]entity.Account
	ordered []entity.Account
}

// NewBuiltin construye el roster con las cuentas de demo precargadas.
func NewBuiltin() *StaticRoster {
	r, _ := New(builtinAccounts) // las builtin son válidas por construcción
	return r
}

// New construye un roster a partir de cuentas arbitrarias, validando
// que cada una tenga email, password y un rol conocido.
func New(accounts []entity.Account) (*StaticRoster, error) {
	r := &StaticRoster{byEmail: make(map[string]entity.Account, len(accounts))}
	for _, a := range accounts {
		if a.Email == "" || a.Password == "" {
			return nil, fmt.Errorf("cuenta %q: %w", a.Email, domain.ErrInvalidInput)
		}
		if !entity.ValidRole(string(a.Role)) {
			return nil, fmt.Errorf("cuenta %q rol %q: %w", a.Email, a.Role, domain.ErrInvalidRole)
		}
		r.byEmail[a.Email] = a
		r.ordered = append(r.ordered, a)
	}
	return r, nil
}

// LoadFile lee un roster JSON ([{"email","password","role"}, ...]) desde path.
func LoadFile(path string) (*StaticRoster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer roster %s: %w", path, err)
	}
	var accounts []entity.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("parsear roster %s: %w", path, err)
	}
	return New(accounts)
}

// FindByEmail busca por email exacto; nil sin error si no existe.
func (r *StaticRoster) FindByEmail(email string) (*entity.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// All devuelve una copia de las cuentas en orden de carga.
func (r *StaticRoster) All() []entity.Account {
	out := make([]entity.Account, len(r.ordered))
	copy(out, r.ordered)
	return out
}
