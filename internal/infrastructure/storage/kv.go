package storage

// Claves persistidas por la aplicación. SessionStore y PreferenceStore
// comparten el almacén pero usan claves disjuntas.
const (
	KeySession = "slooze-auth-user"
	KeyTheme   = "slooze-theme-preference"
)

// KeyValue puerto de almacenamiento clave-valor durable (sobrevive reinicios).
type KeyValue interface {
	// Get devuelve el valor de key, o domain.ErrNotFound si no existe.
	Get(key string) (string, error)
	// Set escribe o reemplaza el valor de key.
	Set(key, value string) error
	// Remove elimina key; eliminar una clave ausente no es error.
	Remove(key string) error
}
