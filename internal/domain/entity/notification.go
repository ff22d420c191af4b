package entity

import "time"

// Kinds de notificación soportados por la capa de presentación.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

// ValidNotificationKind indica si k es un kind conocido; vacío se trata como info.
func ValidNotificationKind(k string) bool {
	switch k {
	case NotificationSuccess, NotificationError, NotificationInfo:
		return true
	}
	return false
}

// Notification mensaje efímero dirigido al usuario. Vive en la cola del
// NotificationCenter hasta que expira o se descarta; el ID nunca se reutiliza.
type Notification struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"` // success, error, info
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	TTL         time.Duration `json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
}
