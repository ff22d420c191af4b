package dto

// CreateNotificationRequest cuerpo de POST /api/notifications.
// TTLMs en milisegundos; 0 usa el TTL por defecto.
type CreateNotificationRequest struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TTLMs       int    `json:"ttl_ms,omitempty"`
}

// NotificationResponse una notificación viva, autosuficiente para render.
type NotificationResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
