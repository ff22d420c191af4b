package dto

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse identidad autenticada expuesta al cliente.
// Destination es la ruta inicial según el rol (manager → dashboard).
type IdentityResponse struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	Destination string `json:"destination,omitempty"`
}

// ThemeResponse tema activo.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
