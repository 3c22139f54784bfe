package dto

// LoginRequest entrada para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse salida de login y de GET /me: email de la cuenta activa.
// Demo solo aparece cuando la sesión se abrió vía demo login.
type SessionResponse struct {
	Email string `json:"email"`
	Demo  bool   `json:"demo,omitempty"`
}
