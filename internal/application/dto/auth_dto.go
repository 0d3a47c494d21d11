package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT (sin expiración).
type LoginResponse struct {
	Token string `json:"token"`
}
