package dto

// RegisterUserRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT. Nunca incluye el password ni su hash.
type LoginResponse struct {
	Token string `json:"token"`
}
