package dto

// ErrorResponse cuerpo de error genérico HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación: {"message": "<mensaje>"}.
type MessageResponse struct {
	Message string `json:"message"`
}
