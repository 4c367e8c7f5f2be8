package entity

import "time"

// User representa un usuario del sistema. Solo se crea vía registro; no hay
// operaciones de actualización ni borrado expuestas.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
