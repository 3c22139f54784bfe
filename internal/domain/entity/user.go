package entity

// User representa la credencial del administrador. El sistema siembra
// exactamente un usuario en el arranque y no expone endpoints para crear más.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	CreatedAt    string
}
