package repository

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// GetByEmail y GetByID devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
