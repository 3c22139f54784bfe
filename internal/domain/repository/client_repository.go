package repository

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// GetByID devuelve (nil, nil) cuando el id no existe; Update y Delete
// devuelven el número de filas afectadas (0 si el id no existe, sin error).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	Update(ctx context.Context, id int64, patch entity.ClientPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
