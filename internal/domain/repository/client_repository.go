package repository

import (
	"context"

	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para clientes.
// GetByID devuelve (nil, nil) si el cliente no existe.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete retorna domain.ErrNotFound si el id no existe (borrado idempotente:
	// repetir el DELETE produce 404, nunca un fallo interno).
	Delete(ctx context.Context, id string) error
}
