package repository

import (
	"context"

	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// FindByEmail y GetByID devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
