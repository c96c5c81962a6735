package category

import (
	"context"
)

// Repository define as operações de persistência para categorias
type Repository interface {
	// Create persiste uma nova categoria
	Create(ctx context.Context, c *Category) error

	// List retorna todas as categorias ordenadas por nome
	List(ctx context.Context) ([]Category, error)
}
