package size

import (
	"context"
)

// Repository define as operações de persistência para tamanhos
type Repository interface {
	// Create persiste um novo tamanho
	Create(ctx context.Context, s *Size) error

	// List retorna todos os tamanhos ordenados por data de criação
	List(ctx context.Context) ([]Size, error)
}
