package product

import (
	"context"
)

// Repository define as operações de persistência para produtos
type Repository interface {
	// Create persiste um novo produto com variantes e alocações
	Create(ctx context.Context, p *Product) error

	// Update substitui um produto existente, suas variantes e alocações
	Update(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID, com variantes e alocações
	FindByID(ctx context.Context, id string) (*Product, error)

	// ListAdmin retorna uma página (1-indexada) de produtos para o
	// inventário, com o resumo de totais para a paginação
	ListAdmin(ctx context.Context, page int, filter Filter, search string) ([]*Product, Totals, error)

	// ListPOS retorna uma página (1-indexada) de unidades vendáveis
	// ativas, achatando variantes, com o resumo de totais
	ListPOS(ctx context.Context, page int, filter Filter, search string) ([]Sellable, Totals, error)
}
