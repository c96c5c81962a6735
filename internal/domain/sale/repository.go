package sale

import (
	"context"

	"github.com/aguamarina/pos-tienda/internal/domain/cart"
)

// Repository define a persistência de vendas fechadas no PDV
type Repository interface {
	// Save persiste a venda em uma única transação: cabeçalho do
	// pedido, itens (com IDs compostos truncados para a referência do
	// produto), baixa das alocações de estoque e movimentações. Estoque
	// vivo insuficiente em qualquer linha aborta tudo com
	// *InsufficientStockError.
	Save(ctx context.Context, s *cart.Sale, createdBy string) error
}
