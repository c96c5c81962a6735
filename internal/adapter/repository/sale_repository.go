package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aguamarina/pos-tienda/internal/domain/cart"
	"github.com/aguamarina/pos-tienda/internal/domain/sale"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresSaleRepository implementa a interface sale.Repository usando PostgreSQL
type PostgresSaleRepository struct {
	db *database.PostgresDB
}

// NewPostgresSaleRepository cria uma nova instância de PostgresSaleRepository
func NewPostgresSaleRepository(db *database.PostgresDB) *PostgresSaleRepository {
	return &PostgresSaleRepository{
		db: db,
	}
}

// Save implementa sale.Repository.Save. Toda a venda é persistida em
// uma única transação: cabeçalho, itens, baixa de estoque e
// movimentações. Se qualquer linha exceder o estoque vivo, nada é
// gravado e o erro carrega todos os conflitos encontrados.
func (r *PostgresSaleRepository) Save(ctx context.Context, s *cart.Sale, createdBy string) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		conflicts, err := r.reserveStock(ctx, tx, s.Items)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &sale.InsufficientStockError{Conflicts: conflicts}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO orders (id, total, total_discount, total_addition, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.ID, s.Total, s.TotalDiscount, s.TotalAddition, createdBy, s.Date)
		if err != nil {
			return fmt.Errorf("falha ao inserir pedido: %w", err)
		}

		for _, item := range s.Items {
			_, err = tx.Exec(ctx, `
				INSERT INTO order_items (
					id, order_id, product_ref, name, size_name,
					quantity, unit_price, is_variant
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`,
				uuid.New().String(),
				s.ID,
				item.ProductRef(),
				item.Name,
				item.Size,
				item.Quantity,
				item.UnitPrice,
				item.IsVariant,
			)
			if err != nil {
				return fmt.Errorf("falha ao inserir item do pedido: %w", err)
			}
		}

		return nil
	})
}

// reserveStock bloqueia e baixa as alocações de estoque das linhas da
// venda. Conflitos não interrompem a varredura: todas as linhas são
// verificadas para que o chamador receba a lista completa.
func (r *PostgresSaleRepository) reserveStock(ctx context.Context, tx pgx.Tx, items []cart.LineItem) ([]sale.StockConflict, error) {
	var conflicts []sale.StockConflict

	for _, item := range items {
		ref := item.ProductRef()

		owner := "product_id"
		if item.IsVariant {
			owner = "variant_id"
		}

		var allocationID string
		var available int
		err := tx.QueryRow(ctx,
			fmt.Sprintf("SELECT id, quantity FROM size_allocations WHERE %s = $1 AND size_name = $2 FOR UPDATE", owner),
			ref, item.Size,
		).Scan(&allocationID, &available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Alocação inexistente equivale a estoque zero
				conflicts = append(conflicts, sale.StockConflict{
					LineID:     item.ID,
					ProductRef: ref,
					Size:       item.Size,
					Requested:  item.Quantity,
					Available:  0,
				})
				continue
			}
			return nil, fmt.Errorf("falha ao consultar estoque: %w", err)
		}

		if available < item.Quantity {
			conflicts = append(conflicts, sale.StockConflict{
				LineID:     item.ID,
				ProductRef: ref,
				Size:       item.Size,
				Requested:  item.Quantity,
				Available:  available,
			})
			continue
		}

		if len(conflicts) > 0 {
			// Já sabemos que a venda será rejeitada; seguimos apenas
			// coletando os demais conflitos, sem baixar nada
			continue
		}

		_, err = tx.Exec(ctx,
			"UPDATE size_allocations SET quantity = quantity - $1 WHERE id = $2",
			item.Quantity, allocationID,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao baixar estoque: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO stock_movements (id, allocation_id, product_ref, size_name, quantity, movement_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
		`,
			uuid.New().String(),
			allocationID,
			ref,
			item.Size,
			-item.Quantity,
			string(sale.MovementSale),
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao registrar movimentação: %w", err)
		}
	}

	return conflicts, nil
}
