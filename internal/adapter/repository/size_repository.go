package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aguamarina/pos-tienda/internal/domain/size"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrSizeDuplicateKey = errors.New("tamanho com mesmo nome já existe")
)

// PostgresSizeRepository implementa a interface size.Repository usando PostgreSQL
type PostgresSizeRepository struct {
	db *database.PostgresDB
}

// NewPostgresSizeRepository cria uma nova instância de PostgresSizeRepository
func NewPostgresSizeRepository(db *database.PostgresDB) *PostgresSizeRepository {
	return &PostgresSizeRepository{
		db: db,
	}
}

// Create implementa size.Repository.Create
func (r *PostgresSizeRepository) Create(ctx context.Context, s *size.Size) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO sizes (id, name, created_at) VALUES ($1, $2, $3)",
		s.ID, s.Name, s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrSizeDuplicateKey
		}
		return fmt.Errorf("falha ao inserir tamanho: %w", err)
	}

	return nil
}

// List implementa size.Repository.List
func (r *PostgresSizeRepository) List(ctx context.Context) ([]size.Size, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	// A ordem de criação preserva a sequência de talles da loja (S, M, L...)
	rows, err := conn.Query(ctx, "SELECT id, name, created_at FROM sizes ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tamanhos: %w", err)
	}
	defer rows.Close()

	var sizes []size.Size
	for rows.Next() {
		var s size.Size
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler tamanho: %w", err)
		}
		sizes = append(sizes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return sizes, nil
}
