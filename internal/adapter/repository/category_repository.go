package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aguamarina/pos-tienda/internal/domain/category"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrCategoryDuplicateKey = errors.New("categoria com mesmo nome já existe")
)

// PostgresCategoryRepository implementa a interface category.Repository usando PostgreSQL
type PostgresCategoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresCategoryRepository cria uma nova instância de PostgresCategoryRepository
func NewPostgresCategoryRepository(db *database.PostgresDB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		db: db,
	}
}

// Create implementa category.Repository.Create
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)",
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("falha ao inserir categoria: %w", err)
	}

	return nil
}

// List implementa category.Repository.List
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT id, name, created_at FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler categoria: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return categories, nil
}
