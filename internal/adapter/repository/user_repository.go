package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aguamarina/pos-tienda/internal/domain/user"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

// PostgresUserRepository implementa a interface user.Repository usando PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository cria uma nova instância de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO users (
			id, name, email, password, role, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err = conn.Exec(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Role),
		string(u.Status),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		"SELECT id, name, email, password, role, status, last_login_at, created_at, updated_at FROM users WHERE id = $1", id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		"SELECT id, name, email, password, role, status, last_login_at, created_at, updated_at FROM users WHERE email = $1", email)
}

// findUserByQuery é um método auxiliar para executar queries de busca de usuário
func (r *PostgresUserRepository) findUserByQuery(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u := &user.User{}
	var role, status string
	var lastLogin *time.Time

	err = conn.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&role,
		&status,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	u.Role = user.Role(role)
	u.Status = user.Status(status)
	if lastLogin != nil {
		u.LastLoginAt = *lastLogin
	}

	return u, nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2",
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar último login: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
