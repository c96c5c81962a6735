package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Migrações em arquivo têm precedência quando MIGRATIONS_PATH aponta
	// para um diretório gerenciado pelo golang-migrate
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		if err := database.RunFileMigrations(path); err != nil {
			log.Fatalf("Erro ao executar migrações de arquivo: %v", err)
		}
		log.Println("Migrações executadas com sucesso!")
		return
	}

	// Criar conexão com o banco
	db, err := database.NewPostgresDB(database.NewPostgresConfigFromEnv())
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	// Executar as migrações embutidas
	if err := runMigrations(db.Pool()); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}

func runMigrations(db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn, err := db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("erro ao obter conexão: %w", err)
	}
	defer conn.Release()

	// Verificar se a tabela de migrações existe
	if err := createMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	// Verificar última migração executada
	lastMigration, err := getLastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("erro ao verificar última migração: %w", err)
	}

	log.Printf("Última migração executada: %s", lastMigration)

	// Lista de migrações
	migrations := []migration{
		{
			version: "001_create_users",
			up: `
				-- Tabela de usuários
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					email VARCHAR(255) NOT NULL UNIQUE,
					password VARCHAR(255) NOT NULL,
					role VARCHAR(50) NOT NULL,
					status VARCHAR(20) NOT NULL,
					last_login_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
				CREATE INDEX IF NOT EXISTS idx_users_status ON users(status);
			`,
		},
		{
			version: "002_create_catalog_labels",
			up: `
				-- Tabela de categorias
				CREATE TABLE IF NOT EXISTS categories (
					id UUID PRIMARY KEY,
					name VARCHAR(255) NOT NULL UNIQUE,
					created_at TIMESTAMP NOT NULL
				);

				-- Tabela de tamanhos (talles)
				CREATE TABLE IF NOT EXISTS sizes (
					id UUID PRIMARY KEY,
					name VARCHAR(50) NOT NULL UNIQUE,
					created_at TIMESTAMP NOT NULL
				);
			`,
		},
		{
			version: "003_create_products",
			up: `
				-- Tabela de produtos. A categoria é desnormalizada como
				-- nome: o catálogo filtra por rótulo, não por chave
				CREATE TABLE IF NOT EXISTS products (
					id UUID PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					category VARCHAR(255),
					barcode VARCHAR(50),
					cost_price DECIMAL(15,2) NOT NULL DEFAULT 0,
					sale_price DECIMAL(15,2) NOT NULL DEFAULT 0,
					main_image TEXT,
					description TEXT,
					is_active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
				CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode);
				CREATE INDEX IF NOT EXISTS idx_products_is_active ON products(is_active);

				-- Tabela de variantes
				CREATE TABLE IF NOT EXISTS variants (
					id UUID PRIMARY KEY,
					product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
					name VARCHAR(255) NOT NULL,
					main_image TEXT,
					barcode VARCHAR(50),
					is_active BOOLEAN NOT NULL DEFAULT true
				);

				CREATE INDEX IF NOT EXISTS idx_variants_product_id ON variants(product_id);
			`,
		},
		{
			version: "004_create_size_allocations",
			up: `
				-- Alocações de estoque por tamanho. Cada linha pertence a
				-- exatamente um escopo: produto ou variante
				CREATE TABLE IF NOT EXISTS size_allocations (
					id UUID PRIMARY KEY,
					product_id UUID REFERENCES products(id) ON DELETE CASCADE,
					variant_id UUID REFERENCES variants(id) ON DELETE CASCADE,
					size_name VARCHAR(50) NOT NULL,
					quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
					CHECK (
						(product_id IS NOT NULL AND variant_id IS NULL) OR
						(product_id IS NULL AND variant_id IS NOT NULL)
					),
					UNIQUE (product_id, size_name),
					UNIQUE (variant_id, size_name)
				);

				CREATE INDEX IF NOT EXISTS idx_size_allocations_product_id ON size_allocations(product_id);
				CREATE INDEX IF NOT EXISTS idx_size_allocations_variant_id ON size_allocations(variant_id);
			`,
		},
		{
			version: "005_create_orders",
			up: `
				-- Cabeçalho das vendas fechadas no PDV
				CREATE TABLE IF NOT EXISTS orders (
					id UUID PRIMARY KEY,
					total DECIMAL(15,2) NOT NULL,
					total_discount DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_addition DECIMAL(15,2) NOT NULL DEFAULT 0,
					created_by UUID REFERENCES users(id),
					created_at TIMESTAMP NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

				-- Itens das vendas. product_ref guarda a referência
				-- truncada da linha (produto ou variante), sem FK: o
				-- recibo sobrevive a mudanças no catálogo
				CREATE TABLE IF NOT EXISTS order_items (
					id UUID PRIMARY KEY,
					order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
					product_ref UUID NOT NULL,
					name VARCHAR(255) NOT NULL,
					size_name VARCHAR(50) NOT NULL,
					quantity INTEGER NOT NULL,
					unit_price DECIMAL(15,2) NOT NULL,
					is_variant BOOLEAN NOT NULL DEFAULT false
				);

				CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
				CREATE INDEX IF NOT EXISTS idx_order_items_product_ref ON order_items(product_ref);
			`,
		},
		{
			version: "006_create_stock_movements",
			up: `
				-- Movimentações de estoque (baixas por venda)
				CREATE TABLE IF NOT EXISTS stock_movements (
					id UUID PRIMARY KEY,
					allocation_id UUID REFERENCES size_allocations(id) ON DELETE SET NULL,
					product_ref UUID NOT NULL,
					size_name VARCHAR(50) NOT NULL,
					quantity INTEGER NOT NULL,
					movement_type VARCHAR(20) NOT NULL,
					created_at TIMESTAMP NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_stock_movements_product_ref ON stock_movements(product_ref);
				CREATE INDEX IF NOT EXISTS idx_stock_movements_created_at ON stock_movements(created_at);
			`,
		},
	}

	// Executar migrações pendentes
	for _, m := range migrations {
		if m.version <= lastMigration {
			log.Printf("Pulando migração %s (já executada)", m.version)
			continue
		}

		log.Printf("Executando migração %s", m.version)

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("erro ao iniciar transação: %w", err)
		}

		_, err = tx.Exec(ctx, m.up)
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao executar migração %s: %w", m.version, err)
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, executed_at) VALUES ($1, $2)",
			m.version, time.Now())
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao registrar migração %s: %w", m.version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("erro ao fazer commit da migração %s: %w", m.version, err)
		}

		log.Printf("Migração %s executada com sucesso", m.version)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *pgxpool.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func getLastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		"SELECT version FROM migrations ORDER BY executed_at DESC LIMIT 1").Scan(&version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

type migration struct {
	version string
	up      string
}
