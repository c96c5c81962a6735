package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo código de barras já existe")
)

// productsPageSize é o tamanho fixo de página das listagens de catálogo
const productsPageSize = 10

// stockedProductsCTE anexa a cada produto o estoque total (alocações
// próprias + alocações de todas as variantes), usado pelos filtros de
// estoque.
const stockedProductsCTE = `
	WITH stocked AS (
		SELECT p.*, COALESCE(own.qty, 0) + COALESCE(var.qty, 0) AS total_stock
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS qty
			FROM size_allocations
			WHERE product_id IS NOT NULL
			GROUP BY product_id
		) own ON own.product_id = p.id
		LEFT JOIN (
			SELECT v.product_id, SUM(sa.quantity) AS qty
			FROM size_allocations sa
			JOIN variants v ON v.id = sa.variant_id
			GROUP BY v.product_id
		) var ON var.product_id = p.id
	)
`

// PostgresProductRepository implementa a interface product.Repository usando PostgreSQL
type PostgresProductRepository struct {
	db *database.PostgresDB
}

// NewPostgresProductRepository cria uma nova instância de PostgresProductRepository
func NewPostgresProductRepository(db *database.PostgresDB) *PostgresProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *PostgresProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO products (
				id, name, category, barcode, cost_price, sale_price,
				main_image, description, is_active, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			)
		`

		_, err := tx.Exec(ctx, query,
			p.ID,
			p.Name,
			p.Category,
			p.Barcode,
			p.CostPrice,
			p.SalePrice,
			p.MainImage,
			p.Description,
			p.IsActive,
			p.CreatedAt,
			p.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return ErrProductDuplicateKey
			}
			return fmt.Errorf("falha ao inserir produto: %w", err)
		}

		return r.insertChildren(ctx, tx, p)
	})
}

// Update implementa product.Repository.Update
func (r *PostgresProductRepository) Update(ctx context.Context, p *product.Product) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE products
			SET
				name = $1,
				category = $2,
				barcode = $3,
				cost_price = $4,
				sale_price = $5,
				main_image = $6,
				description = $7,
				is_active = $8,
				updated_at = $9
			WHERE
				id = $10
		`

		result, err := tx.Exec(ctx, query,
			p.Name,
			p.Category,
			p.Barcode,
			p.CostPrice,
			p.SalePrice,
			p.MainImage,
			p.Description,
			p.IsActive,
			p.UpdatedAt,
			p.ID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return ErrProductDuplicateKey
			}
			return fmt.Errorf("falha ao atualizar produto: %w", err)
		}

		if result.RowsAffected() == 0 {
			return ErrProductNotFound
		}

		// Alocações e variantes são substituídas por inteiro: o
		// formulário sempre envia o estado completo do produto
		_, err = tx.Exec(ctx, `
			DELETE FROM size_allocations
			WHERE product_id = $1
			   OR variant_id IN (SELECT id FROM variants WHERE product_id = $1)
		`, p.ID)
		if err != nil {
			return fmt.Errorf("falha ao limpar alocações: %w", err)
		}

		if _, err = tx.Exec(ctx, "DELETE FROM variants WHERE product_id = $1", p.ID); err != nil {
			return fmt.Errorf("falha ao limpar variantes: %w", err)
		}

		return r.insertChildren(ctx, tx, p)
	})
}

// insertChildren insere alocações e variantes de um produto
func (r *PostgresProductRepository) insertChildren(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	for _, a := range p.SizeAllocations {
		_, err := tx.Exec(ctx,
			"INSERT INTO size_allocations (id, product_id, size_name, quantity) VALUES ($1, $2, $3, $4)",
			uuid.New().String(), p.ID, a.Name, a.Quantity,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir alocação: %w", err)
		}
	}

	for _, v := range p.Variants {
		_, err := tx.Exec(ctx,
			"INSERT INTO variants (id, product_id, name, main_image, barcode, is_active) VALUES ($1, $2, $3, $4, $5, $6)",
			v.ID, p.ID, v.Name, v.MainImage, v.Barcode, v.IsActive,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir variante: %w", err)
		}

		for _, a := range v.SizeAllocations {
			_, err := tx.Exec(ctx,
				"INSERT INTO size_allocations (id, variant_id, size_name, quantity) VALUES ($1, $2, $3, $4)",
				uuid.New().String(), v.ID, a.Name, a.Quantity,
			)
			if err != nil {
				return fmt.Errorf("falha ao inserir alocação de variante: %w", err)
			}
		}
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	p := &product.Product{}
	err = conn.QueryRow(ctx, `
		SELECT id, name, category, barcode, cost_price, sale_price,
		       main_image, description, is_active, created_at, updated_at
		FROM products WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Barcode,
		&p.CostPrice,
		&p.SalePrice,
		&p.MainImage,
		&p.Description,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}

	products := []*product.Product{p}
	if err := r.loadChildren(ctx, conn, products); err != nil {
		return nil, err
	}

	return p, nil
}

// ListAdmin implementa product.Repository.ListAdmin
func (r *PostgresProductRepository) ListAdmin(ctx context.Context, page int, filter product.Filter, search string) ([]*product.Product, product.Totals, error) {
	return r.listProducts(ctx, page, filter, search, false)
}

// ListPOS implementa product.Repository.ListPOS
func (r *PostgresProductRepository) ListPOS(ctx context.Context, page int, filter product.Filter, search string) ([]product.Sellable, product.Totals, error) {
	products, totals, err := r.listProducts(ctx, page, filter, search, true)
	if err != nil {
		return nil, product.Totals{}, err
	}

	var units []product.Sellable
	for _, p := range products {
		units = append(units, p.Sellables()...)
	}

	return units, totals, nil
}

// listProducts executa a listagem paginada com filtros e monta o
// resumo de totais.
func (r *PostgresProductRepository) listProducts(ctx context.Context, page int, filter product.Filter, search string, onlyActive bool) ([]*product.Product, product.Totals, error) {
	if page < 1 {
		page = 1
	}

	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, product.Totals{}, err
	}
	defer conn.Release()

	where, args := buildProductFilter(filter, search, onlyActive)

	query := stockedProductsCTE + `
		SELECT id, name, category, barcode, cost_price, sale_price,
		       main_image, description, is_active, created_at, updated_at
		FROM stocked
		WHERE ` + where + `
		ORDER BY created_at DESC, name ASC
		LIMIT ` + fmt.Sprintf("$%d", len(args)+1) + ` OFFSET ` + fmt.Sprintf("$%d", len(args)+2)

	offset := (page - 1) * productsPageSize
	rows, err := conn.Query(ctx, query, append(args, productsPageSize, offset)...)
	if err != nil {
		return nil, product.Totals{}, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p := &product.Product{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Barcode,
			&p.CostPrice,
			&p.SalePrice,
			&p.MainImage,
			&p.Description,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, product.Totals{}, fmt.Errorf("falha ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, product.Totals{}, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	if err := r.loadChildren(ctx, conn, products); err != nil {
		return nil, product.Totals{}, err
	}

	totals, err := r.countTotals(ctx, conn, where, args, page)
	if err != nil {
		return nil, product.Totals{}, err
	}

	return products, totals, nil
}

// loadChildren carrega alocações e variantes dos produtos informados
func (r *PostgresProductRepository) loadChildren(ctx context.Context, conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, products []*product.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	index := make(map[string]*product.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = p
	}

	// Alocações próprias dos produtos
	rows, err := conn.Query(ctx, `
		SELECT product_id, size_name, quantity
		FROM size_allocations
		WHERE product_id = ANY($1::uuid[])
		ORDER BY size_name
	`, ids)
	if err != nil {
		return fmt.Errorf("falha ao carregar alocações: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		var a product.SizeAllocation
		if err := rows.Scan(&productID, &a.Name, &a.Quantity); err != nil {
			return fmt.Errorf("falha ao ler alocação: %w", err)
		}
		if p, ok := index[productID]; ok {
			p.SizeAllocations = append(p.SizeAllocations, a)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar alocações: %w", err)
	}

	// Variantes
	variantIndex := make(map[string]*product.Variant)
	vrows, err := conn.Query(ctx, `
		SELECT id, product_id, name, main_image, barcode, is_active
		FROM variants
		WHERE product_id = ANY($1::uuid[])
		ORDER BY name
	`, ids)
	if err != nil {
		return fmt.Errorf("falha ao carregar variantes: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var productID string
		var v product.Variant
		if err := vrows.Scan(&v.ID, &productID, &v.Name, &v.MainImage, &v.Barcode, &v.IsActive); err != nil {
			return fmt.Errorf("falha ao ler variante: %w", err)
		}
		if p, ok := index[productID]; ok {
			p.Variants = append(p.Variants, v)
			variantIndex[v.ID] = &p.Variants[len(p.Variants)-1]
		}
	}
	if err := vrows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar variantes: %w", err)
	}

	if len(variantIndex) == 0 {
		return nil
	}

	variantIDs := make([]string, 0, len(variantIndex))
	for id := range variantIndex {
		variantIDs = append(variantIDs, id)
	}

	// Alocações das variantes
	arows, err := conn.Query(ctx, `
		SELECT variant_id, size_name, quantity
		FROM size_allocations
		WHERE variant_id = ANY($1::uuid[])
		ORDER BY size_name
	`, variantIDs)
	if err != nil {
		return fmt.Errorf("falha ao carregar alocações de variantes: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var variantID string
		var a product.SizeAllocation
		if err := arows.Scan(&variantID, &a.Name, &a.Quantity); err != nil {
			return fmt.Errorf("falha ao ler alocação de variante: %w", err)
		}
		if v, ok := variantIndex[variantID]; ok {
			v.SizeAllocations = append(v.SizeAllocations, a)
		}
	}
	if err := arows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar alocações de variantes: %w", err)
	}

	return nil
}

// countTotals monta o resumo de totais para a interface de paginação
func (r *PostgresProductRepository) countTotals(ctx context.Context, conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, where string, args []interface{}, page int) (product.Totals, error) {
	var totals product.Totals

	err := conn.QueryRow(ctx,
		stockedProductsCTE+"SELECT COUNT(*) FROM stocked WHERE "+where, args...,
	).Scan(&totals.TotalProducts)
	if err != nil {
		return totals, fmt.Errorf("falha ao contar produtos: %w", err)
	}

	err = conn.QueryRow(ctx,
		stockedProductsCTE+`
			SELECT COUNT(*) FROM variants v
			WHERE v.product_id IN (SELECT id FROM stocked WHERE `+where+`)
		`, args...,
	).Scan(&totals.TotalVariants)
	if err != nil {
		return totals, fmt.Errorf("falha ao contar variantes: %w", err)
	}

	totals.TotalCombined = totals.TotalProducts + totals.TotalVariants

	totals.TotalPages = (totals.TotalProducts + productsPageSize - 1) / productsPageSize
	if totals.TotalPages == 0 {
		totals.TotalPages = 1
	}

	totals.RemainingPages = totals.TotalPages - page
	if totals.RemainingPages < 0 {
		totals.RemainingPages = 0
	}

	return totals, nil
}

// buildProductFilter converte o objeto de filtros em cláusulas SQL
func buildProductFilter(filter product.Filter, search string, onlyActive bool) (string, []interface{}) {
	conds := []string{"1=1"}
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if onlyActive {
		conds = append(conds, "is_active = true")
	}

	if filter.HasCategory() {
		conds = append(conds, "category = "+arg(filter.Category))
	}

	switch filter.Status {
	case product.StatusActive:
		conds = append(conds, "is_active = true")
	case product.StatusInactive:
		conds = append(conds, "is_active = false")
	}

	// A busca livre da barra tem precedência sobre o filtro de nome
	if term := strings.TrimSpace(search); term != "" {
		conds = append(conds, "(name ILIKE "+arg("%"+term+"%")+" OR barcode ILIKE "+arg("%"+term+"%")+")")
	} else if term := strings.TrimSpace(filter.Name); term != "" {
		conds = append(conds, "name ILIKE "+arg("%"+term+"%"))
	}

	switch filter.Price {
	case product.PriceUnder5k:
		conds = append(conds, "sale_price < 5000")
	case product.Price5kTo20k:
		conds = append(conds, "sale_price >= 5000 AND sale_price < 20000")
	case product.PriceOver20k:
		conds = append(conds, "sale_price >= 20000")
	}

	switch filter.Stock {
	case product.StockAvailable:
		conds = append(conds, "total_stock > 0")
	case product.StockOut:
		conds = append(conds, "total_stock = 0")
	case product.StockLow:
		conds = append(conds, "total_stock > 0 AND total_stock < 5")
	}

	return strings.Join(conds, " AND "), args
}
