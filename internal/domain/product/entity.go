package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID           = errors.New("id não pode ser vazio")
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrNegativePrice     = errors.New("preço não pode ser negativo")
	ErrNegativeStock     = errors.New("quantidade de estoque não pode ser negativa")
	ErrEmptySizeName     = errors.New("nome do tamanho não pode ser vazio")
	ErrInvalidProductRef = errors.New("referência de produto inválida")
)

// SizeAllocation representa o estoque de um tamanho dentro do escopo de
// um produto ou de uma variante. Invariante: no máximo uma alocação por
// nome de tamanho dentro do mesmo escopo.
type SizeAllocation struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Variant representa uma sublinha do produto (por exemplo uma cor) com
// imagem, código de barras e estoque próprios. O preço é herdado do
// produto pai.
type Variant struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	MainImage       string           `json:"mainImage"`
	Barcode         string           `json:"barcode"`
	SizeAllocations []SizeAllocation `json:"sizeAllocations"`
	IsActive        bool             `json:"isActive"`
}

// Product representa a unidade vendável do catálogo
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Barcode         string           `json:"barcode"`
	CostPrice       float64          `json:"costPrice"`
	SalePrice       float64          `json:"salePrice"`
	MainImage       string           `json:"mainImage"`
	Description     string           `json:"description"`
	SizeAllocations []SizeAllocation `json:"sizeAllocations"`
	Variants        []Variant        `json:"variants,omitempty"`
	IsActive        bool             `json:"isActive"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewProduct cria um novo produto validando nome, preços e alocações
func NewProduct(name, category, barcode string, costPrice, salePrice float64, mainImage, description string, allocations []SizeAllocation, variants []Variant, isActive bool) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if costPrice < 0 || salePrice < 0 {
		return nil, ErrNegativePrice
	}

	normalized, err := NormalizeAllocations(allocations)
	if err != nil {
		return nil, err
	}

	vs := make([]Variant, 0, len(variants))
	for _, v := range variants {
		nv, err := NewVariant(v.Name, v.MainImage, v.Barcode, v.SizeAllocations, v.IsActive)
		if err != nil {
			return nil, err
		}
		vs = append(vs, *nv)
	}

	now := time.Now()
	return &Product{
		ID:              uuid.New().String(),
		Name:            name,
		Category:        category,
		Barcode:         barcode,
		CostPrice:       costPrice,
		SalePrice:       salePrice,
		MainImage:       mainImage,
		Description:     description,
		SizeAllocations: normalized,
		Variants:        vs,
		IsActive:        isActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// NewVariant cria uma nova variante validando nome e alocações
func NewVariant(name, mainImage, barcode string, allocations []SizeAllocation, isActive bool) (*Variant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	normalized, err := NormalizeAllocations(allocations)
	if err != nil {
		return nil, err
	}

	return &Variant{
		ID:              uuid.New().String(),
		Name:            name,
		MainImage:       mainImage,
		Barcode:         barcode,
		SizeAllocations: normalized,
		IsActive:        isActive,
	}, nil
}

// NormalizeAllocations garante no máximo uma alocação por nome de
// tamanho dentro do escopo, somando quantidades repetidas e rejeitando
// quantidades negativas ou nomes vazios.
func NormalizeAllocations(allocations []SizeAllocation) ([]SizeAllocation, error) {
	index := make(map[string]int, len(allocations))
	out := make([]SizeAllocation, 0, len(allocations))

	for _, a := range allocations {
		if a.Name == "" {
			return nil, ErrEmptySizeName
		}
		if a.Quantity < 0 {
			return nil, ErrNegativeStock
		}
		if i, ok := index[a.Name]; ok {
			out[i].Quantity += a.Quantity
			continue
		}
		index[a.Name] = len(out)
		out = append(out, a)
	}

	return out, nil
}

// TotalStock soma as alocações próprias da variante
func (v *Variant) TotalStock() int {
	var total int
	for _, a := range v.SizeAllocations {
		total += a.Quantity
	}
	return total
}

// TotalStock soma as alocações próprias do produto mais as de todas as
// suas variantes.
func (p *Product) TotalStock() int {
	var total int
	for _, a := range p.SizeAllocations {
		total += a.Quantity
	}
	for i := range p.Variants {
		total += p.Variants[i].TotalStock()
	}
	return total
}

// Update substitui os dados editáveis do produto preservando ID e
// data de criação.
func (p *Product) Update(name, category, barcode string, costPrice, salePrice float64, mainImage, description string, allocations []SizeAllocation, variants []Variant, isActive bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if costPrice < 0 || salePrice < 0 {
		return ErrNegativePrice
	}

	normalized, err := NormalizeAllocations(allocations)
	if err != nil {
		return err
	}

	for i := range variants {
		na, err := NormalizeAllocations(variants[i].SizeAllocations)
		if err != nil {
			return err
		}
		variants[i].SizeAllocations = na
		if variants[i].ID == "" {
			variants[i].ID = uuid.New().String()
		}
	}

	p.Name = name
	p.Category = category
	p.Barcode = barcode
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.MainImage = mainImage
	p.Description = description
	p.SizeAllocations = normalized
	p.Variants = variants
	p.IsActive = isActive
	p.UpdatedAt = time.Now()
	return nil
}
