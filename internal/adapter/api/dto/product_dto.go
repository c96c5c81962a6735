package dto

import (
	"github.com/aguamarina/pos-tienda/internal/domain/product"
)

// AllocationRequest representa o estoque de um tamanho no formulário
// de produto.
type AllocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
}

// VariantRequest representa uma variante no formulário de produto
type VariantRequest struct {
	ID              string              `json:"id"`
	Name            string              `json:"name" binding:"required"`
	MainImage       string              `json:"mainImage"`
	Barcode         string              `json:"barcode"`
	SizeAllocations []AllocationRequest `json:"sizeAllocations"`
	IsActive        bool                `json:"isActive"`
}

// ProductRequest representa os dados para criação de um produto.
// MainImage pode chegar como URL já hospedada ou como data-URL base64;
// neste último caso a imagem é otimizada e enviada ao storage antes da
// gravação.
type ProductRequest struct {
	Name            string              `json:"name" binding:"required"`
	Category        string              `json:"category"`
	Barcode         string              `json:"barcode"`
	CostPrice       float64             `json:"costPrice"`
	SalePrice       float64             `json:"salePrice"`
	MainImage       string              `json:"mainImage"`
	Description     string              `json:"description"`
	SizeAllocations []AllocationRequest `json:"sizeAllocations"`
	Variants        []VariantRequest    `json:"variants"`
	IsActive        bool                `json:"isActive"`
}

// ProductUpdateRequest representa os dados para edição de um produto
type ProductUpdateRequest struct {
	ID string `json:"id" binding:"required"`
	ProductRequest
}

// ProductResponse devolve o produto gravado
type ProductResponse struct {
	Success bool             `json:"success"`
	Product *product.Product `json:"product"`
}

// AdminProductListResponse representa a listagem paginada de produtos
// da administração, com os totais usados pela interface de paginação.
type AdminProductListResponse struct {
	Success  bool               `json:"success"`
	Products []*product.Product `json:"products"`
	Totals   product.Totals     `json:"totals"`
}

// ToDomainAllocations converte alocações do formulário para o domínio
func ToDomainAllocations(allocations []AllocationRequest) []product.SizeAllocation {
	out := make([]product.SizeAllocation, len(allocations))
	for i, a := range allocations {
		out[i] = product.SizeAllocation{Name: a.Name, Quantity: a.Quantity}
	}
	return out
}

// ToDomainVariants converte variantes do formulário para o domínio
func ToDomainVariants(variants []VariantRequest) []product.Variant {
	out := make([]product.Variant, len(variants))
	for i, v := range variants {
		out[i] = product.Variant{
			ID:              v.ID,
			Name:            v.Name,
			MainImage:       v.MainImage,
			Barcode:         v.Barcode,
			SizeAllocations: ToDomainAllocations(v.SizeAllocations),
			IsActive:        v.IsActive,
		}
	}
	return out
}

// ToAdminProductListResponse converte a listagem do repositório para resposta
func ToAdminProductListResponse(products []*product.Product, totals product.Totals) AdminProductListResponse {
	if products == nil {
		products = []*product.Product{}
	}
	return AdminProductListResponse{
		Success:  true,
		Products: products,
		Totals:   totals,
	}
}
