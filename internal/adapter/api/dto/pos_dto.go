package dto

import (
	"github.com/aguamarina/pos-tienda/internal/domain/cart"
	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/domain/sale"
)

// POSProductListResponse representa a listagem achatada de unidades
// vendáveis usada pela tela do PDV.
type POSProductListResponse struct {
	Success  bool               `json:"success"`
	Products []product.Sellable `json:"products"`
	Totals   product.Totals     `json:"totals"`
}

// OrderItemRequest representa uma linha do carrinho enviada no
// fechamento da venda. O ID é o composto gerado na seleção
// (referência do produto + "." + sufixo).
type OrderItemRequest struct {
	ID          string  `json:"id" binding:"required"`
	Size        string  `json:"size" binding:"required"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name"`
	MainImage   string  `json:"mainImage"`
	UnitPrice   float64 `json:"unitPrice"`
	IsVariant   bool    `json:"isVariant"`
	MaxQuantity int     `json:"maxQuantity"`
}

// OrderRequest representa o fechamento de uma venda no PDV. Desconto e
// adição chegam como texto livre digitado pelo operador e são
// interpretados no servidor; entrada inválida vale zero.
type OrderRequest struct {
	Items         []OrderItemRequest `json:"items"`
	TotalDiscount string             `json:"totalDiscount"`
	TotalAddition string             `json:"totalAddition"`
}

// OrderResponse devolve o snapshot da venda fechada
type OrderResponse struct {
	Success bool       `json:"success"`
	Sale    *cart.Sale `json:"sale"`
}

// StockConflictResponse detalha as linhas rejeitadas por estoque
// insuficiente no momento do fechamento.
type StockConflictResponse struct {
	Code      int                  `json:"code"`
	Message   string               `json:"message"`
	Conflicts []sale.StockConflict `json:"conflicts"`
}

// ToPOSProductListResponse converte a listagem do repositório para resposta
func ToPOSProductListResponse(products []product.Sellable, totals product.Totals) POSProductListResponse {
	if products == nil {
		products = []product.Sellable{}
	}
	return POSProductListResponse{
		Success:  true,
		Products: products,
		Totals:   totals,
	}
}
