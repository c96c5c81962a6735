package sale

import (
	"fmt"
	"strings"
)

// StockConflict descreve uma linha cujo estoque vivo não cobre a
// quantidade pedida no momento do commit do checkout.
type StockConflict struct {
	LineID     string `json:"lineId"`
	ProductRef string `json:"productRef"`
	Size       string `json:"size"`
	Requested  int    `json:"requested"`
	Available  int    `json:"available"`
}

// InsufficientStockError rejeita um checkout inteiro quando qualquer
// linha excede o estoque vivo. Nenhuma baixa parcial é feita.
type InsufficientStockError struct {
	Conflicts []StockConflict
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = fmt.Sprintf("%s/%s: pedido %d, disponível %d", c.ProductRef, c.Size, c.Requested, c.Available)
	}
	return "estoque insuficiente: " + strings.Join(parts, "; ")
}

// MovementType identifica a origem de uma movimentação de estoque
type MovementType string

const (
	MovementSale MovementType = "sale" // baixa por venda no PDV
)
