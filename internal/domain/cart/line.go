package cart

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductRef = errors.New("referência de produto não pode ser vazia")
	ErrEmptySize       = errors.New("tamanho não pode ser vazio")
	ErrNegativePrice   = errors.New("preço unitário não pode ser negativo")
)

// LineItem representa uma linha do carrinho: uma unidade vendável
// (produto ou variante) em um tamanho específico, com quantidade.
// O ID é composto: referência do produto + "." + sufixo único, de modo
// que duas adições do mesmo produto+tamanho geram linhas distintas.
type LineItem struct {
	ID          string  `json:"id"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name"`
	MainImage   string  `json:"mainImage"`
	UnitPrice   float64 `json:"unitPrice"`
	IsVariant   bool    `json:"isVariant"`
	MaxQuantity int     `json:"maxQuantity,omitempty"` // estoque capturado na seleção
}

// NewLineItem cria uma nova linha de carrinho com ID único derivado
// da referência do produto.
func NewLineItem(productRef, sizeName, name, mainImage string, quantity int, unitPrice float64, isVariant bool, maxQuantity int) (LineItem, error) {
	if productRef == "" {
		return LineItem{}, ErrEmptyProductRef
	}
	if sizeName == "" {
		return LineItem{}, ErrEmptySize
	}
	if unitPrice < 0 {
		return LineItem{}, ErrNegativePrice
	}
	if quantity < 1 {
		quantity = 1
	}

	return LineItem{
		ID:          productRef + "." + uuid.New().String(),
		Size:        sizeName,
		Quantity:    quantity,
		Name:        name,
		MainImage:   mainImage,
		UnitPrice:   unitPrice,
		IsVariant:   isVariant,
		MaxQuantity: maxQuantity,
	}, nil
}

// RestoreLineItem reconstrói uma linha a partir de dados recebidos do
// cliente, preservando o ID composto já emitido. Aplica as mesmas
// validações de NewLineItem e limita a quantidade a
// [1, min(MaxPerLine, estoque capturado)], linha a linha.
func RestoreLineItem(id, sizeName, name, mainImage string, quantity int, unitPrice float64, isVariant bool, maxQuantity int) (LineItem, error) {
	if id == "" {
		return LineItem{}, ErrEmptyProductRef
	}
	if sizeName == "" {
		return LineItem{}, ErrEmptySize
	}
	if unitPrice < 0 {
		return LineItem{}, ErrNegativePrice
	}

	ceiling := MaxPerLine
	if maxQuantity > 0 && maxQuantity < ceiling {
		ceiling = maxQuantity
	}
	if quantity < 1 {
		quantity = 1
	}
	if quantity > ceiling {
		quantity = ceiling
	}

	return LineItem{
		ID:          id,
		Size:        sizeName,
		Quantity:    quantity,
		Name:        name,
		MainImage:   mainImage,
		UnitPrice:   unitPrice,
		IsVariant:   isVariant,
		MaxQuantity: maxQuantity,
	}, nil
}

// ProductRef retorna a referência do produto embutida no ID composto
// da linha (tudo antes do primeiro ponto).
func (l LineItem) ProductRef() string {
	if i := strings.Index(l.ID, "."); i >= 0 {
		return l.ID[:i]
	}
	return l.ID
}

// LineTotal retorna o total da linha (preço unitário × quantidade).
func (l LineItem) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
