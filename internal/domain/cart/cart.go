package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart     = errors.New("carrinho vazio")
	ErrLineNotFound  = errors.New("linha não encontrada no carrinho")
	ErrNotSubmitting = errors.New("carrinho não está em checkout")
)

// MaxPerLine é o teto de unidades por linha no PDV. O limite efetivo de
// uma linha é min(MaxPerLine, estoque capturado na seleção); o estoque
// real é revalidado de novo no commit do checkout.
const MaxPerLine = 10

// Status representa o estado do carrinho
type Status string

const (
	StatusEmpty      Status = "empty"
	StatusPopulated  Status = "populated"
	StatusSubmitting Status = "submitting"
)

// Sale é o snapshot imutável construído no checkout e entregue à tela
// de recibo. Não referencia o carrinho que o originou.
type Sale struct {
	ID            string     `json:"id"`
	Items         []LineItem `json:"items"`
	Total         float64    `json:"total"`
	TotalDiscount float64    `json:"totalDiscount"`
	TotalAddition float64    `json:"totalAddition"`
	Date          time.Time  `json:"date"`
}

// Cart mantém a venda em andamento: linhas, desconto e adição globais.
// Totais são sempre derivados das linhas, nunca acumulados.
type Cart struct {
	items    []LineItem
	discount float64
	addition float64
	status   Status
}

// New cria um carrinho vazio
func New() *Cart {
	return &Cart{status: StatusEmpty}
}

// Items retorna uma cópia das linhas do carrinho
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len retorna o número de linhas
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty informa se o carrinho não tem linhas
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Status retorna o estado atual do carrinho
func (c *Cart) Status() Status {
	return c.status
}

// AddItems anexa linhas ao carrinho. Linhas repetidas do mesmo
// produto+tamanho não são mescladas: cada confirmação da seleção
// produz linhas novas com IDs próprios.
func (c *Cart) AddItems(items ...LineItem) {
	if len(items) == 0 {
		return
	}
	c.items = append(c.items, items...)
	c.status = StatusPopulated
}

// UpdateQuantity ajusta a quantidade de uma linha identificada por
// ID e tamanho. A quantidade é limitada a [1, min(MaxPerLine, estoque
// capturado)]; valores fora do intervalo são ajustados, nunca rejeitados.
func (c *Cart) UpdateQuantity(lineID, sizeName string, quantity int) error {
	for i := range c.items {
		if c.items[i].ID != lineID || c.items[i].Size != sizeName {
			continue
		}

		ceiling := MaxPerLine
		if c.items[i].MaxQuantity > 0 && c.items[i].MaxQuantity < ceiling {
			ceiling = c.items[i].MaxQuantity
		}

		if quantity < 1 {
			quantity = 1
		}
		if quantity > ceiling {
			quantity = ceiling
		}

		c.items[i].Quantity = quantity
		return nil
	}
	return ErrLineNotFound
}

// Remove retira a linha com o ID informado, independente do tamanho.
// Remover um ID inexistente não é erro: o carrinho fica como está.
func (c *Cart) Remove(lineID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != lineID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if len(c.items) == 0 && c.status == StatusPopulated {
		c.status = StatusEmpty
	}
}

// SetDiscount define o desconto global em valor absoluto
func (c *Cart) SetDiscount(v float64) {
	c.discount = v
}

// SetAddition define a adição global em valor absoluto
func (c *Cart) SetAddition(v float64) {
	c.addition = v
}

// SetDiscountText define o desconto a partir de texto livre digitado
// pelo operador. Entrada inválida vira 0, nunca erro.
func (c *Cart) SetDiscountText(raw string) {
	c.discount = ParseAmount(raw)
}

// SetAdditionText define a adição a partir de texto livre
func (c *Cart) SetAdditionText(raw string) {
	c.addition = ParseAmount(raw)
}

// Discount retorna o desconto global vigente
func (c *Cart) Discount() float64 {
	return c.discount
}

// Addition retorna a adição global vigente
func (c *Cart) Addition() float64 {
	return c.addition
}

// Subtotal soma preço unitário × quantidade de todas as linhas.
// Recalculado do zero a cada chamada.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}

// Total retorna subtotal + adição − desconto. Um desconto maior que o
// subtotal produz total negativo; não há piso em zero.
func (c *Cart) Total() float64 {
	return c.Subtotal() + c.addition - c.discount
}

// Checkout constrói o snapshot de venda e marca o carrinho como em
// submissão. Em carrinho vazio é um no-op que retorna ErrEmptyCart.
// O chamador deve encerrar com Complete (sucesso) ou Fail (falha).
func (c *Cart) Checkout() (*Sale, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	c.status = StatusSubmitting

	return &Sale{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         c.Total(),
		TotalDiscount: c.discount,
		TotalAddition: c.addition,
		Date:          time.Now(),
	}, nil
}

// Complete limpa o carrinho após um checkout confirmado
func (c *Cart) Complete() error {
	if c.status != StatusSubmitting {
		return ErrNotSubmitting
	}
	c.items = nil
	c.discount = 0
	c.addition = 0
	c.status = StatusEmpty
	return nil
}

// Fail devolve o carrinho ao estado populado após um checkout
// rejeitado, preservando linhas, desconto e adição para nova tentativa.
func (c *Cart) Fail() error {
	if c.status != StatusSubmitting {
		return ErrNotSubmitting
	}
	c.status = StatusPopulated
	return nil
}
