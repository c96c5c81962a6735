package cart

import (
	"errors"

	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/domain/size"
)

var (
	ErrSizeNotSelectable = errors.New("tamanho sem estoque disponível")
	ErrUnknownSize       = errors.New("tamanho não oferecido pela unidade")
)

// ChosenSize é uma entrada do conjunto transitório de tamanhos
// escolhidos: quantidade desejada e o snapshot de estoque capturado
// no momento da seleção.
type ChosenSize struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MaxQuantity int    `json:"maxQuantity"`
}

// Selection é o passo de resolução de tamanho/estoque: dado uma
// unidade vendável e a lista mestra de tamanhos, apresenta os tamanhos
// oferecidos e deixa o operador escolher um ou mais, cada um com
// quantidade limitada ao estoque daquele tamanho. Uma alocação cujo
// tamanho não existe na lista mestra é silenciosamente excluída.
type Selection struct {
	unit    product.Sellable
	offered []product.SizeAllocation
	chosen  []ChosenSize
}

// NewSelection monta o passo de seleção para uma unidade vendável
func NewSelection(unit product.Sellable, master []size.Size) *Selection {
	known := make(map[string]bool, len(master))
	for _, s := range master {
		known[s.Name] = true
	}

	offered := make([]product.SizeAllocation, 0, len(unit.SizeAllocations))
	for _, a := range unit.SizeAllocations {
		if known[a.Name] {
			offered = append(offered, a)
		}
	}

	return &Selection{unit: unit, offered: offered}
}

// Offered retorna os tamanhos exibíveis (presentes na lista mestra),
// inclusive os sem estoque, que aparecem desabilitados.
func (s *Selection) Offered() []product.SizeAllocation {
	out := make([]product.SizeAllocation, len(s.offered))
	copy(out, s.offered)
	return out
}

// Selectable informa se um tamanho pode ser escolhido: oferecido pela
// unidade e com estoque positivo.
func (s *Selection) Selectable(name string) bool {
	for _, a := range s.offered {
		if a.Name == name {
			return a.Quantity > 0
		}
	}
	return false
}

// Toggle alterna a presença de um tamanho no conjunto escolhido. Ao
// entrar, a quantidade começa em 1 e o teto é o estoque daquele tamanho
// capturado agora (não revalidado ao vivo).
func (s *Selection) Toggle(name string) error {
	for i, c := range s.chosen {
		if c.Name == name {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return nil
		}
	}

	var max int
	found := false
	for _, a := range s.offered {
		if a.Name == name {
			max = a.Quantity
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownSize
	}
	if max <= 0 {
		return ErrSizeNotSelectable
	}

	s.chosen = append(s.chosen, ChosenSize{Name: name, Quantity: 1, MaxQuantity: max})
	return nil
}

// SetQuantity ajusta a quantidade de um tamanho já escolhido,
// limitando ao intervalo [1, estoque capturado].
func (s *Selection) SetQuantity(name string, quantity int) {
	for i := range s.chosen {
		if s.chosen[i].Name != name {
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		if quantity > s.chosen[i].MaxQuantity {
			quantity = s.chosen[i].MaxQuantity
		}
		s.chosen[i].Quantity = quantity
		return
	}
}

// Chosen retorna o conjunto transitório de tamanhos escolhidos
func (s *Selection) Chosen() []ChosenSize {
	out := make([]ChosenSize, len(s.chosen))
	copy(out, s.chosen)
	return out
}

// Confirm converte cada tamanho escolhido em uma linha de carrinho
// independente, com ID próprio, e zera o estado transitório da
// seleção. Sem tamanhos escolhidos, retorna lista vazia.
func (s *Selection) Confirm() []LineItem {
	items := make([]LineItem, 0, len(s.chosen))
	for _, c := range s.chosen {
		item, err := NewLineItem(
			s.unit.ID,
			c.Name,
			s.unit.Name,
			s.unit.MainImage,
			c.Quantity,
			s.unit.SalePrice,
			s.unit.IsVariant,
			c.MaxQuantity,
		)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	s.chosen = nil
	return items
}
