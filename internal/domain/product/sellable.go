package product

// Sellable é a visão achatada do catálogo usada pelo PDV: o produto em
// si e cada variante ativa viram unidades vendáveis independentes, com
// a variante herdando o preço de venda do pai.
type Sellable struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Barcode         string           `json:"barcode"`
	CostPrice       float64          `json:"costPrice"`
	SalePrice       float64          `json:"salePrice"`
	MainImage       string           `json:"mainImage"`
	Description     string           `json:"description"`
	SizeAllocations []SizeAllocation `json:"sizeAllocations"`
	IsActive        bool             `json:"isActive"`
	IsVariant       bool             `json:"isVariant"`
}

// Sellables achata o produto em unidades vendáveis para o PDV.
// Produtos e variantes inativos são omitidos.
func (p *Product) Sellables() []Sellable {
	out := make([]Sellable, 0, 1+len(p.Variants))

	if p.IsActive {
		out = append(out, Sellable{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			Barcode:         p.Barcode,
			CostPrice:       p.CostPrice,
			SalePrice:       p.SalePrice,
			MainImage:       p.MainImage,
			Description:     p.Description,
			SizeAllocations: p.SizeAllocations,
			IsActive:        p.IsActive,
			IsVariant:       false,
		})
	}

	for _, v := range p.Variants {
		if !v.IsActive {
			continue
		}
		out = append(out, Sellable{
			ID:              v.ID,
			Name:            p.Name + " " + v.Name,
			Category:        p.Category,
			Barcode:         v.Barcode,
			CostPrice:       p.CostPrice,
			SalePrice:       p.SalePrice,
			MainImage:       v.MainImage,
			Description:     p.Description,
			SizeAllocations: v.SizeAllocations,
			IsActive:        v.IsActive,
			IsVariant:       true,
		})
	}

	return out
}

// AllocationFor busca a alocação de estoque de um tamanho pelo nome
func (s Sellable) AllocationFor(name string) (SizeAllocation, bool) {
	for _, a := range s.SizeAllocations {
		if a.Name == name {
			return a, true
		}
	}
	return SizeAllocation{}, false
}
