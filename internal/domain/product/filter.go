package product

// Valores aceitos para os filtros de listagem. Strings vazias (ou
// "all" na categoria) significam "sem filtro".
const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	StockAvailable = "in-stock"
	StockOut       = "out-of-stock"
	StockLow       = "low-stock" // estoque total abaixo de 5 unidades

	PriceUnder5k  = "0-5000"
	Price5kTo20k  = "5000-20000"
	PriceOver20k  = "20000+"
	CategoryAll   = "all"
)

// Filter agrupa os critérios de filtragem das listagens de catálogo.
// O objeto chega do cliente como parâmetros de query e é repassado
// verbatim ao repositório.
type Filter struct {
	Status   string `json:"statusProduct" form:"statusProduct"`
	Stock    string `json:"stock" form:"stock"`
	Name     string `json:"nameProduct" form:"nameProduct"`
	Price    string `json:"price" form:"price"`
	Category string `json:"category" form:"category"`
}

// HasCategory informa se o filtro restringe por categoria
func (f Filter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// Totals resume a listagem para a interface de paginação
type Totals struct {
	TotalProducts  int `json:"totalProducts"`
	TotalVariants  int `json:"totalVariants"`
	TotalCombined  int `json:"totalCombined"`
	TotalPages     int `json:"totalPages"`
	RemainingPages int `json:"remainingPages"`
}
