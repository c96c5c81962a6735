package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID   = errors.New("id não pode ser vazio")
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Category representa um rótulo de agrupamento do catálogo. Mesmo
// ciclo de vida dos tamanhos: criada uma vez, nunca excluída.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// NewCategory cria uma nova categoria
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}
