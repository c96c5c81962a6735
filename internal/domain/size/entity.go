package size

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID   = errors.New("id não pode ser vazio")
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Size representa um rótulo de tamanho do catálogo (ex.: "S", "M",
// "Única"). Imutável depois de criado; nunca é excluído.
type Size struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// NewSize cria um novo tamanho
func NewSize(name string) (*Size, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Size{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}
