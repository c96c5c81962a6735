package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "Vestidos", "", 100, 200, "", "", nil, nil, true)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Vestido", "Vestidos", "", 100, -1, "", "", nil, nil, true)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("Vestido", "Vestidos", "", 100, 200, "", "",
		[]SizeAllocation{{Name: "S", Quantity: -2}}, nil, true)
	assert.ErrorIs(t, err, ErrNegativeStock)

	p, err := NewProduct("Vestido", "Vestidos", "779123", 100, 200, "img.jpg", "", nil, nil, true)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNormalizeAllocationsMergesDuplicateSizes(t *testing.T) {
	out, err := NormalizeAllocations([]SizeAllocation{
		{Name: "S", Quantity: 2},
		{Name: "M", Quantity: 1},
		{Name: "S", Quantity: 3},
	})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, SizeAllocation{Name: "S", Quantity: 5}, out[0])
	assert.Equal(t, SizeAllocation{Name: "M", Quantity: 1}, out[1])
}

func TestTotalStockSumsProductAndVariantAllocations(t *testing.T) {
	p, err := NewProduct("Remera", "Remeras", "", 100, 200, "", "",
		[]SizeAllocation{{Name: "S", Quantity: 2}, {Name: "M", Quantity: 3}},
		[]Variant{
			{Name: "Roja", SizeAllocations: []SizeAllocation{{Name: "S", Quantity: 4}}, IsActive: true},
			{Name: "Azul", SizeAllocations: []SizeAllocation{{Name: "L", Quantity: 1}}, IsActive: false},
		},
		true,
	)
	require.NoError(t, err)

	assert.Equal(t, 10, p.TotalStock())
}

func TestSellablesFlattenActiveVariants(t *testing.T) {
	p, err := NewProduct("Remera", "Remeras", "779", 100, 200, "main.jpg", "",
		[]SizeAllocation{{Name: "S", Quantity: 2}},
		[]Variant{
			{Name: "Roja", MainImage: "roja.jpg", SizeAllocations: []SizeAllocation{{Name: "S", Quantity: 4}}, IsActive: true},
			{Name: "Azul", SizeAllocations: []SizeAllocation{{Name: "L", Quantity: 1}}, IsActive: false},
		},
		true,
	)
	require.NoError(t, err)

	units := p.Sellables()
	require.Len(t, units, 2)

	assert.False(t, units[0].IsVariant)
	assert.Equal(t, p.ID, units[0].ID)

	variant := units[1]
	assert.True(t, variant.IsVariant)
	assert.Equal(t, "Remera Roja", variant.Name)
	assert.Equal(t, 200.0, variant.SalePrice) // herda o preço do pai
	assert.Equal(t, "roja.jpg", variant.MainImage)
}

func TestSellablesOmitInactiveProduct(t *testing.T) {
	p, err := NewProduct("Remera", "Remeras", "", 100, 200, "", "",
		[]SizeAllocation{{Name: "S", Quantity: 2}},
		[]Variant{{Name: "Roja", SizeAllocations: nil, IsActive: true}},
		false,
	)
	require.NoError(t, err)

	units := p.Sellables()
	require.Len(t, units, 1)
	assert.True(t, units[0].IsVariant)
}

func TestUpdateReplacesEditableFields(t *testing.T) {
	p, err := NewProduct("Remera", "Remeras", "", 100, 200, "", "", nil, nil, true)
	require.NoError(t, err)

	created := p.CreatedAt
	id := p.ID

	err = p.Update("Remera Premium", "Remeras", "779", 120, 250, "new.jpg", "desc",
		[]SizeAllocation{{Name: "M", Quantity: 1}, {Name: "M", Quantity: 2}}, nil, false)
	require.NoError(t, err)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, "Remera Premium", p.Name)
	assert.Equal(t, []SizeAllocation{{Name: "M", Quantity: 3}}, p.SizeAllocations)
	assert.False(t, p.IsActive)
}
