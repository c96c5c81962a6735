package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/domain/size"
)

var masterSizes = []size.Size{
	{ID: "s1", Name: "S"},
	{ID: "s2", Name: "M"},
	{ID: "s3", Name: "L"},
	{ID: "s4", Name: "Única"},
}

func sellable(id string, allocations ...product.SizeAllocation) product.Sellable {
	return product.Sellable{
		ID:              id,
		Name:            "Vestido Aqua",
		SalePrice:       1500,
		MainImage:       "https://img.example/vestido.jpg",
		SizeAllocations: allocations,
		IsActive:        true,
	}
}

func TestZeroStockSizeIsNotSelectable(t *testing.T) {
	sel := NewSelection(sellable("p2",
		product.SizeAllocation{Name: "M", Quantity: 0},
		product.SizeAllocation{Name: "L", Quantity: 3},
	), masterSizes)

	assert.False(t, sel.Selectable("M"))
	assert.True(t, sel.Selectable("L"))

	err := sel.Toggle("M")
	assert.ErrorIs(t, err, ErrSizeNotSelectable)
	assert.Empty(t, sel.Chosen())
}

func TestSizeMissingFromMasterListIsExcluded(t *testing.T) {
	sel := NewSelection(sellable("p2",
		product.SizeAllocation{Name: "XXL", Quantity: 5}, // não existe na lista mestra
		product.SizeAllocation{Name: "S", Quantity: 2},
	), masterSizes)

	offered := sel.Offered()
	require.Len(t, offered, 1)
	assert.Equal(t, "S", offered[0].Name)

	assert.False(t, sel.Selectable("XXL"))
	assert.ErrorIs(t, sel.Toggle("XXL"), ErrUnknownSize)
}

func TestNoPositiveStockYieldsEmptySelectableSet(t *testing.T) {
	sel := NewSelection(sellable("p3",
		product.SizeAllocation{Name: "S", Quantity: 0},
		product.SizeAllocation{Name: "M", Quantity: 0},
	), masterSizes)

	// os tamanhos aparecem, mas nenhum é selecionável
	assert.Len(t, sel.Offered(), 2)
	assert.False(t, sel.Selectable("S"))
	assert.False(t, sel.Selectable("M"))
	assert.Empty(t, sel.Confirm())
}

func TestToggleAddsWithQuantityOneAndSnapshotCeiling(t *testing.T) {
	sel := NewSelection(sellable("p2",
		product.SizeAllocation{Name: "S", Quantity: 5},
	), masterSizes)

	require.NoError(t, sel.Toggle("S"))

	chosen := sel.Chosen()
	require.Len(t, chosen, 1)
	assert.Equal(t, 1, chosen[0].Quantity)
	assert.Equal(t, 5, chosen[0].MaxQuantity)

	// segundo toggle remove
	require.NoError(t, sel.Toggle("S"))
	assert.Empty(t, sel.Chosen())
}

func TestSetQuantityClampsToSnapshot(t *testing.T) {
	sel := NewSelection(sellable("p2",
		product.SizeAllocation{Name: "S", Quantity: 5},
	), masterSizes)
	require.NoError(t, sel.Toggle("S"))

	sel.SetQuantity("S", 9)
	assert.Equal(t, 5, sel.Chosen()[0].Quantity)

	sel.SetQuantity("S", 0)
	assert.Equal(t, 1, sel.Chosen()[0].Quantity)

	sel.SetQuantity("S", 3)
	assert.Equal(t, 3, sel.Chosen()[0].Quantity)
}

func TestConfirmProducesOneFreshLinePerChosenSize(t *testing.T) {
	sel := NewSelection(sellable("p2",
		product.SizeAllocation{Name: "S", Quantity: 5},
		product.SizeAllocation{Name: "M", Quantity: 1},
	), masterSizes)

	require.NoError(t, sel.Toggle("S"))
	require.NoError(t, sel.Toggle("M"))
	sel.SetQuantity("S", 3)

	items := sel.Confirm()
	require.Len(t, items, 2)

	assert.NotEqual(t, items[0].ID, items[1].ID)
	for _, item := range items {
		assert.Equal(t, "p2", item.ProductRef())
		assert.True(t, strings.HasPrefix(item.ID, "p2."))
		assert.Equal(t, 1500.0, item.UnitPrice)
	}
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)

	// estado transitório zerado após a confirmação
	assert.Empty(t, sel.Chosen())
}

func TestConfirmedItemsNeverMergeWithExistingLines(t *testing.T) {
	c := New()

	unit := sellable("p2", product.SizeAllocation{Name: "S", Quantity: 5})

	sel := NewSelection(unit, masterSizes)
	require.NoError(t, sel.Toggle("S"))
	c.AddItems(sel.Confirm()...)

	sel2 := NewSelection(unit, masterSizes)
	require.NoError(t, sel2.Toggle("S"))
	c.AddItems(sel2.Confirm()...)

	// mesma combinação produto+tamanho aparece como duas linhas
	items := c.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, items[0].Size, items[1].Size)
}

func TestAddingToCartDoesNotMutateCatalogStock(t *testing.T) {
	unit := sellable("p2", product.SizeAllocation{Name: "S", Quantity: 5})

	sel := NewSelection(unit, masterSizes)
	require.NoError(t, sel.Toggle("S"))
	sel.SetQuantity("S", 4)

	c := New()
	c.AddItems(sel.Confirm()...)

	alloc, ok := unit.AllocationFor("S")
	require.True(t, ok)
	assert.Equal(t, 5, alloc.Quantity)
}
