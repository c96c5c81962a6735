package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, size string, qty int, unitPrice float64) LineItem {
	return LineItem{
		ID:        id,
		Size:      size,
		Quantity:  qty,
		Name:      "Remera",
		UnitPrice: unitPrice,
	}
}

func TestSubtotalRecomputedFromLines(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.23", "M", 2, 1000), line("p1.0.87", "L", 1, 1000))

	assert.Equal(t, 3000.0, c.Subtotal())

	require.NoError(t, c.UpdateQuantity("p1.0.23", "M", 3))
	assert.Equal(t, 4000.0, c.Subtotal())

	c.Remove("p1.0.87")
	assert.Equal(t, 3000.0, c.Subtotal())
}

func TestTotalWithDiscountAndAddition(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.23", "M", 2, 1000), line("p1.0.87", "L", 1, 1000))
	c.SetDiscount(300)

	assert.Equal(t, 3000.0, c.Subtotal())
	assert.Equal(t, 2700.0, c.Total())

	c.SetAddition(500)
	assert.Equal(t, 3200.0, c.Total())
}

func TestTotalMayGoNegative(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.1", "S", 1, 100))
	c.SetDiscount(500)

	// desconto maior que o subtotal não tem piso em zero
	assert.Equal(t, -400.0, c.Total())
}

func TestUpdateQuantityClampsToFloorOne(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.1", "S", 3, 100))

	require.NoError(t, c.UpdateQuantity("p1.0.1", "S", 0))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	require.NoError(t, c.UpdateQuantity("p1.0.1", "S", -7))
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestUpdateQuantityCeilingIsMinOfBusinessRuleAndStock(t *testing.T) {
	c := New()

	noStockInfo := line("p1.0.1", "S", 1, 100)
	c.AddItems(noStockInfo)
	require.NoError(t, c.UpdateQuantity("p1.0.1", "S", 50))
	assert.Equal(t, MaxPerLine, c.Items()[0].Quantity)

	lowStock := line("p2.0.1", "M", 1, 100)
	lowStock.MaxQuantity = 4
	c.AddItems(lowStock)
	require.NoError(t, c.UpdateQuantity("p2.0.1", "M", 50))
	assert.Equal(t, 4, c.Items()[1].Quantity)
}

func TestUpdateQuantityMatchesByIDAndSize(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.1", "S", 1, 100))

	err := c.UpdateQuantity("p1.0.1", "M", 5)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRemoveLeavesOtherLinesUntouched(t *testing.T) {
	c := New()
	c.AddItems(
		line("p1.0.23", "M", 2, 1000),
		line("p1.0.87", "L", 1, 1000),
		line("p2.0.14", "M", 1, 500),
	)

	c.Remove("p1.0.23")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1.0.87", items[0].ID)
	assert.Equal(t, "p2.0.14", items[1].ID)

	// remover ID inexistente não altera nada
	c.Remove("p9.0.99")
	assert.Len(t, c.Items(), 2)
}

func TestCheckoutOnEmptyCartIsNoOp(t *testing.T) {
	c := New()

	s, err := c.Checkout()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StatusEmpty, c.Status())
}

func TestCheckoutSnapshotAndComplete(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.23", "M", 2, 1000), line("p1.0.87", "L", 1, 1000))
	c.SetDiscountText("300")

	s, err := c.Checkout()
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, c.Status())

	assert.NotEmpty(t, s.ID)
	assert.Len(t, s.Items, 2)
	assert.Equal(t, 2700.0, s.Total)
	assert.Equal(t, 300.0, s.TotalDiscount)
	assert.Equal(t, 0.0, s.TotalAddition)
	assert.False(t, s.Date.IsZero())

	require.NoError(t, c.Complete())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, StatusEmpty, c.Status())
	assert.Equal(t, 0.0, c.Discount())

	// o snapshot não é afetado pela limpeza do carrinho
	assert.Len(t, s.Items, 2)
}

func TestCheckoutFailureRetainsCart(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.23", "M", 2, 1000))
	c.SetDiscount(100)

	_, err := c.Checkout()
	require.NoError(t, err)

	require.NoError(t, c.Fail())
	assert.Equal(t, StatusPopulated, c.Status())
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 100.0, c.Discount())

	// nova tentativa funciona
	_, err = c.Checkout()
	assert.NoError(t, err)
}

func TestCompleteOutsideCheckoutIsRejected(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.1", "S", 1, 100))

	assert.ErrorIs(t, c.Complete(), ErrNotSubmitting)
	assert.ErrorIs(t, c.Fail(), ErrNotSubmitting)
}

func TestStateTransitions(t *testing.T) {
	c := New()
	assert.Equal(t, StatusEmpty, c.Status())

	c.AddItems(line("p1.0.1", "S", 1, 100))
	assert.Equal(t, StatusPopulated, c.Status())

	c.Remove("p1.0.1")
	assert.Equal(t, StatusEmpty, c.Status())
}

func TestProductRefTruncatesCompoundID(t *testing.T) {
	l := line("p1.0.23", "M", 1, 100)
	assert.Equal(t, "p1", l.ProductRef())

	plain := line("p1", "M", 1, 100)
	assert.Equal(t, "p1", plain.ProductRef())
}
