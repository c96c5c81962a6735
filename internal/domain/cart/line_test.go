package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemEmbedsProductRef(t *testing.T) {
	item, err := NewLineItem("prod-1", "M", "Remera", "", 2, 3000, false, 5)
	require.NoError(t, err)

	assert.Equal(t, "prod-1", item.ProductRef())
	assert.NotEqual(t, "prod-1", item.ID)
	assert.Equal(t, 6000.0, item.LineTotal())
}

func TestRestoreLineItemKeepsIDAndClamps(t *testing.T) {
	item, err := RestoreLineItem("prod-1.abc", "M", "Remera", "", 50, 3000, false, 5)
	require.NoError(t, err)

	// o ID emitido na seleção é preservado e a quantidade cai para o
	// teto min(MaxPerLine, estoque capturado)
	assert.Equal(t, "prod-1.abc", item.ID)
	assert.Equal(t, "prod-1", item.ProductRef())
	assert.Equal(t, 5, item.Quantity)

	item, err = RestoreLineItem("prod-1.abc", "M", "Remera", "", 0, 3000, false, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	// sem estoque capturado vale só o teto geral por linha
	item, err = RestoreLineItem("prod-1.abc", "M", "Remera", "", 50, 3000, false, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxPerLine, item.Quantity)
}

func TestRestoreLineItemValidations(t *testing.T) {
	_, err := RestoreLineItem("", "M", "Remera", "", 1, 3000, false, 5)
	assert.ErrorIs(t, err, ErrEmptyProductRef)

	_, err = RestoreLineItem("prod-1.abc", "", "Remera", "", 1, 3000, false, 5)
	assert.ErrorIs(t, err, ErrEmptySize)

	_, err = RestoreLineItem("prod-1.abc", "M", "Remera", "", 1, -3000, false, 5)
	assert.ErrorIs(t, err, ErrNegativePrice)
}
