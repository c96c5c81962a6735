package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"300", 300},
		{"  300  ", 300},
		{"$300", 300},
		{"1,000", 1000},
		{"1.000,50", 1000.50},
		{"1,234.56", 1234.56},
		{"1,50", 1.50},
		{"1.000", 1000},
		{"12.345.678", 12345678},
		{"10.5", 10.5},
		// grupo inicial zero é fração, não milhar
		{"0.500", 0.5},
		{"-0.500", -0.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-50", -50},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAmount(tc.in), "entrada %q", tc.in)
	}
}

func TestSetDiscountTextCoercesGarbageToZero(t *testing.T) {
	c := New()
	c.AddItems(line("p1.0.1", "S", 1, 1000))

	c.SetDiscountText("no-es-un-numero")
	assert.Equal(t, 0.0, c.Discount())
	assert.Equal(t, 1000.0, c.Total())

	c.SetAdditionText("1.000")
	assert.Equal(t, 1000.0, c.Addition())
	assert.Equal(t, 2000.0, c.Total())
}
