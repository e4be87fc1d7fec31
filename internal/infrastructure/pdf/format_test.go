package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"42.5", "42,50"},
		{"1450.5", "1.450,50"},
		{"1000000", "1.000.000,00"},
		{"-250.75", "-250,75"},
	}
	for _, c := range cases {
		got := FormatMoney(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "girdi %s", c.in)
	}
}
