package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats d as Brazilian reais: "R$ 24,50".
func Currency(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
