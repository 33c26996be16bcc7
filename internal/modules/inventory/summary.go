package inventory

import (
	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/shopspring/decimal"
)

// Summarize computes the stock position of parts. Parts with a stock of
// 1..threshold are listed as low stock in collection order.
func Summarize(parts []catalog.Part, threshold int) Summary {
	s := Summary{TotalProducts: len(parts), LowStock: make([]catalog.Part, 0)}
	value := decimal.Zero
	for _, p := range parts {
		s.TotalStock += p.Stock
		value = value.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock > 0 {
			s.InStockProducts++
			if p.Stock <= threshold {
				s.LowStock = append(s.LowStock, p)
			}
		}
	}
	s.TotalValue = value.InexactFloat64()
	if s.TotalStock > 0 {
		s.AverageUnitValue = value.Div(decimal.NewFromInt(int64(s.TotalStock))).Round(0).InexactFloat64()
	}
	return s
}
