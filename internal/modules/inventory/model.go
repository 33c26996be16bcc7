package inventory

import "github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"

// DefaultLowStockThreshold is the highest positive stock level still
// reported as running low.
const DefaultLowStockThreshold = 5

// Summary is the stock position of a set of parts, usually one seller's.
type Summary struct {
	TotalProducts   int `json:"totalProducts"`
	InStockProducts int `json:"inStockProducts"`
	TotalStock      int `json:"totalStock"`
	// TotalValue is the sum of price times stock.
	TotalValue float64 `json:"totalValue"`
	// AverageUnitValue is TotalValue per unit in stock, rounded to a whole
	// amount, or 0 when nothing is in stock.
	AverageUnitValue float64        `json:"averageUnitValue"`
	LowStock         []catalog.Part `json:"lowStock"`
}
