package cart

import (
	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/shopspring/decimal"
)

// Item is one cart line: a snapshot of the part taken when it was first
// added, and how many the shopper wants.
type Item struct {
	Part     catalog.Part `json:"part"`
	Quantity int          `json:"quantity"`
}

// Snapshot is the cart as the client sees it.
type Snapshot struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Total is the sum of price × quantity over items, summed in decimal so
// cent prices do not accumulate float error.
func Total(items []Item) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Part.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.InexactFloat64()
}

// ItemCount is the sum of quantities over items.
func ItemCount(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func snapshotOf(items []Item) Snapshot {
	return Snapshot{Items: items, Total: Total(items), ItemCount: ItemCount(items)}
}
