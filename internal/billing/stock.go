package billing

import "github.com/shopspring/decimal"

// ProductRequirement is one row of a service's bill-of-materials: the amount
// of a product one unit of the service consumes.
type ProductRequirement struct {
	ProductID uint
	Quantity  decimal.Decimal
}

// StockUsage is one resulting deduction: Quantity units of ProductID leave
// stock (an OUT movement plus a counter decrement of the same magnitude).
type StockUsage struct {
	ProductID uint
	Quantity  decimal.Decimal
}

// ResolveStockUsage scales a service's bill-of-materials by the quantity sold.
// Links whose scaled usage is zero produce nothing.
func ResolveStockUsage(links []ProductRequirement, itemQuantity int) []StockUsage {
	qty := decimal.NewFromInt(int64(itemQuantity))
	usages := make([]StockUsage, 0, len(links))
	for _, link := range links {
		used := link.Quantity.Mul(qty)
		if used.IsZero() {
			continue
		}
		usages = append(usages, StockUsage{ProductID: link.ProductID, Quantity: used})
	}
	return usages
}
