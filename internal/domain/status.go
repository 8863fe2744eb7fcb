package domain

// StockStatus is the derived label for an inventory row. It is computed on
// every read and never stored, so it can't drift from the current quantity.
type StockStatus string

const (
	StockStatusCritical  StockStatus = "critical"
	StockStatusLow       StockStatus = "low"
	StockStatusOptimal   StockStatus = "optimal"
	StockStatusOverstock StockStatus = "overstock"
)

// StockStatusFor maps quantity against the min/max thresholds.
// Rule order matters: critical and low are checked before overstock, so a
// row with quantity at or below minStockLevel is never reported overstock
// even when the thresholds overlap.
func StockStatusFor(quantity, minStockLevel, maxStockLevel int) StockStatus {
	switch {
	case quantity <= minStockLevel:
		if quantity == 0 {
			return StockStatusCritical
		}
		return StockStatusLow
	case quantity >= maxStockLevel:
		return StockStatusOverstock
	default:
		return StockStatusOptimal
	}
}
