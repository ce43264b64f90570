package cart

// LineTotal computes the price of one cart line: the product base price plus
// the sum of the selected option price deltas, multiplied by quantity.
// Inputs are pre-validated by the store; the function itself is pure.
func LineTotal(basePrice float64, optionPrices []float64, quantity int) float64 {
	unit := basePrice
	for _, price := range optionPrices {
		unit += price
	}
	return unit * float64(quantity)
}
