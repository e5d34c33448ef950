package cart

import (
	"fmt"

	"booking/internal/core/domain/model/kernel"
)

// highQuantityWarningThreshold is the per-item quantity above which checkout
// validation emits a warning. Large quantities are legal but unusual enough
// to surface.
const highQuantityWarningThreshold = 100

// Summary is the derived monetary breakdown of a cart. It is computed fresh
// on every call and never cached across mutations.
type Summary struct {
	TotalItems   int
	Subtotal     kernel.Price
	OptionsTotal kernel.Price
	TotalAmount  kernel.Price
	Currency     kernel.Currency
}

// Statistics describes the cart's contents for display and analytics.
// All values are zero-valued defaults when the cart is empty; no statistic
// ever divides by zero.
type Statistics struct {
	ItemCount          int
	UniqueProductCount int
	TotalValue         kernel.Price
	AverageItemPrice   kernel.Price
	MostExpensiveItem  *Item
	LeastExpensiveItem *Item
}

// Summary computes the cart's totals: the item-quantity sum, the subtotal of
// unit prices, the options surcharge total and the combined amount.
func (c *Cart) Summary() (Summary, error) {
	if err := c.Validate(); err != nil {
		return Summary{}, err
	}

	subtotal, err := kernel.NewPrice(0, c.currency)
	if err != nil {
		return Summary{}, err
	}
	optionsTotal := subtotal

	totalItems := 0
	for _, item := range c.items {
		totalItems += item.Quantity()

		itemSubtotal, itemErr := item.UnitPrice().MultiplyBy(float64(item.Quantity()))
		if itemErr != nil {
			return Summary{}, itemErr
		}
		subtotal, itemErr = subtotal.Add(itemSubtotal)
		if itemErr != nil {
			return Summary{}, itemErr
		}

		perUnitOptions, itemErr := item.OptionsPricePerUnit()
		if itemErr != nil {
			return Summary{}, itemErr
		}
		itemOptions, itemErr := perUnitOptions.MultiplyBy(float64(item.Quantity()))
		if itemErr != nil {
			return Summary{}, itemErr
		}
		optionsTotal, itemErr = optionsTotal.Add(itemOptions)
		if itemErr != nil {
			return Summary{}, itemErr
		}
	}

	totalAmount, err := subtotal.Add(optionsTotal)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalItems:   totalItems,
		Subtotal:     subtotal,
		OptionsTotal: optionsTotal,
		TotalAmount:  totalAmount,
		Currency:     c.currency,
	}, nil
}

// ValidateForCheckout runs the business rules that decide whether the cart
// can be converted into an order.
//
// Errors (block checkout): empty cart, expired cart, an item with a
// non-positive quantity or a zero price, mixed currencies among items.
// Warnings (informational only): guest cart, unusually high quantity on a
// single item.
func (c *Cart) ValidateForCheckout() kernel.ValidationResult {
	var checkoutErrors, warnings []string

	if err := c.Validate(); err != nil {
		return kernel.NewValidationResult([]string{err.Error()}, nil)
	}

	if c.IsEmpty() {
		checkoutErrors = append(checkoutErrors, "Cart is empty")
	}

	if c.IsExpired() {
		checkoutErrors = append(checkoutErrors, "Cart is expired")
	}

	for _, item := range c.items {
		if item.Quantity() <= 0 {
			checkoutErrors = append(checkoutErrors,
				fmt.Sprintf("Item %q has invalid quantity", item.ProductTitle()))
		}

		if item.UnitPrice().IsZero() {
			checkoutErrors = append(checkoutErrors,
				fmt.Sprintf("Item %q has no price", item.ProductTitle()))
		}

		if !item.UnitPrice().Currency().IsEqual(c.currency) {
			checkoutErrors = append(checkoutErrors,
				fmt.Sprintf("Item %q is priced in %s but the cart uses %s",
					item.ProductTitle(), item.UnitPrice().Currency(), c.currency))
		}

		if item.Quantity() > highQuantityWarningThreshold {
			warnings = append(warnings,
				fmt.Sprintf("Item %q has an unusually high quantity (%d)",
					item.ProductTitle(), item.Quantity()))
		}
	}

	if c.IsGuest() {
		warnings = append(warnings, "Cart belongs to a guest session")
	}

	return kernel.NewValidationResult(checkoutErrors, warnings)
}

// CanBeConvertedToOrder reports whether checkout may proceed.
func (c *Cart) CanBeConvertedToOrder() bool {
	return c.ValidateForCheckout().IsValid && !c.IsExpired()
}

// Statistics computes content statistics for the cart.
// An empty cart yields zero prices in the cart's currency and nil
// most/least expensive items.
func (c *Cart) Statistics() (Statistics, error) {
	if err := c.Validate(); err != nil {
		return Statistics{}, err
	}

	zero, err := kernel.NewPrice(0, c.currency)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		TotalValue:       zero,
		AverageItemPrice: zero,
	}

	if c.IsEmpty() {
		return stats, nil
	}

	uniqueProducts := make(map[kernel.UUID]struct{}, len(c.items))
	var mostExpensive, leastExpensive Item

	for idx, item := range c.items {
		stats.ItemCount += item.Quantity()
		uniqueProducts[item.ProductID()] = struct{}{}

		itemTotal, itemErr := item.TotalPrice()
		if itemErr != nil {
			return Statistics{}, itemErr
		}
		stats.TotalValue, itemErr = stats.TotalValue.Add(itemTotal)
		if itemErr != nil {
			return Statistics{}, itemErr
		}

		if idx == 0 || item.UnitPrice().Amount() > mostExpensive.UnitPrice().Amount() {
			mostExpensive = item
		}
		if idx == 0 || item.UnitPrice().Amount() < leastExpensive.UnitPrice().Amount() {
			leastExpensive = item
		}
	}

	stats.UniqueProductCount = len(uniqueProducts)
	stats.AverageItemPrice, err = stats.TotalValue.MultiplyBy(1 / float64(stats.ItemCount))
	if err != nil {
		return Statistics{}, err
	}
	stats.MostExpensiveItem = &mostExpensive
	stats.LeastExpensiveItem = &leastExpensive

	return stats, nil
}
