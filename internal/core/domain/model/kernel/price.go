package kernel

import (
	"errors"
	"fmt"
	"math"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// priceEqualityTolerance absorbs floating-point rounding noise when comparing amounts.
const priceEqualityTolerance = 1e-6

// Domain errors for price arithmetic.
var (
	// ErrPriceIsNotConstructed is returned when attempting to use an improperly
	// initialized Price. Prices must be created via NewPrice.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
		"price must be created via NewPrice constructor")
	// ErrCurrencyMismatch is returned when an arithmetic operation is attempted
	// on prices with different currencies.
	ErrCurrencyMismatch = errors.New("price currencies do not match")
	// ErrNegativeResult is returned when a subtraction would produce a negative
	// amount. Negative balances are not representable.
	ErrNegativeResult = errors.New("price subtraction result is negative")
)

// Price is an immutable value object representing a monetary amount bound to
// a Currency. The amount is always non-negative, finite, and rounded to the
// currency's declared decimal precision.
//
// All arithmetic is currency-safe: operations on prices with different
// currencies fail with ErrCurrencyMismatch, except ConvertTo which performs
// an explicit table-driven conversion.
//
// The zero value of Price is invalid and will fail validation - use NewPrice
// to create instances.
//
// Example:
//
//	usd, _ := kernel.CurrencyFromCode(kernel.USD)
//	price, err := kernel.NewPrice(49.99, usd)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: $49.99
type Price struct { //nolint:recvcheck //using for validation
	amount   float64
	currency Currency
	guard    guard.ConstructorGuard
}

// NewPrice creates a Price with the given amount and currency.
// The amount must be non-negative and finite; it is rounded to the currency's
// decimal precision before being stored, so a price can never carry more
// fractional digits than its currency allows.
//
// Returns an error if the amount is negative, NaN, infinite, or if the
// currency is invalid.
//
// Example:
//
//	usd, _ := kernel.CurrencyFromCode(kernel.USD)
//	price, err := kernel.NewPrice(50.00, usd)
//	if err != nil {
//	    log.Fatal("Invalid price:", err)
//	}
func NewPrice(amount float64, currency Currency) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(price.setCurrency(currency), price.setAmount(amount)); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Validate checks if the Price was properly constructed via NewPrice.
// The zero value of Price is invalid and will fail this validation.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the monetary amount. It is guaranteed to be non-negative,
// finite, and rounded to the currency's decimal precision for properly
// constructed Price instances.
func (p Price) Amount() float64 {
	return p.amount
}

// Currency returns the currency the amount is denominated in.
func (p Price) Currency() Currency {
	return p.currency
}

// IsZero reports whether the price amount is zero (within rounding tolerance).
func (p Price) IsZero() bool {
	return math.Abs(p.amount) < priceEqualityTolerance
}

// Add returns a new Price whose amount is the sum of both operands.
// Fails with ErrCurrencyMismatch if the operand currencies differ.
//
// Example:
//
//	total, err := subtotal.Add(tax)
//	if err != nil {
//	    // Currencies differ
//	}
func (p Price) Add(other Price) (Price, error) {
	if err := p.validatePair(other); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount+other.amount, p.currency)
}

// Subtract returns a new Price whose amount is the difference of both operands.
// Fails with ErrCurrencyMismatch if the operand currencies differ, and with
// ErrNegativeResult if the result would be negative.
func (p Price) Subtract(other Price) (Price, error) {
	if err := p.validatePair(other); err != nil {
		return Price{}, err
	}

	result := p.amount - other.amount
	if result < -priceEqualityTolerance {
		return Price{}, fmt.Errorf("%w: %.2f - %.2f", ErrNegativeResult, p.amount, other.amount)
	}
	if result < 0 {
		result = 0
	}

	return NewPrice(result, p.currency)
}

// MultiplyBy returns a new Price scaled by the given factor.
// The factor must be non-negative; quantities and option multipliers are
// never negative in the booking domain.
func (p Price) MultiplyBy(factor float64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%v is not a valid multiplier", factor),
		)
	}

	return NewPrice(p.amount*factor, p.currency)
}

// ApplyDiscount returns a new Price reduced by the given percentage.
// The percentage must be within [0, 100].
//
// Example:
//
//	discounted, err := price.ApplyDiscount(25) // 25% off
func (p Price) ApplyDiscount(percent float64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	if percent < 0 || percent > 100 || math.IsNaN(percent) {
		return Price{}, errs.NewValueIsOutOfRangeError("discount percent", percent, 0, 100)
	}

	return NewPrice(p.amount*(1-percent/100), p.currency)
}

// ApplyMarkup returns a new Price increased by the given percentage.
// The percentage must be non-negative.
func (p Price) ApplyMarkup(percent float64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	if percent < 0 || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"markup percent",
			fmt.Errorf("%v is not a valid markup", percent),
		)
	}

	return NewPrice(p.amount*(1+percent/100), p.currency)
}

// ConvertTo returns the price expressed in the target currency.
// If the target currency equals the current one, the price is returned
// unchanged. Otherwise the static conversion table is consulted; the result
// is rounded to the target currency's decimal precision.
//
// Conversion rates are static, best-effort values - see getConversionRates.
func (p Price) ConvertTo(target Currency) (Price, error) {
	if err := errors.Join(p.Validate(), target.Validate()); err != nil {
		return Price{}, err
	}

	if p.currency.IsEqual(target) {
		return p, nil
	}

	rate, err := conversionRate(p.currency.Code(), target.Code())
	if err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount*rate, target)
}

// IsEqual compares two prices. Prices are equal iff their currencies match
// and their amounts differ by less than the rounding tolerance.
func (p Price) IsEqual(other Price) bool {
	return p.currency.IsEqual(other.currency) &&
		math.Abs(p.amount-other.amount) < priceEqualityTolerance
}

// String returns a human-readable representation using the currency symbol
// and decimal precision, e.g. "$49.99" or "﷼42000".
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return fmt.Sprintf("%s%.*f", p.currency.Symbol(), p.currency.DecimalPlaces(), p.amount)
}

// validatePair ensures both operands are constructed and share a currency.
func (p Price) validatePair(other Price) error {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return err
	}

	if !p.currency.IsEqual(other.currency) {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, p.currency, other.currency)
	}

	return nil
}

// setCurrency validates and sets the price's currency.
// This is a private method used only during construction.
func (p *Price) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	p.currency = currency
	return nil
}

// setAmount validates, rounds and sets the price's amount.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (p *Price) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not a finite number", amount),
		)
	}

	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is negative", amount),
		)
	}

	// Currency may not be set when amount validation fails first in errors.Join;
	// fall back to no rounding in that case, construction fails anyway.
	factor := math.Pow(10, float64(p.currency.DecimalPlaces()))
	if factor > 0 {
		amount = math.Round(amount*factor) / factor
	}

	p.amount = amount
	return nil
}
