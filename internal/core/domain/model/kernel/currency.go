package kernel

import (
	"fmt"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// CurrencyCode identifies a supported currency. The set of codes is closed:
// only the constants declared in this package are valid.
type CurrencyCode string

const (
	// USD is the United States dollar.
	USD CurrencyCode = "USD"
	// EUR is the euro.
	EUR CurrencyCode = "EUR"
	// TRY is the Turkish lira.
	TRY CurrencyCode = "TRY"
	// IRR is the Iranian rial.
	IRR CurrencyCode = "IRR"
)

// ErrCurrencyIsNotConstructed is returned when attempting to use an improperly
// initialized Currency. Currencies must be created via CurrencyFromCode.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError(
	"currency must be created via CurrencyFromCode constructor")

// Currency is an immutable value object describing a supported currency:
// its ISO code, display name, symbol, locale tag and decimal precision.
// Two currencies are equal iff their codes match.
//
// The zero value of Currency is invalid and will fail validation - use
// CurrencyFromCode to create instances.
//
// Example:
//
//	usd, err := kernel.CurrencyFromCode(kernel.USD)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(usd.Symbol()) // Output: $
type Currency struct {
	code          CurrencyCode
	name          string
	symbol        string
	locale        string
	decimalPlaces int
	guard         guard.ConstructorGuard
}

// getCurrencies returns the definitions of all supported currencies keyed by code.
// This is the single source of truth for the closed currency set.
func getCurrencies() map[CurrencyCode]Currency {
	return map[CurrencyCode]Currency{
		USD: {code: USD, name: "US Dollar", symbol: "$", locale: "en-US", decimalPlaces: 2,
			guard: guard.NewConstructorGuard()},
		EUR: {code: EUR, name: "Euro", symbol: "€", locale: "de-DE", decimalPlaces: 2,
			guard: guard.NewConstructorGuard()},
		TRY: {code: TRY, name: "Turkish Lira", symbol: "₺", locale: "tr-TR", decimalPlaces: 2,
			guard: guard.NewConstructorGuard()},
		IRR: {code: IRR, name: "Iranian Rial", symbol: "﷼", locale: "fa-IR", decimalPlaces: 0,
			guard: guard.NewConstructorGuard()},
	}
}

// getConversionRates returns the static currency conversion table used by
// Price.ConvertTo. Rates express how many units of the target currency one
// unit of the source currency buys.
//
// The table is intentionally static: conversion is a best-effort convenience,
// not a live market feed.
func getConversionRates() map[CurrencyCode]map[CurrencyCode]float64 {
	return map[CurrencyCode]map[CurrencyCode]float64{
		USD: {EUR: 0.92, TRY: 34.20, IRR: 42000},
		EUR: {USD: 1.09, TRY: 37.15, IRR: 45600},
		TRY: {USD: 0.029, EUR: 0.027, IRR: 1228},
		IRR: {USD: 0.0000238, EUR: 0.0000219, TRY: 0.000814},
	}
}

// CurrencyFromCode creates a Currency from its code.
// Returns an error if the code is not part of the supported set.
//
// Example:
//
//	eur, err := kernel.CurrencyFromCode(kernel.EUR)
//	if err != nil {
//	    return fmt.Errorf("unsupported currency: %w", err)
//	}
func CurrencyFromCode(code CurrencyCode) (Currency, error) {
	currency, ok := getCurrencies()[code]
	if !ok {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause(
			"currency code",
			fmt.Errorf("%q is not a supported currency", code),
		)
	}
	return currency, nil
}

// Validate checks if the Currency was properly constructed via CurrencyFromCode.
// The zero value of Currency is invalid and will fail this validation.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the currency's ISO code.
func (c Currency) Code() CurrencyCode {
	return c.code
}

// Name returns the currency's human-readable display name.
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the currency's display symbol, e.g. "$" for USD.
func (c Currency) Symbol() string {
	return c.symbol
}

// Locale returns the BCP 47 locale tag used to format amounts in this currency.
func (c Currency) Locale() string {
	return c.locale
}

// DecimalPlaces returns the number of fractional digits the currency allows.
// IRR has no fractional unit and returns 0; the others return 2.
func (c Currency) DecimalPlaces() int {
	return c.decimalPlaces
}

// IsEqual compares two currencies. Currencies are equal iff their codes match.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// String returns the currency code as a string.
// This method implements the fmt.Stringer interface.
func (c Currency) String() string {
	return string(c.code)
}

// conversionRate looks up the static conversion rate between two currencies.
// Returns an error if no rate is published for the pair.
func conversionRate(from, to CurrencyCode) (float64, error) {
	rates, ok := getConversionRates()[from]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"conversion rate",
			fmt.Errorf("no rates published for %s", from),
		)
	}

	rate, ok := rates[to]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"conversion rate",
			fmt.Errorf("no rate published for %s to %s", from, to),
		)
	}

	return rate, nil
}
