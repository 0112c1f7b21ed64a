// Package entity contains the core business objects of the project.
package entity

// Currency is the display currency chosen by an owner.
type Currency string

const (
	// CurrencyUSD is the US dollar.
	CurrencyUSD Currency = "usd"
	// CurrencyEUR is the euro.
	CurrencyEUR Currency = "eur"
	// CurrencyGBP is the pound sterling.
	CurrencyGBP Currency = "gbp"
)

// String returns the string representation of the Currency.
func (c Currency) String() string {
	return string(c)
}

// IsValid checks if the Currency is a supported value.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	default:
		return false
	}
}

// Symbol returns the prefix used when rendering amounts. Unknown currencies render as pounds.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	default:
		return "£"
	}
}
