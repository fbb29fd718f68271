package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a read-only catalog record.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"` // ISO 4217 code
	ImageURL    string          `json:"image_url"`
	Stats       []Stat          `json:"stats,omitempty"`
	Related     bool            `json:"related"` // shown in the related strip only, not purchasable
}

// Stat is one highlighted figure on the products page, e.g. "Accuracy: 99.9%".
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (p Product) DisplayPrice() string {
	return FormatPrice(p.Price, p.Currency)
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatPrice renders an amount for display: "$299" for whole amounts,
// "$19.50" otherwise. Unknown currencies are prefixed with their code.
func FormatPrice(amount decimal.Decimal, currency string) string {
	var digits string
	if amount.IsInteger() {
		digits = amount.StringFixed(0)
	} else {
		digits = amount.StringFixed(2)
	}

	code := strings.ToUpper(currency)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + digits
	}
	if code == "" {
		return sign + digits
	}
	return sign + code + " " + digits
}
