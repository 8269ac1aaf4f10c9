package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount guarda um valor monetário de configuração como texto decimal.
// Aceita tanto número quanto string no JSON, sem passar por float64.
type Amount string

// UnmarshalJSON usa o token bruto: 100.00 e "100.00" resultam no mesmo texto.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%w: invalid amount %s", ErrInvalidInput, raw)
		}
		raw = unquoted
	}
	*a = Amount(strings.TrimSpace(raw))
	return nil
}

// Decimal converte o texto para decimal.Decimal.
func (a Amount) Decimal() (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", ErrInvalidInput, string(a))
	}
	return value, nil
}
