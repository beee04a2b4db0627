package service

import (
	"fmt"
	"strings"

	"github.com/tripweaver/backend/internal/domain"
)

// normalizeCurrency uppercases an ISO-4217 currency code and rejects anything
// that is not exactly three ASCII letters ("usd" → "USD"; "US" and "USDT"
// both fail). Validation happens here, at the input boundary, so the store
// only ever sees well-formed codes.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency_code must be a 3-letter ISO-4217 code", domain.ErrValidation)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency_code must be a 3-letter ISO-4217 code", domain.ErrValidation)
		}
	}
	return code, nil
}
