// Package validators normalizes user-supplied order fields before they are
// sent to the API. Every function is pure: it returns the normalized value
// or a validation *pkg.APIError and never touches its input.
package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tapsilat/tapsilat-go/pkg"
)

const (
	MinInstallment = 1
	MaxInstallment = 12
)

// DefaultInstallments is returned when no installment restriction is given.
func DefaultInstallments() []int {
	return []int{MinInstallment}
}

// ValidateInstallments parses a comma-separated installment list such as "1, 2, 3".
//
// Order and duplicates are preserved. Every segment must be an integer in
// [MinInstallment, MaxInstallment]; format errors are reported before range errors.
func ValidateInstallments(installments string) ([]int, error) {
	if installments == "" {
		return DefaultInstallments(), nil
	}

	parts := strings.Split(installments, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, pkg.NewValidationError("Enabled installments must be comma-separated integers (e.g., 1,2,3 or 2,4,6)")
		}
		values = append(values, n)
	}

	for _, n := range values {
		if n < MinInstallment || n > MaxInstallment {
			return nil, pkg.NewValidationError(fmt.Sprintf(
				"Installment value '%d' is invalid. All installment values must be between %d and %d (inclusive).",
				n, MinInstallment, MaxInstallment,
			))
		}
	}
	return values, nil
}

// JoinInstallments renders installments in the comma form ValidateInstallments accepts.
func JoinInstallments(installments []int) string {
	parts := make([]string, len(installments))
	for i, n := range installments {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

var gsmFormatting = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidateGSMNumber strips formatting from a phone number and checks it.
//
// Accepted forms and their minimum cleaned length:
//
//	+905551234567   international  8
//	00905551234567  international  9 (00 prefix)
//	05551234567     national       7
//	5551234567      local          6
//
// An empty number is returned unchanged.
func ValidateGSMNumber(phone string) (string, error) {
	if phone == "" {
		return phone, nil
	}

	clean := gsmFormatting.Replace(phone)

	significant := strings.NewReplacer("+", "", "0", "").Replace(clean)
	if !isDigits(significant) {
		return "", pkg.NewValidationError("Invalid phone number format: " + phone)
	}

	switch {
	case strings.HasPrefix(clean, "+"):
		if len(clean) < 8 {
			return "", pkg.NewValidationError("International phone number too short: " + phone)
		}
	case strings.HasPrefix(clean, "00"):
		if len(clean) < 9 {
			return "", pkg.NewValidationError("International phone number (00 format) too short: " + phone)
		}
	case strings.HasPrefix(clean, "0"):
		if len(clean) < 7 {
			return "", pkg.NewValidationError("National phone number too short: " + phone)
		}
	default:
		if len(clean) < 6 {
			return "", pkg.NewValidationError("Local phone number too short: " + phone)
		}
	}

	return clean, nil
}

// isDigits is false for the empty string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
