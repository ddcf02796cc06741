package validation

import (
	// Go Internal Packages
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"
)

const (
	cardNumberLength = 16
	cvcLength        = 3
)

var expirationPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// IsRequired rejects an empty value.
func IsRequired(val string) error {
	if val == "" {
		return errors.FieldErr("This field is required")
	}
	return nil
}

// IsValidCardNumber checks for 16 digits once whitespace is removed. It does
// not run a Luhn check.
func IsValidCardNumber(val string) error {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, val)
	if len(stripped) != cardNumberLength {
		return errors.FieldErr("Please enter a valid 16-digit card number")
	}
	return nil
}

// IsValidExpirationDate checks the MM/YY format and that the card has not
// expired as of now.
func IsValidExpirationDate(val string, now time.Time) error {
	if !expirationPattern.MatchString(val) {
		return errors.FieldErr("Please use the MM/YY format")
	}

	month, _ := strconv.Atoi(val[:2])
	year, _ := strconv.Atoi(val[3:])
	if month < 1 || month > 12 {
		return errors.FieldErr("Invalid month")
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return errors.FieldErr("The card has expired")
	}
	return nil
}

// IsValidCvc checks for a 3 character CVC.
func IsValidCvc(val string) error {
	if len(val) != cvcLength {
		return errors.FieldErr("Please enter a 3-digit CVC")
	}
	return nil
}

// IsValidAmountInput checks a raw amount entry: digits only, at most maxDigits.
func IsValidAmountInput(raw string, maxDigits int) error {
	if raw == "" {
		return errors.FieldErr("This field is required")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return errors.FieldErr("Amount must contain digits only")
		}
	}
	if maxDigits > 0 && len(raw) > maxDigits {
		return errors.FieldErr("Amount must be at most " + strconv.Itoa(maxDigits) + " digits")
	}
	return nil
}

// IsAboveMinimumTotal rejects totals below the smallest chargeable amount.
func IsAboveMinimumTotal(total models.Money, minimumCents int64) error {
	if total.LessThan(models.Cents(minimumCents)) {
		return errors.FieldErr("Total must be at least " + strconv.FormatInt(minimumCents, 10) + " cents")
	}
	return nil
}
