package customer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"customers/internal/pkg/errs"
)

// Causes attached to format and name errors.
var (
	errPhoneMustContainOnlyDigits = errors.New("only digits are allowed besides spaces, parentheses, and hyphens")
	errFirstAndLastNameRequired   = errors.New("first and last name are required")
)

// phoneCleaner strips the separator characters a phone number may carry.
var phoneCleaner = strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")

// validateCustomerID checks that a customer identifier is strictly positive.
func validateCustomerID(customerID int64) error {
	if customerID < CustomerIDMin {
		return errs.NewValueIsOutOfRangeError(FieldCustomerID, customerID, CustomerIDMin, nil)
	}
	return nil
}

// validateStringField checks that value is neither empty nor shorter than
// minLength after trimming. Lengths are counted in runes, so non-ASCII names
// and addresses measure the way a reader would count them.
func validateStringField(value, paramName string, minLength int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if utf8.RuneCountInString(trimmed) < minLength {
		return errs.NewValueIsTooShortError(paramName, trimmed, minLength)
	}
	return nil
}

// validatePhone checks that a phone number carries only digits besides the
// allowed separators, and at least PhoneMinDigits digits. An empty or
// all-separator value fails the format check, not the emptiness check.
// The check runs on the cleaned form; the record stores the original.
func validatePhone(phone string) error {
	cleaned := cleanPhone(phone)
	if !isAllDigits(cleaned) {
		return errs.NewValueHasInvalidFormatErrorWithCause(FieldPhone, errPhoneMustContainOnlyDigits)
	}
	if len(cleaned) < PhoneMinDigits {
		return errs.NewValueIsTooShortError(FieldPhone, cleaned, PhoneMinDigits)
	}
	return nil
}

// validateContactPerson checks the generic string rules and additionally
// requires at least ContactPersonMinParts whitespace-separated name parts.
func validateContactPerson(contactPerson string) error {
	if err := validateStringField(contactPerson, FieldContactPerson, ContactPersonMinLength); err != nil {
		return err
	}
	if len(strings.Fields(contactPerson)) < ContactPersonMinParts {
		return errs.NewNameIsMalformedErrorWithCause(FieldContactPerson, errFirstAndLastNameRequired)
	}
	return nil
}

// cleanPhone strips spaces, parentheses, and hyphens from a phone number.
func cleanPhone(phone string) string {
	return phoneCleaner.Replace(phone)
}

// isAllDigits reports whether s is non-empty and contains ASCII digits only.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
