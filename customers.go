// Package customers provides a self-validating customer record for CRM-style
// systems. A record carries an identifier, a name, an address, a phone number,
// and a contact person, and can only exist in a valid state: every
// construction path and every setter runs the full set of field rules first.
//
// Example usage:
//
//	c, err := customers.NewCustomer(42, "Acme Ltd", "10 Main Street", "8 (495) 123-45-67", "Ivan Ivanov")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c) // Customer: ID=42, Name='Acme Ltd', Phone='8 (495) 123-45-67', Contact='Ivan Ivanov'
package customers

import (
	"customers/internal/core/domain/model/customer"
	"customers/internal/pkg/errs"
)

// Customer is a validated customer record. The zero value is not usable;
// records are built via NewCustomer, NewCustomerFromJSON, NewCustomerFromMap
// or NewCustomerFromParams.
type Customer = customer.Customer

// Param assigns one named field when constructing a Customer via
// NewCustomerFromParams.
type Param = customer.Param

// Error kinds reported by the construction paths and setters. Match them
// with errors.As, or with errors.Is against the Err* sentinels below.
type (
	// ValueIsRequiredError reports an empty or all-whitespace field.
	ValueIsRequiredError = errs.ValueIsRequiredError
	// ValueIsOutOfRangeError reports a numeric field outside its allowed range.
	ValueIsOutOfRangeError = errs.ValueIsOutOfRangeError
	// ValueIsTooShortError reports a field below its minimum length.
	ValueIsTooShortError = errs.ValueIsTooShortError
	// ValueIsWrongTypeError reports a mapping value of the wrong type.
	ValueIsWrongTypeError = errs.ValueIsWrongTypeError
	// ValueHasInvalidFormatError reports a field that does not match its format.
	ValueHasInvalidFormatError = errs.ValueHasInvalidFormatError
	// NameIsMalformedError reports a personal name without enough parts.
	NameIsMalformedError = errs.NameIsMalformedError
	// RequiredFieldsAreMissingError reports mapping keys that were not supplied.
	RequiredFieldsAreMissingError = errs.RequiredFieldsAreMissingError
	// EncodingIsMalformedError reports input that could not be decoded.
	EncodingIsMalformedError = errs.EncodingIsMalformedError
	// ArgumentIsInvalidError reports an unusable argument such as a nil mapping.
	ArgumentIsInvalidError = errs.ArgumentIsInvalidError
)

// NewCustomer creates a Customer from positional field values.
// All field rules are checked; failures for several fields are reported
// together in one error.
func NewCustomer(customerID int64, name, address, phone, contactPerson string) (Customer, error) {
	return customer.NewCustomer(customerID, name, address, phone, contactPerson)
}

// MustNewCustomer is like NewCustomer but panics when the values do not form
// a valid record. Intended for fixtures and compiled-in data.
func MustNewCustomer(customerID int64, name, address, phone, contactPerson string) Customer {
	return customer.MustNewCustomer(customerID, name, address, phone, contactPerson)
}

// NewCustomerFromJSON creates a Customer from a JSON object carrying the
// customer_id, name, address, phone and contact_person keys. Malformed input
// fails with EncodingIsMalformedError.
func NewCustomerFromJSON(data []byte) (Customer, error) {
	return customer.NewCustomerFromJSON(data)
}

// NewCustomerFromMap creates a Customer from a mapping keyed by the Field*
// constants. Absent keys fail together with RequiredFieldsAreMissingError;
// values of the wrong type fail with ValueIsWrongTypeError.
func NewCustomerFromMap(fields map[string]any) (Customer, error) {
	return customer.NewCustomerFromMap(fields)
}

// NewCustomerFromParams creates a Customer from named parameters. Every field
// must be supplied via its With* option.
func NewCustomerFromParams(params ...Param) (Customer, error) {
	return customer.NewCustomerFromParams(params...)
}

// WithCustomerID carries the customer_id field.
func WithCustomerID(customerID int64) Param { return customer.WithCustomerID(customerID) }

// WithName carries the name field.
func WithName(name string) Param { return customer.WithName(name) }

// WithAddress carries the address field.
func WithAddress(address string) Param { return customer.WithAddress(address) }

// WithPhone carries the phone field.
func WithPhone(phone string) Param { return customer.WithPhone(phone) }

// WithContactPerson carries the contact_person field.
func WithContactPerson(contactPerson string) Param { return customer.WithContactPerson(contactPerson) }

// Canonical field keys for the mapping and JSON construction paths.
const (
	FieldCustomerID    = customer.FieldCustomerID
	FieldName          = customer.FieldName
	FieldAddress       = customer.FieldAddress
	FieldPhone         = customer.FieldPhone
	FieldContactPerson = customer.FieldContactPerson
)

// Field rule bounds.
const (
	CustomerIDMin          = customer.CustomerIDMin
	NameMinLength          = customer.NameMinLength
	AddressMinLength       = customer.AddressMinLength
	ContactPersonMinLength = customer.ContactPersonMinLength
	ContactPersonMinParts  = customer.ContactPersonMinParts
	PhoneMinDigits         = customer.PhoneMinDigits
)

// Errors returned by record operations.
var (
	// ErrCustomerIsNotConstructed is returned when a zero-value Customer is used.
	ErrCustomerIsNotConstructed = customer.ErrCustomerIsNotConstructed
	// ErrMappingIsRequired is returned by NewCustomerFromMap for a nil mapping.
	ErrMappingIsRequired = customer.ErrMappingIsRequired
	// ErrParamIsRequired is returned by NewCustomerFromParams for a nil param.
	ErrParamIsRequired = customer.ErrParamIsRequired
)

// Sentinels for the error kinds; use errors.Is to detect a kind regardless
// of the field that triggered it.
var (
	ErrValueIsRequired          = errs.ErrValueIsRequired
	ErrValueIsOutOfRange        = errs.ErrValueIsOutOfRange
	ErrValueIsTooShort          = errs.ErrValueIsTooShort
	ErrValueIsWrongType         = errs.ErrValueIsWrongType
	ErrValueHasInvalidFormat    = errs.ErrValueHasInvalidFormat
	ErrNameIsMalformed          = errs.ErrNameIsMalformed
	ErrRequiredFieldsAreMissing = errs.ErrRequiredFieldsAreMissing
	ErrEncodingIsMalformed      = errs.ErrEncodingIsMalformed
	ErrArgumentIsInvalid        = errs.ErrArgumentIsInvalid
)
