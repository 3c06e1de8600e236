package customer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"customers/internal/pkg/errs"
)

// Canonical field keys for the mapping, JSON, and named-params construction
// paths. Missing keys are reported in this order.
const (
	FieldCustomerID    = "customer_id"
	FieldName          = "name"
	FieldAddress       = "address"
	FieldPhone         = "phone"
	FieldContactPerson = "contact_person"
)

// requiredFields lists every key a mapping must carry, in reporting order.
var requiredFields = []string{FieldCustomerID, FieldName, FieldAddress, FieldPhone, FieldContactPerson}

// Argument errors for degenerate construction inputs.
var (
	// ErrMappingIsRequired is returned when NewCustomerFromMap receives a nil mapping.
	ErrMappingIsRequired = errs.NewArgumentIsInvalidErrorWithCause("fields", errors.New("mapping must not be nil"))
	// ErrParamIsRequired is returned when NewCustomerFromParams receives a nil param.
	ErrParamIsRequired = errs.NewArgumentIsInvalidErrorWithCause("params", errors.New("param must not be nil"))
)

// encodingParamName names the decoded input in encoding errors.
const encodingParamName = "customer"

// Causes attached to encoding errors beyond decoder failures.
var (
	errTopLevelValueIsNotAnObject = errors.New("top-level value must be an object")
	errUnexpectedTrailingData     = errors.New("unexpected data after top-level value")
)

// Expected type names used in wrong-type errors.
const (
	expectedTypeInteger = "integer"
	expectedTypeString  = "string"
)

// Causes attached to wrong-type errors for numeric values.
var (
	errNumberIsNotAnInteger = errors.New("number is not an integer")
	errNumberOverflowsInt64 = errors.New("number overflows int64")
)

// NewCustomerFromJSON creates a Customer from a JSON object carrying the five
// required keys.
//
// The decoder keeps numbers as json.Number so large identifiers survive with
// full fidelity. Input that is not well-formed JSON, carries data after the
// top-level value, or whose top-level value is not an object (an array, a
// number, a string, a bool, or null) fails with the FormatError kind
// (errs.ErrEncodingIsMalformed). A well-formed object is handed to
// NewCustomerFromMap, so missing keys, wrong value types, and field rules
// report the same errors on every construction path.
//
// Parameters:
//   - data: JSON text, e.g. {"customer_id": 7, "name": "Acme Ltd", ...}
//
// Returns:
//   - Customer: A fully validated record
//   - error: The FormatError kind for malformed input, otherwise whatever
//     NewCustomerFromMap reports
//
// Example:
//
//	customer, err := NewCustomerFromJSON([]byte(`{
//	    "customer_id": 42,
//	    "name": "Acme Ltd",
//	    "address": "10 Main Street",
//	    "phone": "8 (495) 123-45-67",
//	    "contact_person": "Ivan Ivanov"
//	}`))
func NewCustomerFromJSON(data []byte) (Customer, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return Customer{}, errs.NewEncodingIsMalformedErrorWithCause(encodingParamName, err)
	}
	if err := decoder.Decode(new(any)); !errors.Is(err, io.EOF) {
		return Customer{}, errs.NewEncodingIsMalformedErrorWithCause(encodingParamName, errUnexpectedTrailingData)
	}
	if fields == nil {
		// JSON null decodes into a nil map without a decoder error.
		return Customer{}, errs.NewEncodingIsMalformedErrorWithCause(encodingParamName, errTopLevelValueIsNotAnObject)
	}

	return NewCustomerFromMap(fields)
}

// NewCustomerFromMap creates a Customer from a mapping carrying the five
// required keys.
//
// All five keys are checked first; absent keys fail together with the
// MissingFieldError kind (errs.ErrRequiredFieldsAreMissing) naming every
// missing key in canonical order. Present values are then coerced to their
// field types -- wrong-type failures for all fields are aggregated -- and the
// coerced values go through NewCustomer for validation proper.
//
// The identifier accepts any Go integer kind, an integer-valued json.Number,
// or an integral float64 (what encoding/json hands callers who decode without
// UseNumber). Fractional numbers, booleans, nil, and anything non-numeric fail
// with the TypeError kind (errs.ErrValueIsWrongType), as do non-string values
// for the string fields.
//
// Parameters:
//   - fields: Mapping keyed by FieldCustomerID, FieldName, FieldAddress,
//     FieldPhone, FieldContactPerson; must not be nil
//
// Returns:
//   - Customer: A fully validated record
//   - error: ErrMappingIsRequired for a nil mapping, the MissingFieldError
//     kind for absent keys, joined TypeError kinds for bad value types,
//     otherwise whatever NewCustomer reports
func NewCustomerFromMap(fields map[string]any) (Customer, error) {
	if fields == nil {
		return Customer{}, ErrMappingIsRequired
	}

	if missing := missingRequiredFields(fields); len(missing) > 0 {
		return Customer{}, errs.NewRequiredFieldsAreMissingError(missing...)
	}

	customerID, customerIDErr := integerFieldValue(fields, FieldCustomerID)
	name, nameErr := stringFieldValue(fields, FieldName)
	address, addressErr := stringFieldValue(fields, FieldAddress)
	phone, phoneErr := stringFieldValue(fields, FieldPhone)
	contactPerson, contactPersonErr := stringFieldValue(fields, FieldContactPerson)

	if err := errors.Join(customerIDErr, nameErr, addressErr, phoneErr, contactPersonErr); err != nil {
		return Customer{}, err
	}

	return NewCustomer(customerID, name, address, phone, contactPerson)
}

// Param assigns one named field when constructing a Customer via
// NewCustomerFromParams.
type Param func(fields map[string]any)

// WithCustomerID carries the customer_id field.
func WithCustomerID(customerID int64) Param {
	return func(fields map[string]any) { fields[FieldCustomerID] = customerID }
}

// WithName carries the name field.
func WithName(name string) Param {
	return func(fields map[string]any) { fields[FieldName] = name }
}

// WithAddress carries the address field.
func WithAddress(address string) Param {
	return func(fields map[string]any) { fields[FieldAddress] = address }
}

// WithPhone carries the phone field.
func WithPhone(phone string) Param {
	return func(fields map[string]any) { fields[FieldPhone] = phone }
}

// WithContactPerson carries the contact_person field.
func WithContactPerson(contactPerson string) Param {
	return func(fields map[string]any) { fields[FieldContactPerson] = contactPerson }
}

// NewCustomerFromParams creates a Customer from named parameters, one Param
// per field. Every field param must be supplied exactly as in the mapping
// path; omitted fields fail with the MissingFieldError kind. The params are
// statically typed, so wrong-type failures cannot happen on this path.
//
// Parameters:
//   - params: WithCustomerID, WithName, WithAddress, WithPhone,
//     WithContactPerson values in any order; none may be nil
//
// Returns:
//   - Customer: A fully validated record
//   - error: ErrParamIsRequired for a nil param, otherwise whatever
//     NewCustomerFromMap reports
//
// Example:
//
//	customer, err := NewCustomerFromParams(
//	    WithCustomerID(42),
//	    WithName("Acme Ltd"),
//	    WithAddress("10 Main Street"),
//	    WithPhone("8 (495) 123-45-67"),
//	    WithContactPerson("Ivan Ivanov"),
//	)
func NewCustomerFromParams(params ...Param) (Customer, error) {
	fields := make(map[string]any, len(requiredFields))
	for _, param := range params {
		if param == nil {
			return Customer{}, ErrParamIsRequired
		}
		param(fields)
	}

	return NewCustomerFromMap(fields)
}

// missingRequiredFields returns the required keys absent from the mapping,
// in canonical reporting order.
func missingRequiredFields(fields map[string]any) []string {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// stringFieldValue extracts a string value from the mapping.
func stringFieldValue(fields map[string]any, field string) (string, error) {
	value := fields[field]
	s, ok := value.(string)
	if !ok {
		return "", errs.NewValueIsWrongTypeError(field, expectedTypeString, typeName(value))
	}
	return s, nil
}

// int64 range expressed in float64. 2^63 is exactly representable as a
// float64; math.MaxInt64 is not, so the upper comparison is exclusive.
const (
	minIntegerValue = -9223372036854775808.0 // -2^63
	maxIntegerValue = 9223372036854775808.0  // 2^63
)

// integerFieldValue extracts an integer value from the mapping. Mappings
// decoded from JSON carry json.Number (or float64 without UseNumber); mappings
// built in code may carry any Go integer kind.
func integerFieldValue(fields map[string]any, field string) (int64, error) {
	value := fields[field]
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, errs.NewValueIsWrongTypeErrorWithCause(field, expectedTypeInteger, "uint", errNumberOverflowsInt64)
		}
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errs.NewValueIsWrongTypeErrorWithCause(field, expectedTypeInteger, "uint64", errNumberOverflowsInt64)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errs.NewValueIsWrongTypeErrorWithCause(field, expectedTypeInteger, "float64", errNumberIsNotAnInteger)
		}
		if v < minIntegerValue || v >= maxIntegerValue {
			return 0, errs.NewValueIsWrongTypeErrorWithCause(field, expectedTypeInteger, "float64", errNumberOverflowsInt64)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errs.NewValueIsWrongTypeErrorWithCause(field, expectedTypeInteger, "number", errNumberIsNotAnInteger)
		}
		return n, nil
	default:
		return 0, errs.NewValueIsWrongTypeError(field, expectedTypeInteger, typeName(value))
	}
}

// typeName names a mapping value's dynamic type for error messages.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
