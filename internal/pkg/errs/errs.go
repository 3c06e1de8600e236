package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every concrete error
// type in this package unwraps to exactly one of these.
var (
	// ErrValueIsRequired signals that a required value is empty or missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsOutOfRange signals that a numeric value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsTooShort signals that a string value is shorter than its minimum length.
	ErrValueIsTooShort = errors.New("value is too short")
	// ErrValueIsWrongType signals that a value has the wrong primitive type.
	ErrValueIsWrongType = errors.New("value is wrong type")
	// ErrValueHasInvalidFormat signals that a value does not match its required format.
	ErrValueHasInvalidFormat = errors.New("value has invalid format")
	// ErrNameIsMalformed signals that a person name does not have the required parts.
	ErrNameIsMalformed = errors.New("name is malformed")
	// ErrRequiredFieldsAreMissing signals that a keyed input lacks required fields.
	ErrRequiredFieldsAreMissing = errors.New("required fields are missing")
	// ErrEncodingIsMalformed signals that a textual encoding could not be parsed.
	ErrEncodingIsMalformed = errors.New("encoding is malformed")
	// ErrArgumentIsInvalid signals that an argument has an unsupported shape.
	ErrArgumentIsInvalid = errors.New("argument is invalid")
)

// ValueIsRequiredError reports an empty or missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	msg := fmt.Sprintf("value is required: %s", e.ParamName)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError reports a numeric value outside [Min, Max].
// A nil Max means the value has no upper bound and the max clause is
// omitted from the message.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter.
func NewValueIsOutOfRangeError(paramName string, value, min, max any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, min, max any, cause error) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v", sanitize(e.Value), e.ParamName, e.Min)
	if e.Max != nil {
		msg += fmt.Sprintf(", max value is %v", e.Max)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsTooShortError reports a string value below its minimum length.
type ValueIsTooShortError struct {
	ParamName string
	Value     any
	MinLength int
	Cause     error
}

// NewValueIsTooShortError creates a ValueIsTooShortError for the given parameter.
func NewValueIsTooShortError(paramName string, value any, minLength int) ValueIsTooShortError {
	return ValueIsTooShortError{ParamName: paramName, Value: value, MinLength: minLength}
}

// NewValueIsTooShortErrorWithCause creates a ValueIsTooShortError with an underlying cause.
func NewValueIsTooShortErrorWithCause(paramName string, value any, minLength int, cause error) ValueIsTooShortError {
	return ValueIsTooShortError{ParamName: paramName, Value: value, MinLength: minLength, Cause: cause}
}

func (e ValueIsTooShortError) Error() string {
	msg := fmt.Sprintf("value is too short: %s is %s, min length is %d", sanitize(e.Value), e.ParamName, e.MinLength)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ValueIsTooShortError) Unwrap() error {
	return ErrValueIsTooShort
}

// ValueIsWrongTypeError reports a value whose dynamic type does not match
// the type the parameter requires.
type ValueIsWrongTypeError struct {
	ParamName    string
	ExpectedType string
	ActualType   string
	Cause        error
}

// NewValueIsWrongTypeError creates a ValueIsWrongTypeError for the given parameter.
func NewValueIsWrongTypeError(paramName, expectedType, actualType string) ValueIsWrongTypeError {
	return ValueIsWrongTypeError{ParamName: paramName, ExpectedType: expectedType, ActualType: actualType}
}

// NewValueIsWrongTypeErrorWithCause creates a ValueIsWrongTypeError with an underlying cause.
func NewValueIsWrongTypeErrorWithCause(paramName, expectedType, actualType string, cause error) ValueIsWrongTypeError {
	return ValueIsWrongTypeError{ParamName: paramName, ExpectedType: expectedType, ActualType: actualType, Cause: cause}
}

func (e ValueIsWrongTypeError) Error() string {
	msg := fmt.Sprintf("value is wrong type: %s is %s, expected type is %s", sanitize(e.ActualType), e.ParamName, e.ExpectedType)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ValueIsWrongTypeError) Unwrap() error {
	return ErrValueIsWrongType
}

// ValueHasInvalidFormatError reports a value that does not match its required format.
type ValueHasInvalidFormatError struct {
	ParamName string
	Cause     error
}

// NewValueHasInvalidFormatError creates a ValueHasInvalidFormatError for the given parameter.
func NewValueHasInvalidFormatError(paramName string) ValueHasInvalidFormatError {
	return ValueHasInvalidFormatError{ParamName: paramName}
}

// NewValueHasInvalidFormatErrorWithCause creates a ValueHasInvalidFormatError with an underlying cause.
func NewValueHasInvalidFormatErrorWithCause(paramName string, cause error) ValueHasInvalidFormatError {
	return ValueHasInvalidFormatError{ParamName: paramName, Cause: cause}
}

func (e ValueHasInvalidFormatError) Error() string {
	msg := fmt.Sprintf("value has invalid format: %s", e.ParamName)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ValueHasInvalidFormatError) Unwrap() error {
	return ErrValueHasInvalidFormat
}

// NameIsMalformedError reports a person name that lacks required parts,
// for example a contact person given without a last name.
type NameIsMalformedError struct {
	ParamName string
	Cause     error
}

// NewNameIsMalformedError creates a NameIsMalformedError for the given parameter.
func NewNameIsMalformedError(paramName string) NameIsMalformedError {
	return NameIsMalformedError{ParamName: paramName}
}

// NewNameIsMalformedErrorWithCause creates a NameIsMalformedError with an underlying cause.
func NewNameIsMalformedErrorWithCause(paramName string, cause error) NameIsMalformedError {
	return NameIsMalformedError{ParamName: paramName, Cause: cause}
}

func (e NameIsMalformedError) Error() string {
	msg := fmt.Sprintf("name is malformed: %s", e.ParamName)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e NameIsMalformedError) Unwrap() error {
	return ErrNameIsMalformed
}

// RequiredFieldsAreMissingError reports required keys absent from a keyed
// input. Fields preserves the order in which the keys were checked.
type RequiredFieldsAreMissingError struct {
	Fields []string
	Cause  error
}

// NewRequiredFieldsAreMissingError creates a RequiredFieldsAreMissingError listing the missing fields.
func NewRequiredFieldsAreMissingError(fields ...string) RequiredFieldsAreMissingError {
	return RequiredFieldsAreMissingError{Fields: fields}
}

// NewRequiredFieldsAreMissingErrorWithCause creates a RequiredFieldsAreMissingError with an underlying cause.
func NewRequiredFieldsAreMissingErrorWithCause(fields []string, cause error) RequiredFieldsAreMissingError {
	return RequiredFieldsAreMissingError{Fields: fields, Cause: cause}
}

func (e RequiredFieldsAreMissingError) Error() string {
	msg := fmt.Sprintf("required fields are missing: %s", strings.Join(e.Fields, ", "))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e RequiredFieldsAreMissingError) Unwrap() error {
	return ErrRequiredFieldsAreMissing
}

// EncodingIsMalformedError reports a textual encoding that could not be
// parsed into the expected structure.
type EncodingIsMalformedError struct {
	ParamName string
	Cause     error
}

// NewEncodingIsMalformedError creates an EncodingIsMalformedError for the given parameter.
func NewEncodingIsMalformedError(paramName string) EncodingIsMalformedError {
	return EncodingIsMalformedError{ParamName: paramName}
}

// NewEncodingIsMalformedErrorWithCause creates an EncodingIsMalformedError with an underlying cause.
func NewEncodingIsMalformedErrorWithCause(paramName string, cause error) EncodingIsMalformedError {
	return EncodingIsMalformedError{ParamName: paramName, Cause: cause}
}

func (e EncodingIsMalformedError) Error() string {
	msg := fmt.Sprintf("encoding is malformed: %s", e.ParamName)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e EncodingIsMalformedError) Unwrap() error {
	return ErrEncodingIsMalformed
}

// ArgumentIsInvalidError reports an argument with an unsupported shape,
// for example a nil mapping or a nil construction parameter.
type ArgumentIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewArgumentIsInvalidError creates an ArgumentIsInvalidError for the given parameter.
func NewArgumentIsInvalidError(paramName string) ArgumentIsInvalidError {
	return ArgumentIsInvalidError{ParamName: paramName}
}

// NewArgumentIsInvalidErrorWithCause creates an ArgumentIsInvalidError with an underlying cause.
func NewArgumentIsInvalidErrorWithCause(paramName string, cause error) ArgumentIsInvalidError {
	return ArgumentIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ArgumentIsInvalidError) Error() string {
	msg := fmt.Sprintf("argument is invalid: %s", e.ParamName)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e ArgumentIsInvalidError) Unwrap() error {
	return ErrArgumentIsInvalid
}

var newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")

// sanitize renders a value for an error message, replacing newlines with
// spaces so messages stay on one log line.
func sanitize(value any) string {
	return newlineReplacer.Replace(fmt.Sprint(value))
}
