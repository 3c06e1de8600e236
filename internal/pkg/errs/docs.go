// Package errs provides standardized error types for the customers library.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model.
//
// The package includes one error type per validation failure kind:
//   - ValueIsRequiredError: For when a required value is empty or missing
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ValueIsTooShortError: For when a string value is below its minimum length
//   - ValueIsWrongTypeError: For when a value has the wrong primitive type
//   - ValueHasInvalidFormatError: For when a value fails a format rule
//   - NameIsMalformedError: For when a person name lacks required parts
//   - RequiredFieldsAreMissingError: For when a keyed input lacks required fields
//   - EncodingIsMalformedError: For when a textual encoding cannot be parsed
//   - ArgumentIsInvalidError: For when an argument has an unsupported shape
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the library.
package errs
