// Package customer provides the Customer business record for the customers library.
// It implements a self-validating value object following Domain-Driven Design
// principles: every construction path and every mutation runs the full set of
// field validation rules, so a Customer observable by callers is always valid.
//
// The package includes:
//   - Customer: A mutable record with validated identifier, name, address, phone, and contact person
//   - Four construction paths: positional fields, JSON encoding, keyed mapping, and named params
//   - Free validation functions shared by construction and mutation
//
// Key business rules:
//   - The customer identifier is a strictly positive integer
//   - Name and contact person carry at least 2 characters after trimming, address at least 5
//   - The phone number contains only digits besides spaces, parentheses, and hyphens,
//     and at least 5 digits; the original spelling is stored, never the cleaned form
//   - The contact person names at least a first and a last name
//   - Failed construction produces no object; failed mutation leaves every field unchanged
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package customer
