package customer

import (
	"errors"
	"fmt"

	"customers/internal/pkg/guard"
)

// Field bounds shared by construction and mutation.
const (
	// CustomerIDMin is the smallest allowed customer identifier.
	CustomerIDMin int64 = 1
	// NameMinLength is the minimum trimmed length of the name field, in runes.
	NameMinLength = 2
	// AddressMinLength is the minimum trimmed length of the address field, in runes.
	AddressMinLength = 5
	// ContactPersonMinLength is the minimum trimmed length of the contact person field, in runes.
	ContactPersonMinLength = 2
	// ContactPersonMinParts is the minimum number of whitespace-separated name parts
	// the contact person field must carry.
	ContactPersonMinParts = 2
	// PhoneMinDigits is the minimum number of digits a phone number must carry
	// after stripping spaces, parentheses, and hyphens.
	PhoneMinDigits = 5
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer, NewCustomerFromJSON, NewCustomerFromMap or NewCustomerFromParams constructors")

// Customer represents a customer business record.
// It is a self-validating value object: every constructor and every setter runs
// the field validation rules before committing, so a constructed Customer is
// valid for its whole lifetime and no invalid intermediate state is observable.
//
// Key characteristics:
//   - Construction via NewCustomer, NewCustomerFromJSON, NewCustomerFromMap,
//     or NewCustomerFromParams; the zero value fails Validate
//   - Mutable through setters that re-validate and leave the record unchanged on failure
//   - String values keep the caller's original spelling (trimming happens only
//     inside validation; the phone keeps its separators)
//   - Identity is the customer identifier; uniqueness is a concern of external
//     collaborators such as a store
//
// Example usage:
//
//	customer, err := NewCustomer(42, "Acme Ltd", "10 Main Street", "8 (495) 123-45-67", "Ivan Ivanov")
//	if err != nil {
//	    // Handle construction error
//	}
//	fmt.Println(customer) // Customer: ID=42, Name='Acme Ltd', Phone='8 (495) 123-45-67', Contact='Ivan Ivanov'
//
//nolint:recvcheck //using for validation
type Customer struct {
	// customerID uniquely identifies the customer record
	customerID int64
	// name is the customer's display name
	name string
	// address is the customer's postal address
	address string
	// phone is the customer's phone number in the caller's original spelling
	phone string
	// contactPerson is the full name of the person to contact
	contactPerson string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer from the five fields in positional order.
// This is the primary constructor; the other construction paths delegate to it.
//
// Every field is applied through its setter, and the failures of all five are
// aggregated, so a record with several bad fields reports all of them in one
// error. On any failure the zero Customer is returned.
//
// Parameters:
//   - customerID: Strictly positive identifier
//   - name: Display name, at least NameMinLength runes after trimming
//   - address: Postal address, at least AddressMinLength runes after trimming
//   - phone: Phone number; digits plus spaces, parentheses, and hyphens,
//     carrying at least PhoneMinDigits digits
//   - contactPerson: Contact full name, at least ContactPersonMinParts
//     whitespace-separated parts
//
// Returns:
//   - Customer: A fully validated record
//   - error: Joined validation errors if any field is invalid
//
// Example:
//
//	customer, err := NewCustomer(7, "Globex", "221B Baker Street", "12-34(56)", "Maria Petrova")
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsTooShort), etc.
//	}
func NewCustomer(customerID int64, name, address, phone, contactPerson string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.SetCustomerID(customerID),
		customer.SetName(name),
		customer.SetAddress(address),
		customer.SetPhone(phone),
		customer.SetContactPerson(contactPerson),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// MustNewCustomer is like NewCustomer but panics on validation failure.
// Intended for fixtures and wiring code with known-good values.
func MustNewCustomer(customerID int64, name, address, phone, contactPerson string) Customer {
	customer, err := NewCustomer(customerID, name, address, phone, contactPerson)
	if err != nil {
		panic(err)
	}
	return customer
}

// Validate checks if the Customer was properly constructed via one of its
// constructors. The zero value of Customer is invalid and fails this check.
//
// Returns:
//   - error: ErrCustomerIsNotConstructed if improperly initialized, nil if valid
//
// Example:
//
//	var customer Customer // zero value - invalid
//	if err := customer.Validate(); err != nil {
//	    fmt.Println("invalid customer:", err)
//	}
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// CustomerID returns the unique identifier of the customer.
//
// Returns:
//   - int64: The identifier (strictly positive for valid records)
func (c Customer) CustomerID() int64 {
	return c.customerID
}

// Name returns the customer's display name exactly as stored.
//
// Returns:
//   - string: The name (at least 2 runes after trimming for valid records)
func (c Customer) Name() string {
	return c.name
}

// Address returns the customer's postal address exactly as stored.
//
// Returns:
//   - string: The address (at least 5 runes after trimming for valid records)
func (c Customer) Address() string {
	return c.address
}

// Phone returns the customer's phone number in its original spelling,
// separators included. Use PhoneDigits for the cleaned digit string.
//
// Returns:
//   - string: The phone number as it was supplied
func (c Customer) Phone() string {
	return c.phone
}

// PhoneDigits returns the phone number with spaces, parentheses, and hyphens
// stripped, leaving the digit string the validation rules counted.
//
// Returns:
//   - string: At least PhoneMinDigits digits for valid records
//
// Example:
//
//	customer, _ := NewCustomer(7, "Globex", "221B Baker Street", "12-34(56)", "Maria Petrova")
//	customer.Phone()       // "12-34(56)"
//	customer.PhoneDigits() // "123456"
func (c Customer) PhoneDigits() string {
	return cleanPhone(c.phone)
}

// ContactPerson returns the contact person's full name exactly as stored.
//
// Returns:
//   - string: The contact person (at least first and last name for valid records)
func (c Customer) ContactPerson() string {
	return c.contactPerson
}

// SetCustomerID replaces the customer identifier after re-validating it.
// On failure the previous value is retained.
//
// Parameters:
//   - customerID: Strictly positive identifier
//
// Returns:
//   - error: ErrCustomerIsNotConstructed on an unconstructed receiver,
//     or the RangeError kind when customerID < CustomerIDMin
func (c *Customer) SetCustomerID(customerID int64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validateCustomerID(customerID); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

// SetName replaces the customer name after re-validating it.
// On failure the previous value is retained.
//
// Parameters:
//   - name: Display name, at least NameMinLength runes after trimming
//
// Returns:
//   - error: ErrCustomerIsNotConstructed on an unconstructed receiver,
//     or the EmptyValueError/TooShortError kinds on a bad value
func (c *Customer) SetName(name string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validateStringField(name, FieldName, NameMinLength); err != nil {
		return err
	}

	c.name = name
	return nil
}

// SetAddress replaces the customer address after re-validating it.
// On failure the previous value is retained.
//
// Parameters:
//   - address: Postal address, at least AddressMinLength runes after trimming
//
// Returns:
//   - error: ErrCustomerIsNotConstructed on an unconstructed receiver,
//     or the EmptyValueError/TooShortError kinds on a bad value
func (c *Customer) SetAddress(address string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validateStringField(address, FieldAddress, AddressMinLength); err != nil {
		return err
	}

	c.address = address
	return nil
}

// SetPhone replaces the phone number after re-validating it. The value is
// stored in the caller's original spelling; cleaning happens only for the check.
// On failure the previous value is retained.
//
// Parameters:
//   - phone: Digits plus spaces, parentheses, and hyphens; at least
//     PhoneMinDigits digits after cleaning
//
// Returns:
//   - error: ErrCustomerIsNotConstructed on an unconstructed receiver,
//     or the InvalidFormatError/TooShortError kinds on a bad value
func (c *Customer) SetPhone(phone string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validatePhone(phone); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

// SetContactPerson replaces the contact person after re-validating it.
// On failure the previous value is retained.
//
// Parameters:
//   - contactPerson: Full name with at least ContactPersonMinParts
//     whitespace-separated parts
//
// Returns:
//   - error: ErrCustomerIsNotConstructed on an unconstructed receiver, or the
//     EmptyValueError/TooShortError/MalformedNameError kinds on a bad value
func (c *Customer) SetContactPerson(contactPerson string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validateContactPerson(contactPerson); err != nil {
		return err
	}

	c.contactPerson = contactPerson
	return nil
}

// IsEqual compares two customers by identity. Two records are equal when they
// carry the same customer identifier, regardless of the other fields.
// Both operands must be properly constructed.
//
// Parameters:
//   - other: The customer to compare with
//
// Returns:
//   - bool: true if both records carry the same identifier
//   - error: ErrCustomerIsNotConstructed if either operand is the zero value
//
// Example:
//
//	a, _ := NewCustomer(7, "Acme Ltd", "10 Main Street", "12345", "Ivan Ivanov")
//	b, _ := NewCustomer(7, "Globex", "5 Low Lane 77", "54321", "Maria Petrova")
//	equal, _ := a.IsEqual(b) // true - same identifier
func (c Customer) IsEqual(other Customer) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}
	return c.customerID == other.customerID, nil
}

// String returns the human-readable summary of the record:
//
//	Customer: ID=<id>, Name='<name>', Phone='<phone>', Contact='<contact>'
//
// The address is intentionally omitted.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: ID=%d, Name='%s', Phone='%s', Contact='%s'",
		c.customerID, c.name, c.phone, c.contactPerson)
}
