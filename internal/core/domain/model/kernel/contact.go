package kernel

import (
	"errors"
	"fmt"
	"strings"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrContactInfoIsNotConstructed is returned when attempting to use an improperly
// initialized ContactInfo. ContactInfo must be created via NewContactInfo.
var ErrContactInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"contact info must be created via NewContactInfo constructor")

// ContactInfo holds validated customer contact details attached to an order.
// It is an immutable value object.
//
// The zero value of ContactInfo is invalid and will fail validation - use
// NewContactInfo to create instances.
type ContactInfo struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	email     string
	phone     string
	guard     guard.ConstructorGuard
}

// NewContactInfo creates a ContactInfo with the given details.
// First name, last name and email are required; the email must contain
// an "@". Phone is optional.
func NewContactInfo(firstName, lastName, email, phone string) (ContactInfo, error) {
	contact := ContactInfo{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setFirstName(firstName),
		contact.setLastName(lastName),
		contact.setEmail(email),
	); err != nil {
		return ContactInfo{}, err
	}

	return contact, nil
}

// Validate checks if the ContactInfo was properly constructed using the constructor.
func (c ContactInfo) Validate() error {
	return c.guard.Validate(ErrContactInfoIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c ContactInfo) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c ContactInfo) LastName() string {
	return c.lastName
}

// Email returns the customer's email address.
func (c ContactInfo) Email() string {
	return c.email
}

// Phone returns the customer's phone number, empty if not provided.
func (c ContactInfo) Phone() string {
	return c.phone
}

// FullName returns the customer's full display name.
func (c ContactInfo) FullName() string {
	return fmt.Sprintf("%s %s", c.firstName, c.lastName)
}

// IsEqual compares two contacts field by field.
func (c ContactInfo) IsEqual(other ContactInfo) bool {
	return c.firstName == other.firstName &&
		c.lastName == other.lastName &&
		c.email == other.email &&
		c.phone == other.phone
}

func (c *ContactInfo) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}

	c.firstName = firstName
	return nil
}

func (c *ContactInfo) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}

	c.lastName = lastName
	return nil
}

func (c *ContactInfo) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q does not look like an email address", email),
		)
	}

	c.email = email
	return nil
}
