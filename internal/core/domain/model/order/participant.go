package order

import (
	"errors"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// Participant is a person the order is booked for. The number of participants
// must equal the total item quantity before the order can be processed; that
// check happens in ValidateForProcessing, not at construction time.
type Participant struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	dateOfBirth *time.Time
	document    string

	guard.ConstructorGuard
}

// NewParticipant creates a validated Participant.
// dateOfBirth and document are optional.
func NewParticipant(
	id kernel.UUID,
	firstName string,
	lastName string,
	dateOfBirth *time.Time,
	document string,
) (Participant, error) {
	p := Participant{ConstructorGuard: guard.NewConstructorGuard()}

	err := errors.Join(
		p.setID(id),
		p.setFirstName(firstName),
		p.setLastName(lastName),
		p.setDateOfBirth(dateOfBirth),
		p.setDocument(document),
	)
	if err != nil {
		return Participant{}, err
	}

	return p, nil
}

// ID returns the participant's unique identifier.
func (p Participant) ID() kernel.UUID {
	return p.id
}

// FirstName returns the participant's first name.
func (p Participant) FirstName() string {
	return p.firstName
}

// LastName returns the participant's last name.
func (p Participant) LastName() string {
	return p.lastName
}

// FullName returns first and last name joined with a space.
func (p Participant) FullName() string {
	return p.firstName + " " + p.lastName
}

// DateOfBirth returns the participant's date of birth, or nil if not provided.
func (p Participant) DateOfBirth() *time.Time {
	if p.dateOfBirth == nil {
		return nil
	}
	dob := *p.dateOfBirth
	return &dob
}

// Document returns the passport or identity document number, if provided.
func (p Participant) Document() string {
	return p.document
}

// IsEqual compares participants by identity.
func (p Participant) IsEqual(other Participant) bool {
	return p.id.IsEqual(other.id)
}

// Validate checks if the Participant was properly constructed.
func (p Participant) Validate() error {
	if err := p.ConstructorGuard.Validate(errs.NewValueIsRequiredError("participant")); err != nil {
		return err
	}

	return errors.Join(
		p.id.Validate(),
		validateParticipantName("first name", p.firstName),
		validateParticipantName("last name", p.lastName),
	)
}

func validateParticipantName(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func (p *Participant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Participant) setFirstName(firstName string) error {
	if err := validateParticipantName("first name", firstName); err != nil {
		return err
	}
	p.firstName = strings.TrimSpace(firstName)
	return nil
}

func (p *Participant) setLastName(lastName string) error {
	if err := validateParticipantName("last name", lastName); err != nil {
		return err
	}
	p.lastName = strings.TrimSpace(lastName)
	return nil
}

func (p *Participant) setDateOfBirth(dateOfBirth *time.Time) error {
	if dateOfBirth == nil {
		return nil
	}
	if dateOfBirth.After(time.Now()) {
		return errs.NewValueIsInvalidError("date of birth")
	}
	dob := *dateOfBirth
	p.dateOfBirth = &dob
	return nil
}

func (p *Participant) setDocument(document string) error {
	p.document = strings.TrimSpace(document)
	return nil
}
