package order

import (
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ItemSnapshot is the wire form of an order line: the frozen cart line plus
// the chosen booking slot.
type ItemSnapshot struct {
	cart.ItemSnapshot

	BookingDate *time.Time `json:"bookingDate,omitempty"`
	BookingTime string     `json:"bookingTime,omitempty"`
}

// ParticipantSnapshot is the wire form of a Participant.
type ParticipantSnapshot struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Document    string     `json:"document,omitempty"`
}

// WorkflowStepSnapshot is the wire form of a WorkflowStep.
type WorkflowStepSnapshot struct {
	Step      string            `json:"step"`
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Snapshot is the JSON-serializable wire and persistence form of an Order.
// Monetary fields always carry an {amount, currency} pair so the currency is
// never lost across the boundary.
type Snapshot struct {
	ID            string                     `json:"id"`
	OrderNumber   string                     `json:"orderNumber"`
	UserID        *string                    `json:"userId"`
	Status        string                     `json:"status"`
	PaymentStatus string                     `json:"paymentStatus"`
	Items         []ItemSnapshot             `json:"items"`
	Participants  []ParticipantSnapshot      `json:"participants"`
	ContactInfo   kernel.ContactInfoSnapshot `json:"contactInfo"`
	Subtotal      kernel.PriceSnapshot       `json:"subtotal"`
	Tax           kernel.PriceSnapshot       `json:"tax"`
	Discount      kernel.PriceSnapshot       `json:"discount"`
	Total         kernel.PriceSnapshot       `json:"total"`
	PaymentMethod string                     `json:"paymentMethod"`
	TransactionID string                     `json:"transactionId,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
	WorkflowSteps []WorkflowStepSnapshot     `json:"workflowSteps"`
}

// ToSnapshot converts the order line to its wire form.
func (i Item) ToSnapshot() ItemSnapshot {
	return ItemSnapshot{
		ItemSnapshot: i.Item.ToSnapshot(),
		BookingDate:  i.BookingDate(),
		BookingTime:  i.bookingTime,
	}
}

// ItemFromSnapshot reconstructs an order line from its wire form.
func ItemFromSnapshot(snapshot ItemSnapshot) (Item, error) {
	cartItem, err := cart.ItemFromSnapshot(snapshot.ItemSnapshot)
	if err != nil {
		return Item{}, err
	}
	return NewItemFromCart(cartItem, snapshot.BookingDate, snapshot.BookingTime)
}

// ToSnapshot converts the participant to its wire form.
func (p Participant) ToSnapshot() ParticipantSnapshot {
	return ParticipantSnapshot{
		ID:          p.id.String(),
		FirstName:   p.firstName,
		LastName:    p.lastName,
		DateOfBirth: p.DateOfBirth(),
		Document:    p.document,
	}
}

// ParticipantFromSnapshot reconstructs a participant from its wire form.
func ParticipantFromSnapshot(snapshot ParticipantSnapshot) (Participant, error) {
	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return Participant{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewParticipant(id, snapshot.FirstName, snapshot.LastName, snapshot.DateOfBirth, snapshot.Document)
}

// ToSnapshot converts the workflow step to its wire form.
func (s WorkflowStep) ToSnapshot() WorkflowStepSnapshot {
	return WorkflowStepSnapshot{
		Step:      string(s.name),
		Status:    string(s.status),
		Timestamp: s.timestamp,
		Metadata:  s.Metadata(),
	}
}

// WorkflowStepFromSnapshot reconstructs a workflow step from its wire form.
func WorkflowStepFromSnapshot(snapshot WorkflowStepSnapshot) (WorkflowStep, error) {
	return NewWorkflowStep(
		StepName(snapshot.Step),
		StepStatus(snapshot.Status),
		snapshot.Timestamp,
		snapshot.Metadata,
	)
}

// ToSnapshot converts the order to its wire form.
func (o *Order) ToSnapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.ToSnapshot())
	}

	participants := make([]ParticipantSnapshot, 0, len(o.participants))
	for _, participant := range o.participants {
		participants = append(participants, participant.ToSnapshot())
	}

	steps := make([]WorkflowStepSnapshot, 0, len(o.workflowSteps))
	for _, step := range o.workflowSteps {
		steps = append(steps, step.ToSnapshot())
	}

	var userID *string
	if o.userID != nil {
		s := o.userID.String()
		userID = &s
	}

	return Snapshot{
		ID:            o.id.String(),
		OrderNumber:   o.orderNumber,
		UserID:        userID,
		Status:        o.status.String(),
		PaymentStatus: o.paymentStatus.String(),
		Items:         items,
		Participants:  participants,
		ContactInfo:   o.contactInfo.ToSnapshot(),
		Subtotal:      o.subtotal.ToSnapshot(),
		Tax:           o.tax.ToSnapshot(),
		Discount:      o.discount.ToSnapshot(),
		Total:         o.total.ToSnapshot(),
		PaymentMethod: o.paymentMethod,
		TransactionID: o.transactionID,
		Notes:         o.notes,
		CreatedAt:     o.createdAt,
		UpdatedAt:     o.updatedAt,
		WorkflowSteps: steps,
	}
}

// FromSnapshot reconstructs an Order from its wire form, re-running all
// invariant checks.
func FromSnapshot(snapshot Snapshot) (*Order, error) {
	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	var userID *kernel.UUID
	if snapshot.UserID != nil {
		uid, err := kernel.UUIDFromString(*snapshot.UserID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
		}
		userID = &uid
	}

	status, err := StatusFromString(snapshot.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := PaymentStatusFromString(snapshot.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(snapshot.Items))
	for _, itemSnapshot := range snapshot.Items {
		item, err := ItemFromSnapshot(itemSnapshot)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	participants := make([]Participant, 0, len(snapshot.Participants))
	for _, participantSnapshot := range snapshot.Participants {
		participant, err := ParticipantFromSnapshot(participantSnapshot)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	steps := make([]WorkflowStep, 0, len(snapshot.WorkflowSteps))
	for _, stepSnapshot := range snapshot.WorkflowSteps {
		step, err := WorkflowStepFromSnapshot(stepSnapshot)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	contactInfo, err := kernel.ContactInfoFromSnapshot(snapshot.ContactInfo)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.PriceFromSnapshot(snapshot.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.PriceFromSnapshot(snapshot.Tax)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.PriceFromSnapshot(snapshot.Discount)
	if err != nil {
		return nil, err
	}
	total, err := kernel.PriceFromSnapshot(snapshot.Total)
	if err != nil {
		return nil, err
	}

	return RestoreOrder(
		id,
		snapshot.OrderNumber,
		userID,
		status,
		paymentStatus,
		items,
		participants,
		contactInfo,
		subtotal,
		tax,
		discount,
		total,
		snapshot.PaymentMethod,
		snapshot.TransactionID,
		snapshot.Notes,
		snapshot.CreatedAt,
		snapshot.UpdatedAt,
		steps,
	)
}
