package domain

import "fmt"

type TicketStatus string

const (
	TicketStatusPending TicketStatus = "pending"
	TicketStatusValid   TicketStatus = "valid"
)

// GuestUserID marks tickets created through the public registration form
// by visitors without an account. Guest holders never receive in-app
// notifications.
const GuestUserID = "guest"

// Ticket is a registration/purchase attempt for a club event. Event and
// club names are denormalized so admin dashboards render without extra
// lookups. Rejection deletes the record; there is no "rejected" status.
type Ticket struct {
	ID        string       `json:"id"`
	EventID   string       `json:"eventId"`
	EventName string       `json:"eventName"`
	ClubID    string       `json:"clubId"`
	ClubName  string       `json:"clubName"`
	UserID    string       `json:"userId"`
	UserEmail string       `json:"userEmail"`
	UserName  string       `json:"userName"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Status    TicketStatus `json:"status"`
	CreatedAt int64        `json:"createdAt"` // epoch millis
}

// Validate checks the shape of a ticket decoded from the document store.
func (t *Ticket) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("ticket: missing id")
	}
	if t.EventID == "" {
		return fmt.Errorf("ticket %s: missing eventId", t.ID)
	}
	if t.ClubID == "" {
		return fmt.Errorf("ticket %s: missing clubId", t.ID)
	}
	switch t.Status {
	case TicketStatusPending, TicketStatusValid:
	default:
		return fmt.Errorf("ticket %s: unknown status %q", t.ID, t.Status)
	}
	if t.CreatedAt <= 0 {
		return fmt.Errorf("ticket %s: missing createdAt", t.ID)
	}
	return nil
}

// IsGuest reports whether the ticket holder is an unauthenticated visitor.
func (t *Ticket) IsGuest() bool {
	return t.UserID == "" || t.UserID == GuestUserID
}

// HolderName returns the best display name available on the record.
func (t *Ticket) HolderName() string {
	if t.UserName != "" {
		return t.UserName
	}
	name := t.FirstName
	if t.LastName != "" {
		if name != "" {
			name += " "
		}
		name += t.LastName
	}
	return name
}
