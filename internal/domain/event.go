package domain

import "fmt"

// Event is a club event that tickets are issued for. Club name is
// denormalized for display.
type Event struct {
	ID          string `json:"id"`
	ClubID      string `json:"clubId"`
	ClubName    string `json:"clubName"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        int64  `json:"date"` // epoch millis
	Capacity    int    `json:"capacity"`
}

// Validate checks the shape of an event decoded from the document store.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event: missing id")
	}
	if e.ClubID == "" {
		return fmt.Errorf("event %s: missing clubId", e.ID)
	}
	if e.Name == "" {
		return fmt.Errorf("event %s: missing name", e.ID)
	}
	return nil
}
