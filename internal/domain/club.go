package domain

import "fmt"

// DefaultFiliere is used when an approved join request carries no
// program/track information.
const DefaultFiliere = "N/A"

// Club is a student club. Members, join requests and posts live under the
// club node in the document store, so club-scoped reads need no
// client-side filtering.
type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LogoURL     string `json:"logoUrl"`
	// Board maps a role label (president, treasurer, ...) to the email of
	// the student holding it. Admin authorization is membership in this map.
	Board        map[string]string      `json:"board"`
	Questions    []JoinQuestion         `json:"questions"`
	Members      []Member               `json:"members"`
	JoinRequests map[string]JoinRequest `json:"joinRequests"`
	Posts        map[string]Post        `json:"posts"`
}

// Validate checks the shape of a club decoded from the document store.
func (c *Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club: missing id")
	}
	if c.Name == "" {
		return fmt.Errorf("club %s: missing name", c.ID)
	}
	return nil
}

// IsBoardMember reports whether email belongs to the club's board.
func (c *Club) IsBoardMember(email string) bool {
	for _, e := range c.Board {
		if e == email {
			return true
		}
	}
	return false
}

// HasMemberEmail reports whether email is already on the member list.
func (c *Club) HasMemberEmail(email string) bool {
	for _, m := range c.Members {
		if m.Email == email {
			return true
		}
	}
	return false
}

// JoinQuestion is a custom question shown on the club's join form.
type JoinQuestion struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// JoinRequest is a membership application awaiting a board decision.
// Approval converts it into a Member; rejection deletes it, with the
// reason carried only in the notification email.
type JoinRequest struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Reason      string            `json:"reason"`
	Answers     map[string]string `json:"answers"`
	SubmittedAt int64             `json:"submittedAt"` // epoch millis
}

// Validate checks the shape of a join request decoded from the document store.
func (r *JoinRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("join request: missing id")
	}
	if r.Name == "" {
		return fmt.Errorf("join request %s: missing name", r.ID)
	}
	if r.Email == "" {
		return fmt.Errorf("join request %s: missing email", r.ID)
	}
	if r.SubmittedAt <= 0 {
		return fmt.Errorf("join request %s: missing submittedAt", r.ID)
	}
	return nil
}

// Member is an entry on a club's member list, derived from an approved
// join request. Removal is an explicit board action, not lifecycle-driven.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Filiere string `json:"filiere"`
}

// Post is a club blog entry.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	ImageURL    string `json:"imageUrl"`
	AuthorEmail string `json:"authorEmail"`
	CreatedAt   int64  `json:"createdAt"` // epoch millis
}
