package domain

import "fmt"

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

// User is a platform account. Records that predate the profile form may
// carry "N/A" in the email field; callers needing an address must treat
// that as absent.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"displayName"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Filiere      string   `json:"filiere"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash"`
}

// Validate checks the shape of a user decoded from the document store.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user: missing id")
	}
	if u.Email == "" {
		return fmt.Errorf("user %s: missing email", u.ID)
	}
	return nil
}

// HasEmail reports whether the record carries a usable address.
func (u *User) HasEmail() bool {
	return u.Email != "" && u.Email != "N/A"
}
