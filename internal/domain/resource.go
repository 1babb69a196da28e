package domain

import "fmt"

type ResourceKind string

const (
	ResourceKindCourse ResourceKind = "course"
	ResourceKindExam   ResourceKind = "exam"
)

type ResourceStatus string

const (
	ResourceStatusPending  ResourceStatus = "pending"
	ResourceStatusApproved ResourceStatus = "approved"
)

// Resource is a shared course or exam document. Submissions start pending
// and go through the same moderation lifecycle as tickets: approval flips
// the status, rejection deletes the record.
type Resource struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Kind          ResourceKind   `json:"kind"`
	Subject       string         `json:"subject"`
	Filiere       string         `json:"filiere"`
	Semester      string         `json:"semester"`
	FileURL       string         `json:"fileUrl"`
	UploaderID    string         `json:"uploaderId"`
	UploaderEmail string         `json:"uploaderEmail"`
	Status        ResourceStatus `json:"status"`
	CreatedAt     int64          `json:"createdAt"` // epoch millis
}

// Validate checks the shape of a resource decoded from the document store.
func (r *Resource) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("resource: missing id")
	}
	if r.Title == "" {
		return fmt.Errorf("resource %s: missing title", r.ID)
	}
	switch r.Kind {
	case ResourceKindCourse, ResourceKindExam:
	default:
		return fmt.Errorf("resource %s: unknown kind %q", r.ID, r.Kind)
	}
	switch r.Status {
	case ResourceStatusPending, ResourceStatusApproved:
	default:
		return fmt.Errorf("resource %s: unknown status %q", r.ID, r.Status)
	}
	return nil
}
