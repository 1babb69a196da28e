package firebasedb

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type notificationRepository struct {
	client *db.Client
}

func NewNotificationRepository(client *db.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) create(ctx context.Context, path string, n *domain.Notification) error {
	logger.StoreCall("PUSH", path, "type", n.Type, "title", n.Title)
	ref, err := r.client.NewRef(path).Push(ctx, nil)
	if err != nil {
		logger.StoreResult("PUSH", path, err)
		return fmt.Errorf("failed to allocate notification id: %w", err)
	}
	n.ID = ref.Key
	if n.CreatedAt == 0 {
		n.CreatedAt = time.Now().UnixMilli()
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("refusing to store malformed notification: %w", err)
	}
	err = ref.Set(ctx, n)
	logger.StoreResult("PUSH", path, err, "notification_id", n.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) CreatePrivate(ctx context.Context, userID string, n *domain.Notification) error {
	return r.create(ctx, "notifications/users/"+userID, n)
}

func (r *notificationRepository) CreateGlobal(ctx context.Context, n *domain.Notification) error {
	return r.create(ctx, "notifications/global", n)
}

// ListForUser merges the recipient's private notifications with the global
// ones, newest first.
func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	private, err := r.list(ctx, "notifications/users/"+userID)
	if err != nil {
		return nil, err
	}
	global, err := r.list(ctx, "notifications/global")
	if err != nil {
		return nil, err
	}

	notes := append(private, global...)
	// Insertion sort; notification lists are small.
	for i := 1; i < len(notes); i++ {
		for j := i; j > 0 && notes[j].CreatedAt > notes[j-1].CreatedAt; j-- {
			notes[j], notes[j-1] = notes[j-1], notes[j]
		}
	}
	return notes, nil
}

func (r *notificationRepository) list(ctx context.Context, path string) ([]domain.Notification, error) {
	var nodes map[string]domain.Notification
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &nodes)
	logger.StoreResult("GET", path, err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notes := make([]domain.Notification, 0, len(nodes))
	for key, n := range nodes {
		if n.ID == "" {
			n.ID = key
		}
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("malformed notification in store: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	path := fmt.Sprintf("notifications/users/%s/%s", userID, notificationID)

	var n domain.Notification
	if err := r.client.NewRef(path).Get(ctx, &n); err != nil {
		return fmt.Errorf("failed to read notification %s: %w", notificationID, err)
	}
	if n.ID == "" {
		return repository.ErrNotFound
	}

	logger.StoreCall("UPDATE", path, "read", true)
	err := r.client.NewRef(path).Update(ctx, map[string]interface{}{"read": true})
	logger.StoreResult("UPDATE", path, err)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (r *notificationRepository) PurgeRead(ctx context.Context, userID string, cutoff int64) (int, error) {
	path := "notifications/users/" + userID
	notes, err := r.list(ctx, path)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, n := range notes {
		if !n.Read || n.CreatedAt >= cutoff {
			continue
		}
		if err := r.client.NewRef(path+"/"+n.ID).Delete(ctx); err != nil {
			return purged, fmt.Errorf("failed to purge notification %s: %w", n.ID, err)
		}
		purged++
	}
	return purged, nil
}

func (r *notificationRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	// Shallow keys would be cheaper; the Go SDK has no shallow query, so
	// this reads the subtree and keeps the keys.
	var nodes map[string]map[string]domain.Notification
	logger.StoreCall("GET", "notifications/users")
	err := r.client.NewRef("notifications/users").Get(ctx, &nodes)
	logger.StoreResult("GET", "notifications/users", err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to list notification recipients: %w", err)
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	return ids, nil
}
