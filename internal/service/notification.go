package service

import (
	"context"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.noteRepo.ListForUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.noteRepo.MarkRead(ctx, userID, notificationID)
}
