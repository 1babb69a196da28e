package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type resourceService struct {
	resourceRepo repository.ResourceRepository
	dispatcher   Dispatcher
}

func NewResourceService(resourceRepo repository.ResourceRepository, dispatcher Dispatcher) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		dispatcher:   dispatcher,
	}
}

func (s *resourceService) Submit(ctx context.Context, in ResourceInput) (*domain.Resource, error) {
	res := &domain.Resource{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Kind:          in.Kind,
		Subject:       in.Subject,
		Filiere:       in.Filiere,
		Semester:      in.Semester,
		FileURL:       in.FileURL,
		UploaderID:    in.UploaderID,
		UploaderEmail: in.UploaderEmail,
		Status:        domain.ResourceStatusPending,
		CreatedAt:     time.Now().UnixMilli(),
	}

	if err := s.resourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	logger.Info("resource submitted", "resource_id", res.ID, "title", res.Title)
	return res, nil
}

func (s *resourceService) ListApproved(ctx context.Context) ([]domain.Resource, error) {
	return s.listByStatus(ctx, domain.ResourceStatusApproved)
}

func (s *resourceService) ListPending(ctx context.Context) ([]domain.Resource, error) {
	return s.listByStatus(ctx, domain.ResourceStatusPending)
}

func (s *resourceService) listByStatus(ctx context.Context, status domain.ResourceStatus) ([]domain.Resource, error) {
	all, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.Resource, 0, len(all))
	for _, res := range all {
		if res.Status == status {
			resources = append(resources, res)
		}
	}
	sort.Slice(resources, func(i, j int) bool {
		return resources[i].CreatedAt > resources[j].CreatedAt
	})
	return resources, nil
}

func (s *resourceService) Approve(ctx context.Context, resourceID string) (*domain.Resource, Report, error) {
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, Report{}, err
	}

	// approved is terminal, same no-op rule as tickets.
	if res.Status == domain.ResourceStatusApproved {
		return res, Report{InApp: OutcomeSkipped, Email: OutcomeSkipped}, nil
	}

	if err := s.resourceRepo.UpdateStatus(ctx, resourceID, domain.ResourceStatusApproved); err != nil {
		return nil, Report{}, err
	}
	res.Status = domain.ResourceStatusApproved

	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID: res.UploaderID,
		Email:  res.UploaderEmail,
		InApp:  resourceApprovedNotification(res),
		Mail:   resourceApprovedEmail(res),
	})
	globalOutcome := s.dispatcher.DispatchGlobal(ctx, resourcePublishedAnnouncement(res))
	logger.Info("resource approved", "resource_id", res.ID,
		"in_app", report.InApp, "email", report.Email, "announcement", globalOutcome)
	return res, report, nil
}

func (s *resourceService) Reject(ctx context.Context, resourceID, reason string) (Report, error) {
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return Report{}, err
	}

	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return Report{}, err
	}

	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID: res.UploaderID,
		Email:  res.UploaderEmail,
		Mail:   resourceRejectedEmail(res, reason),
	})
	logger.Info("resource rejected", "resource_id", resourceID, "email", report.Email)
	return report, nil
}
