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

type clubService struct {
	clubRepo  repository.ClubRepository
	eventRepo repository.EventRepository
}

func NewClubService(clubRepo repository.ClubRepository, eventRepo repository.EventRepository) ClubService {
	return &clubService{
		clubRepo:  clubRepo,
		eventRepo: eventRepo,
	}
}

func (s *clubService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(clubs, func(i, j int) bool {
		return clubs[i].Name < clubs[j].Name
	})
	return clubs, nil
}

func (s *clubService) GetClub(ctx context.Context, clubID string) (*domain.Club, error) {
	return s.clubRepo.GetByID(ctx, clubID)
}

func (s *clubService) CreateEvent(ctx context.Context, clubID string, in EventInput) (*domain.Event, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	e := &domain.Event{
		ID:          uuid.NewString(),
		ClubID:      club.ID,
		ClubName:    club.Name,
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		Capacity:    in.Capacity,
	}

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	logger.Info("event created", "event_id", e.ID, "club_id", clubID, "name", e.Name)
	return e, nil
}

func (s *clubService) ListEvents(ctx context.Context, clubID string) ([]domain.Event, error) {
	events, err := s.eventRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
	return events, nil
}

func (s *clubService) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
	return events, nil
}

func (s *clubService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *clubService) CreatePost(ctx context.Context, clubID string, in PostInput) (*domain.Post, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	p := &domain.Post{
		Title:       in.Title,
		Body:        in.Body,
		ImageURL:    in.ImageURL,
		AuthorEmail: in.AuthorEmail,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.clubRepo.CreatePost(ctx, clubID, p); err != nil {
		return nil, err
	}
	logger.Info("post created", "club_id", clubID, "post_id", p.ID)
	return p, nil
}

func (s *clubService) ListPosts(ctx context.Context, clubID string) ([]domain.Post, error) {
	posts, err := s.clubRepo.ListPosts(ctx, clubID)
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts, nil
}
