package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type membershipService struct {
	clubRepo   repository.ClubRepository
	dispatcher Dispatcher
}

func NewMembershipService(clubRepo repository.ClubRepository, dispatcher Dispatcher) MembershipService {
	return &membershipService{
		clubRepo:   clubRepo,
		dispatcher: dispatcher,
	}
}

func (s *membershipService) SubmitJoinRequest(ctx context.Context, clubID string, in JoinRequestInput) (*domain.JoinRequest, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	req := &domain.JoinRequest{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Reason:      in.Reason,
		Answers:     in.Answers,
		SubmittedAt: time.Now().UnixMilli(),
	}

	if err := s.clubRepo.CreateJoinRequest(ctx, clubID, req); err != nil {
		return nil, err
	}
	logger.Info("join request submitted", "club_id", clubID, "request_id", req.ID)
	return req, nil
}

func (s *membershipService) ListJoinRequests(ctx context.Context, clubID string) ([]domain.JoinRequest, error) {
	reqs, err := s.clubRepo.ListJoinRequests(ctx, clubID)
	if err != nil {
		return nil, err
	}
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].SubmittedAt > reqs[j].SubmittedAt
	})
	return reqs, nil
}

func (s *membershipService) ApproveJoinRequest(ctx context.Context, clubID, requestID string) (*domain.Member, Report, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, Report{}, err
	}
	req, err := s.clubRepo.GetJoinRequest(ctx, clubID, requestID)
	if err != nil {
		return nil, Report{}, err
	}

	member := memberFromRequest(req)
	added, err := s.clubRepo.ConvertJoinRequest(ctx, clubID, requestID, member)
	if err != nil {
		return nil, Report{}, err
	}

	// Already a member: the stale request was cleaned up, nothing to
	// announce. Soft success.
	if !added {
		logger.Info("join request discarded, applicant already a member",
			"club_id", clubID, "request_id", requestID, "email", req.Email)
		return nil, Report{InApp: OutcomeSkipped, Email: OutcomeSkipped}, nil
	}

	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID:   req.UserID,
		UserName: req.Name,
		Email:    req.Email,
		InApp:    joinApprovedNotification(club),
		Mail:     joinApprovedEmail(club, req),
	})
	logger.Info("join request approved", "club_id", clubID, "request_id", requestID,
		"member_id", member.ID, "in_app", report.InApp, "email", report.Email)
	return &member, report, nil
}

func (s *membershipService) RejectJoinRequest(ctx context.Context, clubID, requestID, reason string) (Report, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return Report{}, err
	}
	req, err := s.clubRepo.GetJoinRequest(ctx, clubID, requestID)
	if err != nil {
		return Report{}, err
	}

	if err := s.clubRepo.DeleteJoinRequest(ctx, clubID, requestID); err != nil {
		return Report{}, err
	}

	// Email only; rejections carry no in-app notice.
	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID:   req.UserID,
		UserName: req.Name,
		Email:    req.Email,
		Mail:     joinRejectedEmail(club, req, reason),
	})
	logger.Info("join request rejected", "club_id", clubID, "request_id", requestID, "email", report.Email)
	return report, nil
}

func (s *membershipService) ListMembers(ctx context.Context, clubID string) ([]domain.Member, error) {
	return s.clubRepo.ListMembers(ctx, clubID)
}

func (s *membershipService) RemoveMember(ctx context.Context, clubID, memberID string) error {
	if err := s.clubRepo.RemoveMember(ctx, clubID, memberID); err != nil {
		return err
	}
	logger.Info("member removed", "club_id", clubID, "member_id", memberID)
	return nil
}

func (s *membershipService) IsBoardMember(ctx context.Context, clubID, email string) (bool, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return false, err
	}
	return club.IsBoardMember(email), nil
}

// memberFromRequest builds the member entry for an approved request. The
// member id follows the applicant's user id when there is one, with a
// timestamp fallback for applicants without an account.
func memberFromRequest(req *domain.JoinRequest) domain.Member {
	id := req.UserID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return domain.Member{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Filiere: domain.DefaultFiliere,
	}
}
