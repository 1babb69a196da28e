package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campushub-backend/internal/domain"
)

// MockTicketRepo
type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}
func (m *MockTicketRepo) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTicketRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) CreateJoinRequest(ctx context.Context, clubID string, req *domain.JoinRequest) error {
	args := m.Called(ctx, clubID, req)
	return args.Error(0)
}
func (m *MockClubRepo) GetJoinRequest(ctx context.Context, clubID, requestID string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, clubID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockClubRepo) ListJoinRequests(ctx context.Context, clubID string) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockClubRepo) DeleteJoinRequest(ctx context.Context, clubID, requestID string) error {
	args := m.Called(ctx, clubID, requestID)
	return args.Error(0)
}
func (m *MockClubRepo) ConvertJoinRequest(ctx context.Context, clubID, requestID string, member domain.Member) (bool, error) {
	args := m.Called(ctx, clubID, requestID, member)
	return args.Bool(0), args.Error(1)
}
func (m *MockClubRepo) ListMembers(ctx context.Context, clubID string) ([]domain.Member, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockClubRepo) RemoveMember(ctx context.Context, clubID, memberID string) error {
	args := m.Called(ctx, clubID, memberID)
	return args.Error(0)
}
func (m *MockClubRepo) CreatePost(ctx context.Context, clubID string, p *domain.Post) error {
	args := m.Called(ctx, clubID, p)
	return args.Error(0)
}
func (m *MockClubRepo) ListPosts(ctx context.Context, clubID string) ([]domain.Post, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Post), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Event, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) CreatePrivate(ctx context.Context, userID string, n *domain.Notification) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) CreateGlobal(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
func (m *MockNotificationRepo) PurgeRead(ctx context.Context, userID string, cutoff int64) (int, error) {
	args := m.Called(ctx, userID, cutoff)
	return args.Int(0), args.Error(1)
}
func (m *MockNotificationRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, r *domain.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockResourceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, toEmail, toName, subject, html string) error {
	args := m.Called(ctx, toEmail, toName, subject, html)
	return args.Error(0)
}

// MockDispatcher captures deliveries so tests can assert on payloads
// without standing up the real fan-out.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, d Delivery) Report {
	args := m.Called(ctx, d)
	return args.Get(0).(Report)
}
func (m *MockDispatcher) DispatchGlobal(ctx context.Context, n *domain.Notification) ChannelOutcome {
	args := m.Called(ctx, n)
	return args.Get(0).(ChannelOutcome)
}
