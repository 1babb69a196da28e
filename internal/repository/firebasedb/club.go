package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type clubRepository struct {
	client *db.Client
}

func NewClubRepository(client *db.Client) repository.ClubRepository {
	return &clubRepository{client: client}
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	var c domain.Club
	path := "clubs/" + id
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &c)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read club %s: %w", id, err)
	}
	if c.ID == "" {
		return nil, repository.ErrNotFound
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("malformed club in store: %w", err)
	}
	return &c, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	var nodes map[string]domain.Club
	logger.StoreCall("GET", "clubs")
	err := r.client.NewRef("clubs").Get(ctx, &nodes)
	logger.StoreResult("GET", "clubs", err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to scan clubs: %w", err)
	}

	clubs := make([]domain.Club, 0, len(nodes))
	for key, c := range nodes {
		if c.ID == "" {
			c.ID = key
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("malformed club in store: %w", err)
		}
		clubs = append(clubs, c)
	}
	return clubs, nil
}

func (r *clubRepository) CreateJoinRequest(ctx context.Context, clubID string, req *domain.JoinRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("refusing to store malformed join request: %w", err)
	}
	path := fmt.Sprintf("clubs/%s/joinRequests/%s", clubID, req.ID)
	logger.StoreCall("SET", path)
	err := r.client.NewRef(path).Set(ctx, req)
	logger.StoreResult("SET", path, err)
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

func (r *clubRepository) GetJoinRequest(ctx context.Context, clubID, requestID string) (*domain.JoinRequest, error) {
	var req domain.JoinRequest
	path := fmt.Sprintf("clubs/%s/joinRequests/%s", clubID, requestID)
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &req)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read join request %s: %w", requestID, err)
	}
	if req.ID == "" {
		return nil, repository.ErrNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("malformed join request in store: %w", err)
	}
	return &req, nil
}

func (r *clubRepository) ListJoinRequests(ctx context.Context, clubID string) ([]domain.JoinRequest, error) {
	var nodes map[string]domain.JoinRequest
	path := fmt.Sprintf("clubs/%s/joinRequests", clubID)
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &nodes)
	logger.StoreResult("GET", path, err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}

	reqs := make([]domain.JoinRequest, 0, len(nodes))
	for key, req := range nodes {
		if req.ID == "" {
			req.ID = key
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("malformed join request in store: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *clubRepository) DeleteJoinRequest(ctx context.Context, clubID, requestID string) error {
	path := fmt.Sprintf("clubs/%s/joinRequests/%s", clubID, requestID)
	logger.StoreCall("DELETE", path)
	err := r.client.NewRef(path).Delete(ctx)
	logger.StoreResult("DELETE", path, err)
	if err != nil {
		return fmt.Errorf("failed to delete join request %s: %w", requestID, err)
	}
	return nil
}

// ConvertJoinRequest runs a transaction on the whole club node so the
// member append and the request removal commit together. The legacy client
// did these as two separate writes and could strand a member/request pair
// on a crash in between; the transaction closes that window.
func (r *clubRepository) ConvertJoinRequest(ctx context.Context, clubID, requestID string, member domain.Member) (bool, error) {
	path := "clubs/" + clubID
	added := false

	logger.StoreCall("TRANSACTION", path, "request_id", requestID)
	err := r.client.NewRef(path).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var c domain.Club
		if err := tn.Unmarshal(&c); err != nil {
			return nil, fmt.Errorf("failed to decode club node: %w", err)
		}
		if c.ID == "" {
			return nil, repository.ErrNotFound
		}
		if _, ok := c.JoinRequests[requestID]; !ok {
			return nil, repository.ErrNotFound
		}

		delete(c.JoinRequests, requestID)

		// An applicant already on the member list gets no duplicate entry;
		// the stale request is still cleaned up.
		if c.HasMemberEmail(member.Email) {
			added = false
			return c, nil
		}

		c.Members = append(c.Members, member)
		added = true
		return c, nil
	})
	logger.StoreResult("TRANSACTION", path, err, "member_added", added)
	if err != nil {
		return false, fmt.Errorf("failed to convert join request %s: %w", requestID, err)
	}
	return added, nil
}

func (r *clubRepository) ListMembers(ctx context.Context, clubID string) ([]domain.Member, error) {
	var members []domain.Member
	path := fmt.Sprintf("clubs/%s/members", clubID)
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &members)
	logger.StoreResult("GET", path, err, "count", len(members))
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// RemoveMember rewrites the member list without the given entry, inside a
// transaction on the list itself.
func (r *clubRepository) RemoveMember(ctx context.Context, clubID, memberID string) error {
	path := fmt.Sprintf("clubs/%s/members", clubID)
	found := false

	logger.StoreCall("TRANSACTION", path, "member_id", memberID)
	err := r.client.NewRef(path).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var members []domain.Member
		if err := tn.Unmarshal(&members); err != nil {
			return nil, fmt.Errorf("failed to decode member list: %w", err)
		}
		kept := make([]domain.Member, 0, len(members))
		for _, m := range members {
			if m.ID == memberID {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		return kept, nil
	})
	logger.StoreResult("TRANSACTION", path, err, "removed", found)
	if err != nil {
		return fmt.Errorf("failed to remove member %s: %w", memberID, err)
	}
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

func (r *clubRepository) CreatePost(ctx context.Context, clubID string, p *domain.Post) error {
	path := fmt.Sprintf("clubs/%s/posts", clubID)
	logger.StoreCall("PUSH", path)
	ref, err := r.client.NewRef(path).Push(ctx, nil)
	if err != nil {
		logger.StoreResult("PUSH", path, err)
		return fmt.Errorf("failed to allocate post id: %w", err)
	}
	p.ID = ref.Key
	err = ref.Set(ctx, p)
	logger.StoreResult("PUSH", path, err, "post_id", p.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *clubRepository) ListPosts(ctx context.Context, clubID string) ([]domain.Post, error) {
	var nodes map[string]domain.Post
	path := fmt.Sprintf("clubs/%s/posts", clubID)
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &nodes)
	logger.StoreResult("GET", path, err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(nodes))
	for key, p := range nodes {
		if p.ID == "" {
			p.ID = key
		}
		posts = append(posts, p)
	}
	return posts, nil
}
