package users

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// MemoryRepository keeps users in process memory. Every method runs under
// a single mutex, so ConditionalUpdateStatus is a true compare-and-set.
type MemoryRepository struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	if u.FullName != nil {
		v := *u.FullName
		c.FullName = &v
	}
	if u.RejectionReason != nil {
		v := *u.RejectionReason
		c.RejectionReason = &v
	}
	return &c
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *MemoryRepository) Insert(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := models.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, common.ErrEmailTaken
	}
	if _, ok := r.byID[user.ID]; ok {
		return nil, common.ErrEmailTaken
	}

	stored := cloneUser(user)
	stored.Email = email
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}

	r.byID[stored.ID] = stored
	r.byEmail[email] = stored.ID
	return cloneUser(stored), nil
}

func (r *MemoryRepository) ConditionalUpdateStatus(_ context.Context, id string, expected, next models.Status, reason *string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || u.Status != expected {
		return nil, common.ErrInvalidState
	}

	u.Status = next
	u.RejectionReason = nil
	if next == models.StatusRejected && reason != nil {
		v := *reason
		u.RejectionReason = &v
	}
	u.UpdatedAt = r.now()
	return cloneUser(u), nil
}

func (r *MemoryRepository) ListByStatus(_ context.Context, status models.Status, limit, offset int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*models.User, 0)
	for _, u := range r.byID {
		if u.Status == status {
			matched = append(matched, u)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	result := make([]*models.User, 0, limit)
	if offset >= len(matched) {
		return result, nil
	}
	end := min(offset+limit, len(matched))
	for _, u := range matched[offset:end] {
		result = append(result, cloneUser(u))
	}
	return result, nil
}

func (r *MemoryRepository) CountByStatus(_ context.Context, status models.Status) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, u := range r.byID {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.IsActive = active
	u.UpdatedAt = r.now()
	return nil
}
