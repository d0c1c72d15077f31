package users

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/cache"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// Cache is the byte store used by CachedRepository. Incr bumps an integer
// counter and (re)sets its expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// cachedUser is the cache encoding of a user. The password hash is never cached.
type cachedUser struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        *string   `json:"full_name,omitempty"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CachedRepository is a read-through cache for FindByID in front of another
// Repository. Users returned from the cache carry no PasswordHash. Cache
// failures fall back to the wrapped repository.
//
// Entries are keyed by a per-user version. Invalidate bumps the version, so
// a read that started before a write can only fill a key nobody reads
// anymore.
type CachedRepository struct {
	Repository
	cache Cache
	ttl   time.Duration
	log   logging.Logger
}

func NewCachedRepository(next Repository, c Cache, ttl time.Duration, log logging.Logger) *CachedRepository {
	return &CachedRepository{Repository: next, cache: c, ttl: ttl, log: log}
}

func versionKey(id string) string {
	return "v:" + id
}

func entryKey(id string, version int64) string {
	return id + ":" + strconv.FormatInt(version, 10)
}

// version returns the current version of id; a missing counter is 0.
func (r *CachedRepository) version(ctx context.Context, id string) (int64, error) {
	b, err := r.cache.Get(ctx, versionKey(id))
	if errors.Is(err, cache.ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(b), 10, 64)
}

func (r *CachedRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	version, verr := r.version(ctx, id)
	if verr == nil {
		if b, err := r.cache.Get(ctx, entryKey(id, version)); err == nil {
			if u, err := decodeCachedUser(b); err == nil {
				return u, nil
			}
		}
	}

	u, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Without a known version the entry could not be invalidated later.
	if verr != nil {
		return u, nil
	}
	if b, err := encodeCachedUser(u); err == nil {
		if err := r.cache.Set(ctx, entryKey(id, version), b, r.ttl); err != nil {
			r.log.Warn(ctx, "user cache set failed", "user_id", id, "error", err)
		}
	}
	return u, nil
}

func (r *CachedRepository) ConditionalUpdateStatus(ctx context.Context, id string, expected, next models.Status, reason *string) (*models.User, error) {
	u, err := r.Repository.ConditionalUpdateStatus(ctx, id, expected, next, reason)
	r.Invalidate(ctx, id)
	return u, err
}

func (r *CachedRepository) SetActive(ctx context.Context, id string, active bool) error {
	err := r.Repository.SetActive(ctx, id, active)
	r.Invalidate(ctx, id)
	return err
}

// Invalidate retires every cached copy of a user. The version counter
// outlives any entry written under it. A failure is logged and reported.
func (r *CachedRepository) Invalidate(ctx context.Context, id string) error {
	if _, err := r.cache.Incr(ctx, versionKey(id), 2*r.ttl); err != nil {
		r.log.Error(ctx, "user cache invalidation failed", "user_id", id, "error", err)
		return err
	}
	return nil
}

func encodeCachedUser(u *models.User) ([]byte, error) {
	return json.Marshal(cachedUser{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		Status:          string(u.Status),
		RejectionReason: u.RejectionReason,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	})
}

func decodeCachedUser(b []byte) (*models.User, error) {
	var c cachedUser
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	role, err := models.ParseRole(c.Role)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseStatus(c.Status)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:              c.ID,
		Email:           c.Email,
		FullName:        c.FullName,
		Role:            role,
		Status:          status,
		RejectionReason: c.RejectionReason,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}
