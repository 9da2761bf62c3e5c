package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ManuelReschke/PropertiPro/app/models"
)

// MemoryUserRepository is a map backed UserRepository for tests and local tooling
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func NewMemoryUserRepository(users ...*models.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[uint]models.User)}
	for _, u := range users {
		_ = r.Create(context.Background(), u)
	}
	return r
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	} else if user.ID > r.nextID {
		r.nextID = user.ID
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// MemoryListingRepository is a map backed ListingRepository for tests and local tooling
type MemoryListingRepository struct {
	mu       sync.Mutex
	nextID   uint
	listings map[string]models.Listing
}

func NewMemoryListingRepository(listings ...models.Listing) *MemoryListingRepository {
	r := &MemoryListingRepository{listings: make(map[string]models.Listing)}
	for i := range listings {
		l := listings[i]
		_ = r.Create(context.Background(), &l)
	}
	return r
}

func (r *MemoryListingRepository) FetchByID(ctx context.Context, id string) (*models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, ErrListingNotFound
	}
	return cloneListing(l), nil
}

func (r *MemoryListingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Listing, 0)
	for _, l := range r.listings {
		if l.UserID == userID {
			out = append(out, *cloneListing(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	listing.ID = r.nextID
	if listing.UUID == "" {
		listing.UUID = uuid.NewString()
	}
	if listing.Status == "" {
		listing.Status = models.ListingStatusPending
	}
	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now
	r.listings[listing.UUID] = *cloneListing(*listing)
	return nil
}

func (r *MemoryListingRepository) Update(ctx context.Context, listing *models.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.UUID]; !ok || listing.ID == 0 {
		return ErrListingNotFound
	}
	listing.UpdatedAt = time.Now()
	r.listings[listing.UUID] = *cloneListing(*listing)
	return nil
}

func (r *MemoryListingRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

// Len returns the number of stored listings
func (r *MemoryListingRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listings)
}

func cloneListing(l models.Listing) *models.Listing {
	l.Features = append([]string(nil), l.Features...)
	l.Images = append([]string(nil), l.Images...)
	return &l
}
