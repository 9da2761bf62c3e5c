package repository

import (
	"context"
	"errors"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// ListingRepository is the listing persistence collaborator of the editor and dashboard.
// Listings are addressed by their public UUID.
type ListingRepository interface {
	FetchByID(ctx context.Context, id string) (*models.Listing, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id string) error
}

// ReportRepository reads the moderation backlog
type ReportRepository interface {
	List(ctx context.Context, status string, limit int) ([]models.Report, error)
	Stats(ctx context.Context) (*models.ModerationStats, error)
}

// CategoryRepository reads property categories
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
}

// LocationRepository reads administrative locations
type LocationRepository interface {
	List(ctx context.Context) ([]models.Location, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Listing  ListingRepository
	Report   ReportRepository
	Category CategoryRepository
	Location LocationRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Listing:  NewListingRepository(db),
		Report:   NewReportRepository(db),
		Category: NewCategoryRepository(db),
		Location: NewLocationRepository(db),
	}
}
