package repository

import (
	"context"
	"errors"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"gorm.io/gorm"
)

// listingRepository implements the ListingRepository interface
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// FetchByID retrieves a listing by its public id
func (r *listingRepository) FetchByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListByUser retrieves all listings of a user, newest first
func (r *listingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

// Create inserts a new listing, assigning its public id
func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Update saves all fields of an existing listing
func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	if listing.ID == 0 {
		return ErrListingNotFound
	}
	return r.db.WithContext(ctx).Save(listing).Error
}

// Delete soft deletes a listing by its public id
func (r *listingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
