// Package listingform implements the create/edit form of a property listing:
// the province, city and district cascade, feature tags, image attachment
// and the guarded submit.
package listingform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/constants"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/upload"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/validation"
)

// concurrent image decodes per AttachImages call
const imageWorkers = 4

var (
	ErrSubmitPending = errors.New("a submission for this listing is already in progress")
	ErrNotOwner      = errors.New("listing belongs to another user")
	ErrNotReady      = errors.New("listing has not been loaded yet")
	ErrTooManyImages = fmt.Errorf("Maksimal %d foto per iklan", MaxImages)
)

// LocationSource answers the reference data questions of the cascade
type LocationSource interface {
	Cities(provinceID string) []locations.City
	Districts(cityID string) []locations.District
	CityInProvince(cityID, provinceID string) bool
	DistrictInCity(districtID, cityID string) bool
}

// Store persists listings
type Store interface {
	FetchByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
}

// ValidationError carries the itemised messages of a rejected form
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "listing form is invalid: " + strings.Join(e.Messages, "; ")
}

// ImageError reports one selected file that could not be attached
type ImageError struct {
	Filename string
	Err      error
}

func (e *ImageError) Error() string {
	return e.Filename + ": " + e.Err.Error()
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

type Editor struct {
	Form    FormData
	ID      string
	OwnerID uint

	record    *models.Listing
	ready     bool
	locations LocationSource

	mu      sync.Mutex
	pending bool
}

// NewEditor starts a new listing for owner with the default form
func NewEditor(locs LocationSource, ownerID uint) *Editor {
	return &Editor{
		Form:      NewFormData(),
		OwnerID:   ownerID,
		locations: locs,
		ready:     true,
	}
}

// NewEditEditor prepares an editor for an existing listing; it is not ready until Load succeeds
func NewEditEditor(locs LocationSource, ownerID uint, id string) *Editor {
	return &Editor{ID: id, OwnerID: ownerID, locations: locs}
}

// Load fetches the listing and fills the form from it
func (e *Editor) Load(ctx context.Context, store Store) error {
	l, err := store.FetchByID(ctx, e.ID)
	if err != nil {
		return err
	}
	if l.UserID != e.OwnerID {
		return ErrNotOwner
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.record = l
	e.Form = FromListing(l)
	e.ready = true
	return nil
}

// Ready reports whether the form can be shown
func (e *Editor) Ready() bool {
	return e.ready
}

func (e *Editor) IsEdit() bool {
	return e.ID != ""
}

// Bind replaces the form with posted values and repairs the location cascade
func (e *Editor) Bind(f FormData) {
	if f.Features == nil {
		f.Features = []string{}
	}
	f.Images = keepStoredImages(f.Images)
	e.Form = f
	e.Normalize()
}

// keepStoredImages drops posted image references that could not have come
// out of AttachImages or an existing listing, and caps them at MaxImages.
func keepStoredImages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ref := range in {
		if len(out) == MaxImages {
			break
		}
		if upload.IsStoredImage(ref) {
			out = append(out, ref)
		}
	}
	return out
}

// SetProvince selects a province. City and district are cleared when the
// city is not part of it.
func (e *Editor) SetProvince(id string) {
	e.Form.Province = id
	if !e.locations.CityInProvince(e.Form.City, id) {
		e.Form.City = ""
		e.Form.District = ""
	}
}

// SetCity selects a city, clearing the district when it is not part of it
func (e *Editor) SetCity(id string) {
	e.Form.City = id
	if !e.locations.DistrictInCity(e.Form.District, id) {
		e.Form.District = ""
	}
}

func (e *Editor) SetDistrict(id string) {
	e.Form.District = id
}

// Normalize re-applies the cascade rules and the feature rules to the whole form
func (e *Editor) Normalize() {
	if e.Form.City != "" && !e.locations.CityInProvince(e.Form.City, e.Form.Province) {
		e.Form.City = ""
		e.Form.District = ""
	}
	if e.Form.District != "" && !e.locations.DistrictInCity(e.Form.District, e.Form.City) {
		e.Form.District = ""
	}

	features := e.Form.Features
	e.Form.Features = make([]string, 0, len(features))
	for _, f := range features {
		e.AddFeature(f)
	}
}

// Cities lists the cities of the selected province
func (e *Editor) Cities() []locations.City {
	if e.Form.Province == "" {
		return nil
	}
	return e.locations.Cities(e.Form.Province)
}

// Districts lists the districts of the selected city
func (e *Editor) Districts() []locations.District {
	if e.Form.City == "" {
		return nil
	}
	return e.locations.Districts(e.Form.City)
}

// AddFeature appends a trimmed feature. Empty values and exact duplicates are ignored.
func (e *Editor) AddFeature(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, f := range e.Form.Features {
		if f == s {
			return false
		}
	}
	e.Form.Features = append(e.Form.Features, s)
	return true
}

func (e *Editor) RemoveFeature(s string) bool {
	for i, f := range e.Form.Features {
		if f == s {
			e.Form.Features = append(e.Form.Features[:i:i], e.Form.Features[i+1:]...)
			return true
		}
	}
	return false
}

// AttachImages converts the selected files and appends them in selection
// order. Files are read concurrently; results are committed only after all
// reads finished and only if ctx is still alive. Files that fail are skipped
// and reported together in the returned error.
func (e *Editor) AttachImages(ctx context.Context, files []upload.Source) error {
	if len(files) == 0 {
		return nil
	}
	if len(e.Form.Images)+len(files) > MaxImages {
		return ErrTooManyImages
	}

	results := make([]string, len(files))
	failures := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageWorkers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			url, err := upload.ReadAsDataURL(gctx, f)
			if err != nil {
				failures[i] = &ImageError{Filename: f.Filename(), Err: err}
				return nil
			}
			results[i] = url
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	for _, url := range results {
		if url != "" {
			e.Form.Images = append(e.Form.Images, url)
		}
	}
	return errors.Join(failures...)
}

// RemoveImage drops the image at index; out of range is a no-op
func (e *Editor) RemoveImage(index int) bool {
	if index < 0 || index >= len(e.Form.Images) {
		return false
	}
	e.Form.Images = append(e.Form.Images[:index:index], e.Form.Images[index+1:]...)
	return true
}

// Validate returns the itemised problems of the current form
func (e *Editor) Validate() []string {
	return validation.Struct(e.Form)
}

// Pending reports whether a submit is in flight
func (e *Editor) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Submit validates and persists the form and returns where to go next.
// A second Submit while one is in flight fails with ErrSubmitPending, so
// does a concurrent submit of the same listing from another request (guard).
func (e *Editor) Submit(ctx context.Context, store Store, guard Guard) (string, error) {
	e.mu.Lock()
	if e.pending {
		e.mu.Unlock()
		return "", ErrSubmitPending
	}
	e.pending = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.pending = false
		e.mu.Unlock()
	}()

	if !e.ready {
		return "", ErrNotReady
	}
	e.Normalize()
	if msgs := e.Validate(); len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}

	release, err := guard.Acquire(ctx, e.guardKey())
	if err != nil {
		return "", err
	}
	defer release()

	listing := &models.Listing{UserID: e.OwnerID}
	if e.record != nil {
		cp := *e.record
		listing = &cp
	}
	if err := e.Form.ApplyTo(listing); err != nil {
		return "", &ValidationError{Messages: []string{err.Error()}}
	}

	if e.IsEdit() {
		err = store.Update(ctx, listing)
	} else {
		err = store.Create(ctx, listing)
	}
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.record = listing
	e.ID = listing.UUID
	slog.Info("[Listing] saved", "listing_id", listing.UUID, "user_id", e.OwnerID, "premium", e.Form.MakePremium)
	return e.NextURL(), nil
}

// NextURL is the destination after a successful submit
func (e *Editor) NextURL() string {
	if e.Form.MakePremium {
		return constants.PremiumUpgradeURL(e.ID)
	}
	return constants.ListingsRoute
}

func (e *Editor) guardKey() string {
	id := e.ID
	if id == "" {
		id = constants.NewListingPlaceholder
	}
	return fmt.Sprintf("%d:%s", e.OwnerID, id)
}
