package listingform

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/upload"
)

func validForm() FormData {
	f := NewFormData()
	f.Title = "Rumah Minimalis di Serpong"
	f.Description = "Rumah 2 lantai dekat stasiun"
	f.Price = "2.5"
	f.PriceUnit = models.PriceUnitBillion
	f.Bedrooms = "3"
	f.Bathrooms = "2"
	f.Province = "p5"
	f.City = "c13"
	f.District = "d8"
	f.Address = "Jl. Raya Serpong No. 1"
	return f
}

func TestCascade_ProvinceChangeClearsCityAndDistrict(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	e.SetProvince("p5")
	e.SetCity("c13")
	e.SetDistrict("d7")

	e.SetProvince("p1")
	assert.Equal(t, "p1", e.Form.Province)
	assert.Empty(t, e.Form.City)
	assert.Empty(t, e.Form.District)
	assert.Len(t, e.Cities(), 5)
	assert.Empty(t, e.Districts())
}

func TestCascade_KeepsConsistentSelection(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	e.SetProvince("p5")
	e.SetCity("c13")
	e.SetDistrict("d7")

	e.SetProvince("p5")
	assert.Equal(t, "c13", e.Form.City)
	assert.Equal(t, "d7", e.Form.District)

	e.SetCity("c12")
	assert.Equal(t, "c12", e.Form.City)
	assert.Empty(t, e.Form.District)
	require.Len(t, e.Districts(), 1)
	assert.Equal(t, "Karawaci", e.Districts()[0].Name)
}

func TestBind_RepairsPostedCascade(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	f := validForm()
	f.Province = "p1"
	f.Features = []string{"Taman", " Taman ", "", "Kolam Renang"}
	e.Bind(f)

	assert.Empty(t, e.Form.City)
	assert.Empty(t, e.Form.District)
	assert.Equal(t, []string{"Taman", "Kolam Renang"}, e.Form.Features)
}

func TestBind_KeepsOnlyStoredImages(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	stored := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngOfWidth(t, 4))
	f := validForm()
	f.Images = []string{
		"data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==",
		stored,
		"not-an-image-at-all",
		"data:image/png;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==",
		"https://cdn.example.com/rumah.jpg",
		"javascript:alert(1)",
	}
	e.Bind(f)

	assert.Equal(t, []string{stored, "https://cdn.example.com/rumah.jpg"}, e.Form.Images)
}

func TestBind_CapsImages(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	f := validForm()
	for i := 0; i < MaxImages+3; i++ {
		f.Images = append(f.Images, "https://cdn.example.com/rumah.jpg")
	}
	e.Bind(f)

	assert.Len(t, e.Form.Images, MaxImages)
}

func TestFeatures(t *testing.T) {
	e := NewEditor(locations.Default(), 1)

	assert.True(t, e.AddFeature("Taman"))
	assert.False(t, e.AddFeature("Taman"))
	assert.True(t, e.AddFeature("  Pool  "))
	assert.False(t, e.AddFeature("   "))
	assert.True(t, e.AddFeature("taman"))
	assert.Equal(t, []string{"Taman", "Pool", "taman"}, e.Form.Features)

	assert.True(t, e.RemoveFeature("Pool"))
	assert.False(t, e.RemoveFeature("Pool"))
	assert.Equal(t, []string{"Taman", "taman"}, e.Form.Features)
}

type slowSource struct {
	name  string
	data  []byte
	delay time.Duration
}

func (s slowSource) Filename() string { return s.name }

func (s slowSource) Open() (io.ReadCloser, error) {
	time.Sleep(s.delay)
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func pngOfWidth(t *testing.T, w int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, 1))))
	return buf.Bytes()
}

func widthOf(t *testing.T, dataURL string) int {
	t.Helper()
	_, payload, ok := strings.Cut(dataURL, ";base64,")
	require.True(t, ok)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	return cfg.Width
}

func TestAttachImages_PreservesSelectionOrder(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	e.Form.Images = []string{"https://cdn.example.com/existing.jpg"}

	// earlier files finish last
	files := []upload.Source{
		slowSource{"a.png", pngOfWidth(t, 10), 60 * time.Millisecond},
		slowSource{"b.png", pngOfWidth(t, 20), 30 * time.Millisecond},
		slowSource{"c.png", pngOfWidth(t, 30), 0},
	}
	require.NoError(t, e.AttachImages(context.Background(), files))

	require.Len(t, e.Form.Images, 4)
	assert.Equal(t, "https://cdn.example.com/existing.jpg", e.Form.Images[0])
	assert.Equal(t, 10, widthOf(t, e.Form.Images[1]))
	assert.Equal(t, 20, widthOf(t, e.Form.Images[2]))
	assert.Equal(t, 30, widthOf(t, e.Form.Images[3]))
}

func TestAttachImages_SkipsBadFiles(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	files := []upload.Source{
		slowSource{name: "ok.png", data: pngOfWidth(t, 5)},
		slowSource{name: "notes.txt", data: []byte("hello")},
	}

	err := e.AttachImages(context.Background(), files)
	require.Error(t, err)
	var imgErr *ImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Equal(t, "notes.txt", imgErr.Filename)
	assert.ErrorIs(t, err, upload.ErrUnsupportedExtension)
	assert.Len(t, e.Form.Images, 1)
}

func TestAttachImages_CancelledCommitsNothing(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.AttachImages(ctx, []upload.Source{slowSource{name: "a.png", data: pngOfWidth(t, 5)}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, e.Form.Images)
}

func TestAttachImages_Limit(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	e.Form.Images = make([]string, MaxImages)
	err := e.AttachImages(context.Background(), []upload.Source{slowSource{name: "a.png", data: pngOfWidth(t, 5)}})
	assert.ErrorIs(t, err, ErrTooManyImages)
}

func TestRemoveImage(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	e.Form.Images = []string{"a", "b", "c"}

	assert.False(t, e.RemoveImage(3))
	assert.False(t, e.RemoveImage(-1))
	assert.True(t, e.RemoveImage(1))
	assert.Equal(t, []string{"a", "c"}, e.Form.Images)
}

func TestValidate(t *testing.T) {
	e := NewEditor(locations.Default(), 1)
	msgs := e.Validate()
	assert.Contains(t, msgs, "Judul wajib diisi")
	assert.Contains(t, msgs, "Harga wajib diisi")
	assert.Contains(t, msgs, "Provinsi wajib diisi")

	e.Form = validForm()
	assert.Empty(t, e.Validate())

	e.Form.Price = "-1"
	e.Form.Bedrooms = "dua"
	assert.Equal(t, []string{"Harga harus berupa angka lebih dari 0", "Kamar tidur harus berupa bilangan bulat"}, e.Validate())
}

func TestSubmit_ValidationNeverReachesStore(t *testing.T) {
	store := repository.NewMemoryListingRepository()
	e := NewEditor(locations.Default(), 1)

	_, err := e.Submit(context.Background(), store, NewMemoryGuard())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Messages)
	assert.Equal(t, 0, store.Len())
}

func TestSubmit_CreateAndPremiumRedirect(t *testing.T) {
	store := repository.NewMemoryListingRepository()

	e := NewEditor(locations.Default(), 7)
	e.Form = validForm()
	next, err := e.Submit(context.Background(), store, NewMemoryGuard())
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/listings", next)

	saved, err := store.FetchByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), saved.UserID)
	assert.True(t, decimal.RequireFromString("2.5").Equal(saved.Price))
	assert.Equal(t, 3, saved.Bedrooms)
	assert.Equal(t, models.ListingStatusPending, saved.Status)

	premium := NewEditor(locations.Default(), 7)
	premium.Form = validForm()
	premium.Form.MakePremium = true
	next, err = premium.Submit(context.Background(), store, NewMemoryGuard())
	require.NoError(t, err)
	assert.Equal(t, "/premium/upgrade?propertyId="+premium.ID, next)
}

func TestNextURL_PlaceholderForUnsavedListing(t *testing.T) {
	e := NewEditor(locations.Default(), 7)
	e.Form.MakePremium = true
	assert.Equal(t, "/premium/upgrade?propertyId=new", e.NextURL())
}

func TestLoadAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryListingRepository()
	seed := &models.Listing{UserID: 7, Status: models.ListingStatusActive, Views: 12}
	require.NoError(t, validForm().ApplyTo(seed))
	require.NoError(t, store.Create(ctx, seed))

	e := NewEditEditor(locations.Default(), 7, seed.UUID)
	assert.False(t, e.Ready())
	require.NoError(t, e.Load(ctx, store))
	assert.True(t, e.Ready())
	assert.Equal(t, "2.5", e.Form.Price)
	assert.Equal(t, "d8", e.Form.District)

	e.Form.Title = "Rumah Serpong Siap Huni"
	_, err := e.Submit(ctx, store, NewMemoryGuard())
	require.NoError(t, err)

	saved, err := store.FetchByID(ctx, seed.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Rumah Serpong Siap Huni", saved.Title)
	assert.Equal(t, models.ListingStatusActive, saved.Status)
	assert.Equal(t, 12, saved.Views)
	assert.Equal(t, 1, store.Len())

	other := NewEditEditor(locations.Default(), 8, seed.UUID)
	assert.ErrorIs(t, other.Load(ctx, store), ErrNotOwner)
	missing := NewEditEditor(locations.Default(), 7, "does-not-exist")
	assert.ErrorIs(t, missing.Load(ctx, store), repository.ErrListingNotFound)

	_, err = missing.Submit(ctx, store, NewMemoryGuard())
	assert.ErrorIs(t, err, ErrNotReady)
}

// blockingStore holds Create until released
type blockingStore struct {
	*repository.MemoryListingRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingStore) Create(ctx context.Context, l *models.Listing) error {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return s.MemoryListingRepository.Create(ctx, l)
}

func TestSubmit_SecondConcurrentSubmitIsRefused(t *testing.T) {
	store := &blockingStore{
		MemoryListingRepository: repository.NewMemoryListingRepository(),
		entered:                 make(chan struct{}),
		release:                 make(chan struct{}),
	}
	e := NewEditor(locations.Default(), 1)
	e.Form = validForm()

	done := make(chan error, 1)
	go func() {
		_, err := e.Submit(context.Background(), store, NewMemoryGuard())
		done <- err
	}()
	<-store.entered

	assert.True(t, e.Pending())
	_, err := e.Submit(context.Background(), store, NewMemoryGuard())
	assert.ErrorIs(t, err, ErrSubmitPending)

	close(store.release)
	require.NoError(t, <-done)
	assert.False(t, e.Pending())
	assert.Equal(t, 1, store.Len())
}

func TestSubmit_GuardRefusesParallelRequests(t *testing.T) {
	guard := NewMemoryGuard()
	release, err := guard.Acquire(context.Background(), "1:new")
	require.NoError(t, err)

	e := NewEditor(locations.Default(), 1)
	e.Form = validForm()
	_, err = e.Submit(context.Background(), repository.NewMemoryListingRepository(), guard)
	assert.ErrorIs(t, err, ErrSubmitPending)

	release()
	_, err = e.Submit(context.Background(), repository.NewMemoryListingRepository(), guard)
	assert.NoError(t, err)
}

// cancellingStore cancels the request while the write is in flight
type cancellingStore struct {
	*repository.MemoryListingRepository
	cancel context.CancelFunc
}

func (s *cancellingStore) Create(ctx context.Context, l *models.Listing) error {
	err := s.MemoryListingRepository.Create(ctx, l)
	s.cancel()
	return err
}

func TestSubmit_CancelledAfterWriteDoesNotCommitState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &cancellingStore{MemoryListingRepository: repository.NewMemoryListingRepository(), cancel: cancel}
	e := NewEditor(locations.Default(), 1)
	e.Form = validForm()

	_, err := e.Submit(ctx, store, NewMemoryGuard())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, e.ID)
	assert.False(t, e.IsEdit())
}
