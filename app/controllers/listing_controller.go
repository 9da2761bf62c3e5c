package controllers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/constants"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/dashboard"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/listingform"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/upload"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/viewmodel"
)

const (
	msgListingNotFound = "Iklan tidak ditemukan"
	msgSaveFailed      = "Gagal menyimpan iklan. Silakan coba lagi."
	msgSubmitPending   = "Iklan sedang disimpan, mohon tunggu sebentar."
)

// ListingController serves the listing dashboard and the listing editor
type ListingController struct {
	listings  repository.ListingRepository
	locations *locations.Directory
	guard     listingform.Guard
}

func NewListingController(listings repository.ListingRepository, locs *locations.Directory, guard listingform.Guard) *ListingController {
	return &ListingController{listings: listings, locations: locs, guard: guard}
}

// userListings loads the dashboard projection of all listings of userID
func (lc *ListingController) userListings(ctx context.Context, userID uint) ([]models.UserListing, error) {
	records, err := lc.listings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.UserListing, 0, len(records))
	for i := range records {
		city, province := lc.locations.Summary(records[i].CityID, records[i].ProvinceID)
		out = append(out, records[i].ToUserListing(models.ListingLocation{City: city, Province: province}))
	}
	return out, nil
}

func (lc *ListingController) HandleIndex(c *fiber.Ctx) error {
	items, err := lc.userListings(c.UserContext(), usercontext.GetUserID(c))
	if err != nil {
		slog.Error("[Listing] could not load listings", "user_id", usercontext.GetUserID(c), "error", err)
		return fiber.ErrInternalServerError
	}

	q := dashboard.ParseQuery(c.Query("q"), c.Query("status"), c.Query("type"), c.Query("sort"))
	return render(c, fiber.StatusOK, "dashboard/listings", viewmodel.ListingDashboard{
		Layout:   newLayout(c, "Iklan Saya"),
		Listings: dashboard.NewCollection(items).View(q),
		Query:    q,
		Summary:  dashboard.Summarize(items),
		Statuses: models.ListingStatuses,
		Types:    models.PropertyTypes,
		Sorts:    dashboard.SortOptions,
	})
}

func (lc *ListingController) HandleNew(c *fiber.Ctx) error {
	editor := listingform.NewEditor(lc.locations, usercontext.GetUserID(c))
	return lc.renderEditor(c, fiber.StatusOK, editor, nil, "")
}

func (lc *ListingController) HandleEdit(c *fiber.Ctx) error {
	editor, err := lc.loadEditor(c)
	if err != nil {
		return err
	}
	if editor == nil {
		return flashError(c, msgListingNotFound, constants.ListingsRoute)
	}
	return lc.renderEditor(c, fiber.StatusOK, editor, nil, "")
}

// loadEditor returns nil without error when the listing is missing or foreign
func (lc *ListingController) loadEditor(c *fiber.Ctx) (*listingform.Editor, error) {
	editor := listingform.NewEditEditor(lc.locations, usercontext.GetUserID(c), c.Params("id"))
	err := editor.Load(c.UserContext(), lc.listings)
	switch {
	case errors.Is(err, repository.ErrListingNotFound), errors.Is(err, listingform.ErrNotOwner):
		return nil, nil
	case err != nil:
		slog.Error("[Listing] could not load listing", "listing_id", editor.ID, "error", err)
		return nil, fiber.ErrInternalServerError
	}
	return editor, nil
}

// HandleSave handles every button of the editor form. The posted form is the
// editor state; "action" selects what to do with it.
func (lc *ListingController) HandleSave(c *fiber.Ctx) error {
	editor := listingform.NewEditor(lc.locations, usercontext.GetUserID(c))
	if c.Params("id") != "" {
		var err error
		if editor, err = lc.loadEditor(c); err != nil {
			return err
		}
		if editor == nil {
			return flashError(c, msgListingNotFound, constants.ListingsRoute)
		}
	}

	var posted listingform.FormData
	if err := c.BodyParser(&posted); err != nil {
		slog.Warn("[Listing] malformed form", "error", err)
		return fiber.ErrBadRequest
	}
	editor.Bind(posted)

	action, arg, _ := strings.Cut(c.FormValue("action", "save"), ":")
	switch action {
	case "add-feature":
		feature := c.FormValue("new_feature")
		if editor.AddFeature(feature) {
			feature = ""
		}
		return lc.renderEditor(c, fiber.StatusOK, editor, nil, feature)
	case "remove-feature":
		editor.RemoveFeature(arg)
		return lc.renderEditor(c, fiber.StatusOK, editor, nil, "")
	case "remove-image":
		if idx, err := strconv.Atoi(arg); err == nil {
			editor.RemoveImage(idx)
		}
		return lc.renderEditor(c, fiber.StatusOK, editor, nil, "")
	case "attach-images":
		return lc.renderEditor(c, fiber.StatusOK, editor, lc.attach(c, editor), "")
	case "refresh-locations":
		return lc.renderEditor(c, fiber.StatusOK, editor, nil, "")
	}

	if msgs := lc.attach(c, editor); len(msgs) > 0 {
		return lc.renderEditor(c, fiber.StatusUnprocessableEntity, editor, msgs, "")
	}

	next, err := editor.Submit(c.UserContext(), lc.listings, lc.guard)
	var verr *listingform.ValidationError
	switch {
	case errors.As(err, &verr):
		return lc.renderEditor(c, fiber.StatusUnprocessableEntity, editor, verr.Messages, "")
	case errors.Is(err, listingform.ErrSubmitPending):
		return lc.renderEditor(c, fiber.StatusConflict, editor, []string{msgSubmitPending}, "")
	case err != nil:
		slog.Error("[Listing] save failed", "listing_id", editor.ID, "error", err)
		return lc.renderEditor(c, fiber.StatusOK, editor, []string{msgSaveFailed}, "")
	}

	return flashSuccess(c, "Iklan berhasil disimpan.", next)
}

// attach converts the uploaded files of the request, returning display messages for failures
func (lc *ListingController) attach(c *fiber.Ctx, editor *listingform.Editor) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	var files []upload.Source
	for _, fh := range form.File["image_files"] {
		if fh.Filename == "" || fh.Size == 0 {
			continue
		}
		files = append(files, upload.FromFileHeader(fh))
	}

	err = editor.AttachImages(c.UserContext(), files)
	if err == nil {
		return nil
	}
	if errors.Is(err, listingform.ErrTooManyImages) {
		return []string{err.Error()}
	}
	slog.Info("[Listing] some images were rejected", "error", err)

	var msgs []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, imageMessage(e))
		}
		return msgs
	}
	return []string{imageMessage(err)}
}

func imageMessage(err error) string {
	var ie *listingform.ImageError
	if !errors.As(err, &ie) {
		return "Gagal mengunggah foto"
	}
	switch {
	case errors.Is(ie.Err, upload.ErrUnsupportedExtension),
		errors.Is(ie.Err, upload.ErrUnsupportedType),
		errors.Is(ie.Err, upload.ErrScriptableContent),
		errors.Is(ie.Err, upload.ErrImageTooLarge):
		return ie.Filename + ": " + ie.Err.Error()
	}
	return ie.Filename + ": file tidak dapat dibaca sebagai gambar"
}

func (lc *ListingController) renderEditor(c *fiber.Ctx, status int, editor *listingform.Editor, errs []string, newFeature string) error {
	title := "Pasang Iklan"
	action := constants.NewListingRoute
	if editor.IsEdit() {
		title = "Edit Iklan"
		action = constants.EditListingURL(editor.ID)
	}
	return render(c, status, "dashboard/listing_form", viewmodel.ListingEditor{
		Layout:        newLayout(c, title),
		Form:          editor.Form,
		IsEdit:        editor.IsEdit(),
		Action:        action,
		Errors:        errs,
		NewFeature:    newFeature,
		Provinces:     lc.locations.Provinces(),
		Cities:        editor.Cities(),
		Districts:     editor.Districts(),
		PropertyTypes: models.PropertyTypes,
		Purposes:      models.Purposes,
		PriceUnits:    models.PriceUnits,
		MaxImages:     listingform.MaxImages,
	})
}

func (lc *ListingController) HandleCityOptions(c *fiber.Ctx) error {
	opts := make([]models.Option, 0)
	for _, city := range lc.locations.Cities(c.Query("province")) {
		opts = append(opts, models.Option{Value: city.ID, Label: city.Name})
	}
	return c.Render("partials/options", viewmodel.LocationOptions{
		Placeholder: "Pilih Kota/Kabupaten",
		Selected:    c.Query("selected"),
		Options:     opts,
	})
}

func (lc *ListingController) HandleDistrictOptions(c *fiber.Ctx) error {
	opts := make([]models.Option, 0)
	for _, d := range lc.locations.Districts(c.Query("city")) {
		opts = append(opts, models.Option{Value: d.ID, Label: d.Name})
	}
	return c.Render("partials/options", viewmodel.LocationOptions{
		Placeholder: "Pilih Kecamatan",
		Selected:    c.Query("selected"),
		Options:     opts,
	})
}

// ownedListing finds id among the listings of the current user
func (lc *ListingController) ownedListing(c *fiber.Ctx, id string) (*dashboard.Collection, models.UserListing, bool, error) {
	items, err := lc.userListings(c.UserContext(), usercontext.GetUserID(c))
	if err != nil {
		return nil, models.UserListing{}, false, err
	}
	col := dashboard.NewCollection(items)
	l, ok := col.Get(id)
	return col, l, ok, nil
}

func (lc *ListingController) HandleDeleteConfirm(c *fiber.Ctx) error {
	_, listing, ok, err := lc.ownedListing(c, c.Params("id"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !ok {
		return flashError(c, msgListingNotFound, constants.ListingsRoute)
	}
	return render(c, fiber.StatusOK, "dashboard/listing_delete", viewmodel.ListingDelete{
		Layout:  newLayout(c, "Hapus Iklan"),
		Listing: listing,
	})
}

// HandleDelete removes a listing after the explicit confirmation. Unknown ids change nothing.
func (lc *ListingController) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.FormValue("confirm") != "yes" {
		return flashInfo(c, "Penghapusan dibatalkan.", constants.ListingsRoute)
	}

	col, _, _, err := lc.ownedListing(c, id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !col.Delete(id) {
		return flashInfo(c, msgListingNotFound, constants.ListingsRoute)
	}
	if err := lc.listings.Delete(c.UserContext(), id); err != nil && !errors.Is(err, repository.ErrListingNotFound) {
		slog.Error("[Listing] delete failed", "listing_id", id, "error", err)
		return flashError(c, "Gagal menghapus iklan. Silakan coba lagi.", constants.ListingsRoute)
	}

	slog.Info("[Listing] deleted", "listing_id", id, "user_id", usercontext.GetUserID(c))
	return flashSuccess(c, "Iklan berhasil dihapus.", constants.ListingsRoute)
}

// HandleUpgrade hands the listing over to the premium upgrade flow as a full page navigation
func (lc *ListingController) HandleUpgrade(c *fiber.Ctx) error {
	id := c.Params("id")
	_, listing, ok, err := lc.ownedListing(c, id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !ok {
		return flashError(c, msgListingNotFound, constants.ListingsRoute)
	}
	if !listing.CanUpgrade() {
		return flashInfo(c, "Hanya iklan aktif yang belum Premium yang dapat di-upgrade.", constants.ListingsRoute)
	}

	target := dashboard.UpgradeURL(id)
	if isHTMX(c) {
		c.Set("HX-Redirect", target)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (lc *ListingController) HandlePremiumUpgrade(c *fiber.Ctx) error {
	id := c.Query("propertyId", constants.NewListingPlaceholder)
	page := viewmodel.PremiumUpgrade{Layout: newLayout(c, "Premium"), PropertyID: id}
	if id != constants.NewListingPlaceholder {
		if _, listing, ok, err := lc.ownedListing(c, id); err == nil && ok {
			page.Listing = &listing
		}
	}
	return render(c, fiber.StatusOK, "premium/upgrade", page)
}
