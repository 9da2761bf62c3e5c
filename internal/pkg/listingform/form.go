package listingform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ManuelReschke/PropertiPro/app/models"
)

const MaxImages = 10

// FormData is the editable state of a listing. Numbers are kept as typed so
// that a half-filled form can be rendered again unchanged.
type FormData struct {
	Title        string   `form:"title" label:"Judul" validate:"required,max=150"`
	Description  string   `form:"description" label:"Deskripsi" validate:"required"`
	Type         string   `form:"type" label:"Jenis properti" validate:"required,oneof=rumah apartemen kondominium ruko gedung-komersial ruang-industri tanah lainnya"`
	Purpose      string   `form:"purpose" label:"Tujuan" validate:"required,oneof=jual sewa"`
	Price        string   `form:"price" label:"Harga" validate:"required,positive_decimal,price_range"`
	PriceUnit    string   `form:"price_unit" label:"Satuan harga" validate:"required,oneof=juta miliar"`
	Bedrooms     string   `form:"bedrooms" label:"Kamar tidur" validate:"count,count_range"`
	Bathrooms    string   `form:"bathrooms" label:"Kamar mandi" validate:"count,count_range"`
	BuildingSize string   `form:"building_size" label:"Luas bangunan" validate:"count,count_range"`
	LandSize     string   `form:"land_size" label:"Luas tanah" validate:"count,count_range"`
	Province     string   `form:"province" label:"Provinsi" validate:"required"`
	City         string   `form:"city" label:"Kota/Kabupaten" validate:"required"`
	District     string   `form:"district" label:"Kecamatan" validate:"required"`
	Address      string   `form:"address" label:"Alamat" validate:"required,max=255"`
	Features     []string `form:"features" label:"Fasilitas"`
	Images       []string `form:"images" label:"Foto" validate:"max=10"`
	MakePremium  bool     `form:"make_premium"`
}

// NewFormData returns the defaults of a new listing
func NewFormData() FormData {
	return FormData{
		Type:      models.PropertyTypeHouse,
		Purpose:   models.PurposeSale,
		PriceUnit: models.PriceUnitMillion,
		Features:  []string{},
		Images:    []string{},
	}
}

// FromListing fills a form from a stored record
func FromListing(l *models.Listing) FormData {
	return FormData{
		Title:        l.Title,
		Description:  l.Description,
		Type:         l.Type,
		Purpose:      l.Purpose,
		Price:        priceString(l.Price),
		PriceUnit:    l.PriceUnit,
		Bedrooms:     countString(l.Bedrooms),
		Bathrooms:    countString(l.Bathrooms),
		BuildingSize: countString(l.BuildingSize),
		LandSize:     countString(l.LandSize),
		Province:     l.ProvinceID,
		City:         l.CityID,
		District:     l.DistrictID,
		Address:      l.Address,
		Features:     append([]string{}, l.Features...),
		Images:       append([]string{}, l.Images...),
	}
}

// ApplyTo copies the form onto l. The form must have passed validation.
func (f FormData) ApplyTo(l *models.Listing) error {
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	counts := []struct {
		dst *int
		raw string
	}{
		{&l.Bedrooms, f.Bedrooms},
		{&l.Bathrooms, f.Bathrooms},
		{&l.BuildingSize, f.BuildingSize},
		{&l.LandSize, f.LandSize},
	}
	for _, c := range counts {
		n, err := parseCount(c.raw)
		if err != nil {
			return err
		}
		*c.dst = n
	}

	l.Title = strings.TrimSpace(f.Title)
	l.Description = f.Description
	l.Type = f.Type
	l.Purpose = f.Purpose
	l.Price = price
	l.PriceUnit = f.PriceUnit
	l.ProvinceID = f.Province
	l.CityID = f.City
	l.DistrictID = f.District
	l.Address = strings.TrimSpace(f.Address)
	l.Features = append([]string{}, f.Features...)
	l.Images = append([]string{}, f.Images...)
	return nil
}

func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("count %q: %w", raw, err)
	}
	return n, nil
}

func countString(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func priceString(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
