package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
	ListingStatusExpired  = "expired"
	ListingStatusPending  = "pending"
)

const (
	PurposeSale = "jual"
	PurposeRent = "sewa"
)

const (
	PriceUnitMillion = "juta"
	PriceUnitBillion = "miliar"
)

const (
	PropertyTypeHouse       = "rumah"
	PropertyTypeApartment   = "apartemen"
	PropertyTypeCondominium = "kondominium"
	PropertyTypeShophouse   = "ruko"
	PropertyTypeCommercial  = "gedung-komersial"
	PropertyTypeIndustrial  = "ruang-industri"
	PropertyTypeLand        = "tanah"
	PropertyTypeOther       = "lainnya"
)

// Option is a value/label pair for select inputs
type Option struct {
	Value string
	Label string
}

// PropertyTypes lists every property type in display order
var PropertyTypes = []Option{
	{PropertyTypeHouse, "Rumah"},
	{PropertyTypeApartment, "Apartemen"},
	{PropertyTypeCondominium, "Kondominium"},
	{PropertyTypeShophouse, "Ruko"},
	{PropertyTypeCommercial, "Gedung Komersial"},
	{PropertyTypeIndustrial, "Ruang Industri"},
	{PropertyTypeLand, "Tanah"},
	{PropertyTypeOther, "Lainnya"},
}

var ListingStatuses = []Option{
	{ListingStatusActive, "Aktif"},
	{ListingStatusInactive, "Tidak Aktif"},
	{ListingStatusExpired, "Kedaluwarsa"},
	{ListingStatusPending, "Menunggu Review"},
}

var Purposes = []Option{
	{PurposeSale, "Dijual"},
	{PurposeRent, "Disewa"},
}

var PriceUnits = []Option{
	{PriceUnitMillion, "Juta"},
	{PriceUnitBillion, "Miliar"},
}

// PlaceholderImage is shown for listings without any attached image
const PlaceholderImage = "/images/placeholder-property.svg"

// Listing is the persisted property listing of a user
type Listing struct {
	ID               uint            `gorm:"primaryKey" json:"-"`
	UUID             string          `gorm:"type:char(36);uniqueIndex" json:"id"`
	UserID           uint            `gorm:"index;not null" json:"user_id"`
	Title            string          `gorm:"type:varchar(150);not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	Type             string          `gorm:"type:varchar(30);index" json:"type"`
	Purpose          string          `gorm:"type:varchar(10)" json:"purpose"`
	Price            decimal.Decimal `gorm:"type:decimal(12,3)" json:"price"`
	PriceUnit        string          `gorm:"type:varchar(10)" json:"price_unit"`
	Bedrooms         int             `json:"bedrooms"`
	Bathrooms        int             `json:"bathrooms"`
	BuildingSize     int             `json:"building_size"`
	LandSize         int             `json:"land_size"`
	ProvinceID       string          `gorm:"type:varchar(10)" json:"province_id"`
	CityID           string          `gorm:"type:varchar(10);index" json:"city_id"`
	DistrictID       string          `gorm:"type:varchar(10)" json:"district_id"`
	Address          string          `gorm:"type:varchar(255)" json:"address"`
	Features         []string        `gorm:"serializer:json;type:text" json:"features"`
	Images           []string        `gorm:"serializer:json;type:longtext" json:"images"`
	Status           string          `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsPremium        bool            `gorm:"default:false" json:"is_premium"`
	PremiumExpiresAt *time.Time      `json:"premium_expires_at,omitempty"`
	Views            int             `gorm:"default:0" json:"views"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate assigns the public id and the initial review status
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == "" {
		l.UUID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = ListingStatusPending
	}
	return nil
}

// CoverImage returns the first attached image or the placeholder
func (l *Listing) CoverImage() string {
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return PlaceholderImage
}

// ListingLocation is the human readable location summary of a listing
type ListingLocation struct {
	City     string `json:"city"`
	Province string `json:"province"`
}

// UserListing is the dashboard view of a listing
type UserListing struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Type             string          `json:"type"`
	Purpose          string          `json:"purpose"`
	Price            decimal.Decimal `json:"price"`
	PriceUnit        string          `json:"price_unit"`
	Status           string          `json:"status"`
	IsPremium        bool            `json:"is_premium"`
	PremiumExpiresAt *time.Time      `json:"premium_expires_at,omitempty"`
	Views            int             `json:"views"`
	CreatedAt        time.Time       `json:"created_at"`
	Image            string          `json:"image"`
	Location         ListingLocation `json:"location"`
}

// ToUserListing projects the record into its dashboard view
func (l *Listing) ToUserListing(location ListingLocation) UserListing {
	return UserListing{
		ID:               l.UUID,
		Title:            l.Title,
		Type:             l.Type,
		Purpose:          l.Purpose,
		Price:            l.Price,
		PriceUnit:        l.PriceUnit,
		Status:           l.Status,
		IsPremium:        l.IsPremium,
		PremiumExpiresAt: l.PremiumExpiresAt,
		Views:            l.Views,
		CreatedAt:        l.CreatedAt,
		Image:            l.CoverImage(),
		Location:         location,
	}
}

// CanUpgrade reports whether the premium upgrade is offered for this listing
func (ul UserListing) CanUpgrade() bool {
	return !ul.IsPremium && ul.Status == ListingStatusActive
}

// LabelFor returns the label of value within opts or value itself
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
