package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildLocationHierarchy(t *testing.T) {
	locs := []Location{
		{ID: 1, Name: "DKI Jakarta", Type: LocationTypeProvince},
		{ID: 2, Name: "Jakarta Selatan", Type: LocationTypeCity, ParentID: uintPtr(1)},
		{ID: 3, Name: "Kebayoran Baru", Type: LocationTypeDistrict, ParentID: uintPtr(2)},
		{ID: 4, Name: "Jakarta Barat", Type: LocationTypeCity, ParentID: uintPtr(1)},
		{ID: 5, Name: "Orphan", Type: LocationTypeCity, ParentID: uintPtr(99)},
	}

	roots := BuildLocationHierarchy(locs)
	require.Len(t, roots, 2)
	assert.Equal(t, "DKI Jakarta", roots[0].Name)
	assert.Equal(t, "Orphan", roots[1].Name)
	assert.Nil(t, roots[1].Parent)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "Jakarta Selatan", roots[0].Children[0].Name)
	assert.Equal(t, "Jakarta Barat", roots[0].Children[1].Name)
	require.NotNil(t, roots[0].Children[0].Parent)
	assert.Equal(t, uint(1), roots[0].Children[0].Parent.ID)

	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "Kebayoran Baru", roots[0].Children[0].Children[0].Name)
}

func TestBuildLocationHierarchy_SelfParentIsRoot(t *testing.T) {
	roots := BuildLocationHierarchy([]Location{{ID: 7, Name: "Loop", ParentID: uintPtr(7)}})
	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].Children)
}

func TestComputeGeohash(t *testing.T) {
	l := Location{}
	assert.Empty(t, l.ComputeGeohash())

	l.Coordinates = &Coordinates{Latitude: -6.2088, Longitude: 106.8456}
	hash := l.ComputeGeohash()
	assert.Len(t, hash, geohashPrecision)
	assert.Equal(t, "qqguxmd", hash)
}

func TestToUserListing(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	l := Listing{
		UUID:      "a1",
		Title:     "Rumah Minimalis",
		Type:      PropertyTypeHouse,
		Purpose:   PurposeSale,
		Price:     decimal.RequireFromString("2.5"),
		PriceUnit: PriceUnitBillion,
		Status:    ListingStatusActive,
		Views:     245,
		CreatedAt: created,
	}

	ul := l.ToUserListing(ListingLocation{City: "Jakarta Selatan", Province: "DKI Jakarta"})
	assert.Equal(t, "a1", ul.ID)
	assert.Equal(t, PlaceholderImage, ul.Image)
	assert.Equal(t, "Jakarta Selatan", ul.Location.City)
	assert.True(t, ul.Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, created, ul.CreatedAt)

	l.Images = []string{"data:image/png;base64,AAAA", "data:image/png;base64,BBBB"}
	assert.Equal(t, "data:image/png;base64,AAAA", l.ToUserListing(ListingLocation{}).Image)
}

func TestCanUpgrade(t *testing.T) {
	tests := []struct {
		status  string
		premium bool
		want    bool
	}{
		{ListingStatusActive, false, true},
		{ListingStatusActive, true, false},
		{ListingStatusPending, false, false},
		{ListingStatusExpired, false, false},
	}
	for _, tt := range tests {
		ul := UserListing{Status: tt.status, IsPremium: tt.premium}
		assert.Equal(t, tt.want, ul.CanUpgrade(), "%s premium=%v", tt.status, tt.premium)
	}
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Ruko", LabelFor(PropertyTypes, PropertyTypeShophouse))
	assert.Equal(t, "Menunggu Review", LabelFor(ListingStatuses, ListingStatusPending))
	assert.Equal(t, "villa", LabelFor(PropertyTypes, "villa"))
}

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("Budi Santoso", "budi@example.com", "Rahasia123")
	require.NoError(t, err)
	assert.Equal(t, ROLE_USER, u.Role)
	assert.True(t, u.IsActive())
	assert.False(t, u.IsAdmin())
	assert.True(t, u.CheckPassword("Rahasia123"))
	assert.False(t, u.CheckPassword("rahasia123"))

	_, err = CreateUser("Bu", "budi@example.com", "Rahasia123")
	assert.Error(t, err)
}
