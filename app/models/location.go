package models

import (
	"time"

	"github.com/mmcloughlin/geohash"
	"gorm.io/gorm"
)

const (
	LocationTypeProvince    = "province"
	LocationTypeCity        = "city"
	LocationTypeDistrict    = "district"
	LocationTypeSubdistrict = "subdistrict"
)

// geohashPrecision of 7 chars is roughly 150m, enough for district centroids
const geohashPrecision = 7

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is an administrative region as managed by the moderation backend
type Location struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name"`
	Type          string         `gorm:"type:varchar(20);index" json:"type"`
	ParentID      *uint          `gorm:"index" json:"parent_id,omitempty"`
	Slug          string         `gorm:"type:varchar(170);index" json:"slug"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	PropertyCount int            `gorm:"default:0" json:"property_count"`
	Coordinates   *Coordinates   `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates,omitempty"`
	Geohash       string         `gorm:"type:varchar(12);index" json:"geohash,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave keeps the geohash in sync with the coordinates
func (l *Location) BeforeSave(tx *gorm.DB) error {
	l.Geohash = l.ComputeGeohash()
	return nil
}

// ComputeGeohash encodes the coordinates, empty when there are none
func (l *Location) ComputeGeohash() string {
	if l.Coordinates == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(l.Coordinates.Latitude, l.Coordinates.Longitude, geohashPrecision)
}

// LocationHierarchy is a location with its resolved tree neighbours
type LocationHierarchy struct {
	Location
	Children []*LocationHierarchy `json:"children,omitempty"`
	Parent   *Location            `json:"parent,omitempty"`
}

// BuildLocationHierarchy arranges a flat list into trees. Locations whose parent
// is not part of the list become roots. Input order is kept among siblings.
func BuildLocationHierarchy(locations []Location) []*LocationHierarchy {
	nodes := make(map[uint]*LocationHierarchy, len(locations))
	for i := range locations {
		nodes[locations[i].ID] = &LocationHierarchy{Location: locations[i]}
	}

	roots := make([]*LocationHierarchy, 0)
	for i := range locations {
		node := nodes[locations[i].ID]
		if locations[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*locations[i].ParentID]
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parentLoc := parent.Location
		node.Parent = &parentLoc
		parent.Children = append(parent.Children, node)
	}
	return roots
}
