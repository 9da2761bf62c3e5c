// Package dashboard filters, sorts and manages the listings shown on a
// user's "my listings" page.
package dashboard

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/constants"
)

const FilterAll = "all"

const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "title"
	SortViews  = "views"
)

// SortOptions in display order
var SortOptions = []models.Option{
	{Value: SortNewest, Label: "Terbaru"},
	{Value: SortOldest, Label: "Terlama"},
	{Value: SortTitle, Label: "Judul A-Z"},
	{Value: SortViews, Label: "Paling Dilihat"},
}

// Query is the filter and sort state of the page. Empty or "all" means no filter.
type Query struct {
	Search string `json:"q"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Sort   string `json:"sort"`
}

// ParseQuery fills in the page defaults
func ParseQuery(search, status, typ, sortKey string) Query {
	q := Query{Search: search, Status: status, Type: typ, Sort: sortKey}
	if q.Status == "" {
		q.Status = FilterAll
	}
	if q.Type == "" {
		q.Type = FilterAll
	}
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	return q
}

// Apply returns the listings matching q in q's order. The input is not modified.
func Apply(listings []models.UserListing, q Query) []models.UserListing {
	search := strings.ToLower(q.Search)
	out := make([]models.UserListing, 0, len(listings))
	for _, l := range listings {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Location.City), search) {
			continue
		}
		if active(q.Status) && l.Status != q.Status {
			continue
		}
		if active(q.Type) && l.Type != q.Type {
			continue
		}
		out = append(out, l)
	}

	switch q.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortTitle:
		col := collate.New(language.Indonesian)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Title, out[j].Title) < 0 })
	case SortViews:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	}
	return out
}

func active(filter string) bool {
	return filter != "" && filter != FilterAll
}

// Collection is the page's working set of listings
type Collection struct {
	items []models.UserListing
}

func NewCollection(items []models.UserListing) *Collection {
	return &Collection{items: append([]models.UserListing(nil), items...)}
}

func (c *Collection) View(q Query) []models.UserListing {
	return Apply(c.items, q)
}

func (c *Collection) Len() int {
	return len(c.items)
}

func (c *Collection) Get(id string) (models.UserListing, bool) {
	for _, l := range c.items {
		if l.ID == id {
			return l, true
		}
	}
	return models.UserListing{}, false
}

// Delete removes the listing with id. An unknown id leaves the collection unchanged.
func (c *Collection) Delete(id string) bool {
	for i, l := range c.items {
		if l.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// UpgradeURL is where the premium action of a listing leads
func UpgradeURL(id string) string {
	return constants.PremiumUpgradeURL(id)
}

// Summary counts listings for the header badges
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Expired  int `json:"expired"`
	Pending  int `json:"pending"`
	Premium  int `json:"premium"`
}

func Summarize(listings []models.UserListing) Summary {
	s := Summary{Total: len(listings)}
	for _, l := range listings {
		switch l.Status {
		case models.ListingStatusActive:
			s.Active++
		case models.ListingStatusInactive:
			s.Inactive++
		case models.ListingStatusExpired:
			s.Expired++
		case models.ListingStatusPending:
			s.Pending++
		}
		if l.IsPremium {
			s.Premium++
		}
	}
	return s
}
