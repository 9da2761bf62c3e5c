// Package locations serves the province → city → district reference lists that
// back the cascading selectors of the listing editor.
package locations

type Province struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProvinceID string `json:"provinceId"`
}

type District struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"cityId"`
}

// Directory answers lookups over three flat lists. It is read only after
// construction and safe for concurrent use.
type Directory struct {
	provinces []Province
	cities    []City
	districts []District

	provinceByID map[string]Province
	cityByID     map[string]City
	districtByID map[string]District
}

// New builds a directory over the given lists. List order is the display order.
func New(provinces []Province, cities []City, districts []District) *Directory {
	d := &Directory{
		provinces:    provinces,
		cities:       cities,
		districts:    districts,
		provinceByID: make(map[string]Province, len(provinces)),
		cityByID:     make(map[string]City, len(cities)),
		districtByID: make(map[string]District, len(districts)),
	}
	for _, p := range provinces {
		d.provinceByID[p.ID] = p
	}
	for _, c := range cities {
		d.cityByID[c.ID] = c
	}
	for _, ds := range districts {
		d.districtByID[ds.ID] = ds
	}
	return d
}

var defaultDirectory = New(provinces, cities, districts)

// Default returns the directory compiled into the binary
func Default() *Directory {
	return defaultDirectory
}

func (d *Directory) Provinces() []Province {
	out := make([]Province, len(d.provinces))
	copy(out, d.provinces)
	return out
}

// Cities returns the cities of provinceID; an empty id yields none
func (d *Directory) Cities(provinceID string) []City {
	out := make([]City, 0)
	if provinceID == "" {
		return out
	}
	for _, c := range d.cities {
		if c.ProvinceID == provinceID {
			out = append(out, c)
		}
	}
	return out
}

// Districts returns the districts of cityID; an empty id yields none
func (d *Directory) Districts(cityID string) []District {
	out := make([]District, 0)
	if cityID == "" {
		return out
	}
	for _, ds := range d.districts {
		if ds.CityID == cityID {
			out = append(out, ds)
		}
	}
	return out
}

func (d *Directory) Province(id string) (Province, bool) {
	p, ok := d.provinceByID[id]
	return p, ok
}

func (d *Directory) City(id string) (City, bool) {
	c, ok := d.cityByID[id]
	return c, ok
}

func (d *Directory) District(id string) (District, bool) {
	ds, ok := d.districtByID[id]
	return ds, ok
}

// CityInProvince reports whether cityID is a child of provinceID
func (d *Directory) CityInProvince(cityID, provinceID string) bool {
	c, ok := d.cityByID[cityID]
	return ok && c.ProvinceID == provinceID
}

// DistrictInCity reports whether districtID is a child of cityID
func (d *Directory) DistrictInCity(districtID, cityID string) bool {
	ds, ok := d.districtByID[districtID]
	return ok && ds.CityID == cityID
}

// Summary resolves display names for a city/province pair. Unknown ids are
// returned unchanged so stale records still render something.
func (d *Directory) Summary(cityID, provinceID string) (city string, province string) {
	city, province = cityID, provinceID
	if c, ok := d.cityByID[cityID]; ok {
		city = c.Name
	}
	if p, ok := d.provinceByID[provinceID]; ok {
		province = p.Name
	}
	return city, province
}
