package catalog

import (
	"slices"
	"strings"
)

// FacetSet lists the distinct values and numeric bounds present in a set of
// records. The storefront builds its filter controls from it.
type FacetSet struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Transmissions []string `json:"transmissions"`
	FuelTypes     []string `json:"fuel_types"`
	Colors        []string `json:"colors"`
	Locations     []string `json:"locations"`
	PriceRange    Range    `json:"price_range"`
	YearRange     Range    `json:"year_range"`
	MileageRange  Range    `json:"mileage_range"`
	Total         int      `json:"total"`
	Featured      int      `json:"featured"`
}

type valueSet map[string]struct{}

func (s valueSet) add(v string) {
	if strings.TrimSpace(v) != "" {
		s[v] = struct{}{}
	}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.SortFunc(out, compareFolded)
	return out
}

// Facets summarises records. Ranges are zero when records is empty.
func Facets(records []Vehicle) FacetSet {
	brands, categories := valueSet{}, valueSet{}
	transmissions, fuels := valueSet{}, valueSet{}
	colors, locations := valueSet{}, valueSet{}

	fs := FacetSet{Total: len(records)}
	for i, v := range records {
		brands.add(v.Brand)
		categories.add(v.Category.Name)
		transmissions.add(v.Transmission)
		fuels.add(v.FuelType)
		colors.add(v.Color)
		locations.add(v.Location)
		if v.Featured {
			fs.Featured++
		}

		year, mileage := float64(v.Year), v.MileageOrZero()
		if i == 0 {
			fs.PriceRange = Range{Min: v.Price, Max: v.Price}
			fs.YearRange = Range{Min: year, Max: year}
			fs.MileageRange = Range{Min: mileage, Max: mileage}
			continue
		}
		fs.PriceRange = widen(fs.PriceRange, v.Price)
		fs.YearRange = widen(fs.YearRange, year)
		fs.MileageRange = widen(fs.MileageRange, mileage)
	}

	fs.Brands = brands.sorted()
	fs.Categories = categories.sorted()
	fs.Transmissions = transmissions.sorted()
	fs.FuelTypes = fuels.sorted()
	fs.Colors = colors.sorted()
	fs.Locations = locations.sorted()
	return fs
}

func widen(r Range, v float64) Range {
	return Range{Min: min(r.Min, v), Max: max(r.Max, v)}
}
