package catalog

import (
	"strconv"
	"strings"
)

// Range is an inclusive [Min, Max] constraint.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether min <= value <= max.
func (r Range) Contains(value float64) bool {
	return r.Min <= value && value <= r.Max
}

// Normalized swaps the bounds if they were supplied in the wrong order.
func (r Range) Normalized() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// FilterState is the full set of constraints and the selected ordering for
// one browsing session. The zero value constrains nothing.
type FilterState struct {
	Search       string `json:"search"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	Transmission string `json:"transmission"`
	Color        string `json:"color"`
	FuelType     string `json:"fuel_type"`
	Location     string `json:"location"`

	PriceRange   *Range `json:"price_range,omitempty"`
	YearRange    *Range `json:"year_range,omitempty"`
	MileageRange *Range `json:"mileage_range,omitempty"`

	Featured *bool `json:"featured,omitempty"`

	SortBy    SortKey   `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// NewFilterState returns the defaults a catalog view starts with.
func NewFilterState() FilterState {
	return FilterState{SortBy: SortByName, SortOrder: Ascending}
}

// IsUnconstrained reports whether a categorical filter value is one of the
// sentinels meaning "any".
func IsUnconstrained(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, "todos") || strings.EqualFold(v, "all")
}

func matchesCategorical(filter, field string) bool {
	return IsUnconstrained(filter) || field == filter
}

func matchesRange(r *Range, value float64) bool {
	return r == nil || r.Contains(value)
}

// Matches is the per-record predicate: the AND of every active constraint.
//
// Unknown mileage counts as 0, so a minimum mileage above 0 excludes cars
// whose mileage was never recorded.
func Matches(v Vehicle, f FilterState) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.Model), needle) &&
			!strings.Contains(strings.ToLower(v.Brand), needle) {
			return false
		}
	}

	if !matchesCategorical(f.Category, v.Category.Name) ||
		!matchesCategorical(f.Brand, v.Brand) ||
		!matchesCategorical(f.Transmission, v.Transmission) ||
		!matchesCategorical(f.FuelType, v.FuelType) ||
		!matchesCategorical(f.Color, v.Color) ||
		!matchesCategorical(f.Location, v.Location) {
		return false
	}

	if !matchesRange(f.PriceRange, v.Price) ||
		!matchesRange(f.YearRange, float64(v.Year)) ||
		!matchesRange(f.MileageRange, v.MileageOrZero()) {
		return false
	}

	if f.Featured != nil && v.Featured != *f.Featured {
		return false
	}

	return true
}

// Filter keeps the records matching f, in their original order. The input
// slice is never modified.
func Filter(records []Vehicle, f FilterState) []Vehicle {
	out := make([]Vehicle, 0, len(records))
	for _, v := range records {
		if Matches(v, f) {
			out = append(out, v)
		}
	}
	return out
}

// Key is a canonical encoding of the filter state, used as a memo key.
func (f FilterState) Key() string {
	var b strings.Builder
	field := func(name, value string) {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(value))
		b.WriteByte(';')
	}
	categorical := func(name, value string) {
		if IsUnconstrained(value) {
			value = ""
		}
		field(name, value)
	}
	rng := func(name string, r *Range) {
		if r == nil {
			field(name, "")
			return
		}
		field(name, strconv.FormatFloat(r.Min, 'g', -1, 64)+".."+strconv.FormatFloat(r.Max, 'g', -1, 64))
	}

	field("q", f.Search)
	categorical("category", f.Category)
	categorical("brand", f.Brand)
	categorical("transmission", f.Transmission)
	categorical("color", f.Color)
	categorical("fuel", f.FuelType)
	categorical("location", f.Location)
	rng("price", f.PriceRange)
	rng("year", f.YearRange)
	rng("mileage", f.MileageRange)
	if f.Featured == nil {
		field("featured", "")
	} else {
		field("featured", strconv.FormatBool(*f.Featured))
	}
	field("sort", string(f.SortBy))
	field("order", string(f.SortOrder))
	return b.String()
}

// Bool is a small helper for the tri-state Featured field.
func Bool(b bool) *bool {
	return &b
}
