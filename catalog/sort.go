package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey names one supported comparator.
type SortKey string

const (
	SortByName    SortKey = "name"
	SortByModel   SortKey = "model"
	SortByBrand   SortKey = "brand"
	SortByPrice   SortKey = "price"
	SortByYear    SortKey = "year"
	SortByMileage SortKey = "mileage"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder maps anything other than "desc" (any case) to Ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Descending)) {
		return Descending
	}
	return Ascending
}

func compareFolded(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// comparatorFor returns the three-way comparator for key and whether key
// is one we know.
func comparatorFor(key SortKey) (func(a, b Vehicle) int, bool) {
	switch SortKey(strings.ToLower(string(key))) {
	case SortByName, SortByModel:
		return func(a, b Vehicle) int { return compareFolded(a.Model, b.Model) }, true
	case SortByBrand:
		return func(a, b Vehicle) int { return compareFolded(a.Brand, b.Brand) }, true
	case SortByPrice:
		return func(a, b Vehicle) int { return cmp.Compare(a.Price, b.Price) }, true
	case SortByYear:
		return func(a, b Vehicle) int { return cmp.Compare(a.Year, b.Year) }, true
	case SortByMileage:
		return func(a, b Vehicle) int { return cmp.Compare(a.MileageOrZero(), b.MileageOrZero()) }, true
	}
	return nil, false
}

// IsSortKey reports whether key selects a known comparator.
func IsSortKey(key SortKey) bool {
	_, ok := comparatorFor(key)
	return ok
}

// Sort returns a stably sorted copy of records. An unknown key sorts by
// name ascending regardless of order.
func Sort(records []Vehicle, key SortKey, order SortOrder) []Vehicle {
	compare, ok := comparatorFor(key)
	sign := 1
	if !ok {
		compare, _ = comparatorFor(SortByName)
	} else if order == Descending {
		sign = -1
	}

	out := slices.Clone(records)
	if out == nil {
		out = []Vehicle{}
	}
	slices.SortStableFunc(out, func(a, b Vehicle) int {
		return sign * compare(a, b)
	})
	return out
}
