package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

func changedSet(names ...string) func(string) bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestBrowseOptionsFilter(t *testing.T) {
	o := &browseOptions{
		search:     "hilux",
		brand:      "Toyota",
		maxPrice:   30000,
		minYear:    2022,
		maxYear:    2018,
		maxMileage: 50000,
		featured:   false,
		sortBy:     "PRICE",
		order:      "desc",
	}

	f := o.filter(changedSet("max-price", "min-year", "max-year", "max-mileage", "featured"))

	assert.Equal(t, "hilux", f.Search)
	assert.Equal(t, "Toyota", f.Brand)
	assert.Equal(t, catalog.SortByPrice, f.SortBy)
	assert.Equal(t, catalog.Descending, f.SortOrder)

	require.NotNil(t, f.PriceRange)
	assert.True(t, math.IsInf(f.PriceRange.Min, -1))
	assert.Equal(t, 30000.0, f.PriceRange.Max)

	require.NotNil(t, f.YearRange)
	assert.Equal(t, catalog.Range{Min: 2018, Max: 2022}, *f.YearRange)

	require.NotNil(t, f.MileageRange)
	assert.Equal(t, 50000.0, f.MileageRange.Max)

	require.NotNil(t, f.Featured)
	assert.False(t, *f.Featured)
}

func TestBrowseOptionsFilterLeavesUnsetConstraintsOpen(t *testing.T) {
	o := &browseOptions{sortBy: string(catalog.SortByName), order: "asc"}
	f := o.filter(changedSet())

	assert.Nil(t, f.PriceRange)
	assert.Nil(t, f.YearRange)
	assert.Nil(t, f.MileageRange)
	assert.Nil(t, f.Featured)
	assert.Equal(t, catalog.NewFilterState(), f)
}

func TestMinMileageHidesUnknownMileage(t *testing.T) {
	records := []catalog.Vehicle{
		{ID: "1", Brand: "Toyota", Model: "Hilux", Mileage: catalog.Mileage(18000)},
		{ID: "2", Brand: "Ford", Model: "Ranger"},
		{ID: "3", Brand: "Nissan", Model: "Navara", Mileage: catalog.Mileage(0)},
	}
	o := &browseOptions{minMileage: 1, sortBy: "name", order: "asc"}
	f := o.filter(changedSet("min-mileage"))

	require.NotNil(t, f.MileageRange)
	assert.True(t, math.IsInf(f.MileageRange.Max, 1))

	b := catalog.NewBrowser(records)
	b.SetFilter(f)
	require.Len(t, b.Visible(), 1)
	assert.Equal(t, "Hilux", b.Visible()[0].Model)
}

func TestRenderPage(t *testing.T) {
	records := []catalog.Vehicle{
		{Brand: "Toyota", Model: "Hilux", Year: 2021, Price: 32000, Mileage: catalog.Mileage(18000), Featured: true, Category: catalog.Category{Name: "Pickup"}},
		{Brand: "Ford", Model: "Ranger", Year: 2020, Price: 29000, Category: catalog.Category{Name: "Pickup"}},
		{Brand: "Nissan", Model: "X-Trail", Year: 2018, Price: 17500, Category: catalog.Category{Name: "SUV"}},
	}
	b := catalog.NewBrowser(records)
	b.SetPageSize(2)

	var out bytes.Buffer
	require.NoError(t, renderPage(&out, b.Current()))

	text := out.String()
	assert.Contains(t, text, "Toyota Hilux ★")
	assert.Contains(t, text, "Ford Ranger")
	assert.NotContains(t, text, "X-Trail")
	assert.Contains(t, text, "page 1 of 2 (3 cars)")
}

func TestRenderFacets(t *testing.T) {
	facets := catalog.Facets([]catalog.Vehicle{
		{Brand: "Toyota", Model: "Hilux", Year: 2021, Price: 32000, Featured: true},
		{Brand: "Ford", Model: "Ranger", Year: 2019, Price: 29000},
	})

	var out bytes.Buffer
	require.NoError(t, renderFacets(&out, facets))
	assert.Contains(t, out.String(), "Ford, Toyota")
	assert.Contains(t, out.String(), "2019 - 2021")
	assert.Contains(t, out.String(), "2 (1 featured)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Olá, o Hi…", truncate("Olá, o Hilux ainda está disponível?", 10))
}
