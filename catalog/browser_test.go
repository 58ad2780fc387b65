package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BrowserSuite struct {
	suite.Suite
	browser *Browser
}

func (s *BrowserSuite) SetupTest() {
	s.browser = NewBrowser(inventory())
	s.browser.SetPageSize(2)
}

func (s *BrowserSuite) TestStartsWithDefaults() {
	b := NewBrowser(inventory())
	s.Equal(1, b.CurrentPage())
	s.Equal(DefaultPageSize, b.PageSize())
	s.Equal(NewFilterState(), b.Filter())
	s.Len(b.Current().Items, 6)
}

func (s *BrowserSuite) TestFilterChangeResetsPage() {
	s.browser.SetPage(3)
	s.Equal(3, s.browser.CurrentPage())

	s.browser.Update(func(f *FilterState) { f.Category = "Pickup" })
	s.Equal(1, s.browser.CurrentPage())
	s.Equal(2, s.browser.Current().TotalPages)
}

func (s *BrowserSuite) TestPageSizeChangeResetsPage() {
	s.browser.SetPage(2)
	s.browser.SetPageSize(4)
	s.Equal(1, s.browser.CurrentPage())
	s.Len(s.browser.Current().Items, 4)
}

func (s *BrowserSuite) TestResetRestoresDefaults() {
	s.browser.Update(func(f *FilterState) { f.Brand = "Ford" })
	s.browser.Reset()
	s.Equal(NewFilterState(), s.browser.Filter())
	s.Equal(1, s.browser.CurrentPage())
}

func (s *BrowserSuite) TestOutOfRangePageIsEmpty() {
	s.browser.SetPage(10)
	page := s.browser.Current()
	s.Empty(page.Items)
	s.Equal(10, page.Page)
	s.Equal(3, page.TotalPages)
}

func (s *BrowserSuite) TestVisibleTracksRecordChanges() {
	s.browser.Update(func(f *FilterState) { f.Brand = "Toyota" })
	s.Len(s.browser.Visible(), 2)

	s.browser.SetRecords(inventory()[2:])
	s.Empty(s.browser.Visible(), "a new snapshot must not reuse the old result")
}

func (s *BrowserSuite) TestWalkingPagesCoversEverything() {
	s.browser.Update(func(f *FilterState) {
		f.SortBy = SortByPrice
		f.SortOrder = Descending
	})

	var seen []string
	for page := 1; page <= s.browser.Current().TotalPages; page++ {
		s.browser.SetPage(page)
		seen = append(seen, ids(s.browser.Current().Items)...)
	}
	s.Equal([]string{"4", "2", "3", "6", "5", "1"}, seen)
}

func TestBrowserSuite(t *testing.T) {
	suite.Run(t, new(BrowserSuite))
}

func TestFacets(t *testing.T) {
	fs := Facets(inventory())

	assert.Equal(t, 6, fs.Total)
	assert.Equal(t, 2, fs.Featured)
	assert.Equal(t, []string{"BMW", "Ford", "mazda", "Nissan", "Toyota"}, fs.Brands)
	assert.Equal(t, []string{"Pickup", "Sedan", "SUV"}, fs.Categories)
	assert.Equal(t, []string{"Automatic", "Manual"}, fs.Transmissions)
	assert.Equal(t, []string{"Diesel", "Hybrid", "Petrol"}, fs.FuelTypes)
	assert.Equal(t, []string{"Beira", "Maputo", "Nampula"}, fs.Locations)
	assert.Equal(t, Range{Min: 15000, Max: 61000}, fs.PriceRange)
	assert.Equal(t, Range{Min: 2018, Max: 2022}, fs.YearRange)
	assert.Equal(t, Range{Min: 0, Max: 67000}, fs.MileageRange)
}

func TestFacetsOfNothing(t *testing.T) {
	fs := Facets(nil)
	assert.Equal(t, 0, fs.Total)
	assert.Empty(t, fs.Brands)
	assert.Equal(t, Range{}, fs.PriceRange)
}
