package catalog

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleRecords() []Vehicle {
	return []Vehicle{
		{ID: "a", Year: 2020, Price: 100},
		{ID: "b", Year: 2022, Price: 50},
		{ID: "c", Year: 2021, Price: 100},
	}
}

func inventory() []Vehicle {
	return []Vehicle{
		{ID: "1", Brand: "Toyota", Model: "Corolla", Category: Category{ID: "c1", Name: "Sedan"}, Year: 2019, Price: 15000, Mileage: Mileage(42000), Transmission: "Automatic", FuelType: "Petrol", Color: "White", Location: "Maputo"},
		{ID: "2", Brand: "Toyota", Model: "Hilux", Category: Category{ID: "c2", Name: "Pickup"}, Year: 2021, Price: 32000, Mileage: Mileage(18000), Transmission: "Manual", FuelType: "Diesel", Color: "Silver", Location: "Beira", Featured: true},
		{ID: "3", Brand: "Ford", Model: "Ranger", Category: Category{ID: "c2", Name: "Pickup"}, Year: 2020, Price: 29000, Transmission: "Manual", FuelType: "Diesel", Color: "Blue", Location: "Maputo"},
		{ID: "4", Brand: "BMW", Model: "X5", Category: Category{ID: "c3", Name: "SUV"}, Year: 2022, Price: 61000, Mileage: Mileage(9000), Transmission: "Automatic", FuelType: "Hybrid", Color: "Black", Location: "Maputo", Featured: true},
		{ID: "5", Brand: "mazda", Model: "cx-5", Category: Category{ID: "c3", Name: "SUV"}, Year: 2018, Price: 21000, Mileage: Mileage(67000), Transmission: "Automatic", FuelType: "Petrol", Color: "Red", Location: "Nampula"},
		{ID: "6", Brand: "Nissan", Model: "Navara", Category: Category{ID: "c2", Name: "Pickup"}, Year: 2021, Price: 29000, Mileage: Mileage(30000), Transmission: "Manual", FuelType: "Diesel", Color: "White", Location: "Beira"},
	}
}

func ids(vs []Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v.ID)
	}
	return out
}

func TestSortByPriceAscendingKeepsTieOrder(t *testing.T) {
	f := FilterState{SortBy: SortByPrice, SortOrder: Ascending}
	got := ComputeVisible(exampleRecords(), f)

	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	assert.Equal(t, []float64{50, 100, 100}, []float64{got[0].Price, got[1].Price, got[2].Price})
}

func TestSortByYearDescending(t *testing.T) {
	f := FilterState{SortBy: SortByYear, SortOrder: Descending}
	got := ComputeVisible(exampleRecords(), f)

	assert.Equal(t, []int{2022, 2021, 2020}, []int{got[0].Year, got[1].Year, got[2].Year})
}

func TestPriceRangeFilter(t *testing.T) {
	f := NewFilterState()
	f.PriceRange = &Range{Min: 0, Max: 80}

	got := Filter(exampleRecords(), f)
	require.Len(t, got, 1)
	assert.Equal(t, ID("b"), got[0].ID)
}

func TestPaginateSecondPageOfThree(t *testing.T) {
	ordered := ComputeVisible(exampleRecords(), FilterState{SortBy: SortByYear, SortOrder: Ascending})

	p := Paginate(ordered, 2, 2)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 3, p.TotalItems)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 2022, p.Items[0].Year)
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	records := inventory()
	before := slices.Clone(records)

	f := NewFilterState()
	f.Brand = "Toyota"
	first := ComputeVisible(records, f)
	second := ComputeVisible(records, f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, records, "input must not be reordered or mutated")
}

func TestFilterSubsetProperty(t *testing.T) {
	records := inventory()
	states := []FilterState{
		{},
		{Search: "o"},
		{Brand: "Toyota"},
		{Category: "Pickup", Transmission: "Manual"},
		{FuelType: "Diesel", PriceRange: &Range{Min: 29000, Max: 30000}},
		{YearRange: &Range{Min: 2020, Max: 2021}, Location: "Beira"},
		{MileageRange: &Range{Min: 1, Max: 50000}},
		{Featured: Bool(true)},
		{Featured: Bool(false), Color: "White"},
	}

	for i, f := range states {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := Filter(records, f)
			kept := map[ID]bool{}
			for _, v := range got {
				assert.True(t, Matches(v, f), "kept record %s must match", v.ID)
				assert.Contains(t, records, v)
				kept[v.ID] = true
			}
			for _, v := range records {
				if !kept[v.ID] {
					assert.False(t, Matches(v, f), "dropped record %s must not match", v.ID)
				}
			}
		})
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	got := Filter(inventory(), FilterState{Category: "Pickup"})
	assert.Equal(t, []string{"2", "3", "6"}, ids(got))
}

func TestSearchIsCaseInsensitiveOverModelAndBrand(t *testing.T) {
	records := inventory()

	assert.Equal(t, []string{"1", "2"}, ids(Filter(records, FilterState{Search: "TOYO"})))
	assert.Equal(t, []string{"5"}, ids(Filter(records, FilterState{Search: "CX-5"})))
	assert.Empty(t, Filter(records, FilterState{Search: "Maputo"}), "location is not searchable")
}

func TestCategoricalSentinelsAndExactMatch(t *testing.T) {
	records := inventory()

	for _, sentinel := range []string{"", "Todos", "all", "ALL"} {
		assert.Len(t, Filter(records, FilterState{Brand: sentinel}), len(records), "sentinel %q", sentinel)
	}
	assert.Empty(t, Filter(records, FilterState{Brand: "toyota"}), "categorical match is case-sensitive")
	assert.Equal(t, []string{"4", "5"}, ids(Filter(records, FilterState{Category: "SUV"})))
}

func TestRangesAreInclusive(t *testing.T) {
	records := inventory()

	got := Filter(records, FilterState{PriceRange: &Range{Min: 29000, Max: 32000}})
	assert.Equal(t, []string{"2", "3", "6"}, ids(got))

	got = Filter(records, FilterState{YearRange: &Range{Min: 2022, Max: 2022}})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestUnknownMileageCountsAsZero(t *testing.T) {
	records := inventory()

	withZero := Filter(records, FilterState{MileageRange: &Range{Min: 0, Max: 20000}})
	assert.Equal(t, []string{"2", "3", "4"}, ids(withZero))

	// A positive minimum drops the Ranger, whose mileage is unknown.
	positive := Filter(records, FilterState{MileageRange: &Range{Min: 1, Max: 20000}})
	assert.Equal(t, []string{"2", "4"}, ids(positive))
}

func TestFeaturedTriState(t *testing.T) {
	records := inventory()

	assert.Len(t, Filter(records, FilterState{}), 6)
	assert.Equal(t, []string{"2", "4"}, ids(Filter(records, FilterState{Featured: Bool(true)})))
	assert.Equal(t, []string{"1", "3", "5", "6"}, ids(Filter(records, FilterState{Featured: Bool(false)})))
}

func TestMatchesToleratesMissingFields(t *testing.T) {
	f := FilterState{
		Search:       "x",
		Category:     "SUV",
		Color:        "Red",
		MileageRange: &Range{Min: 0, Max: 10},
		Featured:     Bool(true),
	}
	assert.NotPanics(t, func() { Matches(Vehicle{}, f) })
	assert.False(t, Matches(Vehicle{}, f))
	assert.True(t, Matches(Vehicle{}, FilterState{MileageRange: &Range{Min: 0, Max: 10}}))
}

func TestSortStability(t *testing.T) {
	records := inventory()
	got := Sort(records, SortByPrice, Ascending)

	// Ranger (3) and Navara (6) share a price; input order must hold.
	var tied []string
	for _, v := range got {
		if v.Price == 29000 {
			tied = append(tied, string(v.ID))
		}
	}
	assert.Equal(t, []string{"3", "6"}, tied)

	got = Sort(records, SortByPrice, Descending)
	tied = tied[:0]
	for _, v := range got {
		if v.Price == 29000 {
			tied = append(tied, string(v.ID))
		}
	}
	assert.Equal(t, []string{"3", "6"}, tied, "descending keeps ties in input order too")
}

func TestDirectionSymmetry(t *testing.T) {
	records := inventory()
	// Drop the duplicate price so every key is tie-free.
	records = slices.DeleteFunc(records, func(v Vehicle) bool { return v.ID == "6" })

	for _, key := range []SortKey{SortByName, SortByYear, SortByPrice, SortByMileage} {
		t.Run(string(key), func(t *testing.T) {
			asc := Sort(records, key, Ascending)
			desc := Sort(records, key, Descending)
			slices.Reverse(asc)
			assert.Equal(t, ids(desc), ids(asc))
		})
	}
}

func TestStringSortIsCaseFolded(t *testing.T) {
	got := Sort(inventory(), SortByBrand, Ascending)
	assert.Equal(t, []string{"BMW", "Ford", "mazda", "Nissan", "Toyota", "Toyota"},
		[]string{got[0].Brand, got[1].Brand, got[2].Brand, got[3].Brand, got[4].Brand, got[5].Brand})

	byName := Sort(inventory(), SortByModel, Ascending)
	assert.Equal(t, "Corolla", byName[0].Model)
	assert.Equal(t, "cx-5", byName[1].Model)
}

func TestUnknownSortKeyFallsBackToNameAscending(t *testing.T) {
	records := inventory()
	want := ids(Sort(records, SortByName, Ascending))

	assert.Equal(t, want, ids(Sort(records, SortKey("horsepower"), Descending)))
	assert.False(t, IsSortKey("horsepower"))
	assert.True(t, IsSortKey("PRICE"))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := inventory()
	before := ids(records)
	_ = Sort(records, SortByYear, Descending)
	assert.Equal(t, before, ids(records))
}

func TestPaginationCoverage(t *testing.T) {
	ordered := ComputeVisible(inventory(), FilterState{SortBy: SortByYear, SortOrder: Ascending})

	for pageSize := 1; pageSize <= len(ordered)+1; pageSize++ {
		first := Paginate(ordered, 1, pageSize)
		var all []Vehicle
		for page := 1; page <= first.TotalPages; page++ {
			all = append(all, Paginate(ordered, page, pageSize).Items...)
		}
		assert.Equal(t, ids(ordered), ids(all), "page size %d", pageSize)
	}
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	ordered := inventory()

	for _, page := range []int{0, -1, 4, 100} {
		p := Paginate(ordered, page, 2)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, page, p.Page, "page number is not clamped")
		assert.Equal(t, 3, p.TotalPages)
	}
}

func TestPaginateNonPositivePageSize(t *testing.T) {
	p := Paginate(inventory(), 1, 0)
	assert.Len(t, p.Items, 6)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginateHugePageSize(t *testing.T) {
	p := Paginate(inventory(), 1, math.MaxInt)
	assert.Len(t, p.Items, 6)
	assert.Equal(t, 1, p.TotalPages)

	assert.Equal(t, 1, TotalPages(3, math.MaxInt))
	assert.Equal(t, 2, TotalPages(math.MaxInt, math.MaxInt-1))
}

func TestEmptyInputSafety(t *testing.T) {
	var none []Vehicle
	visible := ComputeVisible(none, FilterState{Brand: "Toyota", SortBy: SortByPrice})
	assert.NotNil(t, visible)
	assert.Empty(t, visible)

	p := Paginate(visible, 1, 12)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestFilterStateKey(t *testing.T) {
	a := NewFilterState()
	b := NewFilterState()
	b.Brand = "Todos"
	assert.Equal(t, a.Key(), b.Key(), "sentinels share a key")

	b.Brand = "Ford"
	assert.NotEqual(t, a.Key(), b.Key())

	c := NewFilterState()
	c.Featured = Bool(false)
	assert.NotEqual(t, a.Key(), c.Key(), "false is not the same as unconstrained")

	d := NewFilterState()
	d.PriceRange = &Range{Min: 0, Max: 100}
	e := NewFilterState()
	e.PriceRange = &Range{Min: 0, Max: 100}
	assert.Equal(t, d.Key(), e.Key())
}

func TestMemoReusesResultsPerVersion(t *testing.T) {
	memo := NewMemo(0)
	records := inventory()
	f := FilterState{Category: "Pickup", SortBy: SortByPrice}

	first := memo.Visible(1, records, f)
	second := memo.Visible(1, records, f)
	assert.Equal(t, ids(first), ids(second))
	hits, misses := memo.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	// A new snapshot version must not serve stale results.
	fewer := records[:2]
	third := memo.Visible(2, fewer, f)
	assert.Equal(t, []string{"2"}, ids(third))
	_, misses = memo.Stats()
	assert.Equal(t, uint64(2), misses)
}

func TestMemoEvictsWhenFull(t *testing.T) {
	memo := NewMemo(2)
	records := inventory()

	memo.Visible(1, records, FilterState{Brand: "Toyota"})
	memo.Visible(1, records, FilterState{Brand: "Ford"})
	memo.Visible(1, records, FilterState{Brand: "BMW"})
	memo.Visible(1, records, FilterState{Brand: "BMW"})

	hits, misses := memo.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(3), misses)
}

func TestMemoConcurrentQueriesAcrossVersions(t *testing.T) {
	memo := NewMemo(4)
	snapshots := map[uint64][]Vehicle{
		1: inventory(),
		2: inventory()[:3],
	}
	filters := []FilterState{
		{SortBy: SortByPrice, SortOrder: Descending},
		{Category: "Pickup", SortBy: SortByYear},
		{Brand: "Toyota", SortBy: SortByName},
		{Search: "a", SortBy: SortByMileage, SortOrder: Descending},
		{Featured: Bool(false), SortBy: SortByBrand},
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				version := uint64(1 + (g+i)%2)
				f := filters[(g*7+i)%len(filters)]
				got, _ := memo.Query(version, snapshots[version], f)
				want := ComputeVisible(snapshots[version], f)
				if !assert.Equal(t, ids(want), ids(got), "version %d filter %s", version, f.Key()) {
					return
				}
			}
		}(g)
	}
	wg.Wait()

	hits, misses := memo.Stats()
	assert.Equal(t, uint64(8*200), hits+misses)
}
