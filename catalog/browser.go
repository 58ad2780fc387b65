package catalog

// DefaultPageSize is the page size a new Browser starts with.
const DefaultPageSize = 12

// Browser is the state of one catalog browsing session: the record
// snapshot, the filter state and the current page. Changing the filter
// state or the page size sends the session back to page 1. Not safe for
// concurrent use.
type Browser struct {
	records  []Vehicle
	version  uint64
	filter   FilterState
	page     int
	pageSize int

	cachedVersion uint64
	cachedKey     string
	cached        []Vehicle
	valid         bool
}

// NewBrowser starts a session over records with default filters.
func NewBrowser(records []Vehicle) *Browser {
	return &Browser{
		records:  records,
		version:  1,
		filter:   NewFilterState(),
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// SetRecords replaces the snapshot. The current page is kept; callers that
// want to start over call SetPage(1).
func (b *Browser) SetRecords(records []Vehicle) {
	b.records = records
	b.version++
}

// Filter returns the current filter state.
func (b *Browser) Filter() FilterState {
	return b.filter
}

// SetFilter replaces the filter state and resets to page 1.
func (b *Browser) SetFilter(f FilterState) {
	b.filter = f
	b.page = 1
}

// Update applies a single-field mutation and resets to page 1.
func (b *Browser) Update(mutate func(*FilterState)) {
	f := b.filter
	mutate(&f)
	b.SetFilter(f)
}

// Reset restores the default filters.
func (b *Browser) Reset() {
	b.SetFilter(NewFilterState())
}

// PageSize returns the current page size.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// SetPageSize changes the page size and resets to page 1.
func (b *Browser) SetPageSize(size int) {
	b.pageSize = size
	b.page = 1
}

// CurrentPage returns the 1-based current page.
func (b *Browser) CurrentPage() int {
	return b.page
}

// SetPage moves to page n as given; out-of-range pages render empty.
func (b *Browser) SetPage(n int) {
	b.page = n
}

// Visible returns the filtered, sorted records. It is recomputed only when
// the snapshot or the filter state changed since the last call.
func (b *Browser) Visible() []Vehicle {
	key := b.filter.Key()
	if b.valid && b.cachedVersion == b.version && b.cachedKey == key {
		return b.cached
	}
	b.cached = ComputeVisible(b.records, b.filter)
	b.cachedVersion = b.version
	b.cachedKey = key
	b.valid = true
	return b.cached
}

// Current returns the current page of visible records.
func (b *Browser) Current() Page {
	return Paginate(b.Visible(), b.page, b.pageSize)
}
