package catalog

// Page is one slice of an ordered result set.
type Page struct {
	Items      []Vehicle `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
}

// TotalPages is ceil(total/pageSize) with a floor of 1, so page 1 of an
// empty result is always valid.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}

// Paginate returns the 1-based page of ordered. A page outside
// [1, TotalPages] yields an empty slice; the page number is reported back
// as given, not clamped. A non-positive pageSize means one page holding
// everything.
func Paginate(ordered []Vehicle, page, pageSize int) Page {
	total := len(ordered)
	if pageSize < 1 {
		pageSize = total
	}

	p := Page{
		Items:      []Vehicle{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: TotalPages(total, pageSize),
	}
	if page < 1 || page > p.TotalPages || total == 0 {
		return p
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	p.Items = ordered[start:end]
	return p
}

// ClampPage brings page into [1, totalPages]. The pipeline never does this
// itself; callers that want clamping call it explicitly.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return max(1, min(page, totalPages))
}
