// Package pager owns the page/sort/search state behind every paginated list
// view. It is deliberately free of UI and transport concerns: the caller asks
// it what to fetch, performs the fetch, and feeds the result back.
//
// Two behaviors here are intentional fixes over a naive implementation:
//
//   - Search input is debounced through generations. Each keystroke bumps the
//     generation; the caller schedules a timer per keystroke and commits with
//     the generation it captured. Only the newest generation commits, so one
//     request is issued per quiet window, carrying the final string.
//
//   - Every fetch is issued under a monotonically increasing sequence number
//     and results are accepted only when they carry the latest sequence.
//     Without this, a slow page-1 response can overwrite a fast page-2
//     response (last write wins on arrival order, not issue order).
package pager

import (
	"fmt"
	"strings"
	"time"

	"stylus/internal/crate"
)

const (
	// DefaultPerPage is the fixed page size used across list views.
	DefaultPerPage = 50

	// DefaultDebounce is the search quiet window when none is configured.
	DefaultDebounce = 400 * time.Millisecond
)

// Options configure a Controller.
type Options struct {
	PerPage   int
	SortBy    string
	SortOrder crate.SortOrder
	Debounce  time.Duration
}

// Controller tracks one list view's query state.
type Controller struct {
	page      int
	perPage   int
	sortBy    string
	sortOrder crate.SortOrder

	searchInput string // raw, as typed
	search      string // effective, post-debounce
	searchGen   int

	seq uint64

	total      int
	totalPages int

	debounce time.Duration
}

// New builds a Controller with the given defaults applied.
func New(opts Options) *Controller {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	order := opts.SortOrder
	if order == "" {
		order = crate.SortDesc
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		page:      1,
		perPage:   perPage,
		sortBy:    opts.SortBy,
		sortOrder: order,
		debounce:  debounce,
	}
}

// Query returns the current effective query parameters.
func (c *Controller) Query() crate.ListQuery {
	return crate.ListQuery{
		Page:      c.page,
		PerPage:   c.perPage,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
		Search:    c.search,
	}
}

// Issue allocates a sequence number for the fetch the caller is about to run.
func (c *Controller) Issue() uint64 {
	c.seq++
	return c.seq
}

// Accept records a fetch result. It returns false when the result belongs to
// a superseded fetch and must be discarded.
func (c *Controller) Accept(seq uint64, pagination crate.Pagination) bool {
	if seq != c.seq {
		return false
	}
	c.total = pagination.Total
	if pagination.Pages > 0 {
		c.totalPages = pagination.Pages
	} else {
		c.totalPages = 0
	}
	// Trust the server's notion of the current page when it reports one.
	if pagination.Page > 0 {
		c.page = pagination.Page
	}
	return true
}

// Stale reports whether the given sequence has been superseded.
func (c *Controller) Stale(seq uint64) bool {
	return seq != c.seq
}

// Page returns the current 1-based page.
func (c *Controller) Page() int { return c.page }

// TotalPages returns the last reported page count, zero before the first load.
func (c *Controller) TotalPages() int { return c.totalPages }

// Total returns the last reported total item count.
func (c *Controller) Total() int { return c.total }

// SortBy returns the active sort field.
func (c *Controller) SortBy() string { return c.sortBy }

// SortOrder returns the active sort direction.
func (c *Controller) SortOrder() crate.SortOrder { return c.sortOrder }

// Search returns the effective (debounced) search term.
func (c *Controller) Search() string { return c.search }

// SearchInput returns the raw search input as typed so far.
func (c *Controller) SearchInput() string { return c.searchInput }

// DebounceWindow returns how long the caller should wait before committing a
// search generation.
func (c *Controller) DebounceWindow() time.Duration { return c.debounce }

// SetPage moves to an absolute page, clamped to the known range. It returns
// true when the page changed and a refetch is due.
func (c *Controller) SetPage(page int) bool {
	if page < 1 {
		page = 1
	}
	if c.totalPages > 0 && page > c.totalPages {
		page = c.totalPages
	}
	if page == c.page {
		return false
	}
	c.page = page
	return true
}

// NextPage advances one page when possible.
func (c *Controller) NextPage() bool { return c.SetPage(c.page + 1) }

// PrevPage goes back one page when possible.
func (c *Controller) PrevPage() bool { return c.SetPage(c.page - 1) }

// FirstPage jumps to page 1.
func (c *Controller) FirstPage() bool { return c.SetPage(1) }

// LastPage jumps to the final known page.
func (c *Controller) LastPage() bool {
	if c.totalPages <= 0 {
		return false
	}
	return c.SetPage(c.totalPages)
}

// CanPrev reports whether Previous/First navigation is meaningful.
func (c *Controller) CanPrev() bool { return c.page > 1 }

// CanNext reports whether Next/Last navigation is meaningful.
func (c *Controller) CanNext() bool { return c.totalPages > 0 && c.page < c.totalPages }

// ShowPagination reports whether pagination chrome should be drawn at all.
func (c *Controller) ShowPagination() bool { return c.totalPages > 1 }

// PageLabel formats the "Page X of Y" indicator.
func (c *Controller) PageLabel() string {
	if c.totalPages <= 0 {
		return fmt.Sprintf("Page %d", c.page)
	}
	return fmt.Sprintf("Page %d of %d", c.page, c.totalPages)
}

// ToggleSort applies the sort rule: selecting the active field flips the
// direction, selecting a new field activates it descending. Page resets to 1.
// It always returns true: a sort change is always a refetch.
func (c *Controller) ToggleSort(field string) bool {
	field = strings.TrimSpace(field)
	if field == c.sortBy {
		if c.sortOrder == crate.SortDesc {
			c.sortOrder = crate.SortAsc
		} else {
			c.sortOrder = crate.SortDesc
		}
	} else {
		c.sortBy = field
		c.sortOrder = crate.SortDesc
	}
	c.page = 1
	return true
}

// SetSearchInput records a keystroke's worth of raw input and returns the
// debounce generation the caller should commit with after the quiet window.
func (c *Controller) SetSearchInput(raw string) int {
	c.searchInput = raw
	c.searchGen++
	return c.searchGen
}

// CommitSearch applies the raw input as the effective search term, but only
// when gen is still the newest generation (no keystrokes since) and the term
// actually changed. It returns true when a refetch is due; the page resets
// to 1 on every committed change.
func (c *Controller) CommitSearch(gen int) bool {
	if gen != c.searchGen {
		return false
	}
	term := strings.TrimSpace(c.searchInput)
	if term == c.search {
		return false
	}
	c.search = term
	c.page = 1
	return true
}

// ClearSearch drops both raw and effective search terms. It returns true when
// the effective term changed and a refetch is due.
func (c *Controller) ClearSearch() bool {
	c.searchInput = ""
	c.searchGen++
	if c.search == "" {
		return false
	}
	c.search = ""
	c.page = 1
	return true
}
