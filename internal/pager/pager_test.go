package pager

import (
	"testing"

	"stylus/internal/crate"
)

func loaded(c *Controller, page, pages, total int) {
	seq := c.Issue()
	c.Accept(seq, crate.Pagination{Page: page, Pages: pages, Total: total, PerPage: DefaultPerPage})
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{SortBy: "added_at"})

	query := c.Query()
	if query.Page != 1 || query.PerPage != DefaultPerPage {
		t.Fatalf("query = %#v, want page 1 per_page %d", query, DefaultPerPage)
	}
	if query.SortBy != "added_at" || query.SortOrder != crate.SortDesc {
		t.Fatalf("query sort = %s/%s, want added_at/desc", query.SortBy, query.SortOrder)
	}
	if c.DebounceWindow() != DefaultDebounce {
		t.Fatalf("debounce = %v, want %v", c.DebounceWindow(), DefaultDebounce)
	}
}

func TestToggleSort_FlipAndSwitch(t *testing.T) {
	c := New(Options{SortBy: "artist"})
	loaded(c, 3, 5, 230)

	// Same field: flip desc -> asc.
	c.ToggleSort("artist")
	if c.SortOrder() != crate.SortAsc {
		t.Fatalf("order after first toggle = %s, want asc", c.SortOrder())
	}
	if c.Page() != 1 {
		t.Fatalf("page after sort change = %d, want reset to 1", c.Page())
	}

	// Same field again: asc -> desc.
	c.ToggleSort("artist")
	if c.SortOrder() != crate.SortDesc {
		t.Fatalf("order after second toggle = %s, want desc", c.SortOrder())
	}

	// New field: activate descending regardless of previous direction.
	c.ToggleSort("artist")
	c.ToggleSort("year")
	if c.SortBy() != "year" || c.SortOrder() != crate.SortDesc {
		t.Fatalf("sort after switch = %s/%s, want year/desc", c.SortBy(), c.SortOrder())
	}
}

func TestSearchDebounce_OnlyNewestGenerationCommits(t *testing.T) {
	c := New(Options{})

	// Typing "test" character by character: each keystroke supersedes the
	// previous generation, so only the final commit fires a refetch.
	var gens []int
	for _, partial := range []string{"t", "te", "tes", "test"} {
		gens = append(gens, c.SetSearchInput(partial))
	}

	refetches := 0
	for _, gen := range gens {
		if c.CommitSearch(gen) {
			refetches++
		}
	}

	if refetches != 1 {
		t.Fatalf("refetches = %d, want exactly 1 for a burst of keystrokes", refetches)
	}
	if c.Search() != "test" {
		t.Fatalf("search = %q, want full final string", c.Search())
	}
}

func TestSearchCommit_ResetsPageAndSkipsNoops(t *testing.T) {
	c := New(Options{})
	loaded(c, 4, 6, 280)

	gen := c.SetSearchInput("miles davis")
	if !c.CommitSearch(gen) {
		t.Fatalf("CommitSearch returned false for a new term")
	}
	if c.Page() != 1 {
		t.Fatalf("page after search = %d, want 1", c.Page())
	}

	// Re-committing the same term is a no-op.
	gen = c.SetSearchInput("miles davis")
	if c.CommitSearch(gen) {
		t.Fatalf("CommitSearch returned true for an unchanged term")
	}

	if !c.ClearSearch() {
		t.Fatalf("ClearSearch returned false with an active term")
	}
	if c.ClearSearch() {
		t.Fatalf("ClearSearch returned true with no active term")
	}
}

func TestPagination_NavigationAndClamping(t *testing.T) {
	c := New(Options{})
	loaded(c, 1, 3, 150)

	if c.CanPrev() {
		t.Fatalf("CanPrev on page 1, want false")
	}
	if !c.CanNext() {
		t.Fatalf("CanNext on page 1 of 3, want true")
	}
	if got := c.PageLabel(); got != "Page 1 of 3" {
		t.Fatalf("PageLabel = %q, want Page 1 of 3", got)
	}

	if !c.NextPage() {
		t.Fatalf("NextPage from 1 returned false")
	}
	if c.Query().Page != 2 {
		t.Fatalf("page = %d, want 2", c.Query().Page)
	}

	if !c.LastPage() || c.Page() != 3 {
		t.Fatalf("LastPage -> %d, want 3", c.Page())
	}
	if c.CanNext() {
		t.Fatalf("CanNext on final page, want false")
	}
	if c.NextPage() {
		t.Fatalf("NextPage past final page returned true")
	}
	if !c.FirstPage() || c.Page() != 1 {
		t.Fatalf("FirstPage -> %d, want 1", c.Page())
	}
	if c.PrevPage() {
		t.Fatalf("PrevPage before page 1 returned true")
	}
}

func TestShowPagination_HiddenForSinglePage(t *testing.T) {
	c := New(Options{})
	if c.ShowPagination() {
		t.Fatalf("ShowPagination before first load, want false")
	}
	loaded(c, 1, 1, 12)
	if c.ShowPagination() {
		t.Fatalf("ShowPagination with one page, want false")
	}
	loaded(c, 1, 2, 70)
	if !c.ShowPagination() {
		t.Fatalf("ShowPagination with two pages, want true")
	}
}

func TestAccept_DiscardsStaleResponses(t *testing.T) {
	c := New(Options{})

	// A slow fetch for page 1 is issued, then the user moves to page 2 and a
	// second fetch goes out. The page-1 response arrives last and must lose.
	slowSeq := c.Issue()
	c.SetPage(2)
	fastSeq := c.Issue()

	if !c.Accept(fastSeq, crate.Pagination{Page: 2, Pages: 3, Total: 150}) {
		t.Fatalf("latest response rejected")
	}
	if c.Accept(slowSeq, crate.Pagination{Page: 1, Pages: 3, Total: 150}) {
		t.Fatalf("stale response accepted")
	}
	if c.Page() != 2 {
		t.Fatalf("page = %d after stale arrival, want 2", c.Page())
	}
	if !c.Stale(slowSeq) || c.Stale(fastSeq) {
		t.Fatalf("staleness misreported: slow=%v fast=%v", c.Stale(slowSeq), c.Stale(fastSeq))
	}
}

func TestSetPage_ClampsToKnownRange(t *testing.T) {
	c := New(Options{})
	loaded(c, 1, 3, 150)

	if !c.SetPage(99) {
		t.Fatalf("SetPage(99) returned false, want clamp to page 3")
	}
	if c.Page() != 3 {
		t.Fatalf("page = %d, want 3", c.Page())
	}
	if c.SetPage(-4) && c.Page() != 1 {
		t.Fatalf("page = %d after negative set, want 1", c.Page())
	}
}
