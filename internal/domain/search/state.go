package search

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage bounds page numbers so page*pageSize offsets stay small.
	MaxPage = 10000
)

type Filters struct {
	Text    string
	City    string
	Country string
}

func (f Filters) normalized() Filters {
	return Filters{
		Text:    strings.TrimSpace(f.Text),
		City:    strings.TrimSpace(f.City),
		Country: strings.TrimSpace(f.Country),
	}
}

// State is the company search position of a session.
type State struct {
	Filters  Filters
	Page     int
	PageSize int
}

func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize}
}

// Apply replaces the filters. Any change to text, city or country sends the search back to
// the first page; re-applying the same filters keeps the current page.
func (s State) Apply(f Filters) State {
	f = f.normalized()
	if f == s.Filters {
		return s
	}
	s.Filters = f
	s.Page = 0
	return s
}

// GoTo moves to page without touching the filters. Pages clamp to [0, MaxPage].
func (s State) GoTo(page int) State {
	s.Page = ClampPage(page)
	return s
}

func (s State) Offset() int {
	return ClampPage(s.Page) * min(s.PageSize, MaxPageSize)
}

func ClampPage(page int) int {
	return min(max(page, 0), MaxPage)
}

func PageCount(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
