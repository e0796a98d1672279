// Package store keeps a local, queryable view of one remote resource
// collection.
//
// A Store loads records through a Service, then derives a view from
// them by composing search, named filters, sorting and pagination.
// The raw records and the derived view are kept separate: recomputing
// the view never touches the loaded data.
//
// Stores are for single-goroutine use. Overlapping operations are not
// fenced; the later completion wins.
package store

import (
	"context"
	"sort"
	"strings"

	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/utils"
)

// DefaultItemsPerPage is the page size used until SetItemsPerPage.
const DefaultItemsPerPage = 10

// Service is the remote side of a Store.
type Service[E any] interface {
	// List returns all records and, when the server reports one, the
	// server-side total count.
	List(ctx context.Context) ([]E, int, error)
	Create(ctx context.Context, item E) (E, error)
	Update(ctx context.Context, id int, item E) (E, error)
	Remove(ctx context.Context, id int) error
}

// Column is one exported column. Raw columns are written to CSV
// unquoted, for numeric values.
type Column[E any] struct {
	Header string
	Value  func(E) string
	Raw    bool
}

// Config describes how a Store treats its record type.
type Config[E any] struct {
	// Entity names the resource in notifications and export filenames,
	// singular, like "client".
	Entity string

	ID func(E) int

	// Search lists the fields search terms are matched against.
	Search []Field[E]

	// Compare holds the ascending comparator per sortable field name.
	Compare map[string]func(a, b E) int

	Columns []Column[E]

	// Prepend makes Add insert new records first instead of last.
	Prepend bool
}

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Store holds the records of one resource and a derived view over
// them.
type Store[E any] struct {
	config  Config[E]
	service Service[E]
	sink    notify.Sink

	data        []E
	view        []E
	loading     bool
	err         error
	serverCount int

	scorer     Scorer[E]
	pinned     bool
	searchTerm string
	filters    map[string]func(E) bool

	sortBy    string
	sortOrder Order

	page    int
	perPage int
}

// Option configures a Store at construction.
type Option[E any] func(*Store[E])

// WithSink routes the store's notifications to sink instead of
// dropping them.
func WithSink[E any](sink notify.Sink) Option[E] {
	return func(s *Store[E]) { s.sink = sink }
}

// WithItemsPerPage overrides DefaultItemsPerPage.
func WithItemsPerPage[E any](n int) Option[E] {
	return func(s *Store[E]) {
		if 0 < n {
			s.perPage = n
		}
	}
}

// WithScorer pins the search strategy instead of the fuzzy index
// built on Load.
func WithScorer[E any](scorer Scorer[E]) Option[E] {
	return func(s *Store[E]) {
		s.scorer = scorer
		s.pinned = true
	}
}

func New[E any](config Config[E], service Service[E], options ...Option[E]) *Store[E] {
	s := &Store[E]{
		config:  config,
		service: service,
		sink:    notify.Discard(),
		data:    []E{},
		view:    []E{},
		filters: map[string]func(E) bool{},
		page:    1,
		perPage: DefaultItemsPerPage,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Load replaces the records with the server's current list.
//
// On failure the previous records stay visible; the error is recorded
// on Err and notified, not returned.
func (s *Store[E]) Load(ctx context.Context) {
	s.loading = true
	items, count, err := s.service.List(ctx)
	s.loading = false

	if err != nil {
		s.err = err
		s.sink.Error("loading %ss: %s", s.config.Entity, err)
		return
	}

	s.data = items
	s.serverCount = count
	s.err = nil
	if !s.pinned && len(s.config.Search) != 0 {
		s.scorer = NewFuzzyScorer(s.config.Search)
	}
	s.recompute()
}

// Add creates item on the server and folds the canonical response
// into the records.
func (s *Store[E]) Add(ctx context.Context, item E) (E, error) {
	created, err := s.service.Create(ctx, item)
	if err != nil {
		s.err = err
		s.sink.Error("creating %s: %s", s.config.Entity, err)
		return created, err
	}

	if s.config.Prepend {
		s.data = append([]E{created}, s.data...)
	} else {
		s.data = append(s.data, created)
	}
	s.err = nil
	s.recompute()
	s.sink.Success("%s created", s.config.Entity)
	return created, nil
}

// UpdateOne sends item as the new content of the record with id and
// replaces exactly that record with the server's canonical response.
func (s *Store[E]) UpdateOne(ctx context.Context, id int, item E) (E, error) {
	updated, err := s.service.Update(ctx, id, item)
	if err != nil {
		s.err = err
		s.sink.Error("updating %s %d: %s", s.config.Entity, id, err)
		return updated, err
	}

	if at := utils.IndexOf(s.data, func(e E) bool { return s.config.ID(e) == id }); at != -1 {
		s.data[at] = updated
	}
	s.err = nil
	s.recompute()
	s.sink.Success("%s %d updated", s.config.Entity, id)
	return updated, nil
}

// RemoveOne deletes the record with id on the server and drops it
// from the records.
func (s *Store[E]) RemoveOne(ctx context.Context, id int) error {
	if err := s.service.Remove(ctx, id); err != nil {
		s.err = err
		s.sink.Error("removing %s %d: %s", s.config.Entity, id, err)
		return err
	}

	s.data = utils.Filter(s.data, func(e E) bool { return s.config.ID(e) != id })
	s.err = nil
	s.recompute()
	s.sink.Success("%s %d removed", s.config.Entity, id)
	return nil
}

// SetSearchTerm narrows the view to records matching term and resets
// to the first page. An empty term clears the search.
func (s *Store[E]) SetSearchTerm(term string) {
	s.searchTerm = strings.TrimSpace(term)
	s.page = 1
	s.recompute()
}

// SetFilter narrows the view with a named predicate. Filters compose
// with each other and with the search term by intersection. Resets to
// the first page.
func (s *Store[E]) SetFilter(name string, pred func(E) bool) {
	s.filters[name] = pred
	s.page = 1
	s.recompute()
}

// ClearFilter removes the named predicate. Resets to the first page.
func (s *Store[E]) ClearFilter(name string) {
	delete(s.filters, name)
	s.page = 1
	s.recompute()
}

// SetSorting orders the view by a configured field. An unknown field
// leaves the view as it is. The current page is kept.
func (s *Store[E]) SetSorting(field string, order Order) {
	if _, ok := s.config.Compare[field]; !ok {
		return
	}
	s.sortBy = field
	s.sortOrder = order
	s.recompute()
}

// SetPage moves to page n, clamped into the valid range.
func (s *Store[E]) SetPage(n int) {
	s.page = clamp(n, 1, s.TotalPages())
}

// SetItemsPerPage changes the page size and resets to the first page.
func (s *Store[E]) SetItemsPerPage(n int) {
	if n <= 0 {
		return
	}
	s.perPage = n
	s.page = 1
}

// Page returns the records of the current page of the view.
func (s *Store[E]) Page() []E {
	start := (s.page - 1) * s.perPage
	if len(s.view) <= start {
		return []E{}
	}
	end := start + s.perPage
	if len(s.view) < end {
		end = len(s.view)
	}
	return s.view[start:end]
}

// View returns all records passing the current search and filters, in
// the current order.
func (s *Store[E]) View() []E { return s.view }

// Data returns the loaded records untouched by search, filter or
// sort.
func (s *Store[E]) Data() []E { return s.data }

func (s *Store[E]) Err() error { return s.err }

func (s *Store[E]) Loading() bool { return s.loading }

// ServerCount is the total the server reported on the last successful
// Load. Informational; the view is always derived from the records
// actually received.
func (s *Store[E]) ServerCount() int { return s.serverCount }

func (s *Store[E]) CurrentPage() int  { return s.page }
func (s *Store[E]) ItemsPerPage() int { return s.perPage }

// TotalPages is ceil(len(view) / itemsPerPage), at least 1.
func (s *Store[E]) TotalPages() int {
	pages := (len(s.view) + s.perPage - 1) / s.perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// recompute rebuilds the view from the records: search, then filters,
// then sort, then page clamping. Derivation only; the records are
// never changed here.
func (s *Store[E]) recompute() {
	view := s.data

	if s.searchTerm != "" {
		scorer := s.scorer
		if scorer == nil {
			scorer = NewSubstringScorer(s.config.Search)
		}
		view = scorer.Rank(s.searchTerm, view)
	}

	if len(s.filters) != 0 {
		view = utils.Filter(view, s.matches)
	}

	if s.sortBy != "" {
		compare := s.config.Compare[s.sortBy]
		sorted := make([]E, len(view))
		copy(sorted, view)
		sort.SliceStable(sorted, func(a, b int) bool {
			c := compare(sorted[a], sorted[b])
			if s.sortOrder == Desc {
				return 0 < c
			}
			return c < 0
		})
		view = sorted
	}

	s.view = view
	s.page = clamp(s.page, 1, s.TotalPages())
}

func (s *Store[E]) matches(item E) bool {
	for _, pred := range s.filters {
		if !pred(item) {
			return false
		}
	}
	return true
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if hi < n {
		return hi
	}
	return n
}
