package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/utils"
)

const DefaultPageSize = 8

// EmployeeList is the list view-state: the collection as last fetched from
// the server, a free-text query and a page index. Filtering and pagination
// are entirely client-side over the full in-memory set; the collection is a
// cache with no identity of its own and is only ever replaced wholesale.
type EmployeeList struct {
	svc      EmployeeService
	ui       *UI
	pageSize int

	items []v1.EmployeeDTO
	query string
	page  int
}

func NewEmployeeList(svc EmployeeService, ui *UI, pageSize int) *EmployeeList {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &EmployeeList{
		svc:      svc,
		ui:       ui,
		pageSize: pageSize,
		page:     1,
	}
}

// Load fetches the full collection once, on first display.
func (l *EmployeeList) Load(ctx context.Context) error {
	return l.reload(ctx, "load employees")
}

// Reload refetches the entire collection. Mutations call this instead of
// patching the one changed record: consistency with the server over saving
// a request.
func (l *EmployeeList) Reload(ctx context.Context) error {
	return l.reload(ctx, "reload employees")
}

func (l *EmployeeList) reload(ctx context.Context, action string) error {
	items, err := l.svc.List(ctx)
	if err != nil {
		// keep the last-known-good collection
		l.ui.fail(action, err)
		return err
	}
	l.items = items
	return nil
}

func (l *EmployeeList) Items() []v1.EmployeeDTO { return l.items }

func (l *EmployeeList) Query() string { return l.query }

// SetQuery updates the filter and snaps back to the first page.
func (l *EmployeeList) SetQuery(q string) {
	l.query = q
	l.page = 1
}

// Filtered returns the employees whose name or email contains the query,
// case-insensitively, in the server's original order. A blank query matches
// everything.
func (l *EmployeeList) Filtered() []v1.EmployeeDTO {
	q := strings.ToLower(strings.TrimSpace(l.query))
	if q == "" {
		return l.items
	}
	return utils.Filter(l.items, func(e v1.EmployeeDTO) bool {
		return strings.Contains(strings.ToLower(e.FullName), q) ||
			strings.Contains(strings.ToLower(e.Email), q)
	})
}

func (l *EmployeeList) PageIndex() int { return l.page }

func (l *EmployeeList) PageSize() int { return l.pageSize }

func (l *EmployeeList) TotalPages() int {
	pages := (len(l.Filtered()) + l.pageSize - 1) / l.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page returns elements [(k-1)p, kp) of the filtered collection for the
// current page k.
func (l *EmployeeList) Page() []v1.EmployeeDTO {
	filtered := l.Filtered()
	start := (l.page - 1) * l.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + l.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Boundary navigation: controls disable at the edges, no wrapping.

func (l *EmployeeList) CanPrev() bool { return l.page > 1 }

func (l *EmployeeList) CanNext() bool { return l.page < l.TotalPages() }

func (l *EmployeeList) Prev() {
	if l.CanPrev() {
		l.page--
	}
}

func (l *EmployeeList) Next() {
	if l.CanNext() {
		l.page++
	}
}

type Stats struct {
	Employees   int
	TotalSalary float64
}

// Stats summarises the full collection, not the filtered view.
func (l *EmployeeList) Stats() Stats {
	s := Stats{Employees: len(l.items)}
	for _, e := range l.items {
		s.TotalSalary += e.Salary
	}
	return s
}

// Delete asks for confirmation first; declined means no request goes out.
// On success the whole collection is refetched, on failure the item stays
// and the error is surfaced.
func (l *EmployeeList) Delete(ctx context.Context, id int) error {
	if !l.ui.Confirm.Confirm("Are you sure you want to delete this employee?") {
		return nil
	}
	if err := l.svc.Delete(ctx, id); err != nil {
		l.ui.fail("delete employee", err)
		return err
	}
	l.ui.Log.Info("employee deleted", zap.Int("id", id))
	return l.Reload(ctx)
}
