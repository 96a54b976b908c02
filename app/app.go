package app

import (
	"context"
	"io"

	"go.uber.org/zap"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
)

// Notifier surfaces a failure to the user as a blocking notification, the
// terminal counterpart of the browser alert.
type Notifier interface {
	Notify(message string)
}

// Confirmer asks the user to approve a destructive action before any request
// is sent.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Service interfaces are satisfied by the staffdesk/v1 endpoints; components
// depend on these so tests can swap in fakes.

type EmployeeService interface {
	List(ctx context.Context) ([]v1.EmployeeDTO, error)
	Get(ctx context.Context, id int) (*v1.EmployeeDTO, error)
	Create(ctx context.Context, dto *v1.SaveEmployeeDTO) (*v1.EmployeeDTO, error)
	Update(ctx context.Context, id int, dto *v1.SaveEmployeeDTO) (*v1.EmployeeDTO, error)
	Delete(ctx context.Context, id int) error
}

type DepartmentService interface {
	List(ctx context.Context) ([]v1.DepartmentDTO, error)
}

type AttendanceService interface {
	History(ctx context.Context, employeeID int) ([]v1.AttendanceRecordDTO, error)
	Mark(ctx context.Context, dto *v1.MarkAttendanceDTO) (*v1.AttendanceRecordDTO, error)
}

type ReportService interface {
	EmployeesCSV(ctx context.Context, w io.Writer) error
	EmployeesPDF(ctx context.Context, w io.Writer) error
}

// UI bundles the cross-cutting dependencies every view-state component needs.
type UI struct {
	Log     *zap.Logger
	Notify  Notifier
	Confirm Confirmer
}

// fail implements the shared failure policy: log it, tell the user in plain
// terms, leave the component's state alone.
func (u *UI) fail(action string, err error) {
	u.Log.Error(action+" failed", zap.Error(err))
	u.Notify.Notify("Failed to " + action + ". Please try again.")
}
