package app

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/utils"
)

// AttendanceBoard shows today's presence per employee. Each employee's
// status comes from scanning their full history for a record dated today;
// no record means Absent, not unknown.
type AttendanceBoard struct {
	employees  EmployeeService
	attendance AttendanceService
	ui         *UI

	rows  []v1.EmployeeDTO
	today map[int]bool
}

func NewAttendanceBoard(employees EmployeeService, attendance AttendanceService, ui *UI) *AttendanceBoard {
	return &AttendanceBoard{
		employees:  employees,
		attendance: attendance,
		ui:         ui,
		today:      map[int]bool{},
	}
}

// LoadToday fetches the employee list and then every employee's history in
// parallel. A single employee's failed history degrades that row to Absent
// rather than failing the whole board.
func (b *AttendanceBoard) LoadToday(ctx context.Context) error {
	rows, err := b.employees.List(ctx)
	if err != nil {
		b.ui.fail("load employees", err)
		return err
	}

	today := utils.TodayISO()
	present := make([]bool, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	for i, emp := range rows {
		g.Go(func() error {
			records, err := b.attendance.History(gctx, emp.ID)
			if err != nil {
				b.ui.Log.Warn("load attendance history failed",
					zap.Int("employeeId", emp.ID), zap.Error(err))
				return nil
			}
			rec := utils.Find(records, func(r v1.AttendanceRecordDTO) bool {
				return r.MatchesDay(today)
			})
			if rec != nil {
				present[i] = rec.Present
			}
			return nil
		})
	}
	_ = g.Wait()

	b.rows = rows
	m := make(map[int]bool, len(rows))
	for i, emp := range rows {
		m[emp.ID] = present[i]
	}
	b.today = m
	return nil
}

func (b *AttendanceBoard) Rows() []v1.EmployeeDTO { return b.rows }

// PresentToday defaults to false for unknown employees.
func (b *AttendanceBoard) PresentToday(employeeID int) bool {
	return b.today[employeeID]
}

// Mark upserts today's record for one employee. Marks for different
// employees are independent of each other; only the affected row's local
// flag is updated.
func (b *AttendanceBoard) Mark(ctx context.Context, employeeID int, present bool) error {
	_, err := b.attendance.Mark(ctx, &v1.MarkAttendanceDTO{EmployeeID: employeeID, Present: present})
	if err != nil {
		b.ui.fail("mark attendance", err)
		return err
	}
	b.ui.Log.Info("attendance marked",
		zap.Int("employeeId", employeeID), zap.Bool("present", present))
	b.today[employeeID] = present
	return nil
}

// History returns an employee's full record list for display.
func (b *AttendanceBoard) History(ctx context.Context, employeeID int) ([]v1.AttendanceRecordDTO, error) {
	records, err := b.attendance.History(ctx, employeeID)
	if err != nil {
		b.ui.fail("load attendance history", err)
		return nil, err
	}
	return records, nil
}
