package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
)

func testUI() (*UI, *fakeNotifier, *fakeConfirmer) {
	notifier := &fakeNotifier{}
	confirmer := &fakeConfirmer{answer: true}
	return &UI{Log: zap.NewNop(), Notify: notifier, Confirm: confirmer}, notifier, confirmer
}

// fakeEmployeeService acts like the server: it owns the collection and
// assigns ids. Error fields inject failures per operation.
type fakeEmployeeService struct {
	employees []v1.EmployeeDTO
	nextID    int

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeEmployeeService) List(ctx context.Context) ([]v1.EmployeeDTO, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]v1.EmployeeDTO, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeEmployeeService) Get(ctx context.Context, id int) (*v1.EmployeeDTO, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, &v1.APIError{StatusCode: 404, Message: "employee not found"}
}

func (f *fakeEmployeeService) Create(ctx context.Context, dto *v1.SaveEmployeeDTO) (*v1.EmployeeDTO, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := v1.EmployeeDTO{
		ID:           f.nextID,
		FullName:     dto.FullName,
		Email:        dto.Email,
		Salary:       dto.Salary,
		DepartmentID: &dto.DepartmentID,
	}
	f.employees = append(f.employees, created)
	return &created, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, id int, dto *v1.SaveEmployeeDTO) (*v1.EmployeeDTO, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].FullName = dto.FullName
			f.employees[i].Email = dto.Email
			f.employees[i].Salary = dto.Salary
			f.employees[i].DepartmentID = &dto.DepartmentID
			return &f.employees[i], nil
		}
	}
	return nil, &v1.APIError{StatusCode: 404, Message: "employee not found"}
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return &v1.APIError{StatusCode: 404, Message: "employee not found"}
}

type fakeDepartmentService struct {
	departments []v1.DepartmentDTO
	listErr     error
}

func (f *fakeDepartmentService) List(ctx context.Context) ([]v1.DepartmentDTO, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.departments, nil
}

// fakeAttendanceService upserts one record per employee per day, like the
// real server is assumed to.
type fakeAttendanceService struct {
	records    map[int][]v1.AttendanceRecordDTO
	nextID     int
	today      string
	historyErr map[int]error
	markErr    error
	markCalls  int
}

func newFakeAttendanceService(today string) *fakeAttendanceService {
	return &fakeAttendanceService{
		records:    map[int][]v1.AttendanceRecordDTO{},
		historyErr: map[int]error{},
		today:      today,
	}
}

func (f *fakeAttendanceService) History(ctx context.Context, employeeID int) ([]v1.AttendanceRecordDTO, error) {
	if err := f.historyErr[employeeID]; err != nil {
		return nil, err
	}
	return f.records[employeeID], nil
}

func (f *fakeAttendanceService) Mark(ctx context.Context, dto *v1.MarkAttendanceDTO) (*v1.AttendanceRecordDTO, error) {
	f.markCalls++
	if f.markErr != nil {
		return nil, f.markErr
	}
	day := f.today
	if dto.Date != nil && !dto.Date.IsZero() {
		day = dto.Date.String()
	}
	existing := f.records[dto.EmployeeID]
	for i := range existing {
		if existing[i].MatchesDay(day) {
			existing[i].Present = dto.Present
			return &existing[i], nil
		}
	}
	f.nextID++
	rec := v1.AttendanceRecordDTO{ID: f.nextID, EmployeeID: dto.EmployeeID, Date: day, Present: dto.Present}
	f.records[dto.EmployeeID] = append(existing, rec)
	return &rec, nil
}

type fakeReportService struct {
	csv     []byte
	pdf     []byte
	csvErr  error
	pdfErr  error
}

func (f *fakeReportService) EmployeesCSV(ctx context.Context, w io.Writer) error {
	if f.csvErr != nil {
		return f.csvErr
	}
	_, err := w.Write(f.csv)
	return err
}

func (f *fakeReportService) EmployeesPDF(ctx context.Context, w io.Writer) error {
	if f.pdfErr != nil {
		return f.pdfErr
	}
	_, err := w.Write(f.pdf)
	return err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

type fakeConfirmer struct {
	answer bool
	asked  int
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.asked++
	return f.answer
}

func employee(id int, name, email string, salary float64) v1.EmployeeDTO {
	return v1.EmployeeDTO{ID: id, FullName: name, Email: email, Salary: salary}
}

func employees(n int) []v1.EmployeeDTO {
	out := make([]v1.EmployeeDTO, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, employee(i, fmt.Sprintf("Employee %02d", i), fmt.Sprintf("e%02d@staffdesk.com", i), 1000))
	}
	return out
}
