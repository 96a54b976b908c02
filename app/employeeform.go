package app

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
)

// FormFields are the editable employee fields with their client-side rules.
// Validation failures never reach the network.
type FormFields struct {
	FullName     string  `json:"fullName" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	DepartmentID int     `json:"departmentId" validate:"required"`
}

// EmployeeForm collects employee field edits and submits create/update, then
// signals the list to reload through OnSuccess.
type EmployeeForm struct {
	employees   EmployeeService
	departments DepartmentService
	ui          *UI
	validate    *validator.Validate

	existingID int // 0 means create
	Fields     FormFields
	depts      []v1.DepartmentDTO

	// OnSuccess runs after a successful submit; the caller wires the list
	// reload here.
	OnSuccess func(ctx context.Context) error
}

func NewEmployeeForm(employees EmployeeService, departments DepartmentService, ui *UI) *EmployeeForm {
	return &EmployeeForm{
		employees:   employees,
		departments: departments,
		ui:          ui,
		validate:    newValidator(),
	}
}

// Open prepares the form: loads the department picker and, when editing,
// the existing record. existingID 0 opens a blank create form.
func (f *EmployeeForm) Open(ctx context.Context, existingID int) error {
	f.existingID = existingID
	f.Fields = FormFields{}

	depts, err := f.departments.List(ctx)
	if err != nil {
		// the picker degrades to empty; the form itself still opens
		f.ui.Log.Warn("load departments failed", zap.Error(err))
	} else {
		f.depts = depts
	}
	if len(f.depts) > 0 {
		f.Fields.DepartmentID = f.depts[0].ID
	}

	if existingID == 0 {
		return nil
	}

	employee, err := f.employees.Get(ctx, existingID)
	if err != nil {
		f.ui.fail("load employee", err)
		return err
	}

	f.Fields.FullName = employee.FullName
	f.Fields.Email = employee.Email
	f.Fields.Salary = employee.Salary
	if employee.DepartmentID != nil {
		f.Fields.DepartmentID = *employee.DepartmentID
	}
	return nil
}

func (f *EmployeeForm) Editing() bool { return f.existingID != 0 }

func (f *EmployeeForm) Departments() []v1.DepartmentDTO { return f.depts }

// Validate applies the client-side rules and returns a *ValidationError
// describing every failed field.
func (f *EmployeeForm) Validate() error {
	if err := f.validate.Struct(&f.Fields); err != nil {
		return &ValidationError{Message: formatValidationError(err)}
	}
	return nil
}

// Submit validates, sends the create or update, then triggers OnSuccess.
func (f *EmployeeForm) Submit(ctx context.Context) error {
	if err := f.Validate(); err != nil {
		f.ui.Notify.Notify(err.Error())
		return err
	}

	dto := &v1.SaveEmployeeDTO{
		FullName:     f.Fields.FullName,
		Email:        f.Fields.Email,
		Salary:       f.Fields.Salary,
		DepartmentID: f.Fields.DepartmentID,
	}

	var err error
	if f.existingID != 0 {
		_, err = f.employees.Update(ctx, f.existingID, dto)
	} else {
		_, err = f.employees.Create(ctx, dto)
	}
	if err != nil {
		f.ui.fail("save employee", err)
		return err
	}
	f.ui.Log.Info("employee saved", zap.Int("id", f.existingID), zap.String("email", f.Fields.Email))

	if f.OnSuccess != nil {
		return f.OnSuccess(ctx)
	}
	return nil
}
