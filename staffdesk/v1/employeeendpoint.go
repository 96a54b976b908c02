package v1

import (
	"context"
	"encoding/json"
	"fmt"
)

type DepartmentRefDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EmployeeDTO struct {
	ID           int               `json:"id"`
	FullName     string            `json:"fullName"`
	Email        string            `json:"email"`
	Salary       float64           `json:"salary"`
	DepartmentID *int              `json:"departmentId,omitempty"`
	Department   *DepartmentRefDTO `json:"department,omitempty"`
}

// DepartmentName returns the denormalized display name, or "N/A" when the
// employee has no department or it was not expanded by the server.
func (e *EmployeeDTO) DepartmentName() string {
	if e.Department == nil || e.Department.Name == "" {
		return "N/A"
	}
	return e.Department.Name
}

// SaveEmployeeDTO is the create/update payload.
type SaveEmployeeDTO struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Salary       float64 `json:"salary"`
	DepartmentID int     `json:"departmentId"`
}

type EmployeeEndpoint struct {
	transport *Transport
}

func (ep *EmployeeEndpoint) List(ctx context.Context) ([]EmployeeDTO, error) {
	data, err := ep.transport.Get(ctx, "/employees", nil)
	if err != nil {
		return nil, err
	}

	var result []EmployeeDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (ep *EmployeeEndpoint) Get(ctx context.Context, id int) (*EmployeeDTO, error) {
	data, err := ep.transport.Get(ctx, fmt.Sprintf("/employees/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var result EmployeeDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ep *EmployeeEndpoint) Create(ctx context.Context, dto *SaveEmployeeDTO) (*EmployeeDTO, error) {
	data, err := ep.transport.Post(ctx, "/employees", dto, nil)
	if err != nil {
		return nil, err
	}

	var result EmployeeDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ep *EmployeeEndpoint) Update(ctx context.Context, id int, dto *SaveEmployeeDTO) (*EmployeeDTO, error) {
	data, err := ep.transport.Put(ctx, fmt.Sprintf("/employees/%d", id), dto, nil)
	if err != nil {
		return nil, err
	}

	var result EmployeeDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ep *EmployeeEndpoint) Delete(ctx context.Context, id int) error {
	return ep.transport.Delete(ctx, fmt.Sprintf("/employees/%d", id))
}
