package v1

import (
	"context"
	"encoding/json"
)

type DepartmentDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DepartmentEndpoint struct {
	transport *Transport
}

func (ep *DepartmentEndpoint) List(ctx context.Context) ([]DepartmentDTO, error) {
	data, err := ep.transport.Get(ctx, "/departments", nil)
	if err != nil {
		return nil, err
	}

	var result []DepartmentDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (ep *DepartmentEndpoint) Create(ctx context.Context, name string) (*DepartmentDTO, error) {
	payload := map[string]string{"name": name}

	data, err := ep.transport.Post(ctx, "/departments", payload, nil)
	if err != nil {
		return nil, err
	}

	var result DepartmentDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
