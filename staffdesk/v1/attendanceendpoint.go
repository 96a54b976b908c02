package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

type AttendanceRecordDTO struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employeeId"`
	Date       string `json:"date"` // ISO date, sometimes with a time part
	Present    bool   `json:"present"`
}

// MatchesDay reports whether the record falls on the given yyyy-MM-dd day.
// Prefix comparison tolerates both bare dates and full timestamps.
func (r *AttendanceRecordDTO) MatchesDay(day string) bool {
	return strings.HasPrefix(r.Date, day)
}

// MarkAttendanceDTO is the upsert payload. Date is optional; the server
// stamps today when it is omitted.
type MarkAttendanceDTO struct {
	EmployeeID int              `json:"employeeId"`
	Present    bool             `json:"present"`
	Date       *common.DateOnly `json:"date,omitempty"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

// History returns the full per-day record list for one employee.
func (ep *AttendanceEndpoint) History(ctx context.Context, employeeID int) ([]AttendanceRecordDTO, error) {
	data, err := ep.transport.Get(ctx, fmt.Sprintf("/attendance/%d", employeeID), nil)
	if err != nil {
		return nil, err
	}

	var result []AttendanceRecordDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Mark upserts the day's record; the server keeps one record per employee
// per day.
func (ep *AttendanceEndpoint) Mark(ctx context.Context, dto *MarkAttendanceDTO) (*AttendanceRecordDTO, error) {
	data, err := ep.transport.Post(ctx, "/attendance", dto, nil)
	if err != nil {
		return nil, err
	}

	var result AttendanceRecordDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
