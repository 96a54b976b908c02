package v1

type StaffdeskClient struct {
	Transport   *Transport
	Auth        *AuthEndpoint
	Departments *DepartmentEndpoint
	Employees   *EmployeeEndpoint
	Attendance  *AttendanceEndpoint
	Reports     *ReportEndpoint
}

// NewStaffdeskClient initializes the API client
func NewStaffdeskClient(baseURL string, tokens TokenSource) *StaffdeskClient {
	t := NewTransport(baseURL, tokens)
	return &StaffdeskClient{
		Transport:   t,
		Auth:        &AuthEndpoint{transport: t},
		Departments: &DepartmentEndpoint{transport: t},
		Employees:   &EmployeeEndpoint{transport: t},
		Attendance:  &AttendanceEndpoint{transport: t},
		Reports:     &ReportEndpoint{transport: t},
	}
}
