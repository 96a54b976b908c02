package v1

import (
	"context"
	"io"
)

type ReportEndpoint struct {
	transport *Transport
}

func (ep *ReportEndpoint) EmployeesCSV(ctx context.Context, w io.Writer) error {
	return ep.transport.GetBlob(ctx, "/reports/employees/csv", w)
}

func (ep *ReportEndpoint) EmployeesPDF(ctx context.Context, w io.Writer) error {
	return ep.transport.GetBlob(ctx, "/reports/employees/pdf", w)
}
