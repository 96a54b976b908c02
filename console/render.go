package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/utils"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func RenderEmployees(w io.Writer, rows []v1.EmployeeDTO) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No employees found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSALARY\tDEPARTMENT")
	for _, e := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n",
			e.ID, e.FullName, e.Email, e.Salary, e.DepartmentName())
	}
	tw.Flush()
}

func RenderAttendance(w io.Writer, rows []v1.EmployeeDTO, presentToday func(employeeID int) bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No employees found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDEPARTMENT\tTODAY")
	for _, e := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.ID, e.FullName, e.DepartmentName(),
			utils.FormatBoolean(presentToday(e.ID), "Present", "Absent"))
	}
	tw.Flush()
}

func RenderHistory(w io.Writer, records []v1.AttendanceRecordDTO) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No attendance records")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tPRESENT")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\n",
			utils.FormatDay(r.Date),
			utils.FormatBoolean(r.Present, "Yes", "No"))
	}
	tw.Flush()
}

func RenderCSV(w io.Writer, rows [][]string) {
	tw := newTable(w)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
