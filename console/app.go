package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"staffdesk.com/staffdesk/app"
	"staffdesk.com/staffdesk/infrastructure/devops"
	"staffdesk.com/staffdesk/session"
	v1 "staffdesk.com/staffdesk/staffdesk/v1"
)

// App wires the session, the API client and the view-state components to the
// terminal and runs the command loop.
type App struct {
	cfg     devops.Config
	log     *zap.Logger
	console *Console
	session *session.Session
	client  *v1.StaffdeskClient

	list    *app.EmployeeList
	form    *app.EmployeeForm
	board   *app.AttendanceBoard
	reports *app.Reports

	route      session.Route
	listLoaded bool
	lastCSV    string
}

func NewApp(cfg devops.Config, log *zap.Logger, store *session.Store, in io.Reader, out io.Writer) *App {
	c := New(in, out)
	a := &App{cfg: cfg, log: log, console: c}

	a.session = session.New(store, a)
	a.client = v1.NewStaffdeskClient(cfg.APIBaseURL, a.session)

	ui := &app.UI{Log: log, Notify: c, Confirm: c}
	a.list = app.NewEmployeeList(a.client.Employees, ui, cfg.PageSize)
	a.form = app.NewEmployeeForm(a.client.Employees, a.client.Departments, ui)
	a.form.OnSuccess = a.list.Reload
	a.board = app.NewAttendanceBoard(a.client.Employees, a.client.Attendance, ui)
	a.reports = app.NewReports(a.client.Reports, ui)

	a.route = session.Resolve(a.session.Authenticated(), session.RouteEmployees)
	return a
}

// NavigateTo implements session.Navigator; every navigation goes through the
// route guard.
func (a *App) NavigateTo(route session.Route) {
	a.route = session.Resolve(a.session.Authenticated(), route)
}

func (a *App) Run(ctx context.Context) error {
	a.console.Printf("StaffDesk (%s)\n", a.cfg.APIBaseURL)
	a.console.Printf("Type 'help' for commands\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := a.console.ReadCommand(fmt.Sprintf("staffdesk/%s> ", a.route))
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			a.help()
			continue
		case "logout":
			// works from any view; always lands on login
			if err := a.session.Logout(); err != nil {
				a.log.Warn("clear credential failed", zap.Error(err))
			}
			a.listLoaded = false
			continue
		}

		switch a.route {
		case session.RouteLogin, session.RouteRegister:
			a.dispatchLogin(ctx, cmd)
		case session.RouteEmployees:
			a.dispatchEmployees(ctx, cmd, args)
		case session.RouteAttendance:
			a.dispatchAttendance(ctx, cmd, args)
		case session.RouteReports:
			a.dispatchReports(ctx, cmd)
		}
	}
}

func (a *App) help() {
	switch a.route {
	case session.RouteLogin, session.RouteRegister:
		a.console.Printf("Commands: login, quit\n")
	case session.RouteEmployees:
		a.console.Printf("Commands: list, search <text>, next, prev, add, edit <id>, rm <id>, export, attendance, reports, logout, quit\n")
	case session.RouteAttendance:
		a.console.Printf("Commands: list, mark <id> present|absent, history <id>, employees, reports, logout, quit\n")
	case session.RouteReports:
		a.console.Printf("Commands: csv, pdf, preview, export, employees, attendance, logout, quit\n")
	}
}

func (a *App) dispatchLogin(ctx context.Context, cmd string) {
	if cmd != "login" {
		a.console.Printf("Please login first (command: login)\n")
		return
	}

	email := a.console.Prompt("Email")
	password := a.console.Prompt("Password")

	token, err := a.client.Auth.Login(ctx, email, password)
	if err != nil {
		a.log.Error("login failed", zap.Error(err))
		a.console.Printf("Invalid email or password\n")
		return
	}

	if err := a.session.Login(token); err != nil {
		a.log.Error("persist credential failed", zap.Error(err))
		a.console.Printf("Login succeeded but the credential could not be saved\n")
		return
	}

	a.NavigateTo(session.RouteEmployees)
	if a.ensureLoaded(ctx) == nil {
		a.renderList()
	}
}

func (a *App) ensureLoaded(ctx context.Context) error {
	if a.listLoaded {
		return nil
	}
	if err := a.list.Load(ctx); err != nil {
		return err
	}
	a.listLoaded = true
	return nil
}

func (a *App) renderList() {
	stats := a.list.Stats()
	a.console.Printf("Employees: %d  Total salary: %.2f\n", stats.Employees, stats.TotalSalary)
	if q := a.list.Query(); q != "" {
		a.console.Printf("Filter: %q (%d matching)\n", q, len(a.list.Filtered()))
	}
	RenderEmployees(a.console.out, a.list.Page())
	a.console.Printf("Page %d / %d\n", a.list.PageIndex(), a.list.TotalPages())
}

func (a *App) dispatchEmployees(ctx context.Context, cmd string, args []string) {
	if a.ensureLoaded(ctx) != nil {
		return
	}

	switch cmd {
	case "list":
		a.renderList()
	case "search":
		a.list.SetQuery(strings.Join(args, " "))
		a.renderList()
	case "next":
		a.list.Next()
		a.renderList()
	case "prev":
		a.list.Prev()
		a.renderList()
	case "add":
		a.runForm(ctx, 0)
	case "edit":
		if id, ok := a.parseID(args); ok {
			a.runForm(ctx, id)
		}
	case "rm":
		if id, ok := a.parseID(args); ok {
			if a.list.Delete(ctx, id) == nil {
				a.renderList()
			}
		}
	case "export":
		if path, err := a.reports.ExportXLSX(a.list.Filtered(), a.cfg.DownloadDir); err == nil {
			a.console.Printf("Saved %s\n", path)
		}
	case "attendance":
		a.NavigateTo(session.RouteAttendance)
		if a.board.LoadToday(ctx) == nil {
			RenderAttendance(a.console.out, a.board.Rows(), a.board.PresentToday)
		}
	case "reports":
		a.NavigateTo(session.RouteReports)
	default:
		a.console.Printf("Unknown command %q\n", cmd)
	}
}

func (a *App) runForm(ctx context.Context, existingID int) {
	if err := a.form.Open(ctx, existingID); err != nil {
		return
	}

	f := &a.form.Fields
	if v := a.console.Prompt(fmt.Sprintf("Full name [%s]", f.FullName)); v != "" {
		f.FullName = v
	}
	if v := a.console.Prompt(fmt.Sprintf("Email [%s]", f.Email)); v != "" {
		f.Email = v
	}
	if v := a.console.Prompt(fmt.Sprintf("Salary [%.2f]", f.Salary)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.Salary = n
		}
	}
	for _, d := range a.form.Departments() {
		a.console.Printf("  %d) %s\n", d.ID, d.Name)
	}
	if v := a.console.Prompt(fmt.Sprintf("Department id [%d]", f.DepartmentID)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.DepartmentID = n
		}
	}

	if a.form.Submit(ctx) == nil {
		a.renderList()
	}
}

func (a *App) dispatchAttendance(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "list":
		if a.board.LoadToday(ctx) == nil {
			RenderAttendance(a.console.out, a.board.Rows(), a.board.PresentToday)
		}
	case "mark":
		if len(args) < 2 {
			a.console.Printf("Usage: mark <id> present|absent\n")
			return
		}
		id, ok := a.parseID(args[:1])
		if !ok {
			return
		}
		present := strings.EqualFold(args[1], "present")
		if a.board.Mark(ctx, id, present) == nil {
			RenderAttendance(a.console.out, a.board.Rows(), a.board.PresentToday)
		}
	case "history":
		if id, ok := a.parseID(args); ok {
			if records, err := a.board.History(ctx, id); err == nil {
				RenderHistory(a.console.out, records)
			}
		}
	case "employees":
		a.NavigateTo(session.RouteEmployees)
	case "reports":
		a.NavigateTo(session.RouteReports)
	default:
		a.console.Printf("Unknown command %q\n", cmd)
	}
}

func (a *App) dispatchReports(ctx context.Context, cmd string) {
	switch cmd {
	case "csv":
		if path, err := a.reports.DownloadCSV(ctx, a.cfg.DownloadDir); err == nil {
			a.lastCSV = path
			a.console.Printf("Saved %s\n", path)
		}
	case "pdf":
		if path, err := a.reports.DownloadPDF(ctx, a.cfg.DownloadDir); err == nil {
			a.console.Printf("Saved %s\n", path)
		}
	case "preview":
		if a.lastCSV == "" {
			a.console.Printf("Download a csv report first\n")
			return
		}
		rows, err := a.reports.PreviewCSV(a.lastCSV, 10)
		if err != nil {
			a.console.Printf("Cannot preview %s: %v\n", a.lastCSV, err)
			return
		}
		RenderCSV(a.console.out, rows)
	case "export":
		if path, err := a.reports.ExportXLSX(a.list.Filtered(), a.cfg.DownloadDir); err == nil {
			a.console.Printf("Saved %s\n", path)
		}
	case "employees":
		a.NavigateTo(session.RouteEmployees)
	case "attendance":
		a.NavigateTo(session.RouteAttendance)
	default:
		a.console.Printf("Unknown command %q\n", cmd)
	}
}

func (a *App) parseID(args []string) (int, bool) {
	if len(args) == 0 {
		a.console.Printf("An employee id is required\n")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.console.Printf("Invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}
