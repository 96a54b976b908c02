package v1

// In-process stand-in for the StaffDesk server, just enough surface for the
// client tests. It also pins down the API contract the client assumes:
// attendance is upserted per employee per day, never duplicated.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"staffdesk.com/staffdesk/session"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

var stubSecret = []byte("stub-signing-secret")

const (
	stubEmail    = "admin@staffdesk.com"
	stubPassword = "secret"
)

type stubServer struct {
	*httptest.Server

	employees   []EmployeeDTO
	departments []DepartmentDTO
	attendance  map[int][]AttendanceRecordDTO
	nextID      int
	nextRecID   int
}

func newStubServer() *stubServer {
	gin.SetMode(gin.TestMode)

	s := &stubServer{
		departments: []DepartmentDTO{
			{ID: 1, Name: "Engineering"},
			{ID: 2, Name: "Sales"},
		},
		attendance: map[int][]AttendanceRecordDTO{},
	}

	r := gin.New()
	r.POST("/auth/login", s.login)

	protected := r.Group("/")
	protected.Use(s.authenticate)
	{
		protected.GET("/departments", func(c *gin.Context) {
			c.JSON(http.StatusOK, s.departments)
		})
		protected.POST("/departments", s.createDepartment)

		protected.GET("/employees", s.listEmployees)
		protected.POST("/employees", s.createEmployee)
		protected.GET("/employees/:id", s.getEmployee)
		protected.PUT("/employees/:id", s.updateEmployee)
		protected.DELETE("/employees/:id", s.deleteEmployee)

		protected.GET("/attendance/:employeeId", s.attendanceHistory)
		protected.POST("/attendance", s.markAttendance)

		protected.GET("/reports/employees/csv", s.reportCSV)
		protected.GET("/reports/employees/pdf", s.reportPDF)
	}

	s.Server = httptest.NewServer(r)
	return s
}

func (s *stubServer) login(c *gin.Context) {
	var req LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("malformed login request"))
		return
	}
	if req.Email != stubEmail || req.Password != stubPassword {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid credentials"))
		return
	}

	token, err := session.MintToken(&session.Identity{Email: req.Email, Role: "Admin"}, stubSecret, time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *stubServer) authenticate(c *gin.Context) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("missing bearer token"))
		return
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return stubSecret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
		return
	}

	c.Next()
}

func (s *stubServer) expand(e EmployeeDTO) EmployeeDTO {
	if e.DepartmentID != nil {
		for _, d := range s.departments {
			if d.ID == *e.DepartmentID {
				e.Department = &DepartmentRefDTO{ID: d.ID, Name: d.Name}
			}
		}
	}
	return e
}

func (s *stubServer) listEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Map(s.employees, s.expand))
}

func (s *stubServer) createEmployee(c *gin.Context) {
	var dto SaveEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("malformed employee"))
		return
	}

	s.nextID++
	deptID := dto.DepartmentID
	e := EmployeeDTO{
		ID:           s.nextID,
		FullName:     dto.FullName,
		Email:        dto.Email,
		Salary:       dto.Salary,
		DepartmentID: &deptID,
	}
	s.employees = append(s.employees, e)
	c.JSON(http.StatusCreated, s.expand(e))
}

func (s *stubServer) findEmployee(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid employee id"))
		return 0, false
	}
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i, true
		}
	}
	c.JSON(http.StatusNotFound, common.NewErrorResponse("employee not found"))
	return 0, false
}

func (s *stubServer) getEmployee(c *gin.Context) {
	if i, ok := s.findEmployee(c); ok {
		c.JSON(http.StatusOK, s.expand(s.employees[i]))
	}
}

func (s *stubServer) updateEmployee(c *gin.Context) {
	i, ok := s.findEmployee(c)
	if !ok {
		return
	}

	var dto SaveEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("malformed employee"))
		return
	}

	deptID := dto.DepartmentID
	s.employees[i].FullName = dto.FullName
	s.employees[i].Email = dto.Email
	s.employees[i].Salary = dto.Salary
	s.employees[i].DepartmentID = &deptID
	c.JSON(http.StatusOK, s.expand(s.employees[i]))
}

func (s *stubServer) deleteEmployee(c *gin.Context) {
	if i, ok := s.findEmployee(c); ok {
		s.employees = append(s.employees[:i], s.employees[i+1:]...)
		c.Status(http.StatusNoContent)
	}
}

func (s *stubServer) createDepartment(c *gin.Context) {
	var dto DepartmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("malformed department"))
		return
	}
	dto.ID = len(s.departments) + 1
	s.departments = append(s.departments, dto)
	c.JSON(http.StatusCreated, dto)
}

func (s *stubServer) attendanceHistory(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid employee id"))
		return
	}
	records := s.attendance[employeeID]
	if records == nil {
		records = []AttendanceRecordDTO{}
	}
	c.JSON(http.StatusOK, records)
}

// one record per employee per day
func (s *stubServer) markAttendance(c *gin.Context) {
	var dto MarkAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("malformed attendance mark"))
		return
	}

	day := utils.TodayISO()
	if dto.Date != nil && !dto.Date.IsZero() {
		day = dto.Date.String()
	}

	records := s.attendance[dto.EmployeeID]
	for i := range records {
		if records[i].MatchesDay(day) {
			records[i].Present = dto.Present
			c.JSON(http.StatusOK, records[i])
			return
		}
	}

	s.nextRecID++
	rec := AttendanceRecordDTO{
		ID:         s.nextRecID,
		EmployeeID: dto.EmployeeID,
		Date:       day,
		Present:    dto.Present,
	}
	s.attendance[dto.EmployeeID] = append(records, rec)
	c.JSON(http.StatusCreated, rec)
}

func (s *stubServer) reportCSV(c *gin.Context) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"fullName", "email", "salary"})
	for _, e := range s.employees {
		w.Write([]string{e.FullName, e.Email, fmt.Sprintf("%.2f", e.Salary)})
	}
	w.Flush()
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *stubServer) reportPDF(c *gin.Context) {
	c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.4\nstub employees report\n%%EOF\n"))
}
