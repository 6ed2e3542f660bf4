package handlers

import (
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandler(employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type employeeRequest struct {
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	MonthlySalary float64    `json:"monthly_salary"`
	DateAdded     *time.Time `json:"date_added"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	employee := &models.Employee{
		Name:          req.Name,
		Role:          req.Role,
		MonthlySalary: req.MonthlySalary,
	}
	if req.DateAdded != nil {
		employee.DateAdded = *req.DateAdded
	}

	if err := h.employeeService.CreateEmployee(employee); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.GetAllEmployees()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, employees)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	employee.Name = req.Name
	employee.Role = req.Role
	employee.MonthlySalary = req.MonthlySalary

	if err := h.employeeService.UpdateEmployee(employee); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id, "status": "deleted"})
}
