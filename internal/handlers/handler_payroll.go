package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
	"github.com/finbyte/card_ledger_app/internal/dto"
	"github.com/finbyte/card_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to employees and payroll runs.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
	}
}

// registerPayrollRoutes registers employee store and payroll run routes.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.addEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.DELETE("", h.clearEmployees)
	}

	payroll := rg.Group("/payroll")
	{
		payroll.POST("/runs", h.generatePayroll)
	}
}

// addEmployee godoc
// @Summary Add an employee
// @Description Stores an employee; an existing employee with the same ID is overwritten
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /employees [post]
func (h *payrollHandler) addEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.payrollService.AddEmployee(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to add employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add employee"})
		return
	}

	logger.Info("Employee added", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List all employees
// @Tags payroll
// @Produce  json
// @Success 200 {array} dto.EmployeeResponse
// @Router /employees [get]
func (h *payrollHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.payrollService.GetAllEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags payroll
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [get]
func (h *payrollHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	employee, err := h.payrollService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to get employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// clearEmployees godoc
// @Summary Remove all employees
// @Tags payroll
// @Success 204
// @Router /employees [delete]
func (h *payrollHandler) clearEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.payrollService.RemoveAllEmployees(c.Request.Context()); err != nil {
		logger.Error("Failed to clear employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear employees"})
		return
	}

	c.Status(http.StatusNoContent)
}

// generatePayroll godoc
// @Summary Run payroll for a period
// @Description Computes gross/tax/net for every stored employee and aggregates totals
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   period body dto.GeneratePayrollRequest true "Payroll period"
// @Success 200 {object} dto.PayrollResultResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /payroll/runs [post]
func (h *payrollHandler) generatePayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GeneratePayroll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.payrollService.GeneratePayroll(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		logger.Error("Failed to generate payroll", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate payroll"})
		return
	}

	logger.Info("Payroll generated",
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
		slog.Int("line_count", len(result.Lines)))
	c.JSON(http.StatusOK, dto.ToPayrollResultResponse(result))
}
