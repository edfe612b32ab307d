package dto

import (
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/finbyte/card_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to add an employee.
// Salary applies to SALARIED employees; hourlyRate and hoursWorked to
// HOURLY ones. Fields for the other variant are ignored.
type CreateEmployeeRequest struct {
	EmployeeID  string              `json:"employeeID" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Department  string              `json:"department"`
	Type        domain.EmployeeType `json:"type" binding:"required,oneof=SALARIED HOURLY"`
	Salary      decimal.Decimal     `json:"salary"`
	HourlyRate  decimal.Decimal     `json:"hourlyRate"`
	HoursWorked decimal.Decimal     `json:"hoursWorked"`
	TaxRate     decimal.Decimal     `json:"taxRate"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID  string `json:"employeeID"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Salary      string `json:"salary,omitempty"`
	HourlyRate  string `json:"hourlyRate,omitempty"`
	HoursWorked string `json:"hoursWorked,omitempty"`
	TaxRate     string `json:"taxRate"`
}

// ToEmployeeResponse converts a domain.Employee to an EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	res := EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Department: e.Department,
		Type:       e.TypeLabel(),
		TaxRate:    e.TaxRate.String(),
	}
	switch e.Type {
	case domain.Hourly:
		res.HourlyRate = utils.FormatAmount(e.HourlyRate)
		res.HoursWorked = e.HoursWorked.String()
	default:
		res.Salary = utils.FormatAmount(e.Salary)
	}
	return res
}

// ToListEmployeeResponse converts a slice of domain.Employee to DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// GeneratePayrollRequest selects the period a payroll run is labeled with.
type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required"`
}

// PayrollLineResponse is one employee's computed pay for the run.
type PayrollLineResponse struct {
	EmployeeID string `json:"employeeID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Gross      string `json:"gross"`
	Tax        string `json:"tax"`
	Net        string `json:"net"`
}

// PayrollResultResponse wraps the lines of a run plus its totals.
type PayrollResultResponse struct {
	Month      int                   `json:"month"`
	Year       int                   `json:"year"`
	Lines      []PayrollLineResponse `json:"lines"`
	TotalGross string                `json:"totalGross"`
	TotalTax   string                `json:"totalTax"`
	TotalNet   string                `json:"totalNet"`
}

// ToPayrollResultResponse converts a domain.PayrollResult to its DTO.
func ToPayrollResultResponse(r *domain.PayrollResult) PayrollResultResponse {
	lines := make([]PayrollLineResponse, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = PayrollLineResponse{
			EmployeeID: line.EmployeeID,
			Name:       line.Name,
			Type:       line.Type,
			Gross:      utils.FormatAmount(line.Gross),
			Tax:        utils.FormatAmount(line.Tax),
			Net:        utils.FormatAmount(line.Net),
		}
	}
	return PayrollResultResponse{
		Month:      r.Month,
		Year:       r.Year,
		Lines:      lines,
		TotalGross: utils.FormatAmount(r.TotalGross),
		TotalTax:   utils.FormatAmount(r.TotalTax),
		TotalNet:   utils.FormatAmount(r.TotalNet),
	}
}
