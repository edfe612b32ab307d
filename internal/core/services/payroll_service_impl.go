package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	portsrepo "github.com/finbyte/card_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
	"github.com/finbyte/card_ledger_app/internal/dto"
)

// payrollServiceImpl implements the PayrollSvcFacade interface
type payrollServiceImpl struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewPayrollServiceImpl creates a new payroll service
func NewPayrollServiceImpl(repo portsrepo.EmployeeRepositoryFacade) portssvc.PayrollSvcFacade {
	return &payrollServiceImpl{
		employeeRepo: repo,
	}
}

// Ensure payrollServiceImpl implements the PayrollSvcFacade interface
var _ portssvc.PayrollSvcFacade = (*payrollServiceImpl)(nil)

func (s *payrollServiceImpl) AddEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	var employee domain.Employee
	switch req.Type {
	case domain.Hourly:
		employee = domain.NewHourlyEmployee(req.EmployeeID, req.Name, req.Department, req.HourlyRate, req.HoursWorked, req.TaxRate)
	default:
		employee = domain.NewSalariedEmployee(req.EmployeeID, req.Name, req.Department, req.Salary, req.TaxRate)
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_id", employee.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee saved",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("type", employee.TypeLabel()))
	return &employee, nil
}

func (s *payrollServiceImpl) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by ID",
				slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *payrollServiceImpl) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	return employees, nil
}

func (s *payrollServiceImpl) RemoveAllEmployees(ctx context.Context) error {
	if err := s.employeeRepo.ClearEmployees(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear employees")
		return err
	}
	s.LogInfo(ctx, "Employee store cleared")
	return nil
}

func (s *payrollServiceImpl) GeneratePayroll(ctx context.Context, month, year int) (*domain.PayrollResult, error) {
	employees, err := s.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for payroll run")
		return nil, err
	}

	// Every stored employee yields a line; there are no per-line failures.
	result := domain.NewPayrollResult(month, year)
	for _, employee := range employees {
		result.Add(domain.ComputePayrollLine(employee, month, year))
	}

	s.LogInfo(ctx, "Payroll run generated",
		slog.Int("month", month),
		slog.Int("year", year),
		slog.Int("line_count", len(result.Lines)),
		slog.String("total_net", result.TotalNet.String()))
	return result, nil
}
