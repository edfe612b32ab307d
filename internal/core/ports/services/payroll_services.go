package services

import (
	"context"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/finbyte/card_ledger_app/internal/dto"
)

// PayrollSvcFacade exposes the employee store and the payroll run.
type PayrollSvcFacade interface {
	// AddEmployee stores an employee; an existing employee with the same
	// identifier is overwritten.
	AddEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee by identifier.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetAllEmployees returns a defensive copy of the store's contents.
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)

	// RemoveAllEmployees clears the store.
	RemoveAllEmployees(ctx context.Context) error

	// GeneratePayroll computes one line per stored employee for the given
	// period and aggregates running totals. Every employee produces a line.
	GeneratePayroll(ctx context.Context, month, year int) (*domain.PayrollResult, error)
}
