package repositories

import (
	"context"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindAllEmployees retrieves all employees in insertion order.
	FindAllEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts an employee, or overwrites an existing one with
	// the same identifier (last write wins, no merge).
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// ClearEmployees removes all employees.
	ClearEmployees(ctx context.Context) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
