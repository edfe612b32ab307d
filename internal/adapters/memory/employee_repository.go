package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	portsrepo "github.com/finbyte/card_ledger_app/internal/core/ports/repositories"
)

// EmployeeRepository is a mutex-guarded in-memory employee store keyed by
// employee identifier. Overwriting an existing identifier keeps its original
// insertion position.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]domain.Employee
	order     []string
}

// NewEmployeeRepository creates an empty in-memory employee repository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]domain.Employee),
	}
}

// Ensure EmployeeRepository implements the repository facade
var _ portsrepo.EmployeeRepositoryFacade = (*EmployeeRepository)(nil)

// SaveEmployee inserts or overwrites by identifier; last write wins, no merge.
func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[employee.EmployeeID]; !exists {
		r.order = append(r.order, employee.EmployeeID)
	}
	r.employees[employee.EmployeeID] = employee
	return nil
}

// FindEmployeeByID retrieves a copy of the employee with the given identifier.
func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.employees[employeeID]
	if !exists {
		return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return &employee, nil
}

// FindAllEmployees returns copies of all employees in insertion order.
// Callers may mutate the returned slice freely.
func (r *EmployeeRepository) FindAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.employees[id])
	}
	return result, nil
}

// ClearEmployees removes all employees.
func (r *EmployeeRepository) ClearEmployees(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees = make(map[string]domain.Employee)
	r.order = nil
	return nil
}
