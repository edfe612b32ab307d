package services

import (
	portsrepo "github.com/finbyte/card_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires all services against their repositories.
func NewServiceContainer(
	cardRepo portsrepo.CardRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Card:    NewCardServiceImpl(cardRepo),
		Payroll: NewPayrollServiceImpl(employeeRepo),
	}
}
