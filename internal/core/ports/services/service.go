package services

// ServiceContainer holds all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	Card    CardSvcFacade
	Payroll PayrollSvcFacade
}
