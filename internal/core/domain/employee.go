package domain

import (
	"github.com/shopspring/decimal"
)

// EmployeeType discriminates the two pay-calculation variants.
type EmployeeType string

const (
	Salaried EmployeeType = "SALARIED"
	Hourly   EmployeeType = "HOURLY"
)

// Employee is a tagged variant: Salaried uses Salary, Hourly uses
// HourlyRate and HoursWorked. Both carry a flat TaxRate (decimal fraction).
// Immutable after construction; no validation is enforced on the numeric
// fields, negative values flow through arithmetically.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	Type        EmployeeType    `json:"type"`
	Salary      decimal.Decimal `json:"salary"`      // Salaried only
	HourlyRate  decimal.Decimal `json:"hourlyRate"`  // Hourly only
	HoursWorked decimal.Decimal `json:"hoursWorked"` // Hourly only
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// NewSalariedEmployee builds a salaried employee with a fixed monthly salary.
func NewSalariedEmployee(id, name, department string, salary, taxRate decimal.Decimal) Employee {
	return Employee{
		EmployeeID: id,
		Name:       name,
		Department: department,
		Type:       Salaried,
		Salary:     salary,
		TaxRate:    taxRate,
	}
}

// NewHourlyEmployee builds an hourly employee paid rate x hours.
func NewHourlyEmployee(id, name, department string, hourlyRate, hoursWorked, taxRate decimal.Decimal) Employee {
	return Employee{
		EmployeeID:  id,
		Name:        name,
		Department:  department,
		Type:        Hourly,
		HourlyRate:  hourlyRate,
		HoursWorked: hoursWorked,
		TaxRate:     taxRate,
	}
}

// GrossPay computes the employee's gross pay for the given period. Both
// variants are period-independent: month and year are accepted purely for
// labeling and never select a different salary or hours value.
func (e Employee) GrossPay(month, year int) decimal.Decimal {
	switch e.Type {
	case Hourly:
		return e.HourlyRate.Mul(e.HoursWorked)
	default:
		return e.Salary
	}
}

// TypeLabel returns the display label for the employee's pay variant.
func (e Employee) TypeLabel() string {
	if e.Type == Hourly {
		return "Hourly"
	}
	return "Salaried"
}
