package domain

import (
	"github.com/shopspring/decimal"
)

// PayrollLine is one employee's computed pay for a given month/year:
// gross, tax = gross x taxRate, net = gross - tax.
type PayrollLine struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	Type       string          `json:"type"` // Display label, "Salaried" or "Hourly"
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Gross      decimal.Decimal `json:"gross"`
	Tax        decimal.Decimal `json:"tax"`
	Net        decimal.Decimal `json:"net"`
}

// PayrollResult is the ordered sequence of lines for one payroll run plus
// running totals. Created fresh per run, never mutated outside Add.
type PayrollResult struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Lines      []PayrollLine   `json:"lines"`
	TotalGross decimal.Decimal `json:"totalGross"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	TotalNet   decimal.Decimal `json:"totalNet"`
}

// NewPayrollResult creates an empty result for the given period.
func NewPayrollResult(month, year int) *PayrollResult {
	return &PayrollResult{
		Month:      month,
		Year:       year,
		Lines:      []PayrollLine{},
		TotalGross: decimal.Zero,
		TotalTax:   decimal.Zero,
		TotalNet:   decimal.Zero,
	}
}

// Add appends a line and folds it into the running totals.
func (r *PayrollResult) Add(line PayrollLine) {
	r.Lines = append(r.Lines, line)
	r.TotalGross = r.TotalGross.Add(line.Gross)
	r.TotalTax = r.TotalTax.Add(line.Tax)
	r.TotalNet = r.TotalNet.Add(line.Net)
}

// ComputePayrollLine derives one employee's line for the period. There are
// no error conditions: every employee produces a line regardless of the
// sign or magnitude of its fields.
func ComputePayrollLine(e Employee, month, year int) PayrollLine {
	gross := e.GrossPay(month, year)
	tax := gross.Mul(e.TaxRate)
	return PayrollLine{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Type:       e.TypeLabel(),
		Month:      month,
		Year:       year,
		Gross:      gross,
		Tax:        tax,
		Net:        gross.Sub(tax),
	}
}
