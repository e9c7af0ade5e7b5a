// Package calculator holds the state of the EMI form: the three raw field
// values and, once calculated, the result shown next to them.
package calculator

import (
	"emi-calculator/domain"
	"emi-calculator/format"
)

// Fields are the raw, unparsed values typed into the form.
type Fields struct {
	Principal string
	Rate      string
	Tenure    string
}

// Display is the rendered result section.
type Display struct {
	MonthlyEMI    string
	TotalInterest string
	TotalAmount   string
}

type Calculator struct {
	engine Engine
	fields Fields
	state  domain.State
	result domain.LoanResult
}

// New returns a calculator in the Empty state.
func New(engine Engine) *Calculator {
	return &Calculator{engine: engine, state: domain.Empty}
}

// Editing a field never recalculates; the shown result stays until the next
// Calculate or Reset.
func (c *Calculator) SetPrincipal(v string) { c.fields.Principal = v }
func (c *Calculator) SetRate(v string)      { c.fields.Rate = v }
func (c *Calculator) SetTenure(v string)    { c.fields.Tenure = v }

func (c *Calculator) Fields() Fields {
	return c.fields
}

func (c *Calculator) State() domain.State {
	return c.state
}

// Calculate runs the engine on the current fields. On failure the previous
// result is discarded and the calculator falls back to Empty; the error is
// returned for logging only.
func (c *Calculator) Calculate() error {
	result, err := c.engine.CalculateLoan(c.fields.Principal, c.fields.Rate, c.fields.Tenure)
	if err != nil {
		c.clearResult()
		return err
	}

	c.result = result
	c.state = domain.Computed
	return nil
}

// Reset clears the fields and any result.
func (c *Calculator) Reset() {
	c.fields = Fields{}
	c.clearResult()
}

// Result returns the current result, or false when nothing is shown.
func (c *Calculator) Result() (domain.LoanResult, bool) {
	if c.state != domain.Computed {
		return domain.LoanResult{}, false
	}
	return c.result, true
}

// View renders the result section, or returns false in the Empty state.
func (c *Calculator) View() (Display, bool) {
	result, ok := c.Result()
	if !ok {
		return Display{}, false
	}
	return Display{
		MonthlyEMI:    format.Currency(result.MonthlyInstallment),
		TotalInterest: format.Currency(result.TotalInterest),
		TotalAmount:   format.Currency(result.TotalPayable),
	}, true
}

func (c *Calculator) clearResult() {
	c.result = domain.LoanResult{}
	c.state = domain.Empty
}
