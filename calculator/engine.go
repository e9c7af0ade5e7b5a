package calculator

import "emi-calculator/domain"

// Engine validates raw form values and computes the loan figures.
// *service.LoanService implements it.
//
//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks -source=engine.go Engine
type Engine interface {
	CalculateLoan(principal, rate, tenure string) (domain.LoanResult, error)
}
