package service

import (
	"go.uber.org/zap"

	"emi-calculator/domain"
)

type LoanService struct {
	logger *zap.Logger
}

// NewLoanService creates a new LoanService. A nil logger disables logging.
func NewLoanService(logger *zap.Logger) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanService{logger: logger}
}

// CalculateLoan validates the raw form values and computes the installment.
func (s *LoanService) CalculateLoan(
	principal, rate, tenure string,
) (domain.LoanResult, error) {

	input, err := Validate(principal, rate, tenure)
	if err != nil {
		s.logger.Info("loan input rejected", zap.Error(err))
		return domain.LoanResult{}, err
	}

	result := Compute(input)

	s.logger.Debug("loan calculated",
		zap.Float64("principal", input.Principal),
		zap.Float64("monthly_rate", input.MonthlyRate),
		zap.Float64("months", input.Months),
		zap.Float64("emi", result.MonthlyInstallment),
		zap.Float64("total_interest", result.TotalInterest),
	)

	return result, nil
}
