package domain

// LoanInput is a validated calculation request. MonthlyRate and Months are
// derived from the annual rate and the tenure in years.
type LoanInput struct {
	Principal         float64
	AnnualRatePercent float64
	TenureYears       float64
	MonthlyRate       float64
	Months            float64
}

// LoanResult holds the figures shown to the user. MonthlyInstallment and
// TotalInterest are rounded to cents; TotalPayable is Principal plus the
// rounded TotalInterest.
type LoanResult struct {
	MonthlyInstallment float64
	TotalInterest      float64
	TotalPayable       float64
}
