package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"emi-calculator/domain"
)

// Validate parses the three raw form values. Each must be a finite number
// greater than zero, and the derived values must yield finite amounts.
func Validate(rawPrincipal, rawRate, rawTenure string) (domain.LoanInput, error) {
	principal, err := parsePositive(FieldPrincipal, rawPrincipal)
	if err != nil {
		return domain.LoanInput{}, err
	}
	rate, err := parsePositive(FieldRate, rawRate)
	if err != nil {
		return domain.LoanInput{}, err
	}
	tenure, err := parsePositive(FieldTenure, rawTenure)
	if err != nil {
		return domain.LoanInput{}, err
	}

	input := domain.LoanInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenureYears:       tenure,
		MonthlyRate:       rate / (MonthsPerYear * PercentDivisor),
		Months:            tenure * MonthsPerYear,
	}
	if input.MonthlyRate == 0 {
		return domain.LoanInput{}, &InputError{Field: FieldRate, Value: rawRate, Reason: "is too small"}
	}

	// A month count this close to zero sends the installment to infinity.
	if !isFinite(installment(input)) {
		return domain.LoanInput{}, &InputError{Field: FieldTenure, Value: rawTenure, Reason: "is too small"}
	}
	if !isFinite(Compute(input).TotalPayable) {
		return domain.LoanInput{}, &InputError{Field: FieldPrincipal, Value: rawPrincipal, Reason: "is too large"}
	}
	return input, nil
}

// parsePositive accepts plain decimal notation with an optional exponent.
// Hex floats, digit separators and the NaN/Inf spellings are rejected.
func parsePositive(field, raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &InputError{Field: field, Value: raw, Reason: "is empty"}
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, &InputError{Field: field, Value: raw, Reason: "is not a number"}
	}
	if !d.IsPositive() {
		return 0, &InputError{Field: field, Value: raw, Reason: "must be greater than zero"}
	}

	v := d.InexactFloat64()
	if !isFinite(v) {
		return 0, &InputError{Field: field, Value: raw, Reason: "is not finite"}
	}
	if v == 0 {
		return 0, &InputError{Field: field, Value: raw, Reason: "is too small"}
	}
	return v, nil
}

// Compute applies the annuity formula to a validated input.
//
// EMI and total interest are rounded to cents independently, and the total
// payable is rebuilt from the principal and the rounded interest so that the
// three displayed figures always add up.
func Compute(input domain.LoanInput) domain.LoanResult {
	p := input.Principal
	emi := installment(input)
	total := emi * input.Months

	interest := roundTo2Decimals(total - p)
	if interest < 0 {
		interest = 0
	}

	return domain.LoanResult{
		MonthlyInstallment: roundTo2Decimals(emi),
		TotalInterest:      interest,
		TotalPayable:       addAmounts(p, interest),
	}
}

// installment is the unrounded EMI.
//
// P·r·(1+r)^n / ((1+r)^n − 1) is evaluated as P·r / (1 − (1+r)^−n) with
// log1p/expm1 so tiny rates keep precision and long tenures cannot overflow.
// When n·log1p(r) underflows the result is the zero-rate limit P/n.
func installment(input domain.LoanInput) float64 {
	p := input.Principal
	r := input.MonthlyRate
	n := input.Months

	denominator := -math.Expm1(-n * math.Log1p(r))
	if r == 0 || denominator == 0 {
		return p / n
	}
	return p * r / denominator
}

// roundTo2Decimals rounds the shortest decimal form of value half away from
// zero, so 1.005 becomes 1.01 even though its binary value sits just below.
func roundTo2Decimals(value float64) float64 {
	if !isFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func addAmounts(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return a + b
	}
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
