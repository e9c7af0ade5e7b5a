package service

const (
	MonthsPerYear  = 12
	PercentDivisor = 100

	// Field names reported by InputError.
	FieldPrincipal = "principal"
	FieldRate      = "rate"
	FieldTenure    = "tenure"
)
