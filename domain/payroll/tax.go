package payroll

import "math"

// UK income tax bands, applied to a single month's gross (annual
// thresholds divided by 12).
const (
	lowTaxRate  = 0.20
	midTaxRate  = 0.40
	highTaxRate = 0.45

	untaxedLimit = 12570.0
	lowTaxLimit  = 37700.0
	midTaxLimit  = 125140.0
)

func CalculateTax(grossSalary float64) float64 {
	var tax float64
	switch {
	case grossSalary <= untaxedLimit/12:
		tax = 0
	case grossSalary <= (untaxedLimit+lowTaxLimit)/12:
		tax = (grossSalary - untaxedLimit/12) * lowTaxRate
	case grossSalary <= (untaxedLimit+lowTaxLimit+midTaxLimit)/12:
		tax = (lowTaxLimit/12)*lowTaxRate + (grossSalary-(untaxedLimit+lowTaxLimit)/12)*midTaxRate
	default:
		tax = (lowTaxLimit/12)*lowTaxRate + (midTaxLimit/12)*midTaxRate +
			(grossSalary-(untaxedLimit+lowTaxLimit+midTaxLimit)/12)*highTaxRate
	}
	return round2(tax)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round0(v float64) float64 {
	return math.Round(v)
}
