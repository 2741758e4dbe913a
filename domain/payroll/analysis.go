package payroll

const (
	AnalysisInconsistentBills = "Your monthly salary is less than your salary after bills. Please check your bill entries."
	AnalysisBelow20           = "Your salary after bills is less than 20% of your monthly salary. Consider reviewing your expenses."
	AnalysisBelow50           = "Your salary after bills is less than 50% of your monthly salary. Try to manage your bills better."
	AnalysisBelow75           = "Your salary after bills is less than 75% of your monthly salary. You are doing okay, but there is room for improvement."
	AnalysisBelow100          = "Your salary after bills is less than your monthly salary. Good job, but keep an eye on your expenses."
	AnalysisInsufficientData  = "Insufficient data to analyze salary after bills."
)

// AnalyzeAfterBills classifies financial health by the ratio of the
// after-bills amount to the monthly amount. Thresholds are checked in
// this fixed ascending order and the first match wins.
func AnalyzeAfterBills(monthly, afterBills float64) string {
	switch {
	case monthly < afterBills && afterBills > 0:
		return AnalysisInconsistentBills
	case afterBills < monthly*0.2:
		return AnalysisBelow20
	case afterBills < monthly*0.5:
		return AnalysisBelow50
	case afterBills < monthly*0.75:
		return AnalysisBelow75
	case afterBills < monthly:
		return AnalysisBelow100
	default:
		return AnalysisInsufficientData
	}
}
