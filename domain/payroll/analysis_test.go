package payroll_test

import (
	"shiftpay/domain/payroll"
	"testing"

	. "github.com/onsi/gomega"
)

func TestAnalyzeAfterBills(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should flag inconsistent bill entries", func(t *testing.T) {
		Expect(payroll.AnalyzeAfterBills(1000, 1200)).To(Equal(payroll.AnalysisInconsistentBills))
	})

	t.Run("should classify by ascending thresholds, first match wins", func(t *testing.T) {
		Expect(payroll.AnalyzeAfterBills(1000, 150)).To(Equal(payroll.AnalysisBelow20))
		Expect(payroll.AnalyzeAfterBills(1000, 199.99)).To(Equal(payroll.AnalysisBelow20))
		Expect(payroll.AnalyzeAfterBills(1000, 200)).To(Equal(payroll.AnalysisBelow50))
		Expect(payroll.AnalyzeAfterBills(1000, 499)).To(Equal(payroll.AnalysisBelow50))
		Expect(payroll.AnalyzeAfterBills(1000, 650)).To(Equal(payroll.AnalysisBelow75))
		Expect(payroll.AnalyzeAfterBills(1000, 900)).To(Equal(payroll.AnalysisBelow100))
	})

	t.Run("should report insufficient data when nothing is left to compare", func(t *testing.T) {
		Expect(payroll.AnalyzeAfterBills(0, 0)).To(Equal(payroll.AnalysisInsufficientData))
		Expect(payroll.AnalyzeAfterBills(1000, 1000)).To(Equal(payroll.AnalysisInsufficientData))
	})

	t.Run("negative leftover still counts against the lowest band", func(t *testing.T) {
		Expect(payroll.AnalyzeAfterBills(1000, -50)).To(Equal(payroll.AnalysisBelow20))
	})
}
