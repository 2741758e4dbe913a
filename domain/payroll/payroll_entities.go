package payroll

import (
	"github.com/fundwit/go-commons/types"
)

// DailyEarning is the payroll ledger: one row per approved shift or
// manual daily-salary calculation. Week/month/year are derived from the
// earning date at insert time so rollups stay plain keyed sums.
type DailyEarning struct {
	ID     types.ID `json:"id" gorm:"primary_key"`
	Date   string   `json:"date" sql:"type:VARCHAR(10) NOT NULL"`
	Hours  float64  `json:"hours" sql:"type:DECIMAL(5,2)"`
	Amount float64  `json:"amount" sql:"type:DECIMAL(10,2)"`
	UserID types.ID `json:"userId"`

	WeekNumber int `json:"-"`
	WeekYear   int `json:"-"`
	Month      int `json:"-"`
	Year       int `json:"-"`
}

func (e *DailyEarning) TableName() string {
	return "daily_earnings"
}

type WeeklyEarning struct {
	ID         types.ID `json:"id" gorm:"primary_key"`
	WeekNumber int      `json:"weekNumber"`
	Year       int      `json:"year"`
	Amount     float64  `json:"amount" sql:"type:DECIMAL(10,2)"`
	UserID     types.ID `json:"userId"`
}

func (e *WeeklyEarning) TableName() string {
	return "weekly_earnings"
}

// MonthlySalary stores the month's net amount (gross minus tax).
type MonthlySalary struct {
	ID     types.ID `json:"id" gorm:"primary_key"`
	Month  int      `json:"month"`
	Year   int      `json:"year"`
	Amount float64  `json:"amount" sql:"type:DECIMAL(12,2)"`
	UserID types.ID `json:"userId"`
}

func (e *MonthlySalary) TableName() string {
	return "monthly_salaries"
}

type MonthlySalaryBreakdown struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	GrossSalary float64 `json:"grossSalary"`
	Tax         float64 `json:"tax"`
	NetSalary   float64 `json:"netSalary"`
}

type WeeklyEarningsSummary struct {
	WeekNumber    int     `json:"weekNumber"`
	Year          int     `json:"year"`
	TotalEarnings float64 `json:"totalEarnings"`
}

type DailySalaryCalculation struct {
	HourlyRate    float64 `json:"hourlyRate" binding:"required,gt=0"`
	WorkStartTime string  `json:"workStartTime" binding:"required"`
	WorkEndTime   string  `json:"workEndTime" binding:"required"`
}

type DailySalaryResult struct {
	DailySalary float64 `json:"dailySalary"`
	DailyHours  float64 `json:"dailyHours"`
}

type DailyEarningBrief struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type SalaryAfterBillsView struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	MonthlySalary float64 `json:"monthlySalary"`
	TotalBills    float64 `json:"totalBills"`
	NetAfterBills float64 `json:"netAfterBills"`
	Percentage    float64 `json:"percentageAfterBills"`
	Analysis      string  `json:"analysis"`
}
