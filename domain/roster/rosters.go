package roster

import (
	"context"
	"fmt"
	"math"
	"shiftpay/account"
	"shiftpay/bizerror"
	"shiftpay/domain"
	"shiftpay/persistence"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

// EmployeeOverview is one roster card. Email, department and status are
// derived display fields until the account model grows real ones.
type EmployeeOverview struct {
	ID     types.ID `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Status string   `json:"status"`

	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`

	HourlyRate       float64 `json:"hourlyRate"`
	TotalShifts      int     `json:"totalShifts"`
	HoursWorked      float64 `json:"hoursWorked"`
	MonthlySalary    float64 `json:"monthlySalary"`
	CalculatedSalary float64 `json:"calculatedSalary"`
}

type RecentShift struct {
	ID        types.ID        `json:"id"`
	Date      string          `json:"date"`
	Hours     float64         `json:"hours"`
	Status    string          `json:"status"`
	CreatedAt types.Timestamp `json:"createdAt"`
	Earnings  float64         `json:"earnings"`
}

type EmployeeSalaryDetail struct {
	EmployeeID   types.ID `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	HourlyRate   float64  `json:"hourlyRate"`

	MonthlyTotal float64 `json:"monthlyTotal"`
	WeeklyTotal  float64 `json:"weeklyTotal"`
	MonthlyHours float64 `json:"monthlyHours"`

	RecentShifts []RecentShift `json:"recentShifts"`
}

var (
	QueryEmployeesFunc       = QueryEmployees
	DetailEmployeeSalaryFunc = DetailEmployeeSalary
)

// QueryEmployees aggregates the whole roster in one pass: approved shift
// counts and hours per employee plus the given month's salary rollup.
func QueryEmployees(year, month int, sec *session.Context, ctx context.Context) ([]EmployeeOverview, error) {
	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	rows := []struct {
		ID            types.ID
		Name          string
		HourlyRate    float64
		TotalShifts   int
		TotalHours    float64
		MonthlySalary float64
	}{}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	err := db.Table("users").
		Select("users.id, users.name, users.hourly_rate, "+
			"COUNT(DISTINCT shifts.id) AS total_shifts, "+
			"IFNULL(SUM(shifts.hours_worked), 0) AS total_hours, "+
			"IFNULL(monthly_salaries.amount, 0) AS monthly_salary").
		Joins("LEFT JOIN shifts ON users.id = shifts.employee_id AND shifts.status = ?", domain.StateApproved.Name).
		Joins("LEFT JOIN monthly_salaries ON users.id = monthly_salaries.user_id "+
			"AND monthly_salaries.month = ? AND monthly_salaries.year = ?", month, year).
		Where("users.role = ?", session.RoleEmployee).
		Group("users.id, users.name, users.hourly_rate, monthly_salaries.amount").
		Order("users.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overviews := make([]EmployeeOverview, 0, len(rows))
	for _, r := range rows {
		monthly := r.MonthlySalary
		if monthly == 0 {
			monthly = round2(r.TotalHours * r.HourlyRate)
		}
		overviews = append(overviews, EmployeeOverview{
			ID:               r.ID,
			Name:             r.Name,
			Email:            r.Name + "@company.com",
			Status:           "active",
			Department:       "Operations",
			JoinDate:         "2025-06-15",
			HourlyRate:       r.HourlyRate,
			TotalShifts:      r.TotalShifts,
			HoursWorked:      r.TotalHours,
			MonthlySalary:    monthly,
			CalculatedSalary: round2(r.TotalHours * r.HourlyRate),
		})
	}
	return overviews, nil
}

// DetailEmployeeSalary assembles the drill-down view for one employee:
// the month's ledger total, the current week's rollup, approved hours
// and the ten most recent shifts priced at the current hourly rate.
func DetailEmployeeSalary(employeeId types.ID, year, month, week int,
	sec *session.Context, ctx context.Context) (*EmployeeSalaryDetail, error) {

	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	detail := EmployeeSalaryDetail{EmployeeID: employeeId, RecentShifts: []RecentShift{}}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)

	employee := account.User{}
	if err := db.Where(&account.User{ID: employeeId, Role: session.RoleEmployee}).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	detail.EmployeeName = employee.Nickname
	detail.HourlyRate = employee.HourlyRate

	sum := struct{ Total float64 }{}
	err := db.Table("daily_earnings").Select("IFNULL(SUM(amount),0) AS total").
		Where("user_id = ? AND month = ? AND year = ?", employeeId, month, year).
		Scan(&sum).Error
	if err != nil {
		return nil, err
	}
	detail.MonthlyTotal = sum.Total

	weekly := struct{ Total float64 }{}
	err = db.Table("weekly_earnings").Select("IFNULL(SUM(amount),0) AS total").
		Where("user_id = ? AND week_number = ? AND year = ?", employeeId, week, year).
		Scan(&weekly).Error
	if err != nil {
		return nil, err
	}
	detail.WeeklyTotal = weekly.Total

	hours := struct{ Total float64 }{}
	err = db.Table("shifts").Select("IFNULL(SUM(hours_worked),0) AS total").
		Where("employee_id = ? AND status = ? AND date LIKE ?",
			employeeId, domain.StateApproved.Name, monthPrefix(year, month)).
		Scan(&hours).Error
	if err != nil {
		return nil, err
	}
	detail.MonthlyHours = hours.Total

	var shifts []domain.Shift
	if err := db.Where(&domain.Shift{EmployeeID: employeeId}).
		Order("date DESC").Limit(10).Find(&shifts).Error; err != nil {
		return nil, err
	}
	for _, s := range shifts {
		detail.RecentShifts = append(detail.RecentShifts, RecentShift{
			ID:        s.ID,
			Date:      s.Date,
			Hours:     s.HoursWorked,
			Status:    s.Status,
			CreatedAt: s.CreateTime,
			Earnings:  round2(s.HoursWorked * employee.HourlyRate),
		})
	}
	return &detail, nil
}

func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d%%", year, month)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
