package payroll

import (
	"context"
	"errors"
	"shiftpay/bizerror"
	"shiftpay/domain/bill"
	"shiftpay/idgen"
	"shiftpay/persistence"
	"shiftpay/session"
	"strconv"
	"strings"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	earningIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})
	weeklyIdWorker  = sonyflake.NewSonyflake(sonyflake.Settings{})
	monthlyIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	PostShiftEarningFunc     = PostShiftEarning
	MonthlyBreakdownFunc     = MonthlyBreakdown
	WeeklySummaryFunc        = WeeklySummary
	CalculateDailySalaryFunc = CalculateDailySalary
	LatestDailySalaryFunc    = LatestDailySalary
	DailySalaryHistoryFunc   = DailySalaryHistory
	SalaryAfterBillsFunc     = SalaryAfterBills
)

func checkAccess(userId types.ID, sec *session.Context) error {
	if userId != sec.Identity.ID && !sec.IsEmployer() {
		return bizerror.ErrForbidden
	}
	return nil
}

func dateParts(date string) (year, month, weekYear, week int, err error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	isoYear, isoWeek := d.ISOWeek()
	return d.Year(), int(d.Month()), isoYear, isoWeek, nil
}

// PostShiftEarning appends a ledger row and refreshes the week and
// month rollups. It runs on the caller's transaction so a failed shift
// approval leaves no payroll trace.
func PostShiftEarning(userId types.ID, date string, hours, amount float64, tx *gorm.DB) error {
	year, month, weekYear, week, err := dateParts(date)
	if err != nil {
		return err
	}

	record := DailyEarning{ID: idgen.NextID(earningIdWorker), Date: date, Hours: hours, Amount: amount,
		UserID: userId, WeekNumber: week, WeekYear: weekYear, Month: month, Year: year}
	if err := tx.Create(&record).Error; err != nil {
		return err
	}

	if err := refreshWeeklyEarnings(userId, weekYear, week, tx); err != nil {
		return err
	}
	return refreshMonthlySalary(userId, year, month, tx)
}

func sumDailyAmounts(userId types.ID, where string, args []interface{}, tx *gorm.DB) (float64, error) {
	row := struct{ Total float64 }{}
	q := tx.Model(&DailyEarning{}).Select("IFNULL(SUM(amount),0) as total").Where("user_id = ?", userId)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

func refreshWeeklyEarnings(userId types.ID, year, week int, tx *gorm.DB) error {
	total, err := sumDailyAmounts(userId, "week_number = ? AND week_year = ?", []interface{}{week, year}, tx)
	if err != nil {
		return err
	}

	existing := WeeklyEarning{}
	err = tx.Where(&WeeklyEarning{UserID: userId, WeekNumber: week, Year: year}).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&WeeklyEarning{ID: idgen.NextID(weeklyIdWorker),
			WeekNumber: week, Year: year, Amount: round2(total), UserID: userId}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&existing).Update("amount", round2(total)).Error
}

func refreshMonthlySalary(userId types.ID, year, month int, tx *gorm.DB) error {
	gross, err := sumDailyAmounts(userId, "month = ? AND year = ?", []interface{}{month, year}, tx)
	if err != nil {
		return err
	}
	net := round2(gross - CalculateTax(gross))

	existing := MonthlySalary{}
	err = tx.Where(&MonthlySalary{UserID: userId, Month: month, Year: year}).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&MonthlySalary{ID: idgen.NextID(monthlyIdWorker),
			Month: month, Year: year, Amount: net, UserID: userId}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&existing).Update("amount", net).Error
}

// MonthlyBreakdown reads the month's gross from the ledger and the net
// from the rollup; calling it twice without intervening mutations yields
// identical figures.
func MonthlyBreakdown(userId types.ID, year, month int, sec *session.Context, ctx context.Context) (*MonthlySalaryBreakdown, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	breakdown := MonthlySalaryBreakdown{Month: month, Year: year}
	err := persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := refreshMonthlySalary(userId, year, month, tx); err != nil {
			return err
		}
		gross, err := sumDailyAmounts(userId, "month = ? AND year = ?", []interface{}{month, year}, tx)
		if err != nil {
			return err
		}
		record := MonthlySalary{}
		if err := tx.Where(&MonthlySalary{UserID: userId, Month: month, Year: year}).First(&record).Error; err != nil {
			return err
		}
		breakdown.GrossSalary = round2(gross)
		breakdown.NetSalary = record.Amount
		breakdown.Tax = round2(gross - record.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func WeeklySummary(userId types.ID, year, week int, sec *session.Context, ctx context.Context) (*WeeklyEarningsSummary, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	summary := WeeklyEarningsSummary{WeekNumber: week, Year: year}
	err := persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := refreshWeeklyEarnings(userId, year, week, tx); err != nil {
			return err
		}
		record := WeeklyEarning{}
		if err := tx.Where(&WeeklyEarning{UserID: userId, WeekNumber: week, Year: year}).First(&record).Error; err != nil {
			return err
		}
		summary.TotalEarnings = record.Amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, errors.New("invalid time '" + value + "'")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// CalculateDailySalary is the manual calculator: it posts a ledger row
// for today using the supplied rate, independent of any shift.
func CalculateDailySalary(userId types.ID, c *DailySalaryCalculation, sec *session.Context, ctx context.Context) (*DailySalaryResult, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	start, err := parseClock(c.WorkStartTime)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	end, err := parseClock(c.WorkEndTime)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if end < start {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("end time cannot be earlier than start time")}
	}

	hours := float64(end-start) / 60.0
	amount := round2(c.HourlyRate * hours)
	today := time.Now().Format("2006-01-02")

	err = persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		return PostShiftEarningFunc(userId, today, round2(hours), amount, tx)
	})
	if err != nil {
		return nil, err
	}
	return &DailySalaryResult{DailySalary: amount, DailyHours: round2(hours)}, nil
}

func LatestDailySalary(userId types.ID, sec *session.Context, ctx context.Context) (*DailySalaryResult, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	record := DailyEarning{}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	err := db.Where(&DailyEarning{UserID: userId}).Order("date DESC").Order("id DESC").First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return &DailySalaryResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &DailySalaryResult{DailySalary: record.Amount, DailyHours: record.Hours}, nil
}

func DailySalaryHistory(userId types.ID, sec *session.Context, ctx context.Context) ([]DailyEarningBrief, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	var records []DailyEarning
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&DailyEarning{UserID: userId}).Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	history := make([]DailyEarningBrief, 0, len(records))
	for _, r := range records {
		history = append(history, DailyEarningBrief{Date: r.Date, Amount: r.Amount})
	}
	return history, nil
}

// SalaryAfterBills derives the month's leftover after bills. The net is
// rounded to whole units, the percentage to two decimals; a zero
// monthly salary yields a zero percentage.
func SalaryAfterBills(userId types.ID, year, month int, sec *session.Context, ctx context.Context) (*SalaryAfterBillsView, error) {
	if err := checkAccess(userId, sec); err != nil {
		return nil, err
	}

	view := SalaryAfterBillsView{Month: month, Year: year}
	err := persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		record := MonthlySalary{}
		err := tx.Where(&MonthlySalary{UserID: userId, Month: month, Year: year}).First(&record).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		monthly := record.Amount

		totalBills, err := bill.TotalBills(userId, tx)
		if err != nil {
			return err
		}

		netAfterBills := round0(monthly - totalBills)
		percentage := 0.0
		if monthly != 0 {
			percentage = round2(netAfterBills / monthly * 100)
		}

		view.MonthlySalary = round2(monthly)
		view.TotalBills = round2(totalBills)
		view.NetAfterBills = netAfterBills
		view.Percentage = percentage
		view.Analysis = AnalyzeAfterBills(monthly, netAfterBills)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
