package shift

import (
	"context"
	"fmt"
	"math"
	"shiftpay/account"
	"shiftpay/bizerror"
	"shiftpay/domain"
	"shiftpay/domain/payroll"
	"shiftpay/domain/state"
	"shiftpay/notification"
	"shiftpay/persistence"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

// OvertimeRateMultiplier applies to overtime-approved shifts only.
const OvertimeRateMultiplier = 1.5

var (
	ApproveShiftFunc         = ApproveShift
	ApproveOvertimeShiftFunc = ApproveOvertimeShift
	RejectShiftFunc          = RejectShift
)

// ApproveShift moves a pending shift to approved with regular pay.
func ApproveShift(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
	return transitShift(id, domain.TransitionApprove, domain.ShiftTypeRegular, sec, ctx)
}

// ApproveOvertimeShift moves a pending shift to approved with overtime pay.
func ApproveOvertimeShift(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
	return transitShift(id, domain.TransitionApproveOvertime, domain.ShiftTypeOvertime, sec, ctx)
}

// RejectShift moves a pending shift to rejected. No earnings are posted.
func RejectShift(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
	return transitShift(id, domain.TransitionReject, "", sec, ctx)
}

// transitShift applies one lifecycle transition. The status update is a
// conditional write on the pending state, so a shift already driven to a
// terminal state by another session fails here with ErrShiftNotPending
// and nothing else runs: no earnings row, no notification, no partial
// state. The notification is created on the same transaction, exactly
// once per successful transition.
func transitShift(id types.ID, transition state.Transition, shiftType string,
	sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {

	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	result := domain.TransitionResult{ShiftID: id, Status: transition.To.Name, Type: shiftType}
	err := persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		record := domain.Shift{ID: id}
		if err := tx.Where(&record).First(&record).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return bizerror.ErrNotFound
			}
			return err
		}

		if len(domain.ShiftLifecycle.AvailableTransitions(record.Status, transition.To.Name)) == 0 {
			return bizerror.ErrShiftNotPending
		}

		now := types.CurrentTimestamp()
		updates := map[string]interface{}{"status": transition.To.Name}
		if transition.To.Name == domain.StateApproved.Name {
			updates["shift_type"] = shiftType
			updates["approved_time"] = &now
		}
		query := tx.Model(&domain.Shift{}).
			Where(&domain.Shift{ID: id, Status: domain.StatePending.Name}).Update(updates)
		if err := query.Error; err != nil {
			return err
		}
		if query.RowsAffected != 1 {
			return bizerror.ErrShiftNotPending
		}

		if transition.To.Name == domain.StateApproved.Name {
			employee := account.User{}
			if err := tx.Where(&account.User{ID: record.EmployeeID}).First(&employee).Error; err != nil {
				return err
			}

			multiplier := 1.0
			if shiftType == domain.ShiftTypeOvertime {
				multiplier = OvertimeRateMultiplier
			}
			earnings := math.Round(record.HoursWorked*employee.HourlyRate*multiplier*100) / 100

			if err := payroll.PostShiftEarningFunc(record.EmployeeID, record.Date, record.HoursWorked, earnings, tx); err != nil {
				return err
			}

			message := fmt.Sprintf("Your shift on %s has been approved! Earned: £%.2f", record.Date, earnings)
			if shiftType == domain.ShiftTypeOvertime {
				message = fmt.Sprintf("Your shift on %s has been approved as overtime! Earned: £%.2f", record.Date, earnings)
			}
			if err := notification.CreateNotificationFunc(record.EmployeeID, record.ID,
				notification.TypeShiftApproved, message, tx); err != nil {
				return err
			}

			result.Earnings = earnings
			result.Message = "Shift approved, salary updated, and notification sent"
			if shiftType == domain.ShiftTypeOvertime {
				result.Message = "Shift approved as overtime, salary updated, and notification sent"
			}
			return nil
		}

		message := fmt.Sprintf("Your shift on %s has been rejected.", record.Date)
		if err := notification.CreateNotificationFunc(record.EmployeeID, record.ID,
			notification.TypeShiftRejected, message, tx); err != nil {
			return err
		}
		result.Message = "Shift rejected and notification sent"
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
