package shift

import (
	"context"
	"shiftpay/account"
	"shiftpay/bizerror"
	"shiftpay/domain"
	"shiftpay/idgen"
	"shiftpay/persistence"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

var (
	shiftIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateShiftFunc             = CreateShift
	SubmitShiftFunc             = SubmitShift
	QueryPendingShiftsFunc      = QueryPendingShifts
	QueryPendingSubmissionsFunc = QueryPendingSubmissions
	PendingBoardFunc            = PendingBoard
	QueryEmployeeShiftsFunc     = QueryEmployeeShifts
	QuerySubmittedShiftsFunc    = QuerySubmittedShifts
)

// CreateShift is the employer intake channel: the shift is assigned to
// a chosen roster employee and enters the lifecycle as pending.
func CreateShift(c *domain.ShiftCreation, sec *session.Context, ctx context.Context) (*domain.Shift, error) {
	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	hours, err := ValidateShiftForm(c.Name, c.Date, c.StartTime, c.EndTime)
	if err != nil {
		return nil, err
	}

	var record *domain.Shift
	err = persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		employee := account.User{}
		if err := tx.Where(&account.User{ID: c.EmployeeID, Role: session.RoleEmployee}).First(&employee).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return bizerror.ErrNotFound
			}
			return err
		}

		record = buildShift(c.Name, c.Date, c.StartTime, c.EndTime, c.Description, hours,
			domain.OriginEmployerCreated, employee.ID, sec.Identity.ID)
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SubmitShift is the employee intake channel: the owner is always the
// submitting identity, never taken from the request.
func SubmitShift(c *domain.ShiftSubmission, sec *session.Context, ctx context.Context) (*domain.Shift, error) {
	if sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	hours, err := ValidateShiftForm(c.Name, c.Date, c.StartTime, c.EndTime)
	if err != nil {
		return nil, err
	}

	record := buildShift(c.Name, c.Date, c.StartTime, c.EndTime, c.Description, hours,
		domain.OriginEmployeeSubmitted, sec.Identity.ID, sec.Identity.ID)
	if err := persistence.ActiveDataSourceManager.GormDB(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func buildShift(name, date, startTime, endTime, description string, hours float64,
	origin string, employeeId, creatorId types.ID) *domain.Shift {
	return &domain.Shift{
		ID:          idgen.NextID(shiftIdWorker),
		Name:        name,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		HoursWorked: hours,
		Description: description,
		Origin:      origin,
		Status:      domain.StatePending.Name,
		EmployeeID:  employeeId,
		CreatorID:   creatorId,
		CreateTime:  types.CurrentTimestamp(),
	}
}

// QueryPendingShifts is channel A: shifts this employer created that
// still await confirmation of actual hours.
func QueryPendingShifts(sec *session.Context, ctx context.Context) ([]domain.PendingShift, error) {
	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}
	return queryPendingQueue(ctx, domain.OriginEmployerCreated, "shifts.creator_id = ?", sec.Identity.ID)
}

// QueryPendingSubmissions is channel B: employee-submitted requests
// awaiting full review, visible to any employer.
func QueryPendingSubmissions(sec *session.Context, ctx context.Context) ([]domain.PendingShift, error) {
	if !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}
	return queryPendingQueue(ctx, domain.OriginEmployeeSubmitted, "", nil)
}

func queryPendingQueue(ctx context.Context, origin string, extraCond string, extraArg interface{}) ([]domain.PendingShift, error) {
	rows := []domain.PendingShift{}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	q := db.Table("shifts").Select("shifts.*, users.nickname AS employee_name").
		Joins("JOIN users ON shifts.employee_id = users.id").
		Where("shifts.origin = ? AND shifts.status = ?", origin, domain.StatePending.Name)
	if extraCond != "" {
		q = q.Where(extraCond, extraArg)
	}
	if err := q.Order("shifts.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PendingBoard presents both intake channels side by side. Channel A is
// the primary source and its failure propagates; channel B degrades to
// an empty queue so a broken submissions feed never blocks the review
// of assigned shifts.
func PendingBoard(sec *session.Context, ctx context.Context) (*domain.PendingBoard, error) {
	assigned, err := QueryPendingShiftsFunc(sec, ctx)
	if err != nil {
		return nil, err
	}

	submitted, err := QueryPendingSubmissionsFunc(sec, ctx)
	if err != nil {
		logrus.Warnf("pending submissions query degraded to empty: %v", err)
		submitted = []domain.PendingShift{}
	}

	return &domain.PendingBoard{
		AssignedShifts:  assigned,
		AssignedCount:   len(assigned),
		SubmittedShifts: submitted,
		SubmittedCount:  len(submitted),
	}, nil
}

// QueryEmployeeShifts lists every shift owned by an employee, any
// status, newest shift date first.
func QueryEmployeeShifts(employeeId types.ID, sec *session.Context, ctx context.Context) ([]domain.Shift, error) {
	if employeeId != sec.Identity.ID && !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	var shifts []domain.Shift
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&domain.Shift{EmployeeID: employeeId}).Order("date DESC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// QuerySubmittedShifts lists the session employee's own submissions.
func QuerySubmittedShifts(sec *session.Context, ctx context.Context) ([]domain.Shift, error) {
	var shifts []domain.Shift
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&domain.Shift{EmployeeID: sec.Identity.ID, Origin: domain.OriginEmployeeSubmitted}).
		Order("date DESC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}
