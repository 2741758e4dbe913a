package domain

import (
	"shiftpay/domain/state"

	"github.com/fundwit/go-commons/types"
)

const (
	OriginEmployerCreated   = "employer_created"
	OriginEmployeeSubmitted = "employee_submitted"

	ShiftTypeRegular  = "regular"
	ShiftTypeOvertime = "overtime"
)

var (
	StatePending  = state.State{Name: "pending", Category: state.InReview}
	StateApproved = state.State{Name: "approved", Category: state.Terminal}
	StateRejected = state.State{Name: "rejected", Category: state.Terminal}

	TransitionApprove = state.Transition{Name: "approve", From: StatePending, To: StateApproved}
	// approve-as-overtime lands on the same approved state, the pay-rate
	// distinction is carried by Shift.ShiftType, not by queue membership.
	TransitionApproveOvertime = state.Transition{Name: "approveOvertime", From: StatePending, To: StateApproved}
	TransitionReject          = state.Transition{Name: "reject", From: StatePending, To: StateRejected}
)

// ShiftLifecycle is the state machine every shift moves through. All
// outcomes are terminal, nothing transitions back to pending.
var ShiftLifecycle = state.NewStateMachine(
	[]state.State{StatePending, StateApproved, StateRejected},
	[]state.Transition{TransitionApprove, TransitionApproveOvertime, TransitionReject},
)

type Shift struct {
	ID   types.ID `json:"id" gorm:"primary_key"`
	Name string   `json:"shiftName"`

	Date        string  `json:"date" sql:"type:VARCHAR(10) NOT NULL"`
	StartTime   string  `json:"startTime" sql:"type:VARCHAR(5) NOT NULL"`
	EndTime     string  `json:"endTime" sql:"type:VARCHAR(5) NOT NULL"`
	HoursWorked float64 `json:"hoursWorked" sql:"type:DECIMAL(5,2)"`
	Description string  `json:"description" sql:"type:TEXT"`

	Origin    string `json:"origin"`
	Status    string `json:"status"`
	ShiftType string `json:"shiftType"`

	EmployeeID types.ID `json:"employeeId"`
	CreatorID  types.ID `json:"creatorId"`

	CreateTime   types.Timestamp  `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	ApprovedTime *types.Timestamp `json:"approvedTime" sql:"type:DATETIME(6)"`
}

func (s *Shift) TableName() string {
	return "shifts"
}

// PendingShift is the employer review-queue row, a shift joined with the
// owning employee's display name.
type PendingShift struct {
	Shift
	EmployeeName string `json:"employeeName"`
}

// PendingBoard exposes both intake channels side by side with
// independent counts; the channels are never merged into one list.
type PendingBoard struct {
	AssignedShifts  []PendingShift `json:"assignedShifts"`
	AssignedCount   int            `json:"assignedCount"`
	SubmittedShifts []PendingShift `json:"submittedShifts"`
	SubmittedCount  int            `json:"submittedCount"`
}

// ShiftCreation is the employer-side construction contract: the target
// employee is chosen from the roster.
type ShiftCreation struct {
	Name        string   `json:"shiftName" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	StartTime   string   `json:"startTime" binding:"required"`
	EndTime     string   `json:"endTime" binding:"required"`
	Description string   `json:"description"`
	EmployeeID  types.ID `json:"employeeId" binding:"required"`
}

// ShiftSubmission is the employee-side construction contract: the owner
// is always the submitting identity.
type ShiftSubmission struct {
	Name        string `json:"shiftName" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Description string `json:"description"`
}

type ShiftQuery struct {
	EmployeeID types.ID `form:"employeeId"`
}

// TransitionResult is the acknowledgment a caller may rely on before
// touching any local cache.
type TransitionResult struct {
	ShiftID  types.ID `json:"shiftId"`
	Status   string   `json:"status"`
	Type     string   `json:"shiftType,omitempty"`
	Earnings float64  `json:"earnings,omitempty"`
	Message  string   `json:"message"`
}
