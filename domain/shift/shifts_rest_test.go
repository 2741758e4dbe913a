package shift_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"shiftpay/bizerror"
	"shiftpay/domain"
	"shiftpay/domain/shift"
	"shiftpay/session"
	"shiftpay/testinfra"
	"strings"
	"testing"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func buildAuthedRouter(sec *session.Context) *gin.Engine {
	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	shift.RegisterShiftsRestAPI(router, func(c *gin.Context) {
		session.SaveSecurityContext(c, sec)
	})
	return router
}

func TestCreateShiftAPI(t *testing.T) {
	RegisterTestingT(t)

	router := buildAuthedRouter(testinfra.BuildSecCtx(10, "ann", session.RoleEmployer))

	t.Run("should return 401 without a session", func(t *testing.T) {
		bare := gin.Default()
		bare.Use(bizerror.ErrorHandling())
		shift.RegisterShiftsRestAPI(bare)

		req := httptest.NewRequest(http.MethodGet, "/v1/pending-board", nil)
		status, body, _ := testinfra.ExecuteRequest(req, bare)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(body).To(MatchJSON(`{"code":"common.unauthenticated","message":"unauthenticated","data":null}`))
	})

	t.Run("should be able to validate parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/shifts", strings.NewReader(`{}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param",
			"message":"Key: 'ShiftCreation.Name' Error:Field validation for 'Name' failed on the 'required' tag\n` +
			`Key: 'ShiftCreation.Date' Error:Field validation for 'Date' failed on the 'required' tag\n` +
			`Key: 'ShiftCreation.StartTime' Error:Field validation for 'StartTime' failed on the 'required' tag\n` +
			`Key: 'ShiftCreation.EndTime' Error:Field validation for 'EndTime' failed on the 'required' tag\n` +
			`Key: 'ShiftCreation.EmployeeID' Error:Field validation for 'EmployeeID' failed on the 'required' tag",
			"data":null}`))
	})

	t.Run("should surface form validation messages", func(t *testing.T) {
		shift.CreateShiftFunc = func(c *domain.ShiftCreation, sec *session.Context, ctx context.Context) (*domain.Shift, error) {
			return nil, &bizerror.ErrInvalidShiftForm{Message: "end time must be after start time"}
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/shifts", strings.NewReader(
			`{"shiftName":"Morning Shift","date":"2026-09-01","startTime":"17:00","endTime":"09:00","employeeId":"20"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"shift.invalid_form","message":"end time must be after start time","data":null}`))
	})

	t.Run("should be able to handle error", func(t *testing.T) {
		shift.CreateShiftFunc = func(c *domain.ShiftCreation, sec *session.Context, ctx context.Context) (*domain.Shift, error) {
			return nil, errors.New("a mocked error")
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/shifts", strings.NewReader(
			`{"shiftName":"Morning Shift","date":"2026-09-01","startTime":"09:00","endTime":"17:00","employeeId":"20"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error","message":"a mocked error","data":null}`))
	})

	t.Run("should be able to create shift successfully", func(t *testing.T) {
		ts := types.TimestampOfDate(2026, 9, 1, 8, 0, 0, 0, time.Now().Location())
		timeBytes, err := ts.Time().MarshalJSON()
		Expect(err).To(BeNil())
		timeString := strings.Trim(string(timeBytes), `"`)

		var received *domain.ShiftCreation
		shift.CreateShiftFunc = func(c *domain.ShiftCreation, sec *session.Context, ctx context.Context) (*domain.Shift, error) {
			received = c
			return &domain.Shift{ID: 123, Name: c.Name, Date: c.Date, StartTime: c.StartTime, EndTime: c.EndTime,
				HoursWorked: 8, Origin: domain.OriginEmployerCreated, Status: domain.StatePending.Name,
				EmployeeID: c.EmployeeID, CreatorID: sec.Identity.ID, CreateTime: ts}, nil
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/shifts", strings.NewReader(
			`{"shiftName":"Morning Shift","date":"2026-09-01","startTime":"09:00","endTime":"17:00","employeeId":"20"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusCreated))
		Expect(body).To(MatchJSON(`{"id":"123","shiftName":"Morning Shift","date":"2026-09-01",
			"startTime":"09:00","endTime":"17:00","hoursWorked":8,"description":"",
			"origin":"employer_created","status":"pending","shiftType":"",
			"employeeId":"20","creatorId":"10","createTime":"` + timeString + `","approvedTime":null}`))
		Expect(received.EmployeeID).To(Equal(types.ID(20)))
	})
}

func TestShiftTransitionAPI(t *testing.T) {
	RegisterTestingT(t)

	router := buildAuthedRouter(testinfra.BuildSecCtx(10, "ann", session.RoleEmployer))

	t.Run("should reject an invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/shifts/abc/approve", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"invalid id 'abc'","data":null}`))
	})

	t.Run("should acknowledge a successful approval", func(t *testing.T) {
		shift.ApproveShiftFunc = func(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
			return &domain.TransitionResult{ShiftID: id, Status: "approved", Type: domain.ShiftTypeRegular,
				Earnings: 96, Message: "Shift approved, salary updated, and notification sent"}, nil
		}
		req := httptest.NewRequest(http.MethodPut, "/v1/shifts/123/approve", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"shiftId":"123","status":"approved","shiftType":"regular",
			"earnings":96,"message":"Shift approved, salary updated, and notification sent"}`))
	})

	t.Run("should acknowledge a successful overtime approval", func(t *testing.T) {
		shift.ApproveOvertimeShiftFunc = func(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
			return &domain.TransitionResult{ShiftID: id, Status: "approved", Type: domain.ShiftTypeOvertime,
				Earnings: 144, Message: "Shift approved as overtime, salary updated, and notification sent"}, nil
		}
		req := httptest.NewRequest(http.MethodPut, "/v1/shifts/123/overtime", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"shiftId":"123","status":"approved","shiftType":"overtime",
			"earnings":144,"message":"Shift approved as overtime, salary updated, and notification sent"}`))
	})

	t.Run("should respond 409 when the shift is no longer pending", func(t *testing.T) {
		shift.RejectShiftFunc = func(id types.ID, sec *session.Context, ctx context.Context) (*domain.TransitionResult, error) {
			return nil, bizerror.ErrShiftNotPending
		}
		req := httptest.NewRequest(http.MethodPut, "/v1/shifts/123/reject", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusConflict))
		Expect(body).To(MatchJSON(`{"code":"shift.not_pending","message":"shift is not pending","data":null}`))
	})
}

func TestPendingBoardAPI(t *testing.T) {
	RegisterTestingT(t)

	router := buildAuthedRouter(testinfra.BuildSecCtx(10, "ann", session.RoleEmployer))

	t.Run("should render both channels with counts", func(t *testing.T) {
		shift.PendingBoardFunc = func(sec *session.Context, ctx context.Context) (*domain.PendingBoard, error) {
			return &domain.PendingBoard{
				AssignedShifts:  []domain.PendingShift{},
				AssignedCount:   0,
				SubmittedShifts: []domain.PendingShift{},
				SubmittedCount:  0,
			}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/pending-board", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"assignedShifts":[],"assignedCount":0,"submittedShifts":[],"submittedCount":0}`))
	})

	t.Run("should propagate channel A failure", func(t *testing.T) {
		shift.PendingBoardFunc = func(sec *session.Context, ctx context.Context) (*domain.PendingBoard, error) {
			return nil, errors.New("a mocked error")
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/pending-board", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error","message":"a mocked error","data":null}`))
	})
}
