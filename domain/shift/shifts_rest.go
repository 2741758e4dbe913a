package shift

import (
	"errors"
	"net/http"
	"shiftpay/bizerror"
	"shiftpay/domain"
	"shiftpay/misc"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterShiftsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	shifts := r.Group("/v1/shifts", middleWares...)
	shifts.POST("", handleCreateShift)
	shifts.GET("", handleQueryEmployeeShifts)
	shifts.PUT(":id/approve", handleApproveShift)
	shifts.PUT(":id/overtime", handleApproveOvertimeShift)
	shifts.PUT(":id/reject", handleRejectShift)

	submissions := r.Group("/v1/shift-submissions", middleWares...)
	submissions.POST("", handleSubmitShift)
	submissions.GET("", handleQuerySubmittedShifts)

	pending := r.Group("/v1", middleWares...)
	pending.GET("pending-shifts", handleQueryPendingShifts)
	pending.GET("pending-submissions", handleQueryPendingSubmissions)
	pending.GET("pending-board", handlePendingBoard)
}

func handleCreateShift(c *gin.Context) {
	creation := domain.ShiftCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := CreateShiftFunc(&creation, session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleSubmitShift(c *gin.Context) {
	submission := domain.ShiftSubmission{}
	if err := c.ShouldBindBodyWith(&submission, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := SubmitShiftFunc(&submission, session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleQueryEmployeeShifts(c *gin.Context) {
	query := domain.ShiftQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	sec := session.ExtractSessionFromGinContext(c)
	employeeId := query.EmployeeID
	if employeeId == 0 {
		employeeId = sec.Identity.ID
	}

	shifts, err := QueryEmployeeShiftsFunc(employeeId, sec, c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: shifts, Total: uint64(len(shifts))})
}

func handleQuerySubmittedShifts(c *gin.Context) {
	shifts, err := QuerySubmittedShiftsFunc(session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: shifts, Total: uint64(len(shifts))})
}

func handleQueryPendingShifts(c *gin.Context) {
	shifts, err := QueryPendingShiftsFunc(session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: shifts, Total: uint64(len(shifts))})
}

func handleQueryPendingSubmissions(c *gin.Context) {
	shifts, err := QueryPendingSubmissionsFunc(session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: shifts, Total: uint64(len(shifts))})
}

func handlePendingBoard(c *gin.Context) {
	board, err := PendingBoardFunc(session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, board)
}

func handleApproveShift(c *gin.Context) {
	result, err := ApproveShiftFunc(parseShiftId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func handleApproveOvertimeShift(c *gin.Context) {
	result, err := ApproveOvertimeShiftFunc(parseShiftId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func handleRejectShift(c *gin.Context) {
	result, err := RejectShiftFunc(parseShiftId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func parseShiftId(c *gin.Context) types.ID {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return parsedId
}
