package roster

import (
	"errors"
	"net/http"
	"shiftpay/bizerror"
	"shiftpay/misc"
	"shiftpay/session"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

func RegisterRosterRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/employees", middleWares...)
	g.GET("", handleQueryEmployees)
	g.GET(":id/salary", handleDetailEmployeeSalary)
}

func handleQueryEmployees(c *gin.Context) {
	now := time.Now()
	employees, err := QueryEmployeesFunc(now.Year(), int(now.Month()),
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: employees, Total: uint64(len(employees))})
}

func handleDetailEmployeeSalary(c *gin.Context) {
	now := time.Now()
	_, week := now.ISOWeek()
	detail, err := DetailEmployeeSalaryFunc(parseEmployeeId(c), now.Year(), int(now.Month()), week,
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func parseEmployeeId(c *gin.Context) types.ID {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return parsedId
}
