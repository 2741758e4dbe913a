package payroll

import (
	"errors"
	"net/http"
	"shiftpay/bizerror"
	"shiftpay/session"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterPayrollRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/users/:id", middleWares...)
	g.GET("monthly-salary", handleMonthlySalary)
	g.GET("weekly-earnings", handleWeeklyEarnings)
	g.GET("salary-after-bills", handleSalaryAfterBills)
	g.POST("daily-salary", handleCalculateDailySalary)
	g.GET("daily-salary", handleLatestDailySalary)
	g.GET("daily-salary-history", handleDailySalaryHistory)
}

func handleMonthlySalary(c *gin.Context) {
	now := time.Now()
	breakdown, err := MonthlyBreakdownFunc(parseUserId(c), now.Year(), int(now.Month()),
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, breakdown)
}

func handleWeeklyEarnings(c *gin.Context) {
	year, week := time.Now().ISOWeek()
	summary, err := WeeklySummaryFunc(parseUserId(c), year, week,
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, summary)
}

func handleSalaryAfterBills(c *gin.Context) {
	now := time.Now()
	view, err := SalaryAfterBillsFunc(parseUserId(c), now.Year(), int(now.Month()),
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, view)
}

func handleCalculateDailySalary(c *gin.Context) {
	calculation := DailySalaryCalculation{}
	if err := c.ShouldBindBodyWith(&calculation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	result, err := CalculateDailySalaryFunc(parseUserId(c), &calculation,
		session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func handleLatestDailySalary(c *gin.Context) {
	result, err := LatestDailySalaryFunc(parseUserId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func handleDailySalaryHistory(c *gin.Context) {
	history, err := DailySalaryHistoryFunc(parseUserId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func parseUserId(c *gin.Context) types.ID {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return parsedId
}
