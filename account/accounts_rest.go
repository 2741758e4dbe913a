package account

import (
	"errors"
	"net/http"
	"shiftpay/bizerror"
	"shiftpay/misc"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterUsersRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	r.POST("/v1/users", handleRegister)

	g := r.Group("/v1/users", middleWares...)
	g.GET(":id/hourly-rate", handleDetailHourlyRate)
	g.PUT(":id/hourly-rate", handleUpdateHourlyRate)
}

func handleRegister(c *gin.Context) {
	creation := UserCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	info, err := RegisterUserFunc(&creation, c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, info)
}

func handleDetailHourlyRate(c *gin.Context) {
	detail, err := DetailHourlyRateFunc(parseUserId(c), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleUpdateHourlyRate(c *gin.Context) {
	updating := HourlyRateUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	if err := UpdateHourlyRateFunc(parseUserId(c), &updating, session.ExtractSessionFromGinContext(c), c.Request.Context()); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.ActionResult{Message: "hourly rate updated"})
}

func parseUserId(c *gin.Context) types.ID {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return parsedId
}
