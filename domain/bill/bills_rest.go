package bill

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

func RegisterBillsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/users/:id/bills", middleWares...)
	g.GET("", handleQuery)
	g.POST("", handleAdd)
	g.DELETE(":billId", handleDelete)
}

func handleQuery(c *gin.Context) {
	list, err := QueryBillsFunc(parseId(c, "id"), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, list)
}

func handleAdd(c *gin.Context) {
	creation := BillCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := AddBillFunc(parseId(c, "id"), &creation, session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleDelete(c *gin.Context) {
	err := DeleteBillFunc(parseId(c, "id"), parseId(c, "billId"), session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.ActionResult{Message: "bill deleted"})
}

func parseId(c *gin.Context, name string) types.ID {
	parsedId, err := types.ParseID(c.Param(name))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid " + name + " '" + c.Param(name) + "'")})
	}
	return parsedId
}
