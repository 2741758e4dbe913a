package notification

import (
	"errors"
	"net/http"
	"shiftpay/bizerror"
	"shiftpay/misc"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

func RegisterNotificationsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/notifications", middleWares...)
	g.GET("", handleQuery)
	g.PUT(":id/read", handleMarkRead)
}

func handleQuery(c *gin.Context) {
	records, err := QueryNotificationsFunc(session.ExtractSessionFromGinContext(c), c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: records, Total: uint64(len(records))})
}

func handleMarkRead(c *gin.Context) {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}

	if err := MarkNotificationReadFunc(parsedId, session.ExtractSessionFromGinContext(c), c.Request.Context()); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.ActionResult{Message: "notification marked as read"})
}
