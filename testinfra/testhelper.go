package testinfra

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// BuildSecCtx build security context
func BuildSecCtx(uid types.ID, name, role string) *session.Context {
	return &session.Context{
		Token:    "test-token",
		Identity: session.Identity{ID: uid, Name: name, Nickname: name, Role: role},
	}
}

// ExecuteRequest run the request against the router and collect the response
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, http.Header) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	defer func() {
		_ = resp.Body.Close()
	}()
	bodyBytes, _ := ioutil.ReadAll(resp.Body)
	return resp.StatusCode, string(bodyBytes), resp.Header
}
