package tracing_test

import (
	"net/http"
	"net/http/httptest"
	"shiftpay/infra/tracing"
	"shiftpay/testinfra"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
)

func TestTracingIngress(t *testing.T) {
	RegisterTestingT(t)

	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)

	router := gin.Default()
	router.Use(tracing.TracingIngress())
	var spanInRequest opentracing.Span
	router.GET("/v1/demo", func(c *gin.Context) {
		spanInRequest = opentracing.SpanFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("should open a server span per request and attach it to the request context", func(t *testing.T) {
		tracer.Reset()

		req := httptest.NewRequest(http.MethodGet, "/v1/demo", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNoContent))
		Expect(spanInRequest).ToNot(BeNil())

		spans := tracer.FinishedSpans()
		Expect(len(spans)).To(Equal(1))
		Expect(spans[0].OperationName).To(Equal("GET /v1/demo"))
		Expect(spans[0].Tag("span.kind")).ToNot(BeNil())
	})

	t.Run("should join an upstream trace carried in the request headers", func(t *testing.T) {
		tracer.Reset()

		parent := tracer.StartSpan("upstream")
		req := httptest.NewRequest(http.MethodGet, "/v1/demo", nil)
		err := tracer.Inject(parent.Context(), opentracing.HTTPHeaders,
			opentracing.HTTPHeadersCarrier(req.Header))
		Expect(err).To(BeNil())

		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNoContent))
		parent.Finish()

		spans := tracer.FinishedSpans()
		Expect(len(spans)).To(Equal(2))
		Expect(spans[0].ParentID).To(Equal(parent.(*mocktracer.MockSpan).SpanContext.SpanID))
	})
}
