package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/usher/pkg/controller/server"
	"github.com/m-mizutani/usher/pkg/domain/mock"
)

func TestMiddlewarePassthrough(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	t.Run("status codes survive the access-log wrapper", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("response body is untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}
