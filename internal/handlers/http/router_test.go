package http_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Router", func() {
	var s *server

	BeforeEach(func() {
		s = newServer()
	})

	It("responde ao health check", func() {
		w := s.do(request{method: http.MethodGet, path: "/health"})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
	})

	It("expõe as métricas de requisições", func() {
		s.do(request{method: http.MethodGet, path: "/health"})

		w := s.do(request{method: http.MethodGet, path: "/metrics"})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("kitanda_http_requests_total"))
	})

	It("responde 404 com envelope para rotas desconhecidas", func() {
		w := s.do(request{method: http.MethodGet, path: "/api/v1/nada"})
		Expect(w.Code).To(Equal(http.StatusNotFound))

		env := decode(w)
		Expect(env.Success).To(BeFalse())
		Expect(env.Error).To(Equal("Resource not found"))
	})

	It("propaga o X-Request-ID", func() {
		w := s.do(request{method: http.MethodGet, path: "/health", headers: map[string]string{"X-Request-ID": "req-123"}})
		Expect(w.Header().Get("X-Request-ID")).To(Equal("req-123"))
	})
})
