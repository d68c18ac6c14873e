package http_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/security"
)

var _ = Describe("AuthHandler", func() {
	var s *server

	BeforeEach(func() {
		s = newServer()
	})

	Describe("POST /auth/register", func() {
		It("cria um vendedor", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/register", body: map[string]any{
				"email": "ana@kitanda.ao", "password": "segredo1", "name": "Ana", "phone": "+244923000000",
			}})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var user struct {
				Role  string `json:"role"`
				Phone string `json:"phone"`
			}
			env := decodeData(w, &user)
			Expect(env.Message).To(Equal("User registered successfully"))
			Expect(user.Role).To(Equal("SELLER"))
			Expect(user.Phone).To(Equal("+244923000000"))
			Expect(w.Body.String()).NotTo(ContainSubstring("segredo1"))
		})

		It("responde 400 para email já cadastrado", func() {
			s.signUp("ana@kitanda.ao")

			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/register", body: map[string]any{
				"email": "ana@kitanda.ao", "password": "segredo1", "name": "Ana",
			}})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w).Error).To(Equal("Email already registered"))
		})

		It("responde 422 com a primeira mensagem de validação", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/register", body: map[string]any{
				"email": "ana@kitanda.ao", "password": "123", "name": "A",
			}})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

			env := decode(w)
			Expect(env.Success).To(BeFalse())
			Expect(env.Error).To(Equal("Password must be at least 6 characters"))
		})
	})

	Describe("POST /auth/login", func() {
		It("devolve o token e grava o cookie de sessão", func() {
			sess := s.signUp("ana@kitanda.ao")

			Expect(sess.token).NotTo(BeEmpty())
			Expect(sess.cookie.Value).To(Equal(sess.token))
			Expect(sess.cookie.HttpOnly).To(BeTrue())
			Expect(sess.cookie.SameSite).To(Equal(http.SameSiteLaxMode))
			Expect(sess.cookie.MaxAge).To(Equal(7 * 24 * 60 * 60))
		})

		It("responde 401 para senha errada", func() {
			s.signUp("ana@kitanda.ao")

			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/login", body: map[string]any{
				"email": "ana@kitanda.ao", "password": "errada",
			}})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Invalid credentials"))
		})

		It("exige a senha", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/login", body: map[string]any{
				"email": "ana@kitanda.ao",
			}})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w).Error).To(Equal("Password is required"))
		})
	})

	Describe("GET /auth/me", func() {
		It("aceita o token no header", func() {
			sess := s.signUp("ana@kitanda.ao")

			w := s.do(request{method: http.MethodGet, path: "/api/v1/auth/me", token: sess.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			var user struct {
				ID            string `json:"id"`
				Email         string `json:"email"`
				EmailVerified bool   `json:"emailVerified"`
			}
			decodeData(w, &user)
			Expect(user.ID).To(Equal(sess.userID))
			Expect(user.Email).To(Equal("ana@kitanda.ao"))
		})

		It("aceita o token no cookie", func() {
			sess := s.signUp("ana@kitanda.ao")

			w := s.do(request{method: http.MethodGet, path: "/api/v1/auth/me", cookie: sess.cookie})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("trata token ausente, adulterado, expirado ou de outro segredo da mesma forma", func() {
			sess := s.signUp("ana@kitanda.ao")

			past := time.Now().Add(-30 * 24 * time.Hour)
			oldService, err := security.NewJWTService(testSecret, 7*24*time.Hour, ports.ClockFunc(func() time.Time { return past }))
			Expect(err).NotTo(HaveOccurred())
			expired, err := oldService.Issue(ports.Claims{UserID: sess.userID, Email: "ana@kitanda.ao", Role: entities.RoleSeller})
			Expect(err).NotTo(HaveOccurred())

			otherService, err := security.NewJWTService("outro-segredo", 7*24*time.Hour, ports.SystemClock)
			Expect(err).NotTo(HaveOccurred())
			forged, err := otherService.Issue(ports.Claims{UserID: sess.userID, Role: entities.RoleAdmin})
			Expect(err).NotTo(HaveOccurred())

			bodies := map[string]string{}
			for name, token := range map[string]string{
				"ausente":    "",
				"malformado": "nao-e-um-jwt",
				"adulterado": sess.token + "x",
				"expirado":   expired,
				"forjado":    forged,
			} {
				w := s.do(request{method: http.MethodGet, path: "/api/v1/auth/me", token: token})
				Expect(w.Code).To(Equal(http.StatusUnauthorized), name)
				bodies[name] = w.Body.String()
			}

			for name, body := range bodies {
				Expect(body).To(Equal(bodies["ausente"]), name)
			}
			Expect(bodies["ausente"]).To(ContainSubstring(`"error":"Unauthorized"`))
		})

		It("traduz a mensagem pelo Accept-Language", func() {
			w := s.do(request{method: http.MethodGet, path: "/api/v1/auth/me", headers: map[string]string{"Accept-Language": "pt-AO"}})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Não autorizado"))
		})
	})

	Describe("GET /auth/me/businesses", func() {
		It("lista os negócios do usuário, inclusive inativos", func() {
			sess := s.signUp("ana@kitanda.ao")
			other := s.signUp("outro@kitanda.ao")
			s.createBusiness(sess, "Café Luanda", "Luanda")
			s.createBusiness(other, "Loja do Outro", "Luanda")

			hidden := businessBody("Loja Oculta", "Luanda")
			hidden["isActive"] = false
			w := s.do(request{method: http.MethodPost, path: "/api/v1/businesses", body: hidden, token: sess.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = s.do(request{method: http.MethodGet, path: "/api/v1/auth/me/businesses", token: sess.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			var page struct {
				Businesses []businessData `json:"businesses"`
				Pagination struct {
					Total int64 `json:"total"`
				} `json:"pagination"`
			}
			decodeData(w, &page)
			Expect(page.Pagination.Total).To(Equal(int64(2)))
			for _, b := range page.Businesses {
				Expect(b.OwnerID).To(Equal(sess.userID))
			}
		})
	})

	Describe("POST /auth/logout", func() {
		It("expira o cookie", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/auth/logout"})
			Expect(w.Code).To(Equal(http.StatusOK))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal("auth-token"))
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})
})
