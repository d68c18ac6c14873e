package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Register e Login", func() {
		It("emite um token cujas claims batem com o usuário cadastrado", func() {
			user, err := e.auth.Register(e.ctx, &dto.RegisterRequest{
				Email:    "Ana@Kitanda.ao",
				Password: "segredo1",
				Name:     "Ana",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleSeller))
			Expect(user.Email.String()).To(Equal("ana@kitanda.ao"))

			result, err := e.auth.Login(e.ctx, &dto.LoginRequest{Email: "ana@kitanda.ao", Password: "segredo1"})
			Expect(err).NotTo(HaveOccurred())

			claims, ok := e.tokens.Verify(result.Token)
			Expect(ok).To(BeTrue())
			Expect(claims).To(Equal(ports.Claims{UserID: user.ID, Email: "ana@kitanda.ao", Role: entities.RoleSeller}))
			Expect(e.recorder.logins[services.LoginSucceeded]).To(Equal(1))
		})

		It("recusa email já cadastrado sem diferenciar maiúsculas", func() {
			e.seller("ana@kitanda.ao")

			_, err := e.auth.Register(e.ctx, &dto.RegisterRequest{Email: "ANA@kitanda.ao", Password: "segredo1", Name: "Ana"})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyRegistered))
		})

		It("devolve apenas o primeiro erro de validação", func() {
			_, err := e.auth.Register(e.ctx, &dto.RegisterRequest{Email: "invalido", Password: "1", Name: ""})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.MessageID(err)).To(Equal("validation.email.invalid"))
		})

		DescribeTable("credenciais inválidas resultam no mesmo erro",
			func(email, password string) {
				e.seller("ana@kitanda.ao")

				_, err := e.auth.Login(e.ctx, &dto.LoginRequest{Email: email, Password: password})
				Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
				Expect(e.recorder.logins[services.LoginFailed]).To(Equal(1))
			},
			Entry("senha errada", "ana@kitanda.ao", "errada"),
			Entry("usuário inexistente", "ninguem@kitanda.ao", "segredo1"),
		)

		It("não autentica usuário inativo", func() {
			identity := e.seller("ana@kitanda.ao")
			Expect(e.db.Table("users").Where("id = ?", identity.UserID).Update("is_active", false).Error).To(Succeed())

			_, err := e.auth.Login(e.ctx, &dto.LoginRequest{Email: "ana@kitanda.ao", Password: "segredo1"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("CreateAdmin", func() {
		It("cria um usuário com papel ADMIN", func() {
			user, err := e.auth.CreateAdmin(e.ctx, &dto.RegisterRequest{Email: "root@kitanda.ao", Password: "segredo1", Name: "Root"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleAdmin))
		})
	})

	Describe("Me", func() {
		It("devolve o perfil da identidade", func() {
			identity := e.seller("ana@kitanda.ao")

			user, err := e.auth.Me(e.ctx, identity)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(identity.UserID))
		})

		It("falha quando o token sobrevive ao usuário", func() {
			_, err := e.auth.Me(e.ctx, ports.Claims{UserID: "00000000-0000-0000-0000-000000000000"})
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
