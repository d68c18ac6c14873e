package services_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/services"
)

var _ = Describe("BusinessService", func() {
	var (
		e     *env
		owner ports.Claims
	)

	BeforeEach(func() {
		e = newEnv()
		owner = e.seller("dono@kitanda.ao")
	})

	Describe("Create", func() {
		It("deriva o slug do nome e atribui o dono", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")

			Expect(business.Slug).To(Equal("cafe-luanda"))
			Expect(business.OwnerID).To(Equal(owner.UserID))
			Expect(business.Country).To(Equal("Angola"))
			Expect(business.IsActive).To(BeTrue())
			Expect(business.Owner).NotTo(BeNil())
			Expect(business.Owner.Email).To(Equal("dono@kitanda.ao"))
		})

		It("gera slugs distintos para nomes iguais", func() {
			first := e.createBusiness(owner, "Café Luanda", "Luanda")
			second := e.createBusiness(owner, "Café Luanda", "Luanda")

			Expect(second.Slug).NotTo(Equal(first.Slug))
			Expect(second.Slug).To(Equal(fmt.Sprintf("cafe-luanda-%d", fixedNow.UnixMilli())))
		})

		It("gera um terceiro slug mesmo com o relógio parado", func() {
			e.createBusiness(owner, "Café Luanda", "Luanda")
			e.createBusiness(owner, "Café Luanda", "Luanda")
			third := e.createBusiness(owner, "Café Luanda", "Luanda")

			Expect(third.Slug).To(Equal(fmt.Sprintf("cafe-luanda-%d", fixedNow.UnixMilli()+1)))
		})

		It("não grava nada quando o payload é inválido", func() {
			req := businessRequest("X", "Luanda")
			_, err := e.businesses.Create(e.ctx, owner, req)

			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.MessageID(err)).To(Equal("validation.business.name.min"))

			page, err := e.businesses.ListOwned(e.ctx, owner, 1, 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeZero())
		})
	})

	Describe("Get", func() {
		It("incrementa as visualizações exatamente uma vez por leitura", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")

			for i := 0; i < 5; i++ {
				read, err := e.businesses.Get(e.ctx, business.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(read.Views).To(Equal(int64(i)))
			}

			stored, err := e.businessRepo.FindByID(e.ctx, business.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Views).To(Equal(int64(5)))
			Expect(e.recorder.views[services.ResourceBusiness]).To(Equal(5))
		})

		It("embute apenas os produtos disponíveis", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")
			e.createProduct(owner, business.ID, "Mufete")
			hidden := productRequest(business.ID, "Calulu")
			unavailable := false
			hidden.IsAvailable = &unavailable
			_, err := e.products.Create(e.ctx, owner, hidden)
			Expect(err).NotTo(HaveOccurred())

			read, err := e.businesses.Get(e.ctx, business.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(read.Products).To(HaveLen(1))
			Expect(read.Products[0].Name).To(Equal("Mufete"))
		})

		It("resolve pelo slug", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")

			read, err := e.businesses.GetBySlug(e.ctx, "cafe-luanda")
			Expect(err).NotTo(HaveOccurred())
			Expect(read.ID).To(Equal(business.ID))
		})

		It("retorna não encontrado para id inexistente", func() {
			_, err := e.businesses.Get(e.ctx, "inexistente")
			Expect(err).To(MatchError(domainerrors.ErrBusinessNotFound))

			_, err = e.businesses.GetBySlug(e.ctx, "inexistente")
			Expect(err).To(MatchError(domainerrors.ErrBusinessNotFound))
		})
	})

	Describe("Update", func() {
		var business string

		BeforeEach(func() {
			business = e.createBusiness(owner, "Café Luanda", "Luanda").ID
		})

		It("recusa quem não é dono nem ADMIN, mesmo com payload inválido", func() {
			intruder := e.seller("intruso@kitanda.ao")

			_, err := e.businesses.Update(e.ctx, intruder, business, businessRequest("X", ""))
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))
			Expect(domainerrors.MessageID(err)).To(Equal(domainerrors.MsgNotAuthorizedUpdateBusiness))

			_, err = e.businesses.Update(e.ctx, intruder, business, businessRequest("Outro Nome", "Benguela"))
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))

			stored, err := e.businessRepo.FindByID(e.ctx, business)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Café Luanda"))
			Expect(stored.City).To(Equal("Luanda"))
		})

		It("responde não encontrado antes de conferir a posse", func() {
			intruder := e.seller("intruso@kitanda.ao")

			_, err := e.businesses.Update(e.ctx, intruder, "inexistente", businessRequest("Outro Nome", "Luanda"))
			Expect(err).To(MatchError(domainerrors.ErrBusinessNotFound))
		})

		It("valida o payload do dono", func() {
			req := businessRequest("Café Luanda", "Luanda")
			req.Description = "curta"

			_, err := e.businesses.Update(e.ctx, owner, business, req)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.MessageID(err)).To(Equal("validation.business.description.min"))
		})

		It("mantém o slug ao renomear", func() {
			updated, err := e.businesses.Update(e.ctx, owner, business, businessRequest("Café Benguela", "Benguela"))
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Café Benguela"))
			Expect(updated.Slug).To(Equal("cafe-luanda"))
		})

		It("permite que um ADMIN altere", func() {
			updated, err := e.businesses.Update(e.ctx, adminIdentity, business, businessRequest("Café Luanda", "Huambo"))
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.City).To(Equal("Huambo"))
			Expect(updated.OwnerID).To(Equal(owner.UserID))
		})

		It("desativa quando isActive é false e mantém quando é omitido", func() {
			inactive := false
			req := businessRequest("Café Luanda", "Luanda")
			req.IsActive = &inactive
			updated, err := e.businesses.Update(e.ctx, owner, business, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())

			updated, err = e.businesses.Update(e.ctx, owner, business, businessRequest("Café Luanda", "Luanda"))
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())
		})
	})

	Describe("Delete", func() {
		It("remove o negócio e seus produtos", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")
			product := e.createProduct(owner, business.ID, "Mufete")

			Expect(e.businesses.Delete(e.ctx, owner, business.ID)).To(Succeed())

			_, err := e.businesses.Get(e.ctx, business.ID)
			Expect(err).To(MatchError(domainerrors.ErrBusinessNotFound))
			_, err = e.products.Get(e.ctx, product.ID)
			Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
		})

		It("recusa quem não é dono", func() {
			business := e.createBusiness(owner, "Café Luanda", "Luanda")
			intruder := e.seller("intruso@kitanda.ao")

			err := e.businesses.Delete(e.ctx, intruder, business.ID)
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))
			Expect(domainerrors.MessageID(err)).To(Equal(domainerrors.MsgNotAuthorizedDeleteBusiness))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for i := 0; i < 12; i++ {
				e.createBusiness(owner, fmt.Sprintf("Loja %02d", i), "Luanda")
			}
			e.createBusiness(owner, "Padaria Benguela", "Benguela")
		})

		It("pagina o filtro por cidade", func() {
			page, err := e.businesses.List(e.ctx, services.BusinessFilter{City: "Luanda", Page: 2, Limit: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(5))
			Expect(page.Total).To(Equal(int64(12)))
			Expect(page.TotalPages()).To(Equal(3))
		})

		It("devolve o mesmo resultado para a mesma consulta", func() {
			filter := services.BusinessFilter{City: "Luanda", Page: 1, Limit: 12}

			first, err := e.businesses.List(e.ctx, filter)
			Expect(err).NotTo(HaveOccurred())
			second, err := e.businesses.List(e.ctx, filter)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Total).To(Equal(first.Total))
			Expect(first.Items).To(HaveLen(12))
			for i := range first.Items {
				Expect(second.Items[i].ID).To(Equal(first.Items[i].ID))
			}
		})

		It("busca em nome e descrição sem diferenciar maiúsculas", func() {
			page, err := e.businesses.List(e.ctx, services.BusinessFilter{Search: "PADARIA", Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(Equal(int64(1)))
			Expect(page.Items[0].City).To(Equal("Benguela"))
		})

		It("esconde negócios inativos da listagem pública mas não do dono", func() {
			hidden := businessRequest("Loja Oculta", "Luanda")
			inactive := false
			hidden.IsActive = &inactive
			_, err := e.businesses.Create(e.ctx, owner, hidden)
			Expect(err).NotTo(HaveOccurred())

			public, err := e.businesses.List(e.ctx, services.BusinessFilter{City: "Luanda", Page: 1, Limit: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(public.Total).To(Equal(int64(12)))

			owned, err := e.businesses.ListOwned(e.ctx, owner, 1, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned.Total).To(Equal(int64(14)))
		})

		It("conta os produtos de cada negócio", func() {
			page, err := e.businesses.List(e.ctx, services.BusinessFilter{Search: "Padaria", Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			e.createProduct(owner, page.Items[0].ID, "Pão")

			page, err = e.businesses.List(e.ctx, services.BusinessFilter{Search: "Padaria", Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items[0].ProductCount).To(Equal(int64(1)))
			Expect(page.Items[0].Owner).NotTo(BeNil())
			Expect(page.Items[0].Owner.Name).To(Equal("Vendedor"))
		})
	})
})
