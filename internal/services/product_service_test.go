package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/services"
)

var _ = Describe("ProductService", func() {
	var (
		e        *env
		owner    ports.Claims
		intruder ports.Claims
		business *entities.Business
	)

	BeforeEach(func() {
		e = newEnv()
		owner = e.seller("dono@kitanda.ao")
		intruder = e.seller("intruso@kitanda.ao")
		business = e.createBusiness(owner, "Café Luanda", "Luanda")
	})

	Describe("Create", func() {
		It("aplica os valores padrão e embute o negócio", func() {
			product := e.createProduct(owner, business.ID, "Mufete")

			Expect(product.Slug).To(Equal("mufete"))
			Expect(product.Currency).To(Equal(entities.DefaultCurrency))
			Expect(product.IsAvailable).To(BeTrue())
			Expect(product.IsService).To(BeFalse())
			Expect(product.Images).To(BeEmpty())
			Expect(product.Business).NotTo(BeNil())
			Expect(product.Business.Slug).To(Equal("cafe-luanda"))
		})

		It("exige o negócio alvo", func() {
			_, err := e.products.Create(e.ctx, owner, productRequest("", "Mufete"))

			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.MessageID(err)).To(Equal("validation.product.business_id.required"))
		})

		It("retorna negócio não encontrado", func() {
			_, err := e.products.Create(e.ctx, owner, productRequest("inexistente", "Mufete"))
			Expect(err).To(MatchError(domainerrors.ErrBusinessNotFound))
		})

		It("recusa quem não é dono do negócio antes de validar", func() {
			req := productRequest(business.ID, "X")
			req.Price = nil

			_, err := e.products.Create(e.ctx, intruder, req)
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))
			Expect(domainerrors.MessageID(err)).To(Equal(domainerrors.MsgNotAuthorizedAddProducts))

			page, err := e.products.List(e.ctx, services.ProductFilter{BusinessID: business.ID, Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeZero())
		})

		It("valida o preço do dono", func() {
			req := productRequest(business.ID, "Mufete")
			zero := 0.0
			req.Price = &zero

			_, err := e.products.Create(e.ctx, owner, req)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.MessageID(err)).To(Equal("validation.product.price.positive"))
		})

		It("permite que um ADMIN adicione produtos", func() {
			product, err := e.products.Create(e.ctx, adminIdentity, productRequest(business.ID, "Mufete"))
			Expect(err).NotTo(HaveOccurred())
			Expect(product.BusinessID).To(Equal(business.ID))
		})
	})

	Describe("Get", func() {
		It("conta visualizações e embute o dono do negócio", func() {
			product := e.createProduct(owner, business.ID, "Mufete")

			for i := 0; i < 3; i++ {
				read, err := e.products.Get(e.ctx, product.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(read.Views).To(Equal(int64(i)))
				Expect(read.Business.Owner).NotTo(BeNil())
				Expect(read.Business.Owner.Email).To(Equal("dono@kitanda.ao"))
			}
			Expect(e.recorder.views[services.ResourceProduct]).To(Equal(3))
		})
	})

	Describe("Update e Delete", func() {
		var product *entities.Product

		BeforeEach(func() {
			product = e.createProduct(owner, business.ID, "Mufete")
		})

		It("recusa quem não é dono do negócio", func() {
			_, err := e.products.Update(e.ctx, intruder, product.ID, productRequest(business.ID, "Outro"))
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))
			Expect(domainerrors.MessageID(err)).To(Equal(domainerrors.MsgNotAuthorizedUpdateProduct))

			err = e.products.Delete(e.ctx, intruder, product.ID)
			Expect(err).To(MatchError(domainerrors.ErrNotOwner))
			Expect(domainerrors.MessageID(err)).To(Equal(domainerrors.MsgNotAuthorizedDeleteProduct))

			stored, err := e.productRepo.FindByID(e.ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Mufete"))
		})

		It("responde não encontrado antes de conferir a posse", func() {
			_, err := e.products.Update(e.ctx, intruder, "inexistente", productRequest(business.ID, "Outro"))
			Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
		})

		It("atualiza pelo dono mantendo slug e visualizações", func() {
			_, err := e.products.Get(e.ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())

			req := productRequest(business.ID, "Mufete Especial")
			stock := 4
			req.Stock = &stock
			req.Images = []string{"https://cdn.kitanda.ao/mufete.jpg"}

			updated, err := e.products.Update(e.ctx, owner, product.ID, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Mufete Especial"))
			Expect(updated.Slug).To(Equal("mufete"))
			Expect(updated.Views).To(Equal(int64(1)))
			Expect(*updated.Stock).To(Equal(4))
			Expect(updated.Images).To(Equal([]string{"https://cdn.kitanda.ao/mufete.jpg"}))
		})

		It("remove pelo ADMIN", func() {
			Expect(e.products.Delete(e.ctx, adminIdentity, product.ID)).To(Succeed())

			_, err := e.products.Get(e.ctx, product.ID)
			Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
		})
	})

	Describe("List", func() {
		It("lista apenas disponíveis e filtra por negócio", func() {
			other := e.createBusiness(intruder, "Loja do Intruso", "Luanda")
			e.createProduct(owner, business.ID, "Mufete")
			e.createProduct(owner, business.ID, "Calulu")
			e.createProduct(intruder, other.ID, "Funge")

			hidden := productRequest(business.ID, "Escondido")
			unavailable := false
			hidden.IsAvailable = &unavailable
			_, err := e.products.Create(e.ctx, owner, hidden)
			Expect(err).NotTo(HaveOccurred())

			page, err := e.products.List(e.ctx, services.ProductFilter{BusinessID: business.ID, Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(Equal(int64(2)))
			for _, p := range page.Items {
				Expect(p.Business).NotTo(BeNil())
				Expect(p.Business.ID).To(Equal(business.ID))
			}

			all, err := e.products.List(e.ctx, services.ProductFilter{Search: "funge", Page: 1, Limit: 12})
			Expect(err).NotTo(HaveOccurred())
			Expect(all.Total).To(Equal(int64(1)))
		})
	})
})
