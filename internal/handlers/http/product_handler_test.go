package http_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func productBody(businessID, name string) map[string]any {
	body := map[string]any{
		"name":        name,
		"description": "Um produto com descrição longa.",
		"price":       1500.0,
		"category":    "Food & Beverage",
	}
	if businessID != "" {
		body["businessId"] = businessID
	}
	return body
}

type productData struct {
	ID         string   `json:"id"`
	BusinessID string   `json:"businessId"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Images     []string `json:"images"`
	Views      int64    `json:"views"`
}

var _ = Describe("ProductHandler", func() {
	var (
		s        *server
		owner    session
		business businessData
	)

	BeforeEach(func() {
		s = newServer()
		owner = s.signUp("dona@kitanda.ao")
		business = s.createBusiness(owner, "Café Luanda", "Luanda")
	})

	createProduct := func(name string) productData {
		w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody(business.ID, name), token: owner.token})
		Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())

		var product productData
		decodeData(w, &product)
		return product
	}

	Describe("POST /products", func() {
		It("cria o produto com os valores padrão", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody(business.ID, "Café Moído"), token: owner.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			var product productData
			env := decodeData(w, &product)
			Expect(env.Message).To(Equal("Product created successfully"))
			Expect(product.BusinessID).To(Equal(business.ID))
			Expect(product.Slug).To(Equal("cafe-moido"))
			Expect(product.Currency).To(Equal("AOA"))
			Expect(product.Images).To(BeEmpty())
		})

		It("responde 401 sem identidade", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody(business.ID, "Café Moído")})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Unauthorized"))
		})

		It("exige o negócio", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody("", "Café Moído"), token: owner.token})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w).Error).To(Equal("Business is required"))
		})

		It("responde 404 para negócio desconhecido", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody("nao-existe", "Café Moído"), token: owner.token})
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w).Error).To(Equal("Business not found"))
		})

		It("recusa negócio de outro vendedor", func() {
			intruder := s.signUp("intruso@kitanda.ao")

			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody(business.ID, "Café Moído"), token: intruder.token})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Not authorized to add products to this business"))
		})

		It("recusa negócio de outro vendedor mesmo com preço de tipo errado", func() {
			intruder := s.signUp("intruso@kitanda.ao")
			body := productBody(business.ID, "Café Moído")
			body["price"] = "abc"

			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: body, token: intruder.token})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Not authorized to add products to this business"))
		})

		It("responde 400 para JSON malformado", func() {
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", rawBody: `{"businessId":`, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w).Error).To(Equal("Invalid request body"))
		})

		It("responde 422 para preço com tipo errado", func() {
			body := productBody(business.ID, "Café Moído")
			body["price"] = "abc"

			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: body, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w).Error).To(Equal("Invalid value for field price"))
		})

		It("responde 422 para preço não positivo", func() {
			body := productBody(business.ID, "Café Moído")
			body["price"] = 0

			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: body, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w).Error).To(Equal("Price must be positive"))
		})
	})

	Describe("GET /products", func() {
		It("filtra pelo negócio", func() {
			createProduct("Café Moído")
			createProduct("Café em Grão")
			other := s.createBusiness(owner, "Padaria", "Luanda")
			w := s.do(request{method: http.MethodPost, path: "/api/v1/products", body: productBody(other.ID, "Pão"), token: owner.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = s.do(request{method: http.MethodGet, path: "/api/v1/products?businessId=" + business.ID})
			Expect(w.Code).To(Equal(http.StatusOK))

			var page struct {
				Products   []productData `json:"products"`
				Pagination struct {
					Total int64 `json:"total"`
				} `json:"pagination"`
			}
			decodeData(w, &page)
			Expect(page.Products).To(HaveLen(2))
			Expect(page.Pagination.Total).To(Equal(int64(2)))
		})
	})

	Describe("GET /products/:id", func() {
		It("devolve o produto com o negócio e conta a visualização", func() {
			product := createProduct("Café Moído")

			w := s.do(request{method: http.MethodGet, path: "/api/v1/products/" + product.ID})
			Expect(w.Code).To(Equal(http.StatusOK))

			var detail struct {
				productData
				Business struct {
					ID    string `json:"id"`
					Owner struct {
						Name string `json:"name"`
					} `json:"owner"`
				} `json:"business"`
			}
			decodeData(w, &detail)
			Expect(detail.Business.ID).To(Equal(business.ID))
			Expect(detail.Business.Owner.Name).To(Equal("Vendedor"))

			var again productData
			decodeData(s.do(request{method: http.MethodGet, path: "/api/v1/products/" + product.ID}), &again)
			Expect(again.Views).To(Equal(detail.Views + 1))
		})

		It("responde 404 para id desconhecido", func() {
			w := s.do(request{method: http.MethodGet, path: "/api/v1/products/nao-existe"})
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w).Error).To(Equal("Product not found"))
		})
	})

	Describe("PUT /products/:id", func() {
		It("atualiza o produto do dono", func() {
			product := createProduct("Café Moído")
			body := productBody("", "Café Torrado")
			body["price"] = 2000.0

			w := s.do(request{method: http.MethodPut, path: "/api/v1/products/" + product.ID, body: body, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusOK))

			var updated productData
			env := decodeData(w, &updated)
			Expect(env.Message).To(Equal("Product updated successfully"))
			Expect(updated.Name).To(Equal("Café Torrado"))
			Expect(updated.Price).To(Equal(2000.0))
			Expect(updated.Slug).To(Equal(product.Slug))
		})

		It("responde 404 para id desconhecido mesmo com JSON malformado", func() {
			w := s.do(request{method: http.MethodPut, path: "/api/v1/products/nao-existe", rawBody: `{"name":`, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w).Error).To(Equal("Product not found"))
		})

		It("recusa quem não é dono mesmo com corpo de tipo errado", func() {
			product := createProduct("Café Moído")
			intruder := s.signUp("intruso@kitanda.ao")

			w := s.do(request{method: http.MethodPut, path: "/api/v1/products/" + product.ID, rawBody: `{"price":"abc"}`, token: intruder.token})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Not authorized to update this product"))
		})

		It("recusa quem não é dono", func() {
			product := createProduct("Café Moído")
			intruder := s.signUp("intruso@kitanda.ao")

			w := s.do(request{method: http.MethodPut, path: "/api/v1/products/" + product.ID, body: productBody("", "Roubado"), token: intruder.token})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Not authorized to update this product"))
		})
	})

	Describe("DELETE /products/:id", func() {
		It("remove o produto do dono", func() {
			product := createProduct("Café Moído")

			w := s.do(request{method: http.MethodDelete, path: "/api/v1/products/" + product.ID, token: owner.token})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w).Message).To(Equal("Product deleted successfully"))

			w = s.do(request{method: http.MethodGet, path: "/api/v1/products/" + product.ID})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("recusa quem não é dono", func() {
			product := createProduct("Café Moído")
			intruder := s.signUp("intruso@kitanda.ao")

			w := s.do(request{method: http.MethodDelete, path: "/api/v1/products/" + product.ID, token: intruder.token})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w).Error).To(Equal("Not authorized to delete this product"))
		})
	})
})
