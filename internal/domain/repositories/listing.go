package repositories

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
	// MaxPage mantém (page-1)*limit longe de overflow
	MaxPage = 1_000_000
)

// Condition é um filtro de igualdade sobre um campo lógico
type Condition struct {
	Field string
	Value any
}

// Search é uma busca por substring, sem diferenciar maiúsculas, em qualquer dos campos
type Search struct {
	Term   string
	Fields []string
}

// Order define um critério de ordenação
type Order struct {
	Field string
	Desc  bool
}

// ListQuery é a descrição declarativa de uma listagem: filtros, busca, ordenação e página.
// Os campos são nomes lógicos; cada repositório traduz para suas colunas.
type ListQuery struct {
	Conditions []Condition
	Search     *Search
	Orders     []Order
	Page       int
	Limit      int
}

// NewListQuery cria uma consulta com a paginação padrão
func NewListQuery() *ListQuery {
	return &ListQuery{Page: DefaultPage, Limit: DefaultLimit}
}

// Where adiciona um filtro de igualdade. Strings vazias são ignoradas.
func (q *ListQuery) Where(field string, value any) *ListQuery {
	if s, ok := value.(string); ok && s == "" {
		return q
	}
	q.Conditions = append(q.Conditions, Condition{Field: field, Value: value})
	return q
}

// SearchIn define a busca textual. Termo vazio é ignorado.
func (q *ListQuery) SearchIn(term string, fields ...string) *ListQuery {
	if term == "" || len(fields) == 0 {
		return q
	}
	q.Search = &Search{Term: term, Fields: fields}
	return q
}

// OrderBy adiciona um critério de ordenação
func (q *ListQuery) OrderBy(field string, desc bool) *ListQuery {
	q.Orders = append(q.Orders, Order{Field: field, Desc: desc})
	return q
}

// Paginate define página e tamanho, aplicando os padrões para valores inválidos
func (q *ListQuery) Paginate(page, limit int) *ListQuery {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	q.Page = page
	q.Limit = limit
	return q
}

// Offset retorna quantos registros pular: (page-1) * limit
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParsePagination converte os parâmetros crus da query string.
// Valores não numéricos caem no padrão.
func ParsePagination(rawPage, rawLimit string) (page, limit int) {
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		page = DefaultPage
	}
	limit, err = strconv.Atoi(rawLimit)
	if err != nil {
		limit = DefaultLimit
	}
	return page, limit
}

// Page é uma página de resultados
type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int64
}

// TotalPages retorna ceil(total/limit)
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
