package services

// Payload é um corpo de requisição decodificado mas ainda não validado.
// Os serviços decidem em que ponto do fluxo a validação roda:
// depois da checagem de posse nas mutações, antes de tocar o banco sempre.
type Payload[T any] interface {
	Validate() error
	Input() T
}

// ProductPayload expõe o negócio alvo antes da validação completa,
// para que a posse seja conferida primeiro
type ProductPayload interface {
	Payload[ProductInput]
	TargetBusinessID() string
}
