package valueobjects

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug é usado quando o nome não tem nenhum caractere aproveitável
const fallbackSlug = "item"

// Slug é um identificador legível e seguro para URLs derivado de um nome
type Slug struct {
	value string
}

// NewSlug translitera o nome: remove acentos, passa para minúsculas e
// colapsa qualquer sequência fora de [a-z0-9] em um único hífen.
// "Café Luanda" -> "cafe-luanda"
func NewSlug(name string) Slug {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, name)
	if err != nil {
		ascii = name
	}

	var b strings.Builder
	b.Grow(len(ascii))
	pendingHyphen := false
	for _, r := range strings.ToLower(ascii) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return Slug{value: fallbackSlug}
	}
	return Slug{value: b.String()}
}

// WithSuffix retorna o slug com um sufixo numérico de desempate
func (s Slug) WithSuffix(n int64) Slug {
	return Slug{value: s.value + "-" + strconv.FormatInt(n, 10)}
}

func (s Slug) String() string {
	return s.value
}
