package services

import (
	"context"
	"errors"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/valueobjects"
)

const maxSlugAttempts = 3

// slugAllocator deriva slugs únicos por tipo de entidade
type slugAllocator struct {
	exists func(ctx context.Context, slug string) (bool, error)
	clock  ports.Clock
}

// create gera o slug do nome e chama insert. Se o slug já existe, usa o
// sufixo com o timestamp em milissegundos; se o insert ainda colidir
// (corrida entre requisições), tenta de novo com um sufixo novo.
func (a slugAllocator) create(ctx context.Context, name string, insert func(slug string) error) error {
	base := valueobjects.NewSlug(name)

	slug := base
	taken, err := a.exists(ctx, base.String())
	if err != nil {
		return err
	}

	var lastSuffix int64
	if taken {
		lastSuffix = a.clock.Now().UnixMilli()
		slug = base.WithSuffix(lastSuffix)
	}

	for attempt := 1; ; attempt++ {
		err := insert(slug.String())
		if !errors.Is(err, domainerrors.ErrSlugTaken) || attempt == maxSlugAttempts {
			return err
		}

		next := a.clock.Now().UnixMilli()
		if next <= lastSuffix {
			next = lastSuffix + 1
		}
		lastSuffix = next
		slug = base.WithSuffix(lastSuffix)
	}
}
