package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

type resourceKey struct {
	locale types.Locale
	key    types.ResourceKey
}

type resourceRepository struct {
	mu      sync.RWMutex
	strings map[resourceKey]string
}

var _ interfaces.ResourceRepository = &resourceRepository{}

func newResourceRepository() *resourceRepository {
	return &resourceRepository{
		strings: make(map[resourceKey]string),
	}
}

func (r *resourceRepository) Get(ctx context.Context, locale types.Locale, key types.ResourceKey) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// An absent value is not an error
	return r.strings[resourceKey{locale: locale, key: key}], nil
}

func (r *resourceRepository) Set(ctx context.Context, locale types.Locale, key types.ResourceKey, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.strings[resourceKey{locale: locale, key: key}] = value
	return nil
}
