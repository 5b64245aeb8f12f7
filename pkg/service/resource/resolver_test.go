package resource_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/repository/memory"
	"github.com/secmon-lab/pairup/pkg/service/resource"
)

type failingResourceStore struct{}

var _ interfaces.ResourceRepository = &failingResourceStore{}

func (s *failingResourceStore) Get(ctx context.Context, locale types.Locale, key types.ResourceKey) (string, error) {
	return "", goerr.New("resource store unavailable")
}

func (s *failingResourceStore) Set(ctx context.Context, locale types.Locale, key types.ResourceKey, value string) error {
	return goerr.New("resource store unavailable")
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("stored value wins over compiled text", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyDefaultQuestion, "What did you build this week?")).Required()

		r := resource.New(repo.Resource())
		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("What did you build this week?")
	})

	t.Run("absent stored value falls back to compiled specific culture", func(t *testing.T) {
		r := resource.New(memory.New().Resource())
		got := r.Resolve(ctx, "de", resource.KeySalutationTitleText)
		gt.Value(t, got).Equal("Hallo!")
	})

	t.Run("failing store falls back to compiled specific culture", func(t *testing.T) {
		r := resource.New(&failingResourceStore{})
		got := r.Resolve(ctx, "de", resource.KeySalutationTitleText)
		gt.Value(t, got).Equal("Hallo!")
	})

	t.Run("regional variant resolves to its base culture", func(t *testing.T) {
		r := resource.New(memory.New().Resource())
		got := r.Resolve(ctx, "de-DE", resource.KeySalutationTitleText)
		gt.Value(t, got).Equal("Hallo!")
	})

	t.Run("unknown culture falls back to neutral text", func(t *testing.T) {
		r := resource.New(memory.New().Resource())
		got := r.Resolve(ctx, "fr", resource.KeySalutationTitleText)
		gt.Value(t, got).Equal("Hi there!")
	})

	t.Run("malformed locale falls back to neutral text", func(t *testing.T) {
		r := resource.New(memory.New().Resource())
		got := r.Resolve(ctx, "not a locale!", resource.KeySalutationTitleText)
		gt.Value(t, got).Equal("Hi there!")
	})

	t.Run("unknown key resolves to empty text", func(t *testing.T) {
		r := resource.New(memory.New().Resource())
		gt.Value(t, r.Resolve(ctx, "en", "NoSuchKey")).Equal("")
	})

	t.Run("resolved values stay cached until the TTL expires", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyDefaultQuestion, "first")).Required()

		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		r := resource.New(repo.Resource(), resource.WithClock(func() time.Time { return now }))

		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("first")

		// An updated store value is invisible while the cache entry is fresh
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyDefaultQuestion, "second")).Required()
		now = now.Add(resource.DefaultCacheTTL - time.Second)
		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("first")

		now = now.Add(2 * time.Second)
		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("second")
	})

	t.Run("cache entries are scoped per locale and key", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyOptInButtonText, "Count me in!")).Required()
		gt.NoError(t, repo.Resource().Set(ctx, "de", resource.KeyOptInButtonText, "Ich mache mit!")).Required()

		r := resource.New(repo.Resource())
		gt.Value(t, r.Resolve(ctx, "en", resource.KeyOptInButtonText)).Equal("Count me in!")
		gt.Value(t, r.Resolve(ctx, "de", resource.KeyOptInButtonText)).Equal("Ich mache mit!")
	})

	t.Run("custom TTL shortens the freshness window", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyDefaultQuestion, "first")).Required()

		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		r := resource.New(repo.Resource(),
			resource.WithCacheTTL(time.Second),
			resource.WithClock(func() time.Time { return now }),
		)

		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("first")
		gt.NoError(t, repo.Resource().Set(ctx, "en", resource.KeyDefaultQuestion, "second")).Required()

		now = now.Add(2 * time.Second)
		gt.Value(t, r.Resolve(ctx, "en", resource.KeyDefaultQuestion)).Equal("second")
	})
}
