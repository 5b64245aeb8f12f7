package question

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/service/resource"
	"github.com/secmon-lab/pairup/pkg/utils/errutil"
)

// Picker selects a locale-appropriate icebreaker question. When a locale has
// no question set yet, the default question is seeded into the store so
// operators can find and edit it. Question sets are re-read from the store
// on every call; there is no cross-call cache, so operator edits apply to
// the next notification.
type Picker struct {
	repo     interfaces.QuestionRepository
	resolver *resource.Resolver

	mu  sync.Mutex
	rng *rand.Rand
}

// Option is a functional option for Picker configuration
type Option func(*Picker)

// WithRand replaces the random source, used by tests for deterministic picks
func WithRand(rng *rand.Rand) Option {
	return func(p *Picker) {
		p.rng = rng
	}
}

// New creates a Picker backed by the given question store
func New(repo interfaces.QuestionRepository, resolver *resource.Resolver, opts ...Option) *Picker {
	p := &Picker{
		repo:     repo,
		resolver: resolver,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Pick returns a question for the locale. The returned question is never
// empty as long as the neutral string table carries a default.
func (p *Picker) Pick(ctx context.Context, locale types.Locale) string {
	questions, err := p.repo.Get(ctx, locale)
	if err != nil {
		// Read failure falls back to the default without seeding; the set
		// may well exist and must not be overwritten blindly.
		errutil.Handle(ctx, err, "failed to load question set, using default")
		return p.defaultQuestion(ctx, locale)
	}

	if len(questions) == 0 {
		question := p.defaultQuestion(ctx, locale)
		if err := p.repo.Set(ctx, locale, []string{question}); err != nil {
			// Seeding is best-effort; the notification still goes out
			errutil.Handle(ctx, err, "failed to seed default question")
		}
		return question
	}

	p.mu.Lock()
	idx := p.rng.Intn(len(questions))
	p.mu.Unlock()
	return questions[idx]
}

func (p *Picker) defaultQuestion(ctx context.Context, locale types.Locale) string {
	return p.resolver.Resolve(ctx, locale, resource.KeyDefaultQuestion)
}
