package resource

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	"golang.org/x/text/language"
)

// DefaultCacheTTL is the freshness window of resolved strings
const DefaultCacheTTL = 60 * time.Second

type cacheKey struct {
	locale types.Locale
	key    types.ResourceKey
}

// cacheEntry holds a resolved string with expiration. Entries are immutable
// once written and simply expire.
type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// Resolver resolves (locale, key) pairs to display strings through an
// ordered fallback chain: short-lived cache, resource store, compiled table
// at the closest matching culture, compiled table at the neutral culture.
// A failing tier counts as a miss; Resolve never returns an error.
type Resolver struct {
	repo interfaces.ResourceRepository
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry

	matcher        language.Matcher
	matcherLocales []types.Locale
}

// Option is a functional option for Resolver configuration
type Option func(*Resolver)

// WithCacheTTL sets the freshness window of cached strings
func WithCacheTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

// WithClock replaces the time source, used by tests to expire entries
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// New creates a Resolver backed by the given resource store
func New(repo interfaces.ResourceRepository, opts ...Option) *Resolver {
	r := &Resolver{
		repo:  repo,
		ttl:   DefaultCacheTTL,
		now:   time.Now,
		cache: make(map[cacheKey]cacheEntry),
	}

	// The matcher prefers the neutral locale, so specific-culture hits are
	// only accepted at high confidence; everything else falls through to
	// the dedicated neutral tier.
	tags := make([]language.Tag, 0, len(compiledStrings))
	r.matcherLocales = make([]types.Locale, 0, len(compiledStrings))
	tags = append(tags, language.Make(string(NeutralLocale)))
	r.matcherLocales = append(r.matcherLocales, NeutralLocale)
	for locale := range compiledStrings {
		if locale == NeutralLocale {
			continue
		}
		tags = append(tags, language.Make(string(locale)))
		r.matcherLocales = append(r.matcherLocales, locale)
	}
	r.matcher = language.NewMatcher(tags)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the display string for (locale, key), or an empty string
// when no tier produces a value. Callers may render empty text; this is
// accepted behavior, not an error.
func (r *Resolver) Resolve(ctx context.Context, locale types.Locale, key types.ResourceKey) string {
	ck := cacheKey{locale: locale, key: key}
	now := r.now()

	r.mu.RLock()
	entry, cached := r.cache[ck]
	r.mu.RUnlock()
	if cached && entry.expiresAt.After(now) {
		return entry.value
	}

	value, err := r.repo.Get(ctx, locale, key)
	if err != nil {
		// A failing store lookup is a miss, not a failure
		logging.From(ctx).Debug("resource store lookup failed, falling back",
			"locale", locale, "key", key, "error", err.Error())
		value = ""
	}

	if value == "" {
		value = r.compiledSpecific(locale, key)
	}

	if value == "" {
		value = compiledStrings[NeutralLocale][key]
	}

	if value != "" {
		r.mu.Lock()
		r.cache[ck] = cacheEntry{value: value, expiresAt: now.Add(r.ttl)}
		r.mu.Unlock()
	}

	return value
}

// compiledSpecific looks up the compiled table at the most specific culture
// matching the requested locale. Low-confidence matches are rejected so that
// an unknown language does not silently borrow another culture's text.
func (r *Resolver) compiledSpecific(locale types.Locale, key types.ResourceKey) string {
	tag, err := language.Parse(string(locale))
	if err != nil {
		return ""
	}

	_, idx, conf := r.matcher.Match(tag)
	if conf < language.High {
		return ""
	}

	return compiledStrings[r.matcherLocales[idx]][key]
}
