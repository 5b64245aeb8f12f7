package usecase

import (
	"math/rand"

	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/service/card"
	"github.com/secmon-lab/pairup/pkg/service/question"
	"github.com/secmon-lab/pairup/pkg/service/resource"
)

// MatchingConfig is the run-scoped configuration snapshot for pairing
// cycles. It is captured at construction so a mutated process setting can
// never change behavior mid-run.
type MatchingConfig struct {
	// MaxPairsPerTeam caps pairs per team unless a team carries its own
	// override. Zero disables pairing.
	MaxPairsPerTeam int

	// BotDisplayName is shown in notification text
	BotDisplayName string

	// Locale selects notification text and question variants
	Locale types.Locale

	// TeamConcurrency bounds how many teams are processed at once
	TeamConcurrency int
}

type UseCases struct {
	repo interfaces.Repository
	conv interfaces.Conversation

	Matching   *MatchingUseCase
	Membership *MembershipUseCase
}

type Option func(*options)

type options struct {
	matchingCfg *MatchingConfig
	rng         *rand.Rand
	resolver    *resource.Resolver
}

// WithMatchingConfig sets the pairing configuration snapshot
func WithMatchingConfig(cfg MatchingConfig) Option {
	return func(o *options) {
		o.matchingCfg = &cfg
	}
}

// WithRand replaces the random source used for shuffling and question
// selection. Tests use a seeded generator; production stays non-seeded.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithResolver replaces the resource resolver, used by tests to control the
// cache clock.
func WithResolver(r *resource.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

func New(repo interfaces.Repository, conv interfaces.Conversation, opts ...Option) *UseCases {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := MatchingConfig{
		MaxPairsPerTeam: 5,
		BotDisplayName:  "Pairup",
		Locale:          resource.NeutralLocale,
		TeamConcurrency: 4,
	}
	if o.matchingCfg != nil {
		cfg = *o.matchingCfg
	}

	resolver := o.resolver
	if resolver == nil {
		resolver = resource.New(repo.Resource())
	}

	var questionOpts []question.Option
	if o.rng != nil {
		questionOpts = append(questionOpts, question.WithRand(o.rng))
	}
	picker := question.New(repo.Question(), resolver, questionOpts...)
	cards := card.New(resolver, cfg.Locale)

	uc := &UseCases{
		repo: repo,
		conv: conv,
	}
	uc.Matching = newMatchingUseCase(repo, conv, picker, cards, cfg, o.rng)
	uc.Membership = newMembershipUseCase(repo)

	return uc
}
