package usecase

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/service/card"
	"github.com/secmon-lab/pairup/pkg/service/question"
	"github.com/secmon-lab/pairup/pkg/utils/errutil"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// MatchingUseCase runs pairing cycles: it pairs up opted-in members within
// each installed team and sends each pair a pair-up notification.
//
// Failure policy: an unavailable team list or opt-in snapshot fails the
// whole run. Everything below that is isolated per team, per member or per
// pair; a failed dispatch is logged, not retried, and does not affect
// sibling pairs or teams.
type MatchingUseCase struct {
	repo   interfaces.Repository
	conv   interfaces.Conversation
	picker *question.Picker
	cards  *card.Factory
	cfg    MatchingConfig

	mu  sync.Mutex
	rng *rand.Rand
}

func newMatchingUseCase(repo interfaces.Repository, conv interfaces.Conversation, picker *question.Picker, cards *card.Factory, cfg MatchingConfig, rng *rand.Rand) *MatchingUseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.TeamConcurrency < 1 {
		cfg.TeamConcurrency = 1
	}
	return &MatchingUseCase{
		repo:   repo,
		conv:   conv,
		picker: picker,
		cards:  cards,
		cfg:    cfg,
		rng:    rng,
	}
}

// RunPairingCycle pairs and notifies members across all installed teams and
// returns the number of pairs successfully notified.
func (uc *MatchingUseCase) RunPairingCycle(ctx context.Context) (int, error) {
	runID := types.NewRunID()
	logger := logging.From(ctx).With("run_id", runID.String())
	ctx = logging.With(ctx, logger)

	teams, err := uc.repo.Team().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list installed teams")
	}
	if len(teams) == 0 {
		logger.Info("no teams installed, nothing to pair")
		return 0, nil
	}

	optIn, err := uc.repo.OptIn().GetAll(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to load opt-in snapshot")
	}

	// Only identifiers known to be opted in are ever looked up; users with
	// no record or an opt-out are never touched.
	candidates := make([]types.UserID, 0, len(optIn))
	for userID, optedIn := range optIn {
		if optedIn {
			candidates = append(candidates, userID)
		}
	}

	var notified atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(uc.cfg.TeamConcurrency)
	for _, team := range teams {
		eg.Go(func() error {
			// Team failures never propagate; each worker returns nil
			notified.Add(int64(uc.processTeam(egCtx, team, candidates)))
			return nil
		})
	}
	_ = eg.Wait()

	logger.Info("pairing cycle completed",
		"teams", len(teams),
		"candidates", len(candidates),
		"pairs_notified", notified.Load(),
	)

	return int(notified.Load()), nil
}

// processTeam performs one team's pairing and returns the number of pairs
// notified for it.
func (uc *MatchingUseCase) processTeam(ctx context.Context, team *model.TeamInstallation, candidates []types.UserID) int {
	logger := logging.From(ctx).With("team_id", team.TeamID.String())
	ctx = logging.With(ctx, logger)

	// The name is message content only; a failed lookup must not lose the
	// team's pairing run.
	teamName, err := uc.conv.ResolveTeamName(ctx, team)
	if err != nil {
		errutil.Handle(ctx, err, "failed to resolve team name, using fallback")
		teamName = ""
	}
	if teamName == "" {
		teamName = "your team"
	}

	pool := uc.eligiblePool(ctx, team, candidates)
	if len(pool) < 2 {
		logger.Info("not enough eligible members to pair", "eligible", len(pool))
		return 0
	}

	pairs := uc.makePairs(pool)

	if limit := team.PairCap(uc.cfg.MaxPairsPerTeam); limit < len(pairs) {
		if limit < 0 {
			limit = 0
		}
		pairs = pairs[:limit]
	}

	notified := 0
	for _, pair := range pairs {
		if err := uc.notifyPair(ctx, team, teamName, pair); err != nil {
			errutil.Handle(ctx, err, "failed to notify pair")
			continue
		}
		notified++
	}

	logger.Info("team pairing done", "eligible", len(pool), "pairs_notified", notified)
	return notified
}

// eligiblePool resolves which candidates are members of the team. This
// per-user lookup is the only membership resolution; the full team roster is
// never requested. A lookup failure or miss just drops the user from this
// team's pool.
func (uc *MatchingUseCase) eligiblePool(ctx context.Context, team *model.TeamInstallation, candidates []types.UserID) []*model.MemberProfile {
	pool := make([]*model.MemberProfile, 0, len(candidates))
	for _, userID := range candidates {
		member, err := uc.conv.ResolveMember(ctx, userID, team.TeamID, team.ServiceURL)
		if err != nil {
			errutil.Handle(ctx, err, "membership lookup failed, skipping user")
			continue
		}
		if member == nil {
			continue
		}
		pool = append(pool, member)
	}
	return pool
}

// makePairs shuffles the pool uniformly and partitions it into consecutive
// pairs. An odd-sized pool leaves exactly one member unpaired this run.
func (uc *MatchingUseCase) makePairs(pool []*model.MemberProfile) []*model.Pair {
	shuffled := make([]*model.MemberProfile, len(pool))
	copy(shuffled, pool)

	uc.mu.Lock()
	uc.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	uc.mu.Unlock()

	pairs := make([]*model.Pair, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		pairs = append(pairs, &model.Pair{
			Sender:    shuffled[i],
			Recipient: shuffled[i+1],
		})
	}
	return pairs
}

// notifyPair builds one notification for the pair and delivers it to both
// members. The sender/recipient orientation is fixed for the pair, so both
// members see the same card. Dispatch failures are not retried.
func (uc *MatchingUseCase) notifyPair(ctx context.Context, team *model.TeamInstallation, teamName string, pair *model.Pair) error {
	q := uc.picker.Pick(ctx, uc.cfg.Locale)

	notification, err := uc.cards.BuildPairUpNotification(ctx, teamName, pair.Sender, pair.Recipient, uc.cfg.BotDisplayName, q)
	if err != nil {
		return goerr.Wrap(err, "failed to build pair-up notification")
	}

	for _, member := range []*model.MemberProfile{pair.Sender, pair.Recipient} {
		if err := uc.conv.SendToMember(ctx, member, team.TenantID, team.ServiceURL, notification); err != nil {
			return goerr.Wrap(err, "failed to deliver pair-up notification",
				goerr.V("userID", member.ID))
		}
	}

	return nil
}
