package config

import (
	"strconv"
	"time"

	"github.com/secmon-lab/pairup/pkg/usecase"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// DefaultMaxPairsPerTeam caps pairs per team when no valid setting is given
const DefaultMaxPairsPerTeam = 5

// Matching holds CLI flags for pairing behavior
type Matching struct {
	// maxPairs is read as a string so an invalid value can fall back to
	// the default instead of failing flag parsing.
	maxPairs    string
	interval    time.Duration
	concurrency int
}

// Flags returns CLI flags for matching configuration
func (m *Matching) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "max-pairs-per-team",
			Usage:       "Maximum number of pairs notified per team per run (0 disables pairing)",
			Sources:     cli.EnvVars("PAIRUP_MAX_PAIRS_PER_TEAM"),
			Destination: &m.maxPairs,
		},
		&cli.DurationFlag{
			Name:        "pairing-interval",
			Usage:       "Interval between scheduled pairing cycles",
			Value:       7 * 24 * time.Hour,
			Sources:     cli.EnvVars("PAIRUP_PAIRING_INTERVAL"),
			Destination: &m.interval,
		},
		&cli.IntFlag{
			Name:        "team-concurrency",
			Usage:       "Number of teams processed concurrently",
			Value:       4,
			Sources:     cli.EnvVars("PAIRUP_TEAM_CONCURRENCY"),
			Destination: &m.concurrency,
		},
	}
}

// MaxPairsPerTeam parses the configured cap. A missing or non-numeric value
// falls back to the default; a negative value is treated as 0.
func (m *Matching) MaxPairsPerTeam() int {
	if m.maxPairs == "" {
		return DefaultMaxPairsPerTeam
	}

	n, err := strconv.Atoi(m.maxPairs)
	if err != nil {
		logging.Default().Warn("invalid max-pairs-per-team, using default",
			"value", m.maxPairs, "default", DefaultMaxPairsPerTeam)
		return DefaultMaxPairsPerTeam
	}
	if n < 0 {
		return 0
	}
	return n
}

// Interval returns the scheduled cycle interval
func (m *Matching) Interval() time.Duration {
	return m.interval
}

// ToConfig builds the run-scoped matching configuration
func (m *Matching) ToConfig(bot *Bot) usecase.MatchingConfig {
	return usecase.MatchingConfig{
		MaxPairsPerTeam: m.MaxPairsPerTeam(),
		BotDisplayName:  bot.DisplayName(),
		Locale:          bot.Locale(),
		TeamConcurrency: m.concurrency,
	}
}
