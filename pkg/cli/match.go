package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/cli/config"
	"github.com/secmon-lab/pairup/pkg/usecase"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMatch() *cli.Command {
	var repoCfg config.Repository
	var botCfg config.Bot
	var matchCfg config.Matching

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, botCfg.Flags()...)
	flags = append(flags, matchCfg.Flags()...)

	return &cli.Command{
		Name:  "match",
		Usage: "Run a single pairing cycle and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			conv, err := botCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure bot connector")
			}

			uc := usecase.New(repo, conv,
				usecase.WithMatchingConfig(matchCfg.ToConfig(&botCfg)),
			)

			count, err := uc.Matching.RunPairingCycle(ctx)
			if err != nil {
				return goerr.Wrap(err, "pairing cycle failed")
			}

			logging.Default().Info("pairing cycle finished", "pairs_notified", count)
			return nil
		},
	}
}
