package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/pairup/pkg/cli/config"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	cli "github.com/urfave/cli/v3"
)

// seedData is the TOML layout of a seed file: per-locale question sets and
// per-locale resource string overrides.
type seedData struct {
	Questions []seedQuestions `toml:"questions"`
	Resources []seedResource  `toml:"resources"`
}

type seedQuestions struct {
	Locale string   `toml:"locale"`
	Values []string `toml:"values"`
}

type seedResource struct {
	Locale string `toml:"locale"`
	Key    string `toml:"key"`
	Value  string `toml:"value"`
}

func cmdSeed() *cli.Command {
	var repoCfg config.Repository
	var path string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Seed file (TOML) with question sets and resource overrides",
			Required:    true,
			Destination: &path,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load question sets and resource string overrides into the store",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
			}

			var seed seedData
			if err := toml.Unmarshal(data, &seed); err != nil {
				return goerr.Wrap(err, "failed to parse seed file", goerr.V("path", path))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			for _, q := range seed.Questions {
				if q.Locale == "" || len(q.Values) == 0 {
					return goerr.New("question entry requires locale and values", goerr.V("locale", q.Locale))
				}
				if err := repo.Question().Set(ctx, types.Locale(q.Locale), q.Values); err != nil {
					return goerr.Wrap(err, "failed to seed questions", goerr.V("locale", q.Locale))
				}
				logging.Default().Info("seeded questions", "locale", q.Locale, "count", len(q.Values))
			}

			for _, r := range seed.Resources {
				if r.Locale == "" || r.Key == "" {
					return goerr.New("resource entry requires locale and key",
						goerr.V("locale", r.Locale), goerr.V("key", r.Key))
				}
				if err := repo.Resource().Set(ctx, types.Locale(r.Locale), types.ResourceKey(r.Key), r.Value); err != nil {
					return goerr.Wrap(err, "failed to seed resource string",
						goerr.V("locale", r.Locale), goerr.V("key", r.Key))
				}
			}
			if len(seed.Resources) > 0 {
				logging.Default().Info("seeded resource strings", "count", len(seed.Resources))
			}

			return nil
		},
	}
}
