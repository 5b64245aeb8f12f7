package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

// TeamInstallation records a team to which the bot has been installed. The
// matching cycle holds a read-only, run-scoped copy; the record itself is
// created on install and removed on uninstall.
type TeamInstallation struct {
	TeamID        types.TeamID
	TenantID      types.TenantID
	ServiceURL    string
	InstallerName string

	// MaxPairs overrides the process-wide pair cap for this team when set.
	MaxPairs *int
}

// Validate checks the fields required to address the team
func (t *TeamInstallation) Validate() error {
	if err := t.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team installation")
	}
	if t.ServiceURL == "" {
		return goerr.New("service URL is required", goerr.V("teamID", t.TeamID))
	}
	return nil
}

// PairCap returns the number of pairs this team may receive in one run.
// The per-team override wins over the process-wide default. A cap of 0
// disables pairing for the team entirely.
func (t *TeamInstallation) PairCap(defaultCap int) int {
	if t.MaxPairs != nil {
		return *t.MaxPairs
	}
	return defaultCap
}
