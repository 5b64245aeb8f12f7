package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

type teamRepository struct {
	mu    sync.RWMutex
	teams map[types.TeamID]*model.TeamInstallation
}

var _ interfaces.TeamRepository = &teamRepository{}

func newTeamRepository() *teamRepository {
	return &teamRepository{
		teams: make(map[types.TeamID]*model.TeamInstallation),
	}
}

func (r *teamRepository) List(ctx context.Context) ([]*model.TeamInstallation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]*model.TeamInstallation, 0, len(r.teams))
	for _, team := range r.teams {
		// Return a copy to prevent external modifications
		teamCopy := *team
		teams = append(teams, &teamCopy)
	}

	return teams, nil
}

func (r *teamRepository) Get(ctx context.Context, teamID types.TeamID) (*model.TeamInstallation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[teamID]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("teamID", teamID))
	}

	teamCopy := *team
	return &teamCopy, nil
}

func (r *teamRepository) SetInstallStatus(ctx context.Context, team *model.TeamInstallation, installed bool) error {
	if err := team.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !installed {
		delete(r.teams, team.TeamID)
		return nil
	}

	teamCopy := *team
	r.teams[team.TeamID] = &teamCopy
	return nil
}
