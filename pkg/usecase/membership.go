package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
)

// MembershipUseCase handles installation and opt-in state changes
type MembershipUseCase struct {
	repo interfaces.Repository
}

func newMembershipUseCase(repo interfaces.Repository) *MembershipUseCase {
	return &MembershipUseCase{
		repo: repo,
	}
}

// SetInstallStatus records that the bot was installed to or removed from a
// team.
func (uc *MembershipUseCase) SetInstallStatus(ctx context.Context, team *model.TeamInstallation, installed bool) error {
	if err := team.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team")
	}
	if installed {
		if err := team.Validate(); err != nil {
			return goerr.Wrap(err, "invalid team installation")
		}
	}

	if err := uc.repo.Team().SetInstallStatus(ctx, team, installed); err != nil {
		return goerr.Wrap(err, "failed to update install status",
			goerr.V("teamID", team.TeamID), goerr.V("installed", installed))
	}

	logging.From(ctx).Info("team install status updated",
		"team_id", team.TeamID, "installed", installed)
	return nil
}

// SetOptInStatus records a user's willingness to be paired. The flag is
// tenant-wide; team membership is resolved separately during each run.
func (uc *MembershipUseCase) SetOptInStatus(ctx context.Context, tenantID types.TenantID, userID types.UserID, optedIn bool, serviceURL string) error {
	info := &model.UserInfo{
		TenantID:   tenantID,
		UserID:     userID,
		OptedIn:    optedIn,
		ServiceURL: serviceURL,
	}

	if err := uc.repo.OptIn().SetUserInfo(ctx, info); err != nil {
		return goerr.Wrap(err, "failed to update opt-in status",
			goerr.V("userID", userID), goerr.V("optedIn", optedIn))
	}

	logging.From(ctx).Info("user opt-in status updated",
		"user_id", userID, "opted_in", optedIn)
	return nil
}
