package interfaces

import (
	"context"

	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

// Conversation is the boundary to the hosting conversational runtime. The
// production implementation talks to the Bot Connector REST API; tests use
// counting fakes.
type Conversation interface {
	// ResolveTeamName retrieves the display name of a team. The name is
	// used only for message content, so callers may tolerate failures.
	ResolveTeamName(ctx context.Context, team *model.TeamInstallation) (string, error)

	// ResolveMember resolves a user's profile within a specific team. A
	// user that is not a member of the team yields (nil, nil); this is the
	// only place team membership is resolved and a full-roster fetch is
	// deliberately not part of this interface.
	ResolveMember(ctx context.Context, userID types.UserID, teamID types.TeamID, serviceURL string) (*model.MemberProfile, error)

	// SendToMember delivers a notification to a member via a proactive
	// personal conversation.
	SendToMember(ctx context.Context, member *model.MemberProfile, tenantID types.TenantID, serviceURL string, notification *model.Notification) error
}
