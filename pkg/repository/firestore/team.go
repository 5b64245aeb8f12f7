package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const teamsCollection = "teams"

type teamRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.TeamRepository = &teamRepository{}

func newTeamRepository(client *firestore.Client) *teamRepository {
	return &teamRepository{
		client: client,
	}
}

// teamDoc is the Firestore persistence model
type teamDoc struct {
	TeamID        string `firestore:"team_id"`
	TenantID      string `firestore:"tenant_id"`
	ServiceURL    string `firestore:"service_url"`
	InstallerName string `firestore:"installer_name"`
	MaxPairs      *int   `firestore:"max_pairs,omitempty"`
}

func (r *teamRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + teamsCollection)
	}
	return r.client.Collection(teamsCollection)
}

func toTeamDoc(team *model.TeamInstallation) *teamDoc {
	return &teamDoc{
		TeamID:        string(team.TeamID),
		TenantID:      string(team.TenantID),
		ServiceURL:    team.ServiceURL,
		InstallerName: team.InstallerName,
		MaxPairs:      team.MaxPairs,
	}
}

func fromTeamDoc(doc *teamDoc) *model.TeamInstallation {
	return &model.TeamInstallation{
		TeamID:        types.TeamID(doc.TeamID),
		TenantID:      types.TenantID(doc.TenantID),
		ServiceURL:    doc.ServiceURL,
		InstallerName: doc.InstallerName,
		MaxPairs:      doc.MaxPairs,
	}
}

func (r *teamRepository) List(ctx context.Context) ([]*model.TeamInstallation, error) {
	var teams []*model.TeamInstallation

	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate teams")
		}

		var doc teamDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode team document", goerr.V("docID", snap.Ref.ID))
		}
		teams = append(teams, fromTeamDoc(&doc))
	}

	return teams, nil
}

func (r *teamRepository) Get(ctx context.Context, teamID types.TeamID) (*model.TeamInstallation, error) {
	snap, err := r.collection().Doc(string(teamID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(err, "team not found", goerr.V("teamID", teamID))
		}
		return nil, goerr.Wrap(err, "failed to get team", goerr.V("teamID", teamID))
	}

	var doc teamDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode team document", goerr.V("teamID", teamID))
	}

	return fromTeamDoc(&doc), nil
}

func (r *teamRepository) SetInstallStatus(ctx context.Context, team *model.TeamInstallation, installed bool) error {
	if err := team.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team")
	}

	ref := r.collection().Doc(string(team.TeamID))

	if !installed {
		if _, err := ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete team", goerr.V("teamID", team.TeamID))
		}
		return nil
	}

	if _, err := ref.Set(ctx, toTeamDoc(team)); err != nil {
		return goerr.Wrap(err, "failed to save team", goerr.V("teamID", team.TeamID))
	}
	return nil
}
