package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"google.golang.org/api/iterator"
)

const usersCollection = "users"

type optInRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.OptInRepository = &optInRepository{}

func newOptInRepository(client *firestore.Client) *optInRepository {
	return &optInRepository{
		client: client,
	}
}

// userInfoDoc is the Firestore persistence model
type userInfoDoc struct {
	TenantID   string `firestore:"tenant_id"`
	UserID     string `firestore:"user_id"`
	OptedIn    bool   `firestore:"opted_in"`
	ServiceURL string `firestore:"service_url"`
}

func (r *optInRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + usersCollection)
	}
	return r.client.Collection(usersCollection)
}

func (r *optInRepository) GetAll(ctx context.Context) (map[types.UserID]bool, error) {
	status := make(map[types.UserID]bool)

	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate user info")
		}

		var doc userInfoDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user info document", goerr.V("docID", snap.Ref.ID))
		}
		status[types.UserID(doc.UserID)] = doc.OptedIn
	}

	return status, nil
}

func (r *optInRepository) SetUserInfo(ctx context.Context, info *model.UserInfo) error {
	if err := info.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user info")
	}

	doc := &userInfoDoc{
		TenantID:   string(info.TenantID),
		UserID:     string(info.UserID),
		OptedIn:    info.OptedIn,
		ServiceURL: info.ServiceURL,
	}

	if _, err := r.collection().Doc(string(info.UserID)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save user info", goerr.V("userID", info.UserID))
	}
	return nil
}
