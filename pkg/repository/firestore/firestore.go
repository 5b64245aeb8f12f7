package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
)

// Firestore is the production repository backend
type Firestore struct {
	client   *firestore.Client
	team     *teamRepository
	optIn    *optInRepository
	question *questionRepository
	resource *resourceRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, used to isolate test data
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.team.collectionPrefix = prefix
		f.optIn.collectionPrefix = prefix
		f.question.collectionPrefix = prefix
		f.resource.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:   client,
		team:     newTeamRepository(client),
		optIn:    newOptInRepository(client),
		question: newQuestionRepository(client),
		resource: newResourceRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Team() interfaces.TeamRepository {
	return f.team
}

func (f *Firestore) OptIn() interfaces.OptInRepository {
	return f.optIn
}

func (f *Firestore) Question() interfaces.QuestionRepository {
	return f.question
}

func (f *Firestore) Resource() interfaces.ResourceRepository {
	return f.resource
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
