package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const questionsCollection = "questions"

type questionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.QuestionRepository = &questionRepository{}

func newQuestionRepository(client *firestore.Client) *questionRepository {
	return &questionRepository{
		client: client,
	}
}

// questionDoc is the Firestore persistence model, one document per locale
type questionDoc struct {
	Locale    string   `firestore:"locale"`
	Questions []string `firestore:"questions"`
}

func (r *questionRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + questionsCollection)
	}
	return r.client.Collection(questionsCollection)
}

func (r *questionRepository) Get(ctx context.Context, locale types.Locale) ([]string, error) {
	snap, err := r.collection().Doc(string(locale)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// No question set yet for this locale
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get questions", goerr.V("locale", locale))
	}

	var doc questionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode question document", goerr.V("locale", locale))
	}

	return doc.Questions, nil
}

func (r *questionRepository) Set(ctx context.Context, locale types.Locale, questions []string) error {
	doc := &questionDoc{
		Locale:    string(locale),
		Questions: questions,
	}

	if _, err := r.collection().Doc(string(locale)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save questions", goerr.V("locale", locale))
	}
	return nil
}
