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

const resourcesCollection = "resources"

type resourceRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.ResourceRepository = &resourceRepository{}

func newResourceRepository(client *firestore.Client) *resourceRepository {
	return &resourceRepository{
		client: client,
	}
}

// resourceDoc is the Firestore persistence model, one document per locale
// holding all overridden strings for that locale.
type resourceDoc struct {
	Locale  string            `firestore:"locale"`
	Strings map[string]string `firestore:"strings"`
}

func (r *resourceRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + resourcesCollection)
	}
	return r.client.Collection(resourcesCollection)
}

func (r *resourceRepository) Get(ctx context.Context, locale types.Locale, key types.ResourceKey) (string, error) {
	snap, err := r.collection().Doc(string(locale)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// No overrides for this locale
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to get resource strings",
			goerr.V("locale", locale), goerr.V("key", key))
	}

	var doc resourceDoc
	if err := snap.DataTo(&doc); err != nil {
		return "", goerr.Wrap(err, "failed to decode resource document", goerr.V("locale", locale))
	}

	return doc.Strings[string(key)], nil
}

func (r *resourceRepository) Set(ctx context.Context, locale types.Locale, key types.ResourceKey, value string) error {
	ref := r.collection().Doc(string(locale))

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := resourceDoc{Locale: string(locale), Strings: map[string]string{}}

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			if err := snap.DataTo(&doc); err != nil {
				return err
			}
			if doc.Strings == nil {
				doc.Strings = map[string]string{}
			}
		}

		doc.Strings[string(key)] = value
		return tx.Set(ref, &doc)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save resource string",
			goerr.V("locale", locale), goerr.V("key", key))
	}
	return nil
}
