package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

type questionRepository struct {
	mu        sync.RWMutex
	questions map[types.Locale][]string
}

var _ interfaces.QuestionRepository = &questionRepository{}

func newQuestionRepository() *questionRepository {
	return &questionRepository{
		questions: make(map[types.Locale][]string),
	}
}

func (r *questionRepository) Get(ctx context.Context, locale types.Locale) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// A locale without a question set is not an error
	return slices.Clone(r.questions[locale]), nil
}

func (r *questionRepository) Set(ctx context.Context, locale types.Locale, questions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions[locale] = slices.Clone(questions)
	return nil
}
